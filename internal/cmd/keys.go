package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/dactylkeys/keycode"
)

type Keys struct {
	Category string `arg:"" optional:"" help:"Only list this category"`
}

func (c *Keys) Run(s *Session) error {
	return listKeys(s.out(), c.Category)
}

func listKeys(w io.Writer, category string) error {
	cats := keycode.Categories()
	if category != "" {
		cat, ok := keycode.LookupCategory(category)
		if !ok {
			names := make([]string, len(cats))
			for i, c := range cats {
				names[i] = c.Name
			}
			return fmt.Errorf("unknown category %q (have: %s)", category, strings.Join(names, ", "))
		}
		cats = []keycode.Category{cat}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, cat := range cats {
		if i > 0 {
			_, _ = fmt.Fprintln(tw)
		}
		_, _ = fmt.Fprintln(tw, titleStyle.Render(cat.Name))
		for _, code := range cat.Codes {
			_, _ = fmt.Fprintf(tw, "  %q\t%s\t0x%02X\n", code.Label(), code, code.Byte())
		}
	}
	return tw.Flush()
}
