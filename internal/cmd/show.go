package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/dactylkeys/keymap"
)

type Show struct {
	Saved bool `help:"Show the saved layout without highlighting"`
}

func (c *Show) Run(s *Session) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	writeLayout(s.out(), e, c.Saved)
	return nil
}

func writeLayout(w io.Writer, e *keymap.Engine, savedOnly bool) {
	km := e.Current()
	if savedOnly {
		km = e.Saved()
	}
	_, _ = fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Dactyl Manuform 5x7 (%d keys)", km.Len())))
	_, _ = fmt.Fprintln(w, RenderKeymap(km, e.Saved()))
	if !savedOnly && e.HasUnsavedChanges() {
		_, _ = fmt.Fprintln(w, "unsaved changes")
	}
}
