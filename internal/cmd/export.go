package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/Alia5/dactylkeys/export"
)

type Export struct {
	Output string `help:"Destination directory" type:"path" default:"." env:"DACTYLKEYS_EXPORT_OUTPUT"`
	Format string `help:"Document format" enum:"json,yaml,toml" default:"json" env:"DACTYLKEYS_EXPORT_FORMAT"`
}

func (c *Export) Run(s *Session) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	return exportTo(s, e.Export(), c.Output, c.Format)
}

func exportTo(s *Session, doc export.Document, dir, format string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	path, n, err := export.WriteFile(dir, doc, f)
	if err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	s.logger().Info("layout exported", "path", path, "bytes", n)
	_, _ = fmt.Fprintf(s.out(), "exported %d keys to %s (%s)\n", doc.Metadata.TotalKeys, path, humanize.Bytes(uint64(n)))
	return nil
}
