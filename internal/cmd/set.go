package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/dactylkeys/keycode"
	"github.com/Alia5/dactylkeys/layout"
)

type Set struct {
	Row    int    `arg:"" help:"Matrix row"`
	Col    int    `arg:"" help:"Matrix column"`
	Label  string `arg:"" help:"Key label, e.g. Esc, \"L Ctrl\" or Raise"`
	DryRun bool   `help:"Show the result without saving"`
}

func (c *Set) Run(s *Session, logger *slog.Logger) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	p := layout.Position{Row: c.Row, Col: c.Col}
	if !p.Valid() {
		return fmt.Errorf("invalid position %s: row and column must not be negative", p)
	}
	if !layout.Contains(p) {
		logger.Warn("position is not a physical key", "position", p.String())
	}
	code, err := e.UpdateKey(p, c.Label)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(s.out(), describeAssignment(p, code))
	if c.DryRun {
		return nil
	}
	return e.Save()
}

func describeAssignment(p layout.Position, code keycode.Code) string {
	return fmt.Sprintf("%s = %s (%s, 0x%02X)", p, displayLabel(code), code, code.Byte())
}
