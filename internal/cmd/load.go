package cmd

import (
	"fmt"

	"github.com/Alia5/dactylkeys/layout"
)

type Load struct{}

func (c *Load) Run(s *Session) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	if err := e.Load(); err != nil {
		return err
	}
	km := e.Current()
	changed := 0
	def := layout.Default()
	for _, p := range km.Positions() {
		if km.Get(p) != def.Get(p) {
			changed++
		}
	}
	_, _ = fmt.Fprintf(s.out(), "loaded %d keys, %d differ from the factory default\n", km.Len(), changed)
	return nil
}

type FactoryReset struct{}

func (c *FactoryReset) Run(s *Session) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	if err := e.FactoryReset(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(s.out(), "saved layout removed, factory default restored")
	return nil
}
