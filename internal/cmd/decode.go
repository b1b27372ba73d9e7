package cmd

import (
	"fmt"
	"strconv"

	"github.com/Alia5/dactylkeys/keycode"
)

type Decode struct {
	Bytes []string `arg:"" name:"byte" help:"HID usage byte, decimal or 0x-prefixed"`
}

func (c *Decode) Run(s *Session) error {
	for _, raw := range c.Bytes {
		n, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			return fmt.Errorf("invalid byte %q: must be 0-255", raw)
		}
		code := keycode.Decode(byte(n))
		_, _ = fmt.Fprintf(s.out(), "0x%02X\t%s\t%q\n", n, code, code.Label())
	}
	return nil
}
