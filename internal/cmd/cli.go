package cmd

import "github.com/Alia5/dactylkeys/internal/config"

// CLI is the root command tree.
type CLI struct {
	config.Globals `embed:""`

	Show         Show          `cmd:"" default:"1" help:"Show the current layout"`
	Set          Set           `cmd:"" help:"Assign a key label to a position and save"`
	Load         Load          `cmd:"" help:"Load and validate the saved layout"`
	FactoryReset FactoryReset  `cmd:"" name:"factory-reset" help:"Delete the saved layout and restore the factory default"`
	Export       Export        `cmd:"" help:"Write the layout as an export document"`
	Keys         Keys          `cmd:"" help:"List the key library"`
	Decode       Decode        `cmd:"" help:"Decode a HID usage byte"`
	Edit         Edit          `cmd:"" help:"Edit the layout interactively"`
	Config       ConfigCommand `cmd:"" help:"Configuration helpers"`
}
