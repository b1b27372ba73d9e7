//go:build windows

package main

import (
	"os"

	"github.com/Alia5/dactylkeys/internal/util"
)

// A double-clicked executable gets a console that closes as soon as the
// command returns, so start the interactive editor instead of "show".
func init() {
	if len(os.Args) > 1 || !util.LaunchedFromExplorer() {
		return
	}
	os.Args = append(os.Args, "edit")
}
