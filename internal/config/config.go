// Package config holds the option groups shared by every command and the
// configuration file loaders.
package config

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/tidwall/jsonc"
)

// Log configures logging.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"DACTYLKEYS_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"DACTYLKEYS_LOG_FILE"`
	RawFile string `help:"Dump raw store traffic to this file" env:"DACTYLKEYS_LOG_RAW_FILE"`
}

// Store selects where the saved layout lives.
type Store struct {
	Backend string `help:"Persistence backend" enum:"file,sqlite,memory,none" default:"file" env:"DACTYLKEYS_STORE_BACKEND"`
	Path    string `help:"Store file path (defaults to the user data directory)" env:"DACTYLKEYS_STORE_PATH"`
}

// Globals are the flags accepted before any subcommand.
type Globals struct {
	Config string `help:"Configuration file (json, jsonc, yaml or toml)" type:"path" env:"DACTYLKEYS_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`
	Store  Store  `embed:"" prefix:"store."`
}

// JSONC is a kong configuration loader for JSON files that may contain
// comments and trailing commas.
func JSONC(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	res, err := kong.JSON(bytes.NewReader(jsonc.ToJSON(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return res, nil
}
