package main

import (
	"fmt"
	"io"
	"os"

	"github.com/midbel/toml"
)

// config mirrors the teacher CLI's loadFromConfig shape: a TOML document
// decoded straight into a plain struct, no builder, no flags beyond what
// main.go itself parses.
type config struct {
	Path    string `toml:"path"`
	Verbose bool   `toml:"verbose"`
}

func loadFromConfig(file string) (*config, error) {
	var c config
	if file == "" {
		return &c, nil
	}
	if err := toml.DecodeFile(file, &c); err != nil {
		return nil, badUsage(fmt.Sprintf("invalid configuration file: %v", err))
	}
	return &c, nil
}

func (c *config) open() (io.Reader, error) {
	if c.Path == "" || c.Path == "-" {
		return os.Stdin, nil
	}
	return os.Open(c.Path)
}
