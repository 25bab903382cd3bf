// Package config loads the optional YAML configuration file named by the
// --config global option. The file supplies defaults for global options;
// explicit flags always win. The file is read-only: the CLI never writes
// configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

// File mirrors the global option surface. Pointer fields distinguish
// "absent" from zero values.
type File struct {
	Host    *string  `yaml:"host,omitempty"`
	Port    *float64 `yaml:"port,omitempty"`
	Format  *string  `yaml:"format,omitempty"`
	Verbose *bool    `yaml:"verbose,omitempty"`
	Quiet   *bool    `yaml:"quiet,omitempty"`
	Timeout *float64 `yaml:"timeout,omitempty"`
	Debug   *bool    `yaml:"debug,omitempty"`
}

// Load reads and decodes path. A missing file is not an error when the path
// came from a default location; callers pass required=true for an explicit
// --config value.
func Load(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &File{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		// An empty document decodes to io.EOF; treat it as an empty config.
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &f, nil
}

// Apply overlays file values onto parsed options for every key the user did
// not set explicitly on the command line. explicit holds the option names
// that appeared as flags.
func (f *File) Apply(options map[string]schema.Value, explicit map[string]bool) {
	setString := func(key string, v *string) {
		if v != nil && !explicit[key] {
			options[key] = schema.StringValue(*v)
		}
	}
	setNumber := func(key string, v *float64) {
		if v != nil && !explicit[key] {
			options[key] = schema.NumberValue(*v)
		}
	}
	setBool := func(key string, v *bool) {
		if v != nil && !explicit[key] {
			options[key] = schema.BoolValue(*v)
		}
	}

	setString("host", f.Host)
	setNumber("port", f.Port)
	setString("format", f.Format)
	setBool("verbose", f.Verbose)
	setBool("quiet", f.Quiet)
	setNumber("timeout", f.Timeout)
	setBool("debug", f.Debug)
}
