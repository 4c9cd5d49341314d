// Package conf loads the lds configuration file.
package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/lds/lds"
	"github.com/revelaction/lds/render"
)

// DefaultPath is read when no configuration file is given. It may be
// missing.
const DefaultPath = "lds.yaml"

type Config struct {
	// DocPath is a folder of CoNLL-U files or a SQLite file
	DocPath string `yaml:"doc_path"`

	// DBPath is the SQLite file where reports are stored
	DBPath string `yaml:"db_path"`

	Strategy        string `yaml:"strategy"`
	Format          string `yaml:"format"`
	Workers         int    `yaml:"workers"`
	GlobalClauseIds bool   `yaml:"global_clause_ids"`
	KeepPunct       bool   `yaml:"keep_punct"`
}

func Default() Config {
	return Config{
		Strategy: "1",
		Format:   render.DefaultFormat,
	}
}

// Load reads the YAML file at path over the defaults. If path is empty,
// DefaultPath is read when it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("IO error: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("YAML decoding error in %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := lds.ParseStrategy(c.Strategy); err != nil {
		return err
	}

	valid := false
	for _, f := range render.SupportedFormats() {
		if f == c.Format {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("format %q: allowed values are %v", c.Format, render.SupportedFormats())
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative: %d", c.Workers)
	}

	return nil
}
