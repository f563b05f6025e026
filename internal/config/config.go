// Copyright (c) 2026 The mime-detective Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads optional YAML configuration for the CLI.
// Values given on the command line always take precedence.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config flag
// is given.
const DefaultPath = "mime-detective.yml"

// Config carries CLI defaults.
type Config struct {
	Databases []string `yaml:"databases"`  // magic database files loaded by every command
	ReportDir string   `yaml:"report_dir"` // directory where scan reports are written
	LogLevel  string   `yaml:"log_level"`  // DEBUG, INFO, WARN or ERROR
}

// Load reads the configuration file at path. When path is empty, DefaultPath
// is tried and a missing file yields a zero Config without error; an
// explicitly given path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// MergeDatabases prepends config databases to the ones given on the
// command line, preserving flag order after config order.
func (c Config) MergeDatabases(flagDBs []string) []string {
	if len(c.Databases) == 0 {
		return flagDBs
	}
	merged := make([]string, 0, len(c.Databases)+len(flagDBs))
	merged = append(merged, c.Databases...)
	merged = append(merged, flagDBs...)
	return merged
}
