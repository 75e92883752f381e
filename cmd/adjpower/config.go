// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adjpower/core"
)

// Config is the resolved set of command parameters. Values come from the
// defaults, then the optional yaml file, then explicitly set flags.
type Config struct {
	Size         int    `yaml:"size" validate:"gte=0,lte=256"`
	Edges        int    `yaml:"edges" validate:"gte=0"`
	Mode         string `yaml:"mode" validate:"oneof=DEFAULT SYMM ANTISYMM ASYMM"`
	Seed         int64  `yaml:"seed"`
	Strategy     string `yaml:"strategy" validate:"oneof=rejection spanning"`
	Connectivity string `yaml:"connectivity" validate:"oneof=weak forward"`
	MaxAttempts  int    `yaml:"max_attempts" validate:"gte=1"`
	Op           string `yaml:"op" validate:"oneof=classic logical tropical"`
	Power        int    `yaml:"power" validate:"gte=1"`
	Levels       int    `yaml:"levels" validate:"gte=1,lte=16"`
	Matrix       string `yaml:"matrix"`
	Format       string `yaml:"format" validate:"oneof=table yaml"`
	Verbose      bool   `yaml:"verbose"`
}

// configValidate checks resolved configs.
var configValidate = validator.New()

// defaultConfig returns the values used when neither file nor flag sets one.
// Seed 0 means "seed from the clock".
func defaultConfig() Config {
	return Config{
		Size:         5,
		Edges:        6,
		Mode:         "DEFAULT",
		Strategy:     "rejection",
		Connectivity: "weak",
		MaxAttempts:  10000,
		Op:           "classic",
		Power:        2,
		Levels:       5,
		Format:       "table",
	}
}

// loadConfigFile overlays the keys present in the yaml file at path onto cfg.
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// validate normalizes enum spellings and runs the struct tags. Long mode
// names such as SYMMETRICAL are folded onto their short form.
func (c *Config) validate() error {
	c.Mode = strings.ToUpper(strings.TrimSpace(c.Mode))
	if gt, err := core.ParseGenType(c.Mode); err == nil {
		c.Mode = gt.String()
	}
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.Connectivity = strings.ToLower(strings.TrimSpace(c.Connectivity))
	c.Op = strings.ToLower(strings.TrimSpace(c.Op))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// parseMatrix reads rows separated by ';' and cells separated by ','.
// "0,1;1,0" is the 2×2 matrix with one undirected edge.
func parseMatrix(s string) ([][]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty matrix")
	}
	rowTexts := strings.Split(s, ";")
	rows := make([][]int64, 0, len(rowTexts))
	for i, rt := range rowTexts {
		cells := strings.Split(rt, ",")
		row := make([]int64, 0, len(cells))
		for j, ct := range cells {
			v, err := strconv.ParseInt(strings.TrimSpace(ct), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix cell (%d,%d): %w", i, j, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
