// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a classification table in TOML form and validates it.
// This allows alternate vocabularies, for example a reduced high
// contrast set, to be authored as data without touching the code.
func Load(r io.Reader) (*Table, error) {
	t := &Table{}
	if err := toml.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("naming: decoding table: %w", err)
	}
	t.Thresholds.fillDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads and validates a classification table from a TOML file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("naming: opening table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes the table in TOML form.
func (t *Table) Save(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return fmt.Errorf("naming: encoding table: %w", err)
	}
	return nil
}
