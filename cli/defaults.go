// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Defaults holds user preferences of the bytesize cli persisted between
// runs. Fields are optional, the zero value means no preference was saved.
type Defaults struct {
	// TargetUnit is the unit token used by convert and batch when no
	// explicit target is given, e.g. "MiB".
	TargetUnit string `json:"target_unit,omitempty"`
}

const defaultsFile = "bytesize/defaults.json"

// DefaultsPath resolves the defaults file location in the user configuration
// directory, following the XDG specification.
func DefaultsPath() (string, error) {
	return xdg.ConfigFile(defaultsFile)
}

// LoadDefaults reads persisted defaults from path. A missing file is not an
// error, it simply yields the zero Defaults.
func LoadDefaults(path string) (Defaults, error) {
	var defaults Defaults

	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	} else if err != nil {
		return defaults, fmt.Errorf("failed loading defaults at %s: %w", path, err)
	}

	if err := json.Unmarshal(bytes, &defaults); err != nil {
		return defaults, fmt.Errorf("failed parsing defaults at %s: %w", path, err)
	}
	return defaults, nil
}

// SaveDefaults writes defaults to path, creating parent directories as
// needed.
func SaveDefaults(path string, defaults Defaults) error {
	bytes, err := json.Marshal(&defaults)
	if err != nil {
		return fmt.Errorf("failed marshaling defaults: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed creating defaults directory: %w", err)
	}
	return os.WriteFile(path, bytes, 0666)
}
