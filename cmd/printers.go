package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/batch-planner/planner"
)

// PrinterProfiles represents the full printers.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type PrinterProfiles struct {
	Version  string           `yaml:"version"`
	Default  string           `yaml:"default"`
	Printers []PrinterProfile `yaml:"printers"`
}

// PrinterProfile is a named constraint preset.
type PrinterProfile struct {
	ID        string  `yaml:"id"`
	MaxVolume float64 `yaml:"max_volume"`
	MaxItems  int     `yaml:"max_items"`
	Notes     string  `yaml:"notes,omitempty"` // free text, not used at runtime
}

// LoadPrinterProfiles parses a printers.yaml file with strict field checking.
func LoadPrinterProfiles(path string) (*PrinterProfiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading printer profiles: %w", err)
	}
	var profiles PrinterProfiles
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&profiles); err != nil {
		return nil, fmt.Errorf("parsing printer profiles: %w", err)
	}
	return &profiles, nil
}

// Lookup returns the constraints for the named printer.
// An empty name selects the file's default printer.
func (p *PrinterProfiles) Lookup(name string) (planner.Constraints, error) {
	if name == "" {
		name = p.Default
	}
	if name == "" {
		return planner.Constraints{}, fmt.Errorf("no printer named and no default printer configured")
	}
	for _, printer := range p.Printers {
		if printer.ID == name {
			c := planner.Constraints{MaxVolume: printer.MaxVolume, MaxItems: printer.MaxItems}
			if err := c.Validate(); err != nil {
				return planner.Constraints{}, fmt.Errorf("printer %q: %w", name, err)
			}
			return c, nil
		}
	}
	return planner.Constraints{}, fmt.Errorf("unknown printer %q", name)
}
