// Package profile loads controller identity profiles from TOML files.
//
// A profile overrides the stock DeviceDefinition of a variant so the
// emulated pad can masquerade as a specific hardware revision. Fields left
// out of the file keep the variant defaults.
package profile

import (
	"fmt"
	"os"

	"github.com/Alia5/VPAD/joypad"

	toml "github.com/pelletier/go-toml"
)

type Profile struct {
	Name      string `toml:"name"`
	VendorID  uint16 `toml:"vendor_id"`
	ProductID uint16 `toml:"product_id"`
	Version   uint16 `toml:"version"`
}

// Load reads a profile file. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	var p Profile
	if err := toml.NewDecoder(f).Strict(true).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// Definition converts the profile into the partial identity passed to the
// pad constructors; zero fields fall back to the variant defaults there.
func (p Profile) Definition() joypad.DeviceDefinition {
	return joypad.DeviceDefinition{
		Name:      p.Name,
		VendorID:  p.VendorID,
		ProductID: p.ProductID,
		Version:   p.Version,
	}
}
