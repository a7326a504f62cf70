package joypad

// DeviceDefinition identifies a virtual controller to the kernel. It is
// consumed during create only; the resulting device keeps no reference to
// it.
type DeviceDefinition struct {
	Name      string
	VendorID  uint16
	ProductID uint16
	Version   uint16
}

// withDefaults fills unset fields from the variant's stock identity.
func (d DeviceDefinition) withDefaults(def DeviceDefinition) DeviceDefinition {
	if d.Name == "" {
		d.Name = def.Name
	}
	if d.VendorID == 0 {
		d.VendorID = def.VendorID
	}
	if d.ProductID == 0 {
		d.ProductID = def.ProductID
	}
	if d.Version == 0 {
		d.Version = def.Version
	}
	return d
}
