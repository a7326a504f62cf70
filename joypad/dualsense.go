package joypad

import "github.com/Alia5/VPAD/uinput"

// DualSenseDefinition is the stock identity of the emulated DualSense.
var DualSenseDefinition = DeviceDefinition{
	Name:      "VPAD DualSense (virtual) pad",
	VendorID:  0x054c,
	ProductID: 0x0ce6,
	Version:   0x8111,
}

var dualSenseVariant = &variant{
	buttons:  commonButtons,
	triggers: triggerAxes,
}

var dualSenseKeys = []uint16{
	uinput.BtnWest, uinput.BtnEast, uinput.BtnNorth, uinput.BtnSouth,
	uinput.BtnThumbL, uinput.BtnThumbR,
	uinput.BtnTL, uinput.BtnTR, uinput.BtnTL2, uinput.BtnTR2,
	uinput.BtnSelect, uinput.BtnStart, uinput.BtnMode,
}

// DualSensePad emulates a Sony DualSense through plain event emulation.
// Triggers are independent absolute axes written verbatim, sign included;
// negative values have no special handling. Touchpad, motion, battery,
// LED and adaptive-trigger feedback need raw HID output reports and are
// no-ops on this backend.
type DualSensePad struct {
	pad
}

var _ Joypad = (*DualSensePad)(nil)

// CreateDualSensePad registers the virtual device and starts its
// force-feedback listener. Zero fields of def fall back to
// DualSenseDefinition.
func CreateDualSensePad(def DeviceDefinition) (*DualSensePad, error) {
	def = def.withDefaults(DualSenseDefinition)
	dev, err := uinput.CreateDevice(deviceSetup(def, dualSenseKeys, concatAxes(hatAxes, stickAxes, triggerAxesInfo)))
	if err != nil {
		return nil, err
	}
	return &DualSensePad{pad: newPad(dev, dualSenseVariant)}, nil
}
