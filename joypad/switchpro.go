package joypad

import "github.com/Alia5/VPAD/uinput"

// SwitchProDefinition is the stock identity of the emulated Switch Pro
// controller.
var SwitchProDefinition = DeviceDefinition{
	Name:      "VPAD Nintendo Switch Pro (virtual) pad",
	VendorID:  0x057e,
	ProductID: 0x2009,
	Version:   0x8111,
}

// The Switch Pro adds the capture button (MiscFlag -> BTN_Z) and has
// digital triggers, so no trigger axes are registered.
var switchVariant = &variant{
	buttons:  append([]buttonKey{{MiscFlag, uinput.BtnZ}}, commonButtons...),
	triggers: triggerKeys,
}

var switchKeys = []uint16{
	uinput.BtnWest, uinput.BtnEast, uinput.BtnNorth, uinput.BtnSouth, uinput.BtnZ,
	uinput.BtnThumbL, uinput.BtnThumbR,
	uinput.BtnTL, uinput.BtnTR, uinput.BtnTL2, uinput.BtnTR2,
	uinput.BtnSelect, uinput.BtnStart, uinput.BtnMode,
}

// SwitchProPad emulates a Nintendo Switch Pro controller. Its triggers
// are hardware buttons: any positive SetTriggers value reads as fully
// pressed (32767 through SDL), zero as released.
type SwitchProPad struct {
	pad
}

var _ Joypad = (*SwitchProPad)(nil)

// CreateSwitchProPad registers the virtual device and starts its
// force-feedback listener. Zero fields of def fall back to
// SwitchProDefinition.
func CreateSwitchProPad(def DeviceDefinition) (*SwitchProPad, error) {
	def = def.withDefaults(SwitchProDefinition)
	dev, err := uinput.CreateDevice(deviceSetup(def, switchKeys, concatAxes(hatAxes, stickAxes)))
	if err != nil {
		return nil, err
	}
	return &SwitchProPad{pad: newPad(dev, switchVariant)}, nil
}
