package joypad

import "github.com/Alia5/VPAD/uinput"

// XboxOneDefinition is the stock identity of the emulated Xbox One S pad.
// SDL and the kernel xpad quirk tables key off these ids.
var XboxOneDefinition = DeviceDefinition{
	Name:      "VPAD Xbox One (virtual) pad",
	VendorID:  0x045e,
	ProductID: 0x02ea,
	Version:   0x0408,
}

var xboxVariant = &variant{
	buttons:  commonButtons,
	triggers: triggerAxes,
}

// xboxKeys includes the trigger key codes even though triggers are
// reported as axes; real pads expose both.
var xboxKeys = []uint16{
	uinput.BtnWest, uinput.BtnEast, uinput.BtnNorth, uinput.BtnSouth,
	uinput.BtnThumbL, uinput.BtnThumbR,
	uinput.BtnTL, uinput.BtnTR, uinput.BtnTL2, uinput.BtnTR2,
	uinput.BtnSelect, uinput.BtnStart, uinput.BtnMode,
}

// XboxOnePad emulates a Microsoft Xbox One controller. Triggers are
// analog axes in the raw 0..255 byte range; consumers reading through
// SDL observe them rescaled onto 0..32767.
type XboxOnePad struct {
	pad
}

var _ Joypad = (*XboxOnePad)(nil)

// CreateXboxOnePad registers the virtual device and starts its
// force-feedback listener. Zero fields of def fall back to
// XboxOneDefinition.
func CreateXboxOnePad(def DeviceDefinition) (*XboxOnePad, error) {
	def = def.withDefaults(XboxOneDefinition)
	dev, err := uinput.CreateDevice(deviceSetup(def, xboxKeys, concatAxes(hatAxes, stickAxes, triggerAxesInfo)))
	if err != nil {
		return nil, err
	}
	return &XboxOnePad{pad: newPad(dev, xboxVariant)}, nil
}
