package joypad

import (
	"github.com/Alia5/VPAD/uinput"
)

// commonButtons is the EV_KEY mapping shared by every family; the D-pad
// is handled separately as a hat axis pair.
var commonButtons = []buttonKey{
	{Start, uinput.BtnStart},
	{Back, uinput.BtnSelect},
	{LeftStick, uinput.BtnThumbL},
	{RightStick, uinput.BtnThumbR},
	{LeftButton, uinput.BtnTL},
	{RightButton, uinput.BtnTR},
	{Home, uinput.BtnMode},
	{A, uinput.BtnSouth},
	{B, uinput.BtnEast},
	{X, uinput.BtnWest},
	{Y, uinput.BtnNorth},
}

// Stick axes match real pads: full int16 range with the dead-zone values
// shipped by the hardware drivers.
var stickAxes = []uinput.AbsAxis{
	{Code: uinput.AbsX, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
	{Code: uinput.AbsY, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
	{Code: uinput.AbsRX, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
	{Code: uinput.AbsRY, Min: -32768, Max: 32767, Fuzz: 16, Flat: 128},
}

var hatAxes = []uinput.AbsAxis{
	{Code: uinput.AbsHat0X, Min: -1, Max: 1},
	{Code: uinput.AbsHat0Y, Min: -1, Max: 1},
}

var triggerAxesInfo = []uinput.AbsAxis{
	{Code: uinput.AbsZ, Min: 0, Max: 255},
	{Code: uinput.AbsRZ, Min: 0, Max: 255},
}

var ffEffects = []uint16{
	uinput.FFRumble,
	uinput.FFConstant,
	uinput.FFPeriodic,
	uinput.FFSine,
	uinput.FFRamp,
	uinput.FFGain,
}

const maxFFEffects = 16

// deviceSetup assembles the uinput registration for a definition and the
// variant's capability tables.
func deviceSetup(def DeviceDefinition, keys []uint16, axes []uinput.AbsAxis) uinput.DeviceSetup {
	return uinput.DeviceSetup{
		Name:       def.Name,
		Bus:        uinput.BusUSB,
		Vendor:     def.VendorID,
		Product:    def.ProductID,
		Version:    def.Version,
		Keys:       keys,
		Axes:       axes,
		Effects:    ffEffects,
		MaxEffects: maxFFEffects,
	}
}

func concatAxes(groups ...[]uinput.AbsAxis) []uinput.AbsAxis {
	var out []uinput.AbsAxis
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// pad implements the capability-uniform part of Joypad on top of a
// padState and a variant encode table. The backend here is plain event
// emulation, so touch, motion, battery, LED and trigger-effect feedback
// are defined as no-ops (see SetOn* doc on the Joypad interface).
type pad struct {
	state   *padState
	variant *variant
}

func newPad(dev device, v *variant) pad {
	return pad{state: newPadState(dev), variant: v}
}

func (p *pad) Nodes() ([]string, error) { return p.state.dev.Nodes() }

func (p *pad) SetPressedButtons(buttons Button) { p.state.setPressedButtons(p.variant, buttons) }

func (p *pad) SetStick(stick StickPosition, x, y int16) { p.state.setStick(stick, x, y) }

func (p *pad) SetTriggers(left, right int16) { p.state.setTriggers(p.variant, left, right) }

func (p *pad) SetOnRumble(cb func(lowFreq, highFreq int)) { p.state.setOnRumble(cb) }

func (p *pad) SetOnLED(cb func(r, g, b int)) {}

func (p *pad) SetOnTriggerEffect(cb func(TriggerEffect)) {}

func (p *pad) SetMotion(motion MotionType, x, y, z float32) {}

func (p *pad) SetBattery(state BatteryState, percentage int) {}

func (p *pad) PlaceFinger(finger int, x, y uint16) {}

func (p *pad) ReleaseFinger(finger int) {}

func (p *pad) Close() error { return p.state.close() }
