package joypad

import (
	"testing"

	"github.com/Alia5/VPAD/uinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syn() uinput.Event {
	return uinput.Event{Type: uinput.EvSyn, Code: uinput.SynReport}
}

func key(code uint16, value int32) uinput.Event {
	return uinput.Event{Type: uinput.EvKey, Code: code, Value: value}
}

func abs(code uint16, value int32) uinput.Event {
	return uinput.Event{Type: uinput.EvAbs, Code: code, Value: value}
}

func TestSetPressedButtonsIdempotent(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	defer p.Close()

	p.SetPressedButtons(A | DPadUp)
	require.NotEmpty(t, f.takeWrites())

	p.SetPressedButtons(A | DPadUp)
	assert.Empty(t, f.takeWrites(), "unchanged bitmask must emit zero protocol events")
}

func TestSetPressedButtonsSingleToggle(t *testing.T) {
	type testCase struct {
		name   string
		button Button
		want   uinput.Event
	}

	cases := []testCase{
		{"dpad up", DPadUp, abs(uinput.AbsHat0Y, -1)},
		{"dpad down", DPadDown, abs(uinput.AbsHat0Y, 1)},
		{"dpad left", DPadLeft, abs(uinput.AbsHat0X, -1)},
		{"dpad right", DPadRight, abs(uinput.AbsHat0X, 1)},
		{"start", Start, key(uinput.BtnStart, 1)},
		{"back", Back, key(uinput.BtnSelect, 1)},
		{"left stick", LeftStick, key(uinput.BtnThumbL, 1)},
		{"right stick", RightStick, key(uinput.BtnThumbR, 1)},
		{"left shoulder", LeftButton, key(uinput.BtnTL, 1)},
		{"right shoulder", RightButton, key(uinput.BtnTR, 1)},
		{"home", Home, key(uinput.BtnMode, 1)},
		{"a", A, key(uinput.BtnSouth, 1)},
		{"b", B, key(uinput.BtnEast, 1)},
		{"x", X, key(uinput.BtnWest, 1)},
		{"y", Y, key(uinput.BtnNorth, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, f := newTestPad(xboxVariant)
			defer p.Close()

			p.SetPressedButtons(tc.button)
			assert.Equal(t, []uinput.Event{tc.want, syn()}, f.takeWrites(),
				"toggling one bit must encode exactly one change plus sync")
		})
	}
}

func TestSetPressedButtonsReleaseAll(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	defer p.Close()

	p.SetPressedButtons(A | B | X | Y | DPadUp | Start)
	f.takeWrites()

	p.SetPressedButtons(0)
	writes := f.takeWrites()
	assert.Contains(t, writes, key(uinput.BtnSouth, 0))
	assert.Contains(t, writes, key(uinput.BtnEast, 0))
	assert.Contains(t, writes, key(uinput.BtnWest, 0))
	assert.Contains(t, writes, key(uinput.BtnNorth, 0))
	assert.Contains(t, writes, key(uinput.BtnStart, 0))
	assert.Contains(t, writes, abs(uinput.AbsHat0Y, 0))
	assert.Equal(t, syn(), writes[len(writes)-1])
	assert.Zero(t, p.state.pressedButtons())
}

func TestDPadHatTransitions(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	defer p.Close()

	p.SetPressedButtons(DPadUp)
	assert.Equal(t, []uinput.Event{abs(uinput.AbsHat0Y, -1), syn()}, f.takeWrites())

	// up -> down flips the same hat axis with a single write
	p.SetPressedButtons(DPadDown)
	assert.Equal(t, []uinput.Event{abs(uinput.AbsHat0Y, 1), syn()}, f.takeWrites())

	p.SetPressedButtons(DPadDown | DPadRight)
	assert.Equal(t, []uinput.Event{abs(uinput.AbsHat0X, 1), syn()}, f.takeWrites())

	p.SetPressedButtons(0)
	writes := f.takeWrites()
	assert.ElementsMatch(t, []uinput.Event{abs(uinput.AbsHat0Y, 0), abs(uinput.AbsHat0X, 0), syn()}, writes)
}

func TestMiscFlagSwitchOnly(t *testing.T) {
	sp, sf := newTestPad(switchVariant)
	defer sp.Close()
	sp.SetPressedButtons(MiscFlag)
	assert.Equal(t, []uinput.Event{key(uinput.BtnZ, 1), syn()}, sf.takeWrites())

	xp, xf := newTestPad(xboxVariant)
	defer xp.Close()
	xp.SetPressedButtons(MiscFlag)
	assert.Empty(t, xf.takeWrites(), "unmapped bits must not reach the device")
}

func TestSetStick(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	defer p.Close()

	p.SetStick(LS, 1000, 2000)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsX, 1000),
		abs(uinput.AbsY, -2000),
		syn(),
	}, f.takeWrites(), "Y is negated onto the kernel axis")

	p.SetStick(RS, -16384, -32768)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsRX, -16384),
		abs(uinput.AbsRY, 32767),
		syn(),
	}, f.takeWrites(), "negating -32768 saturates at 32767 instead of wrapping")
}

func TestXboxTriggersRawBytes(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	defer p.Close()

	p.SetTriggers(10, 20)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsZ, 10),
		abs(uinput.AbsRZ, 20),
		syn(),
	}, f.takeWrites())

	// SDL rescales the 0..255 axis onto 0..32767; these are the values
	// a game-controller client observes.
	sdl := func(raw int32) int32 { return raw * 32767 / 255 }
	assert.Equal(t, int32(1284), sdl(10))
	assert.Equal(t, int32(2569), sdl(20))

	p.SetTriggers(0, 0)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsZ, 0),
		abs(uinput.AbsRZ, 0),
		syn(),
	}, f.takeWrites())
}

func TestSwitchTriggersAreDigital(t *testing.T) {
	p, f := newTestPad(switchVariant)
	defer p.Close()

	p.SetTriggers(10, 20)
	assert.Equal(t, []uinput.Event{
		key(uinput.BtnTL2, 1),
		key(uinput.BtnTR2, 1),
		syn(),
	}, f.takeWrites(), "any positive value is fully pressed")

	p.SetTriggers(0, 0)
	assert.Equal(t, []uinput.Event{
		key(uinput.BtnTL2, 0),
		key(uinput.BtnTR2, 0),
		syn(),
	}, f.takeWrites())
}

func TestDualSenseTriggersVerbatim(t *testing.T) {
	p, f := newTestPad(dualSenseVariant)
	defer p.Close()

	p.SetTriggers(125, 255)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsZ, 125),
		abs(uinput.AbsRZ, 255),
		syn(),
	}, f.takeWrites())

	sdl := func(raw int32) int32 { return raw * 32767 / 255 }
	assert.Equal(t, int32(16062), sdl(125))
	assert.Equal(t, int32(32767), sdl(255))

	// Sign has no special handling; values are written as passed.
	p.SetTriggers(-5, 0)
	assert.Equal(t, []uinput.Event{
		abs(uinput.AbsZ, -5),
		abs(uinput.AbsRZ, 0),
		syn(),
	}, f.takeWrites())
}

func TestUnsupportedOperationsAreNoops(t *testing.T) {
	p, f := newTestPad(dualSenseVariant)
	defer p.Close()

	p.SetOnLED(func(r, g, b int) { t.Error("LED callback must never fire on this backend") })
	p.SetOnTriggerEffect(func(TriggerEffect) { t.Error("trigger-effect callback must never fire") })
	p.SetMotion(Gyroscope, 1, 2, 3)
	p.SetBattery(BatteryCharging, 80)
	p.PlaceFinger(0, 100, 200)
	p.ReleaseFinger(0)

	assert.Empty(t, f.takeWrites(), "unsupported operations must not touch the device")
}

func TestNodes(t *testing.T) {
	p, _ := newTestPad(xboxVariant)
	defer p.Close()

	nodes, err := p.Nodes()
	require.NoError(t, err)
	assert.Equal(t, []string{"/dev/input/event7", "/dev/input/js1"}, nodes)
}

func TestSettersAfterCloseKeepStateConsistent(t *testing.T) {
	p, f := newTestPad(xboxVariant)
	require.NoError(t, p.Close())
	f.takeWrites()

	p.SetPressedButtons(A | B)
	p.SetStick(LS, 100, 200)
	p.SetTriggers(1, 2)

	assert.Empty(t, f.takeWrites(), "setters degrade to no-ops once closed")
	assert.Equal(t, A|B, p.state.pressedButtons(), "previous mask still tracks the last call")
}
