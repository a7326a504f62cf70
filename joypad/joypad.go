// Package joypad emulates game controllers as kernel-visible input
// devices on Linux.
//
// Each Create* constructor registers a virtual device through uinput and
// starts a background listener that decodes force-feedback requests from
// consumers of the device (games, SDL, streaming hosts) into callbacks.
// Writers never wait on the listener; destruction joins it before the
// device handle is released.
package joypad

// Button is one logical controller button in the pressed-buttons bitmask.
// The values follow the Moonlight/GameStream button flag layout, which
// callers feeding remote input streams can pass through unchanged.
type Button = uint32

const (
	DPadUp     Button = 0x0001
	DPadDown   Button = 0x0002
	DPadLeft   Button = 0x0004
	DPadRight  Button = 0x0008
	Start      Button = 0x0010
	Back       Button = 0x0020
	LeftStick  Button = 0x0040
	RightStick Button = 0x0080

	LeftButton  Button = 0x0100
	RightButton Button = 0x0200
	Home        Button = 0x0400

	A Button = 0x1000
	B Button = 0x2000
	X Button = 0x4000
	Y Button = 0x8000

	TouchpadFlag Button = 0x100000
	MiscFlag     Button = 0x200000
)

// StickPosition selects one of the two analog sticks.
type StickPosition int

const (
	LS StickPosition = iota
	RS
)

// MotionType selects the sensor a motion sample belongs to.
type MotionType int

const (
	Accelerometer MotionType = iota
	Gyroscope
)

// BatteryState mirrors the charge states a DualSense reports.
type BatteryState int

const (
	BatteryDischarging BatteryState = iota
	BatteryCharging
	BatteryFull
	BatteryVoltageError
	BatteryTemperatureError
	BatteryChargingError
)

// TriggerEffect is a decoded adaptive-trigger command as sent by a
// DualSense-aware consumer. Only backends with raw HID output reports can
// observe these.
type TriggerEffect struct {
	// Side is a bitmask: 0x04 right trigger, 0x08 left trigger.
	Side   byte
	Mode   byte
	Params [10]byte
}

// Joypad is the uniform surface over all emulated controller families.
//
// Operations a variant's backend cannot express (touch, motion, battery,
// LED and trigger-effect feedback on plain event emulation) are explicit
// no-ops, never errors, so generic calling code needs no capability
// checks.
type Joypad interface {
	// Nodes returns the /dev/input paths backing the device; exactly one
	// event node and one legacy joystick node for the pad devices here.
	Nodes() ([]string, error)

	// SetPressedButtons replaces the full pressed-button bitmask. Only
	// buttons whose state changed produce protocol writes; a repeated
	// identical mask emits nothing.
	SetPressedButtons(buttons Button)

	// SetStick updates one stick. Y follows the conventional "up is
	// positive" orientation and is negated on the wire to match the
	// kernel axis direction.
	SetStick(stick StickPosition, x, y int16)

	// SetTriggers updates both trigger values (0..255); scaling and
	// encoding are variant-specific.
	SetTriggers(left, right int16)

	// SetOnRumble registers the callback invoked from the listener
	// goroutine when the consumer plays a rumble effect. Registering
	// replaces any previous callback; callbacks must not block.
	SetOnRumble(cb func(lowFreq, highFreq int))

	SetOnLED(cb func(r, g, b int))
	SetOnTriggerEffect(cb func(TriggerEffect))

	SetMotion(motion MotionType, x, y, z float32)
	SetBattery(state BatteryState, percentage int)
	PlaceFinger(finger int, x, y uint16)
	ReleaseFinger(finger int)

	// Close stops the listener, waits for it to exit, then destroys the
	// kernel device. Idempotent.
	Close() error
}
