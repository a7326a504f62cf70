package uinput

// Event types from linux/input-event-codes.h.
const (
	EvSyn    uint16 = 0x00
	EvKey    uint16 = 0x01
	EvAbs    uint16 = 0x03
	EvFF     uint16 = 0x15
	EvUinput uint16 = 0x0101
)

const SynReport uint16 = 0

// Gamepad button codes.
const (
	BtnSouth  uint16 = 0x130
	BtnEast   uint16 = 0x131
	BtnC      uint16 = 0x132
	BtnNorth  uint16 = 0x133
	BtnWest   uint16 = 0x134
	BtnZ      uint16 = 0x135
	BtnTL     uint16 = 0x136
	BtnTR     uint16 = 0x137
	BtnTL2    uint16 = 0x138
	BtnTR2    uint16 = 0x139
	BtnSelect uint16 = 0x13a
	BtnStart  uint16 = 0x13b
	BtnMode   uint16 = 0x13c
	BtnThumbL uint16 = 0x13d
	BtnThumbR uint16 = 0x13e
)

// Absolute axis codes.
const (
	AbsX     uint16 = 0x00
	AbsY     uint16 = 0x01
	AbsZ     uint16 = 0x02
	AbsRX    uint16 = 0x03
	AbsRY    uint16 = 0x04
	AbsRZ    uint16 = 0x05
	AbsHat0X uint16 = 0x10
	AbsHat0Y uint16 = 0x11
)

// Force-feedback effect types and properties.
const (
	FFRumble   uint16 = 0x50
	FFPeriodic uint16 = 0x51
	FFConstant uint16 = 0x52
	FFRamp     uint16 = 0x57
	FFSine     uint16 = 0x5a
	FFGain     uint16 = 0x60
)

// Codes carried by EV_UINPUT events read back from the uinput fd.
const (
	FFUploadCode uint16 = 1
	FFEraseCode  uint16 = 2
)

const BusUSB uint16 = 0x03

// uinput ioctls. Computed from the _IOC macros in linux/uinput.h for the
// struct sizes on 64-bit Linux; see uinput_test.go for the arithmetic.
const (
	uiDevCreate     = 0x5501
	uiDevDestroy    = 0x5502
	uiDevSetup      = 0x405c5503 // _IOW('U', 3, struct uinput_setup)
	uiAbsSetup      = 0x401c5504 // _IOW('U', 4, struct uinput_abs_setup)
	uiSetEvBit      = 0x40045564
	uiSetKeyBit     = 0x40045565
	uiSetAbsBit     = 0x40045567
	uiSetFFBit      = 0x4004556b
	uiGetSysname    = 0x8041552c // _IOC(_IOC_READ, 'U', 44, 65)
	uiBeginFFUpload = 0xc06855c8 // _IOWR('U', 200, struct uinput_ff_upload)
	uiEndFFUpload   = 0x406855c9 // _IOW('U', 201, struct uinput_ff_upload)
	uiBeginFFErase  = 0xc00c55ca // _IOWR('U', 202, struct uinput_ff_erase)
	uiEndFFErase    = 0x400c55cb // _IOW('U', 203, struct uinput_ff_erase)
)

// Struct sizes on 64-bit Linux.
const (
	inputEventSize = 24  // struct input_event
	ffUploadSize   = 104 // struct uinput_ff_upload
	ffEraseSize    = 12  // struct uinput_ff_erase
	sysnameLen     = 65  // buffer for UI_GET_SYSNAME
	uinputPath     = "/dev/uinput"
)
