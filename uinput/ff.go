package uinput

import (
	"encoding/binary"
	"unsafe"
)

// FFUpload is a decoded force-feedback effect upload. Magnitudes are kept
// verbatim from the ff_effect payload; interpreting or clamping them is
// the consumer's job.
type FFUpload struct {
	RequestID  uint32
	EffectID   int16
	EffectType uint16

	// Rumble magnitudes, valid when EffectType is FFRumble.
	Strong uint16
	Weak   uint16
}

// struct uinput_ff_upload offsets (64-bit Linux):
//
//	0   request_id (u32)
//	4   retval     (s32)
//	8   effect.type (u16), 10 effect.id (s16), 12 effect.direction (u16)
//	14  effect.trigger, 18 effect.replay, 22 pad
//	24  effect union (rumble: strong_magnitude u16, weak_magnitude u16)
const (
	ffUpEffectType = 8
	ffUpEffectID   = 10
	ffUpStrong     = 24
	ffUpWeak       = 26
)

// FetchUpload completes the UI_BEGIN_FF_UPLOAD / UI_END_FF_UPLOAD
// handshake for the given request id and returns the decoded effect. The
// handshake must always be acknowledged, so the END ioctl runs even when
// the payload is not a rumble effect.
func (d *Device) FetchUpload(requestID uint32) (FFUpload, error) {
	var buf [ffUploadSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	if err := ioctlPtr(d.fd, uiBeginFFUpload, unsafe.Pointer(&buf[0])); err != nil {
		return FFUpload{}, &DeviceError{msg: "UI_BEGIN_FF_UPLOAD: " + err.Error()}
	}

	up := decodeFFUpload(buf[:])

	binary.LittleEndian.PutUint32(buf[4:8], 0) // retval
	if err := ioctlPtr(d.fd, uiEndFFUpload, unsafe.Pointer(&buf[0])); err != nil {
		return FFUpload{}, &DeviceError{msg: "UI_END_FF_UPLOAD: " + err.Error()}
	}
	return up, nil
}

// FetchErase completes the UI_BEGIN_FF_ERASE / UI_END_FF_ERASE handshake
// and returns the id of the erased effect.
func (d *Device) FetchErase(requestID uint32) (uint32, error) {
	var buf [ffEraseSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], requestID)
	if err := ioctlPtr(d.fd, uiBeginFFErase, unsafe.Pointer(&buf[0])); err != nil {
		return 0, &DeviceError{msg: "UI_BEGIN_FF_ERASE: " + err.Error()}
	}
	effectID := binary.LittleEndian.Uint32(buf[8:12])

	binary.LittleEndian.PutUint32(buf[4:8], 0) // retval
	if err := ioctlPtr(d.fd, uiEndFFErase, unsafe.Pointer(&buf[0])); err != nil {
		return 0, &DeviceError{msg: "UI_END_FF_ERASE: " + err.Error()}
	}
	return effectID, nil
}

func decodeFFUpload(buf []byte) FFUpload {
	up := FFUpload{
		RequestID:  binary.LittleEndian.Uint32(buf[0:4]),
		EffectID:   int16(binary.LittleEndian.Uint16(buf[ffUpEffectID : ffUpEffectID+2])),
		EffectType: binary.LittleEndian.Uint16(buf[ffUpEffectType : ffUpEffectType+2]),
	}
	if up.EffectType == FFRumble {
		up.Strong = binary.LittleEndian.Uint16(buf[ffUpStrong : ffUpStrong+2])
		up.Weak = binary.LittleEndian.Uint16(buf[ffUpWeak : ffUpWeak+2])
	}
	return up
}
