package joypad

import (
	"sync"
	"time"

	"github.com/Alia5/VPAD/uinput"
)

// device is the handle surface padState needs. *uinput.Device implements
// it; tests substitute a recording fake.
type device interface {
	WriteEvent(etype, code uint16, value int32) error
	Sync() error
	NextEvent(timeout time.Duration) (uinput.Event, bool, error)
	FetchUpload(requestID uint32) (uinput.FFUpload, error)
	FetchErase(requestID uint32) (uint32, error)
	Nodes() ([]string, error)
	Close() error
}

// buttonKey maps one bitmask button to its EV_KEY code.
type buttonKey struct {
	mask Button
	code uint16
}

// triggerMode selects how a variant encodes SetTriggers.
type triggerMode int

const (
	// triggerAxes writes the raw values to ABS_Z/ABS_RZ.
	triggerAxes triggerMode = iota
	// triggerKeys presses/releases BTN_TL2/BTN_TR2; any positive value
	// is fully pressed. Switch Pro triggers are digital.
	triggerKeys
)

// variant is a controller family's encode table. The D-pad is always a
// hat axis pair; everything else differs per family.
type variant struct {
	buttons  []buttonKey
	triggers triggerMode
}

// padState is the mutable runtime state of one emulated controller,
// shared between the owning façade and its listener goroutine.
//
// mu guards pressed (the diff-computation field), the callback slots and
// the closed flag. The device handle itself needs no locking: the kernel
// permits concurrent read and write file operations on a uinput fd, and
// the handle is only closed after the listener has exited.
type padState struct {
	dev device

	mu       sync.Mutex
	pressed  Button
	closed   bool
	onRumble func(lowFreq, highFreq int)

	stop chan struct{}
	done sync.WaitGroup
}

func newPadState(dev device) *padState {
	s := &padState{
		dev:  dev,
		stop: make(chan struct{}),
	}
	s.done.Add(1)
	go s.listen()
	return s
}

// setPressedButtons encodes the diff between the new bitmask and the
// previous one: each changed D-pad pair becomes a hat axis update, each
// changed discrete button a key event, followed by a single SYN_REPORT.
// The previous mask is updated unconditionally so state stays consistent
// even once the device is gone.
func (s *padState) setPressedButtons(v *variant, buttons Button) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := buttons ^ s.pressed
	s.pressed = buttons
	if changed == 0 || s.closed {
		return
	}

	wrote := false
	if changed&(DPadUp|DPadDown) != 0 {
		_ = s.dev.WriteEvent(uinput.EvAbs, uinput.AbsHat0Y, hatValue(buttons&DPadUp != 0, buttons&DPadDown != 0))
		wrote = true
	}
	if changed&(DPadLeft|DPadRight) != 0 {
		_ = s.dev.WriteEvent(uinput.EvAbs, uinput.AbsHat0X, hatValue(buttons&DPadLeft != 0, buttons&DPadRight != 0))
		wrote = true
	}
	for _, b := range v.buttons {
		if changed&b.mask != 0 {
			_ = s.dev.WriteEvent(uinput.EvKey, b.code, keyValue(buttons&b.mask != 0))
			wrote = true
		}
	}
	if wrote {
		_ = s.dev.Sync()
	}
}

func (s *padState) setStick(stick StickPosition, x, y int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	xCode, yCode := uinput.AbsX, uinput.AbsY
	if stick == RS {
		xCode, yCode = uinput.AbsRX, uinput.AbsRY
	}
	_ = s.dev.WriteEvent(uinput.EvAbs, xCode, int32(x))
	_ = s.dev.WriteEvent(uinput.EvAbs, yCode, negateAxis(y))
	_ = s.dev.Sync()
}

func (s *padState) setTriggers(v *variant, left, right int16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch v.triggers {
	case triggerAxes:
		_ = s.dev.WriteEvent(uinput.EvAbs, uinput.AbsZ, int32(left))
		_ = s.dev.WriteEvent(uinput.EvAbs, uinput.AbsRZ, int32(right))
	case triggerKeys:
		_ = s.dev.WriteEvent(uinput.EvKey, uinput.BtnTL2, keyValue(left > 0))
		_ = s.dev.WriteEvent(uinput.EvKey, uinput.BtnTR2, keyValue(right > 0))
	}
	_ = s.dev.Sync()
}

func (s *padState) setOnRumble(cb func(lowFreq, highFreq int)) {
	s.mu.Lock()
	s.onRumble = cb
	s.mu.Unlock()
}

func (s *padState) rumble(lowFreq, highFreq int) {
	s.mu.Lock()
	cb := s.onRumble
	s.mu.Unlock()
	if cb != nil {
		cb(lowFreq, highFreq)
	}
}

func (s *padState) pressedButtons() Button {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressed
}

// close performs the cooperative shutdown sequence: mark the writer side
// closed, signal the listener, wait for it to return, then reclaim the
// handle. The ordering guarantees the listener never reads a destroyed
// device.
func (s *padState) close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stop)
	s.done.Wait()
	return s.dev.Close()
}

// negateAxis flips the abstract "up is positive" Y onto the kernel's
// inverted vertical axis, saturating instead of wrapping at the int16
// boundary.
func negateAxis(y int16) int32 {
	n := -int32(y)
	if n > 32767 {
		n = 32767
	}
	return n
}

func hatValue(negative, positive bool) int32 {
	switch {
	case negative:
		return -1
	case positive:
		return 1
	default:
		return 0
	}
}

func keyValue(pressed bool) int32 {
	if pressed {
		return 1
	}
	return 0
}
