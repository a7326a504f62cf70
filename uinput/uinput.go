// Package uinput wraps the Linux uinput interface for building virtual
// input devices.
//
// A Device is one registration with the kernel input subsystem. The owner
// writes input events through it; the kernel surfaces force-feedback
// requests back through the same file descriptor, which can be drained
// with NextEvent/FetchUpload/FetchErase.
package uinput

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DeviceCreationError reports a failed device registration. The underlying
// OS error text is preserved in Err.
type DeviceCreationError struct {
	Stage string
	Err   error
}

func (e *DeviceCreationError) Error() string {
	return fmt.Sprintf("uinput: %s: %v", e.Stage, e.Err)
}

func (e *DeviceCreationError) Unwrap() error { return e.Err }

// ErrDeviceClosed is returned by operations on a handle that has been
// closed by its owner.
var ErrDeviceClosed = &DeviceError{"device handle closed"}

// DeviceError is a runtime failure on an existing device handle.
type DeviceError struct{ msg string }

func (e *DeviceError) Error() string { return "uinput: " + e.msg }

// AbsAxis describes one absolute axis registration, mirroring
// struct input_absinfo.
type AbsAxis struct {
	Code       uint16
	Min        int32
	Max        int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// DeviceSetup is the full registration request for a virtual device:
// identity plus every key, axis and force-feedback effect it exposes.
type DeviceSetup struct {
	Name    string
	Bus     uint16
	Vendor  uint16
	Product uint16
	Version uint16

	Keys    []uint16
	Axes    []AbsAxis
	Effects []uint16

	// MaxEffects is written to ff_effects_max; required non-zero when
	// Effects is non-empty.
	MaxEffects uint32
}

// Event is one struct input_event read from the uinput fd.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device is a created uinput device handle.
//
// WriteEvent/Sync may be called concurrently with NextEvent; the kernel
// permits simultaneous read and write file operations on one uinput fd.
// Close must not race with a pending NextEvent - the owner joins its
// reader first.
type Device struct {
	fd      int
	sysname string

	closeOnce sync.Once
	closeErr  error
}

// CreateDevice registers a new virtual device. On any failure the fd is
// torn down and a *DeviceCreationError is returned; no partial device is
// left behind.
func CreateDevice(setup DeviceSetup) (*Device, error) {
	fd, err := unix.Open(uinputPath, unix.O_RDWR|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, &DeviceCreationError{Stage: "open " + uinputPath, Err: err}
	}
	d := &Device{fd: fd}

	fail := func(stage string, err error) (*Device, error) {
		_ = unix.Close(fd)
		return nil, &DeviceCreationError{Stage: stage, Err: err}
	}

	if len(setup.Keys) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(EvKey)); err != nil {
			return fail("enable EV_KEY", err)
		}
		for _, code := range setup.Keys {
			if err := ioctl(fd, uiSetKeyBit, uintptr(code)); err != nil {
				return fail(fmt.Sprintf("register key 0x%x", code), err)
			}
		}
	}

	if len(setup.Axes) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(EvAbs)); err != nil {
			return fail("enable EV_ABS", err)
		}
		for _, axis := range setup.Axes {
			if err := ioctl(fd, uiSetAbsBit, uintptr(axis.Code)); err != nil {
				return fail(fmt.Sprintf("register axis 0x%x", axis.Code), err)
			}
		}
	}

	if len(setup.Effects) > 0 {
		if err := ioctl(fd, uiSetEvBit, uintptr(EvFF)); err != nil {
			return fail("enable EV_FF", err)
		}
		for _, effect := range setup.Effects {
			if err := ioctl(fd, uiSetFFBit, uintptr(effect)); err != nil {
				return fail(fmt.Sprintf("register effect 0x%x", effect), err)
			}
		}
	}

	us := uinputSetup{
		ID: inputID{
			Bustype: setup.Bus,
			Vendor:  setup.Vendor,
			Product: setup.Product,
			Version: setup.Version,
		},
		FFEffectsMax: setup.MaxEffects,
	}
	copy(us.Name[:], setup.Name)
	if err := ioctlPtr(fd, uiDevSetup, unsafe.Pointer(&us)); err != nil {
		return fail("UI_DEV_SETUP", err)
	}

	for _, axis := range setup.Axes {
		as := uinputAbsSetup{Code: axis.Code}
		as.Info.Minimum = axis.Min
		as.Info.Maximum = axis.Max
		as.Info.Fuzz = axis.Fuzz
		as.Info.Flat = axis.Flat
		as.Info.Resolution = axis.Resolution
		if err := ioctlPtr(fd, uiAbsSetup, unsafe.Pointer(&as)); err != nil {
			return fail(fmt.Sprintf("UI_ABS_SETUP 0x%x", axis.Code), err)
		}
	}

	if err := ioctl(fd, uiDevCreate, 0); err != nil {
		return fail("UI_DEV_CREATE", err)
	}

	return d, nil
}

// WriteEvent emits one input event. The write is synchronous and never
// suspends the caller.
func (d *Device) WriteEvent(etype, code uint16, value int32) error {
	var buf [inputEventSize]byte
	binary.LittleEndian.PutUint16(buf[16:18], etype)
	binary.LittleEndian.PutUint16(buf[18:20], code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(value))
	if _, err := unix.Write(d.fd, buf[:]); err != nil {
		if err == unix.EBADF {
			return ErrDeviceClosed
		}
		return &DeviceError{msg: "write event: " + err.Error()}
	}
	return nil
}

// Sync emits a SYN_REPORT, marking the preceding batch of events as one
// atomic update.
func (d *Device) Sync() error {
	return d.WriteEvent(EvSyn, SynReport, 0)
}

// NextEvent waits up to timeout for one event surfaced by the kernel
// (force-feedback uploads, erases and play requests). It returns
// ok == false when the timeout elapsed without an event, and
// ErrDeviceClosed once the fd has been invalidated.
func (d *Device) NextEvent(timeout time.Duration) (Event, bool, error) {
	pfd := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(pfd, int(timeout.Milliseconds()))
	if err != nil {
		if err == unix.EINTR {
			return Event{}, false, nil
		}
		return Event{}, false, ErrDeviceClosed
	}
	if n == 0 {
		return Event{}, false, nil
	}
	if pfd[0].Revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
		return Event{}, false, ErrDeviceClosed
	}

	var buf [inputEventSize]byte
	nr, err := unix.Read(d.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN {
			return Event{}, false, nil
		}
		return Event{}, false, ErrDeviceClosed
	}
	if nr < inputEventSize {
		return Event{}, false, nil
	}
	return Event{
		Type:  binary.LittleEndian.Uint16(buf[16:18]),
		Code:  binary.LittleEndian.Uint16(buf[18:20]),
		Value: int32(binary.LittleEndian.Uint32(buf[20:24])),
	}, true, nil
}

// Close destroys the kernel device and releases the fd. Safe to call more
// than once; callers must first stop any goroutine blocked in NextEvent.
func (d *Device) Close() error {
	d.closeOnce.Do(func() {
		_ = ioctl(d.fd, uiDevDestroy, 0)
		d.closeErr = unix.Close(d.fd)
		d.fd = -1
	})
	return d.closeErr
}

// Kernel ABI structs, 64-bit Linux layout.

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputSetup struct {
	ID           inputID
	Name         [80]byte
	FFEffectsMax uint32
}

type inputAbsinfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

type uinputAbsSetup struct {
	Code uint16
	_    [2]byte
	Info inputAbsinfo
}

func ioctl(fd int, req uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlPtr(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
