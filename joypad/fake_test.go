package joypad

import (
	"sync"
	"time"

	"github.com/Alia5/VPAD/uinput"
)

// fakeDevice records the writer-side protocol and replays scripted
// kernel events to the listener.
type fakeDevice struct {
	mu     sync.Mutex
	writes []uinput.Event
	closed bool

	events  chan uinput.Event
	uploads map[uint32]uinput.FFUpload
	erases  map[uint32]uint32
	nodes   []string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		events:  make(chan uinput.Event, 16),
		uploads: make(map[uint32]uinput.FFUpload),
		erases:  make(map[uint32]uint32),
		nodes:   []string{"/dev/input/event7", "/dev/input/js1"},
	}
}

func (f *fakeDevice) WriteEvent(etype, code uint16, value int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, uinput.Event{Type: etype, Code: code, Value: value})
	return nil
}

func (f *fakeDevice) Sync() error {
	return f.WriteEvent(uinput.EvSyn, uinput.SynReport, 0)
}

func (f *fakeDevice) NextEvent(timeout time.Duration) (uinput.Event, bool, error) {
	select {
	case ev, ok := <-f.events:
		if !ok {
			return uinput.Event{}, false, uinput.ErrDeviceClosed
		}
		return ev, true, nil
	case <-time.After(timeout):
		return uinput.Event{}, false, nil
	}
}

func (f *fakeDevice) FetchUpload(requestID uint32) (uinput.FFUpload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	up, ok := f.uploads[requestID]
	if !ok {
		return uinput.FFUpload{}, uinput.ErrDeviceClosed
	}
	return up, nil
}

func (f *fakeDevice) FetchErase(requestID uint32) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.erases[requestID]
	if !ok {
		return 0, uinput.ErrDeviceClosed
	}
	return id, nil
}

func (f *fakeDevice) Nodes() ([]string, error) {
	return f.nodes, nil
}

func (f *fakeDevice) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// takeWrites returns everything written since the last call.
func (f *fakeDevice) takeWrites() []uinput.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := f.writes
	f.writes = nil
	return w
}

func (f *fakeDevice) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// scriptUpload queues a rumble upload handshake: the EV_UINPUT event plus
// the payload FetchUpload will hand back.
func (f *fakeDevice) scriptUpload(requestID uint32, up uinput.FFUpload) {
	f.mu.Lock()
	f.uploads[requestID] = up
	f.mu.Unlock()
	f.events <- uinput.Event{Type: uinput.EvUinput, Code: uinput.FFUploadCode, Value: int32(requestID)}
}

func (f *fakeDevice) scriptErase(requestID, effectID uint32) {
	f.mu.Lock()
	f.erases[requestID] = effectID
	f.mu.Unlock()
	f.events <- uinput.Event{Type: uinput.EvUinput, Code: uinput.FFEraseCode, Value: int32(requestID)}
}

func (f *fakeDevice) scriptPlay(effectID int16, value int32) {
	f.events <- uinput.Event{Type: uinput.EvFF, Code: uint16(effectID), Value: value}
}

func newTestPad(v *variant) (*pad, *fakeDevice) {
	f := newFakeDevice()
	p := newPad(f, v)
	return &p, f
}
