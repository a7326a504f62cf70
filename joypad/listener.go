package joypad

import (
	"time"

	"github.com/Alia5/VPAD/uinput"
)

// pollInterval bounds how long the listener sleeps between stop-flag
// checks, and therefore the worst-case shutdown latency.
const pollInterval = 100 * time.Millisecond

// listen is the background worker bound to one padState. It drains the
// force-feedback traffic the kernel surfaces on the uinput fd:
//
//	EV_UINPUT/UI_FF_UPLOAD  effect upload handshake, effect remembered
//	EV_UINPUT/UI_FF_ERASE   erase handshake, effect forgotten
//	EV_FF                   play/stop of an uploaded effect
//
// Rumble magnitudes are forwarded verbatim to the registered callback;
// unknown effects, gain changes and malformed payloads are dropped. The
// loop exits when the stop channel is signalled or the handle turns
// invalid, whichever it observes first.
func (s *padState) listen() {
	defer s.done.Done()

	effects := make(map[int16]uinput.FFUpload)

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		ev, ok, err := s.dev.NextEvent(pollInterval)
		if err != nil {
			return
		}
		if !ok {
			continue
		}

		switch ev.Type {
		case uinput.EvUinput:
			switch ev.Code {
			case uinput.FFUploadCode:
				up, err := s.dev.FetchUpload(uint32(ev.Value))
				if err != nil {
					continue
				}
				effects[up.EffectID] = up
			case uinput.FFEraseCode:
				id, err := s.dev.FetchErase(uint32(ev.Value))
				if err != nil {
					continue
				}
				delete(effects, int16(id))
			}

		case uinput.EvFF:
			if ev.Code == uinput.FFGain {
				continue
			}
			up, known := effects[int16(ev.Code)]
			if !known || up.EffectType != uinput.FFRumble {
				continue
			}
			if ev.Value > 0 {
				s.rumble(int(up.Strong), int(up.Weak))
			} else {
				s.rumble(0, 0)
			}
		}
	}
}
