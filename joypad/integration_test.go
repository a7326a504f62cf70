package joypad_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Alia5/VPAD/joypad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireUinput skips when /dev/uinput is absent or not writable
// (containers, CI runners without privileges).
func requireUinput(t *testing.T) {
	t.Helper()
	f, err := os.OpenFile("/dev/uinput", os.O_RDWR, 0)
	if err != nil {
		t.Skipf("uinput not available: %v", err)
	}
	_ = f.Close()
}

func TestCreatePads(t *testing.T) {
	requireUinput(t)

	type testCase struct {
		name   string
		create func() (joypad.Joypad, error)
	}

	cases := []testCase{
		{"xbox", func() (joypad.Joypad, error) { return joypad.CreateXboxOnePad(joypad.DeviceDefinition{}) }},
		{"switch", func() (joypad.Joypad, error) { return joypad.CreateSwitchProPad(joypad.DeviceDefinition{}) }},
		{"dualsense", func() (joypad.Joypad, error) { return joypad.CreateDualSensePad(joypad.DeviceDefinition{}) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pad, err := tc.create()
			require.NoError(t, err)
			defer pad.Close()

			// give udev a moment to materialize the nodes
			var nodes []string
			assert.Eventually(t, func() bool {
				nodes, err = pad.Nodes()
				return err == nil && len(nodes) == 2
			}, 2*time.Second, 25*time.Millisecond, "expected one event node and one js node, got %v", nodes)

			var haveEvent, haveJS bool
			for _, n := range nodes {
				base := filepath.Base(n)
				switch {
				case len(base) > 5 && base[:5] == "event":
					haveEvent = true
				case len(base) > 2 && base[:2] == "js":
					haveJS = true
				}
			}
			assert.True(t, haveEvent, "missing event node in %v", nodes)
			assert.True(t, haveJS, "missing js node in %v", nodes)

			// exercise the writer path against the live device
			pad.SetPressedButtons(joypad.A | joypad.DPadUp)
			pad.SetStick(joypad.LS, 1000, 2000)
			pad.SetTriggers(10, 20)
			pad.SetPressedButtons(0)

			require.NoError(t, pad.Close())
		})
	}
}
