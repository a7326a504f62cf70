package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/VPAD/internal/profile"
	"github.com/Alia5/VPAD/joypad"

	"gopkg.in/yaml.v3"
)

type Run struct {
	Type      string `arg:"" help:"Controller type" enum:"xbox,switch,dualsense" default:"xbox"`
	Profile   string `help:"TOML profile overriding the stock device identity" env:"VPAD_PROFILE"`
	Output    string `help:"Node listing format" enum:"plain,yaml" default:"plain" env:"VPAD_OUTPUT"`
	SmokeTest bool   `help:"Cycle buttons, sticks and triggers once after creation"`
}

type nodeReport struct {
	Type  string   `yaml:"type"`
	Nodes []string `yaml:"nodes"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var def joypad.DeviceDefinition
	if r.Profile != "" {
		p, err := profile.Load(r.Profile)
		if err != nil {
			return err
		}
		def = p.Definition()
		logger.Debug("loaded device profile", "path", r.Profile, "name", def.Name)
	}

	pad, err := createPad(r.Type, def)
	if err != nil {
		return err
	}
	defer pad.Close()

	pad.SetOnRumble(func(lowFreq, highFreq int) {
		logger.Info("rumble", "low", lowFreq, "high", highFreq)
	})

	nodes, err := waitForNodes(ctx, pad)
	if err != nil {
		return err
	}
	if err := printNodes(r.Output, r.Type, nodes); err != nil {
		return err
	}

	if r.SmokeTest {
		smokeTest(pad)
	}

	logger.Info("controller ready", "type", r.Type, "nodes", len(nodes))
	<-ctx.Done()
	logger.Info("removing controller")
	return pad.Close()
}

func createPad(kind string, def joypad.DeviceDefinition) (joypad.Joypad, error) {
	switch kind {
	case "xbox":
		return joypad.CreateXboxOnePad(def)
	case "switch":
		return joypad.CreateSwitchProPad(def)
	case "dualsense":
		return joypad.CreateDualSensePad(def)
	}
	return nil, fmt.Errorf("unknown controller type %q", kind)
}

// waitForNodes polls until udev has materialized both device nodes.
func waitForNodes(ctx context.Context, pad joypad.Joypad) ([]string, error) {
	deadline := time.Now().Add(2 * time.Second)
	for {
		nodes, err := pad.Nodes()
		if err != nil {
			return nil, err
		}
		if len(nodes) >= 2 || time.Now().After(deadline) {
			return nodes, nil
		}
		select {
		case <-ctx.Done():
			return nodes, ctx.Err()
		case <-time.After(25 * time.Millisecond):
		}
	}
}

func printNodes(format, kind string, nodes []string) error {
	if format == "yaml" {
		out, err := yaml.Marshal(nodeReport{Type: kind, Nodes: nodes})
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	for _, n := range nodes {
		fmt.Println(n)
	}
	return nil
}

// smokeTest walks through every input once so a consumer (evtest, SDL
// testcontroller) can verify the mapping visually.
func smokeTest(pad joypad.Joypad) {
	buttons := []joypad.Button{
		joypad.DPadUp, joypad.DPadDown, joypad.DPadLeft, joypad.DPadRight,
		joypad.A, joypad.B, joypad.X, joypad.Y,
		joypad.LeftButton, joypad.RightButton,
		joypad.LeftStick, joypad.RightStick,
		joypad.Start, joypad.Back, joypad.Home,
	}
	for _, b := range buttons {
		pad.SetPressedButtons(b)
		time.Sleep(50 * time.Millisecond)
	}
	pad.SetPressedButtons(0)

	for _, s := range []joypad.StickPosition{joypad.LS, joypad.RS} {
		pad.SetStick(s, 32767, 0)
		time.Sleep(50 * time.Millisecond)
		pad.SetStick(s, 0, 32767)
		time.Sleep(50 * time.Millisecond)
		pad.SetStick(s, 0, 0)
	}

	pad.SetTriggers(255, 255)
	time.Sleep(50 * time.Millisecond)
	pad.SetTriggers(0, 0)
}
