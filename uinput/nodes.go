package uinput

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unsafe"
)

const virtualInputSysfs = "/sys/devices/virtual/input"

// Sysname returns the kernel name of the created device (e.g. "input23").
// The value is stable for the lifetime of the handle and cached after the
// first query.
func (d *Device) Sysname() (string, error) {
	if d.sysname != "" {
		return d.sysname, nil
	}
	var buf [sysnameLen]byte
	if err := ioctlPtr(d.fd, uiGetSysname, unsafe.Pointer(&buf[0])); err != nil {
		return "", &DeviceError{msg: "UI_GET_SYSNAME: " + err.Error()}
	}
	if i := strings.IndexByte(string(buf[:]), 0); i >= 0 {
		d.sysname = string(buf[:i])
	} else {
		d.sysname = string(buf[:])
	}
	return d.sysname, nil
}

// Nodes enumerates the /dev/input paths backing this device: one eventXX
// node and, for joystick-capable devices, one jsYY node.
func (d *Device) Nodes() ([]string, error) {
	sysname, err := d.Sysname()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(virtualInputSysfs, sysname))
	if err != nil {
		return nil, &DeviceError{msg: "enumerate device nodes: " + err.Error()}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return devNodesFromSysfs(names), nil
}

// devNodesFromSysfs maps sysfs child entries of an input device to their
// /dev/input paths, keeping only event* and js* handlers.
func devNodesFromSysfs(entries []string) []string {
	var nodes []string
	for _, name := range entries {
		if strings.HasPrefix(name, "event") || strings.HasPrefix(name, "js") {
			nodes = append(nodes, filepath.Join("/dev/input", name))
		}
	}
	sort.Strings(nodes)
	return nodes
}
