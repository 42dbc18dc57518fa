// Package privilege guards the hardware probes behind a root check.
package privilege

import (
	"errors"
	"os"
)

// ErrNotRoot is returned when the process lacks the elevated privileges
// the hardware probes require.
var ErrNotRoot = errors.New("hwprobe must be run with root privileges")

// Check verifies the process runs with root privileges.
func Check() error {
	return check(os.Geteuid())
}

func check(euid int) error {
	if euid != 0 {
		return ErrNotRoot
	}
	return nil
}
