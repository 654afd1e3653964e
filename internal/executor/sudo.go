package executor

import (
	"os"
	"os/exec"
)

// IsRoot returns true if the current process is running as root.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// elevationCommand returns the privilege escalation binary to use,
// preferring sudo over doas.
func elevationCommand() (string, bool) {
	for _, candidate := range []string{"sudo", "doas"} {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// CanElevate returns true if the process can obtain root privileges.
func CanElevate() bool {
	if IsRoot() {
		return true
	}
	_, ok := elevationCommand()
	return ok
}

// CheckPrivileges returns an error if privileges cannot be elevated when needed.
func CheckPrivileges(needsSudo bool) error {
	if !needsSudo {
		return nil
	}
	if !CanElevate() {
		return ErrNoPrivileges
	}
	return nil
}

type errNoPrivileges struct{}

func (e errNoPrivileges) Error() string {
	return "this operation requires root privileges, but neither running as root nor sudo/doas is available"
}

// ErrNoPrivileges is the error returned when privileges cannot be elevated.
var ErrNoPrivileges = errNoPrivileges{}
