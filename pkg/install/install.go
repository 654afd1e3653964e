// Package install turns a selected candidate into the install command for
// its source and runs it. Command generation is a lookup, not a shell
// template; arguments stay an argv vector end to end.
package install

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"pkgscout/internal/executor"
)

// aurHelpers are probed in order; the first one on PATH wins.
var aurHelpers = []string{"yay", "paru", "trizen", "yaourt"}

// Exec is one generated install command.
type Exec struct {
	Argv []string
	Sudo bool
}

// String renders the command the way a user would type it.
func (e *Exec) String() string {
	cmd := strings.Join(e.Argv, " ")
	if e.Sudo {
		return "sudo " + cmd
	}
	return cmd
}

// UnknownSourceError reports a source with no known install command.
type UnknownSourceError struct {
	Source string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("no install command known for source %q", e.Source)
}

// HelperNotFoundError reports that an AUR package was selected but no AUR
// helper is installed.
type HelperNotFoundError struct {
	Tried []string
}

func (e *HelperNotFoundError) Error() string {
	return fmt.Sprintf("no AUR helper found (tried %s); install one, e.g.: sudo pacman -S --needed git base-devel && git clone https://aur.archlinux.org/yay.git && cd yay && makepkg -si",
		strings.Join(e.Tried, ", "))
}

// AURHelper returns the first installed AUR helper.
func AURHelper() (string, bool) {
	for _, helper := range aurHelpers {
		if _, err := exec.LookPath(helper); err == nil {
			return helper, true
		}
	}
	return "", false
}

// Command generates the install command for a package name and its source.
func Command(name, src string) (*Exec, error) {
	switch src {
	case "pacman":
		return &Exec{Argv: []string{"pacman", "-S", name}, Sudo: true}, nil
	case "aur":
		helper, ok := AURHelper()
		if !ok {
			return nil, &HelperNotFoundError{Tried: aurHelpers}
		}
		// AUR helpers must not run as root; they escalate on their own.
		return &Exec{Argv: []string{helper, "-S", name}}, nil
	case "apt":
		return &Exec{Argv: []string{"apt", "install", name}, Sudo: true}, nil
	case "dnf":
		return &Exec{Argv: []string{"dnf", "install", name}, Sudo: true}, nil
	case "zypper":
		return &Exec{Argv: []string{"zypper", "install", name}, Sudo: true}, nil
	case "flatpak":
		return &Exec{Argv: []string{"flatpak", "install", "flathub", name}}, nil
	case "snap":
		return &Exec{Argv: []string{"snap", "install", name}, Sudo: true}, nil
	}
	return nil, &UnknownSourceError{Source: src}
}

// Run executes a generated command, streaming the tool's output so the
// user sees download progress and any interactive prompts.
func Run(ctx context.Context, x *executor.Executor, e *Exec) error {
	if e == nil || len(e.Argv) == 0 {
		return fmt.Errorf("empty install command")
	}

	if e.Sudo {
		return x.RunSudo(ctx, e.Argv[0], e.Argv[1:]...)
	}
	return x.Run(ctx, e.Argv[0], e.Argv[1:]...)
}
