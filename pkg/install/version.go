package install

import (
	"context"
	"strings"

	"pkgscout/internal/executor"
)

// InstalledVersion queries the source's tool for the version currently
// installed. Best effort: an empty string means the version could not be
// determined, which callers record as unknown rather than an error.
func InstalledVersion(ctx context.Context, x *executor.Executor, name, src string) string {
	switch src {
	case "pacman", "aur":
		// "firefox 128.0-1"
		out, err := x.OutputQuiet(ctx, "pacman", "-Q", name)
		if err != nil {
			return ""
		}
		fields := strings.Fields(out)
		if len(fields) < 2 {
			return ""
		}
		return fields[1]

	case "apt":
		out, err := x.OutputQuiet(ctx, "dpkg-query", "-W", "-f=${Version}", name)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)

	case "dnf", "zypper":
		out, err := x.OutputQuiet(ctx, "rpm", "-q", "--qf", "%{VERSION}-%{RELEASE}", name)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)

	case "flatpak":
		out, err := x.OutputQuiet(ctx, "flatpak", "info", name)
		if err != nil {
			return ""
		}
		return infoFieldValue(out, "Version")

	case "snap":
		out, err := x.OutputQuiet(ctx, "snap", "list", name)
		if err != nil {
			return ""
		}
		return snapListVersion(out)
	}
	return ""
}

// AvailableVersion queries the source's tool for the version it currently
// advertises, as opposed to what is installed. Same best-effort contract as
// InstalledVersion. The AUR is not covered here; its RPC client answers
// version queries directly.
func AvailableVersion(ctx context.Context, x *executor.Executor, name, src string) string {
	switch src {
	case "pacman":
		out, err := x.OutputQuiet(ctx, "pacman", "-Si", name)
		if err != nil {
			return ""
		}
		return infoFieldValue(out, "Version")

	case "apt":
		out, err := x.OutputQuiet(ctx, "apt-cache", "policy", name)
		if err != nil {
			return ""
		}
		v := infoFieldValue(out, "Candidate")
		if v == "(none)" {
			return ""
		}
		return v

	case "dnf":
		out, err := x.OutputQuiet(ctx, "dnf", "info", name)
		if err != nil {
			return ""
		}
		version := infoFieldValue(out, "Version")
		if version == "" {
			return ""
		}
		if release := infoFieldValue(out, "Release"); release != "" {
			return version + "-" + release
		}
		return version

	case "zypper":
		out, err := x.OutputQuiet(ctx, "zypper", "info", name)
		if err != nil {
			return ""
		}
		return infoFieldValue(out, "Version")

	case "flatpak":
		out, err := x.OutputQuiet(ctx, "flatpak", "remote-info", "--cached", "flathub", name)
		if err != nil {
			return ""
		}
		return infoFieldValue(out, "Version")

	case "snap":
		out, err := x.OutputQuiet(ctx, "snap", "info", name)
		if err != nil {
			return ""
		}
		return snapChannelVersion(out, "latest/stable")
	}
	return ""
}

// infoFieldValue scans "Field : value" styled tool output and returns the
// value for the named field, or the empty string.
func infoFieldValue(output, field string) string {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.TrimSpace(parts[0]) == field {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}

// snapListVersion extracts the version column from snap list output: a
// header row, then "name version rev tracking publisher notes".
func snapListVersion(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return ""
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// snapChannelVersion extracts the version listed for a channel in snap info
// output, e.g. "latest/stable:  129.0-1  2024-08-01 (4539) 270MB -".
func snapChannelVersion(output, channel string) string {
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && strings.TrimSuffix(fields[0], ":") == channel {
			return fields[1]
		}
	}
	return ""
}
