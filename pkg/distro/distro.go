// Package distro identifies the running Linux distribution and maps it to
// the package sources worth searching there.
package distro

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Family is a normalized distribution family. It decides which native
// source adapter applies; the search core treats it as an opaque label.
type Family string

const (
	FamilyArch    Family = "arch"
	FamilyDebian  Family = "debian"
	FamilyFedora  Family = "fedora"
	FamilySuse    Family = "suse"
	FamilyUnknown Family = "unknown"
)

// Info contains information parsed from /etc/os-release.
type Info struct {
	ID         string   // Distribution ID (e.g., "ubuntu", "arch", "fedora")
	IDLike     []string // Related distributions
	VersionID  string   // Version number (e.g., "22.04", "39")
	PrettyName string   // Human-readable name
	Name       string   // Distribution name
}

// Family resolves the distribution family from the ID, falling back to the
// ID_LIKE chain for derivatives that are not mapped directly.
func (i *Info) Family() Family {
	if f, ok := familyByID[i.ID]; ok {
		return f
	}
	for _, like := range i.IDLike {
		if f, ok := familyByID[like]; ok {
			return f
		}
	}
	return FamilyUnknown
}

// NativeSource returns the family's native package source, or an empty
// string when none is known.
func (f Family) NativeSource() string {
	switch f {
	case FamilyArch:
		return "pacman"
	case FamilyDebian:
		return "apt"
	case FamilyFedora:
		return "dnf"
	case FamilySuse:
		return "zypper"
	}
	return ""
}

// SupportsAUR reports whether the AUR applies to this family.
func (f Family) SupportsAUR() bool {
	return f == FamilyArch
}

// Sources returns the source names to search on this family, native repos
// first, then the distro-independent ones. An unknown family still gets
// flatpak and snap.
func (f Family) Sources() []string {
	sources := make([]string, 0, 4)
	if native := f.NativeSource(); native != "" {
		sources = append(sources, native)
	}
	if f.SupportsAUR() {
		sources = append(sources, "aur")
	}
	return append(sources, "flatpak", "snap")
}

// familyByID maps distribution IDs (and ID_LIKE values) to families.
var familyByID = map[string]Family{
	// Arch family
	"arch":        FamilyArch,
	"manjaro":     FamilyArch,
	"endeavouros": FamilyArch,
	"arcolinux":   FamilyArch,
	"garuda":      FamilyArch,
	"artix":       FamilyArch,
	"cachyos":     FamilyArch,

	// Debian family
	"debian":     FamilyDebian,
	"ubuntu":     FamilyDebian,
	"linuxmint":  FamilyDebian,
	"pop":        FamilyDebian,
	"elementary": FamilyDebian,
	"zorin":      FamilyDebian,
	"kali":       FamilyDebian,
	"parrot":     FamilyDebian,
	"mx":         FamilyDebian,
	"raspbian":   FamilyDebian,

	// Red Hat family
	"fedora":    FamilyFedora,
	"rhel":      FamilyFedora,
	"centos":    FamilyFedora,
	"rocky":     FamilyFedora,
	"almalinux": FamilyFedora,
	"nobara":    FamilyFedora,

	// SUSE family
	"opensuse":            FamilySuse,
	"opensuse-leap":       FamilySuse,
	"opensuse-tumbleweed": FamilySuse,
	"sles":                FamilySuse,
}

// Detect identifies the distribution by reading /etc/os-release, falling
// back to distribution-specific release files.
func Detect() (*Info, error) {
	if info, err := detectOSRelease("/etc/os-release"); err == nil {
		return info, nil
	}

	if info, err := detectReleaseFiles(); err == nil {
		return info, nil
	}

	return &Info{ID: "unknown", PrettyName: "Unknown Linux"}, nil
}

func detectOSRelease(path string) (*Info, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseOSRelease(file)
}

// parseOSRelease parses os-release(5) formatted KEY=value lines.
func parseOSRelease(r io.Reader) (*Info, error) {
	info := &Info{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"")

		switch key {
		case "ID":
			info.ID = strings.ToLower(value)
		case "ID_LIKE":
			info.IDLike = strings.Fields(strings.ToLower(value))
		case "VERSION_ID":
			info.VersionID = value
		case "PRETTY_NAME":
			info.PrettyName = value
		case "NAME":
			info.Name = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return info, nil
}

// detectReleaseFiles checks distribution-specific release files.
func detectReleaseFiles() (*Info, error) {
	releaseFiles := []struct {
		path string
		id   string
		name string
	}{
		{"/etc/arch-release", "arch", "Arch Linux"},
		{"/etc/debian_version", "debian", "Debian GNU/Linux"},
		{"/etc/fedora-release", "fedora", "Fedora Linux"},
		{"/etc/centos-release", "centos", "CentOS Linux"},
		{"/etc/redhat-release", "rhel", "Red Hat Enterprise Linux"},
		{"/etc/SuSE-release", "opensuse", "openSUSE"},
	}

	for _, rf := range releaseFiles {
		if _, err := os.Stat(rf.path); err == nil {
			return &Info{ID: rf.id, PrettyName: rf.name}, nil
		}
	}

	return nil, os.ErrNotExist
}
