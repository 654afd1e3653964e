package distro

import (
	"strings"
	"testing"
)

func TestParseOSRelease(t *testing.T) {
	content := `NAME="Ubuntu"
VERSION_ID="22.04"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 22.04.4 LTS"
HOME_URL="https://www.ubuntu.com/"`

	info, err := parseOSRelease(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parseOSRelease() error: %v", err)
	}

	if info.ID != "ubuntu" {
		t.Errorf("ID = %q, expected ubuntu", info.ID)
	}
	if len(info.IDLike) != 1 || info.IDLike[0] != "debian" {
		t.Errorf("IDLike = %v, expected [debian]", info.IDLike)
	}
	if info.VersionID != "22.04" {
		t.Errorf("VersionID = %q", info.VersionID)
	}
	if info.PrettyName != "Ubuntu 22.04.4 LTS" {
		t.Errorf("PrettyName = %q", info.PrettyName)
	}
	if info.Name != "Ubuntu" {
		t.Errorf("Name = %q", info.Name)
	}
}

func TestParseOSRelease_MultipleIDLike(t *testing.T) {
	content := `ID=linuxmint
ID_LIKE="ubuntu debian"`

	info, err := parseOSRelease(strings.NewReader(content))
	if err != nil {
		t.Fatalf("parseOSRelease() error: %v", err)
	}

	if len(info.IDLike) != 2 || info.IDLike[0] != "ubuntu" || info.IDLike[1] != "debian" {
		t.Errorf("IDLike = %v, expected [ubuntu debian]", info.IDLike)
	}
}

func TestFamily(t *testing.T) {
	tests := []struct {
		id       string
		idLike   []string
		expected Family
	}{
		{"arch", nil, FamilyArch},
		{"manjaro", []string{"arch"}, FamilyArch},
		{"ubuntu", []string{"debian"}, FamilyDebian},
		{"debian", nil, FamilyDebian},
		{"fedora", nil, FamilyFedora},
		{"rocky", []string{"rhel", "centos", "fedora"}, FamilyFedora},
		{"opensuse-tumbleweed", []string{"opensuse", "suse"}, FamilySuse},
		{"gentoo", nil, FamilyUnknown},
		{"", nil, FamilyUnknown},
		// Unmapped ID resolved through its ID_LIKE chain.
		{"crunchbang", []string{"debian"}, FamilyDebian},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info := &Info{ID: tt.id, IDLike: tt.idLike}
			if f := info.Family(); f != tt.expected {
				t.Errorf("Family() = %v, want %v", f, tt.expected)
			}
		})
	}
}

func TestNativeSource(t *testing.T) {
	tests := []struct {
		family   Family
		expected string
	}{
		{FamilyArch, "pacman"},
		{FamilyDebian, "apt"},
		{FamilyFedora, "dnf"},
		{FamilySuse, "zypper"},
		{FamilyUnknown, ""},
	}

	for _, tt := range tests {
		if got := tt.family.NativeSource(); got != tt.expected {
			t.Errorf("NativeSource(%v) = %q, want %q", tt.family, got, tt.expected)
		}
	}
}

func TestSupportsAUR(t *testing.T) {
	if !FamilyArch.SupportsAUR() {
		t.Error("arch family should support the AUR")
	}
	for _, f := range []Family{FamilyDebian, FamilyFedora, FamilySuse, FamilyUnknown} {
		if f.SupportsAUR() {
			t.Errorf("%v should not support the AUR", f)
		}
	}
}

func TestSources(t *testing.T) {
	tests := []struct {
		family   Family
		expected []string
	}{
		{FamilyArch, []string{"pacman", "aur", "flatpak", "snap"}},
		{FamilyDebian, []string{"apt", "flatpak", "snap"}},
		{FamilyFedora, []string{"dnf", "flatpak", "snap"}},
		{FamilySuse, []string{"zypper", "flatpak", "snap"}},
		{FamilyUnknown, []string{"flatpak", "snap"}},
	}

	for _, tt := range tests {
		got := tt.family.Sources()
		if len(got) != len(tt.expected) {
			t.Errorf("Sources(%v) = %v, want %v", tt.family, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Sources(%v)[%d] = %q, want %q", tt.family, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestDetect(t *testing.T) {
	info, err := Detect()
	if err != nil {
		t.Fatalf("Detect() returned error: %v", err)
	}
	if info == nil {
		t.Fatal("Detect() returned nil")
	}
	if info.ID == "" {
		t.Error("Detect() returned empty ID")
	}
}
