package source

import (
	"strings"
	"testing"
)

func TestFlatpakParseSearchOutput(t *testing.T) {
	output := strings.Join([]string{
		"Name\tDescription\tApplication ID\tVersion\tBranch\tRemotes",
		"Firefox\tFast, Private & Safe Web Browser\torg.mozilla.firefox\t128.0\tstable\tflathub",
		"Thunderbird\tEmail, RSS and newsgroup client\torg.mozilla.Thunderbird\t115.13.0\tstable\tflathub",
	}, "\n")

	f := NewFlatpak()
	results := f.parseSearchOutput(output)

	if len(results) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(results), results)
	}

	// The application ID is what "flatpak install" needs, so it is the
	// record name; the human name folds into the description.
	if results[0].Name != "org.mozilla.firefox" {
		t.Errorf("Name = %q, expected org.mozilla.firefox", results[0].Name)
	}
	if results[0].Description != "Firefox - Fast, Private & Safe Web Browser" {
		t.Errorf("Description = %q", results[0].Description)
	}
	if results[0].Source != "flatpak" {
		t.Errorf("Source = %q, expected flatpak", results[0].Source)
	}
}

func TestFlatpakParseSearchOutput_SkipsRowsWithoutAppID(t *testing.T) {
	output := strings.Join([]string{
		"Name\tDescription\tApplication ID\tVersion\tBranch\tRemotes",
		"Broken\tRow missing its ID\t\t1.0\tstable\tflathub",
		"GIMP\tCreate images and edit photographs\torg.gimp.GIMP\t2.10\tstable\tflathub",
	}, "\n")

	f := NewFlatpak()
	results := f.parseSearchOutput(output)

	if len(results) != 1 {
		t.Fatalf("expected 1 record, got %d: %v", len(results), results)
	}
	if results[0].Name != "org.gimp.GIMP" {
		t.Errorf("Name = %q, expected org.gimp.GIMP", results[0].Name)
	}
}

func TestFlatpakParseSearchOutput_Empty(t *testing.T) {
	f := NewFlatpak()
	if results := f.parseSearchOutput(""); len(results) != 0 {
		t.Errorf("expected no records, got %v", results)
	}
}
