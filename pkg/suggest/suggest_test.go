package suggest

import (
	"sort"
	"strings"
	"testing"
)

func TestNameFor(t *testing.T) {
	entry := Entry{
		Canonical: "vscode",
		Sources:   map[string]string{"aur": "visual-studio-code-bin", "apt": "code"},
	}

	if got := entry.NameFor("aur"); got != "visual-studio-code-bin" {
		t.Errorf("NameFor(aur) = %q", got)
	}
	if got := entry.NameFor("apt"); got != "code" {
		t.Errorf("NameFor(apt) = %q", got)
	}
	if got := entry.NameFor("zypper"); got != "vscode" {
		t.Errorf("NameFor(zypper) = %q, expected the canonical name", got)
	}

	bare := Entry{Canonical: "htop"}
	if got := bare.NameFor("flatpak"); got != "htop" {
		t.Errorf("NameFor on entry without overrides = %q", got)
	}
}

func TestByPurpose_CategoryName(t *testing.T) {
	entries := Default().ByPurpose("browser")

	if len(entries) == 0 {
		t.Fatal("expected browser entries")
	}
	if entries[0].Canonical != "firefox" {
		t.Errorf("first entry = %q, expected firefox", entries[0].Canonical)
	}
	for _, e := range entries {
		if e.Category != "browser" {
			t.Errorf("entry %q has category %q", e.Canonical, e.Category)
		}
	}
}

func TestByPurpose_FreeFormPhrase(t *testing.T) {
	entries := Default().ByPurpose("I want to edit videos")

	if len(entries) == 0 {
		t.Fatal("expected video entries")
	}
	if entries[0].Canonical != "kdenlive" {
		t.Errorf("first entry = %q, expected kdenlive", entries[0].Canonical)
	}
	for _, e := range entries {
		if e.Category != "video" {
			t.Errorf("entry %q has category %q", e.Canonical, e.Category)
		}
	}
}

func TestByPurpose_MultipleCategories(t *testing.T) {
	entries := Default().ByPurpose("photo editor")

	if len(entries) == 0 {
		t.Fatal("expected entries")
	}
	if entries[0].Category != "graphics" {
		t.Errorf("first category = %q, expected graphics from the leading token", entries[0].Category)
	}

	sawEditor := false
	for _, e := range entries {
		if e.Category == "editor" {
			sawEditor = true
		}
	}
	if !sawEditor {
		t.Error("expected editor entries after the graphics entries")
	}
}

func TestByPurpose_Unknown(t *testing.T) {
	if entries := Default().ByPurpose("quantum flux capacitor"); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
	if entries := Default().ByPurpose(""); len(entries) != 0 {
		t.Errorf("expected no entries for empty purpose, got %d", len(entries))
	}
}

func TestCategories(t *testing.T) {
	cats := Default().Categories()

	if !sort.StringsAreSorted(cats) {
		t.Errorf("categories not sorted: %v", cats)
	}
	for _, want := range []string{"browser", "editor", "video", "terminal"} {
		found := false
		for _, c := range cats {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Errorf("category %q missing from %v", want, cats)
		}
	}
}

func TestAlternates_TokenHits(t *testing.T) {
	got := Default().Alternates("code helper")

	want := []string{"vscode", "code", "code-helper", "codehelper"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Alternates = %v, want %v", got, want)
	}
}

func TestAlternates_CapAtFive(t *testing.T) {
	got := Default().Alternates("visual studio code")

	if len(got) != maxAlternates {
		t.Fatalf("len = %d, want %d: %v", len(got), maxAlternates, got)
	}
	if got[len(got)-1] != "visual-studio-code" {
		t.Errorf("last alternate = %q, expected the hyphen variant", got[len(got)-1])
	}
}

func TestAlternates_HyphenQuery(t *testing.T) {
	got := Default().Alternates("fuzzy-finder")

	want := []string{"fuzzy", "fuzzy finder"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Alternates = %v, want %v", got, want)
	}
}

func TestAlternates_NeverProposesTheQuery(t *testing.T) {
	for _, alt := range Default().Alternates("firefox") {
		if alt == "firefox" {
			t.Error("proposed the original query back")
		}
	}
}

func TestAlternates_ShortTokensIgnored(t *testing.T) {
	for _, alt := range Default().Alternates("go ide") {
		if alt == "google-chrome" {
			t.Error("two-letter token matched catalog entries")
		}
	}
}

func TestAlternates_Empty(t *testing.T) {
	if got := Default().Alternates(""); len(got) != 0 {
		t.Errorf("expected no alternates, got %v", got)
	}
	if got := Default().Alternates("   "); len(got) != 0 {
		t.Errorf("expected no alternates for blank query, got %v", got)
	}
}
