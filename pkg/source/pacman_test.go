package source

import "testing"

func TestPacmanParseSearchOutput(t *testing.T) {
	output := `extra/firefox 128.0-1
    Fast, Private & Safe Web Browser
extra/firefox-developer-edition 129.0b9-1
    Developer Edition of the popular Firefox web browser
extra/firefox-i18n-de 128.0-1
    German language pack for Firefox`

	p := NewPacman()
	results := p.parseSearchOutput(output)

	if len(results) != 3 {
		t.Fatalf("expected 3 records, got %d: %v", len(results), results)
	}

	if results[0].Name != "firefox" {
		t.Errorf("Name = %q, expected firefox", results[0].Name)
	}
	if results[0].Description != "Fast, Private & Safe Web Browser" {
		t.Errorf("Description = %q", results[0].Description)
	}
	if results[0].Source != "pacman" {
		t.Errorf("Source = %q, expected pacman", results[0].Source)
	}

	if results[1].Name != "firefox-developer-edition" {
		t.Errorf("Name = %q, expected firefox-developer-edition", results[1].Name)
	}
}

func TestPacmanParseSearchOutput_InstalledMarker(t *testing.T) {
	output := `extra/vim 9.1.0-1 [installed]
    Vi Improved, a highly configurable, improved version of the vi text editor`

	p := NewPacman()
	results := p.parseSearchOutput(output)

	if len(results) != 1 {
		t.Fatalf("expected 1 record, got %d", len(results))
	}
	if results[0].Name != "vim" {
		t.Errorf("Name = %q, expected vim", results[0].Name)
	}
}

func TestPacmanParseSearchOutput_MissingDescription(t *testing.T) {
	output := `extra/firefox 128.0-1
extra/chromium 126.0-2
    A web browser built for speed`

	p := NewPacman()
	results := p.parseSearchOutput(output)

	if len(results) != 2 {
		t.Fatalf("expected 2 records, got %d", len(results))
	}
	if results[0].Description != "" {
		t.Errorf("expected empty description, got %q", results[0].Description)
	}
	if results[1].Description != "A web browser built for speed" {
		t.Errorf("Description = %q", results[1].Description)
	}
}

func TestPacmanParseSearchOutput_Empty(t *testing.T) {
	p := NewPacman()
	if results := p.parseSearchOutput(""); len(results) != 0 {
		t.Errorf("expected no records, got %v", results)
	}
}

func TestPacmanTier(t *testing.T) {
	p := NewPacman()
	if p.Tier() != TierNative {
		t.Errorf("Tier = %v, expected TierNative", p.Tier())
	}
	if p.Name() != "pacman" {
		t.Errorf("Name = %q", p.Name())
	}
}
