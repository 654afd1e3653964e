package rank

import (
	"testing"

	"pkgscout/pkg/source"
)

func TestRank_EmptyInput(t *testing.T) {
	e := New(DefaultPolicy())

	if out := e.Rank("firefox", nil, Options{}); len(out) != 0 {
		t.Errorf("expected empty output for nil input, got %v", out)
	}
	if out := e.Rank("firefox", []source.Record{}, Options{}); len(out) != 0 {
		t.Errorf("expected empty output for empty input, got %v", out)
	}
}

func TestRank_ExactMatchScore(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "htop", Description: "", Source: "pacman"},
	}

	out := e.Rank("htop", records, Options{})
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}

	// exact 150 + token overlap 8 + name prefix 4 + native tier 40
	if out[0].Score != 202 {
		t.Errorf("Score = %d, expected 202 under the default policy", out[0].Score)
	}
}

func TestRank_FirefoxDedupScenario(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "firefox", Description: "web browser", Source: "pacman"},
		{Name: "firefox-esr", Description: "extended support release", Source: "pacman"},
		{Name: "firefox", Description: "container app", Source: "flatpak"},
	}

	out := e.Rank("firefox", records, Options{})

	firefoxCount := 0
	for _, c := range out {
		if c.Record.Name == "firefox" {
			firefoxCount++
			if c.Record.Source != "pacman" {
				t.Errorf("dedup kept %q, expected the pacman record", c.Record.Source)
			}
		}
	}
	if firefoxCount != 1 {
		t.Fatalf("expected exactly one firefox record, got %d", firefoxCount)
	}

	if len(out) < 2 {
		t.Fatalf("expected firefox-esr to survive separately, got %v", out)
	}
	if out[0].Record.Name != "firefox" || out[1].Record.Name != "firefox-esr" {
		t.Errorf("order = [%s %s], expected exact match first", out[0].Record.Name, out[1].Record.Name)
	}
	if out[0].Score <= out[1].Score {
		t.Errorf("exact match score %d should beat substring score %d", out[0].Score, out[1].Score)
	}
}

func TestRank_TokenAndBinBonusScenario(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{
			Name:        "visual-studio-code-bin",
			Description: "Editor for building and debugging applications",
			Source:      "aur",
		},
	}

	// No exact or substring match is possible against the spaced query;
	// token coverage plus the -bin bonus must still produce a ranked hit.
	out := e.Rank("visual studio code", records, Options{})
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	if out[0].Score <= 0 {
		t.Errorf("Score = %d, expected positive", out[0].Score)
	}
}

func TestRank_VariantMatchBeatsPartialMatch(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "code", Description: "Visual Studio Code editor, open source build", Source: "pacman"},
		{Name: "visual-studio-code", Description: "", Source: "aur"},
	}

	out := e.Rank("visual studio code", records, Options{})
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].Record.Name != "visual-studio-code" {
		t.Errorf("first = %q, expected the hyphen-joined variant match to lead", out[0].Record.Name)
	}
}

func TestRank_JunkNeverRanked(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "papirus", Description: "Material design icon pack", Source: "pacman"},
		{Name: "papirus-git", Description: "development snapshot", Source: "aur"},
	}

	// The first record would score an exact match; the junk filter runs
	// before scoring, so it never occupies a slot.
	out := e.Rank("papirus", records, Options{})
	for _, c := range out {
		if c.Record.Name == "papirus" {
			t.Errorf("junk record ranked: %+v", c)
		}
	}
	if len(out) != 1 || out[0].Record.Name != "papirus-git" {
		t.Errorf("expected only papirus-git, got %v", out)
	}
}

func TestRank_PenaltiesPushBelowCutoff(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "weather-gui", Description: "weather in your terminal", Source: "pacman"},
		{Name: "forecast-daemon", Description: "weather data daemon helper plugin", Source: "snap"},
	}

	out := e.Rank("weather", records, Options{})
	for _, c := range out {
		if c.Record.Name == "forecast-daemon" {
			t.Errorf("penalized record should fall under the zero cutoff, got score %d", c.Score)
		}
	}
	if len(out) != 1 || out[0].Record.Name != "weather-gui" {
		t.Errorf("expected only weather-gui, got %v", out)
	}
}

func TestRank_LimitAndDefault(t *testing.T) {
	e := New(DefaultPolicy())

	var records []source.Record
	names := []string{"tmux", "tmuxp", "tmux-git", "tmuxinator", "tmux-plugins", "tmux-top", "tmux-extra"}
	for _, name := range names {
		records = append(records, source.Record{Name: name, Source: "pacman"})
	}

	if out := e.Rank("tmux", records, Options{}); len(out) != DefaultLimit {
		t.Errorf("default limit: got %d candidates, expected %d", len(out), DefaultLimit)
	}
	if out := e.Rank("tmux", records, Options{Limit: 3}); len(out) != 3 {
		t.Errorf("Limit 3: got %d candidates", len(out))
	}
	if out := e.Rank("tmux", records, Options{Limit: 50}); len(out) != len(names) {
		t.Errorf("Limit 50: got %d candidates, expected all %d", len(out), len(names))
	}
}

func TestRank_StableTieOrder(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "alpha-tool", Source: "pacman"},
		{Name: "gamma-tool", Source: "pacman"},
	}

	out := e.Rank("tool", records, Options{})
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].Score != out[1].Score {
		t.Fatalf("expected a tie, got %d and %d", out[0].Score, out[1].Score)
	}
	if out[0].Record.Name != "alpha-tool" {
		t.Errorf("tie broke discovery order: first = %q", out[0].Record.Name)
	}
}

func TestScore_MatchesRankPipeline(t *testing.T) {
	e := New(DefaultPolicy())

	if got := e.Score("htop", source.Record{Name: "htop", Source: "pacman"}); got != 202 {
		t.Errorf("Score = %d, expected 202 under the default policy", got)
	}
	if got := e.Score("   ", source.Record{Name: "htop", Source: "pacman"}); got != 0 {
		t.Errorf("blank query: Score = %d, expected 0", got)
	}

	records := []source.Record{
		{Name: "visual-studio-code", Source: "aur"},
		{Name: "code", Description: "Visual Studio Code editor, open source build", Source: "pacman"},
	}
	out := e.Rank("Visual Studio Code", records, Options{})
	if len(out) == 0 {
		t.Fatal("expected ranked candidates")
	}
	for _, c := range out {
		if got := e.Score("Visual Studio Code", c.Record); got != c.Score {
			t.Errorf("Score(%q) = %d, Rank scored %d", c.Record.Name, got, c.Score)
		}
	}
}

func TestFilterJunk_DescriptionOnly(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "icon-browser", Description: "Browse application artwork", Source: "pacman"},
		{Name: "gtk-theme-pack", Description: "Icon and cursor collection", Source: "pacman"},
	}

	kept := e.FilterJunk(records)
	if len(kept) != 1 {
		t.Fatalf("expected 1 survivor, got %d: %v", len(kept), kept)
	}
	// Junk keywords in the name alone do not disqualify a record.
	if kept[0].Name != "icon-browser" {
		t.Errorf("kept = %q, expected icon-browser", kept[0].Name)
	}
}

func TestDedup_NativeWinsByDefault(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "firefox", Source: "flatpak"},
		{Name: "firefox", Source: "aur"},
		{Name: "firefox", Source: "pacman"},
	}

	out := e.Dedup(records, false)
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].Source != "pacman" {
		t.Errorf("Source = %q, expected pacman", out[0].Source)
	}
}

func TestDedup_PreferAUR(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "yay", Source: "pacman"},
		{Name: "yay", Source: "aur"},
	}

	out := e.Dedup(records, true)
	if len(out) != 1 || out[0].Source != "aur" {
		t.Errorf("expected the AUR member to win under preferAUR, got %v", out)
	}

	// Without an AUR member the native precedence still applies.
	records = []source.Record{
		{Name: "htop", Source: "snap"},
		{Name: "htop", Source: "apt"},
	}
	out = e.Dedup(records, true)
	if len(out) != 1 || out[0].Source != "apt" {
		t.Errorf("expected the native member, got %v", out)
	}
}

func TestDedup_FirstSeenFallback(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "spotify", Source: "flatpak"},
		{Name: "spotify", Source: "snap"},
	}

	out := e.Dedup(records, false)
	if len(out) != 1 || out[0].Source != "flatpak" {
		t.Errorf("expected first-seen member, got %v", out)
	}

	// Two native members: the first seen stands.
	records = []source.Record{
		{Name: "curl", Source: "apt"},
		{Name: "curl", Source: "dnf"},
	}
	out = e.Dedup(records, false)
	if len(out) != 1 || out[0].Source != "apt" {
		t.Errorf("expected first native member, got %v", out)
	}
}

func TestDedup_CaseSensitiveNames(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "MozillaFirefox", Source: "zypper"},
		{Name: "mozillafirefox", Source: "aur"},
	}

	out := e.Dedup(records, false)
	if len(out) != 2 {
		t.Errorf("differently-cased names are distinct, got %v", out)
	}
}

func TestDedup_PreservesGroupOrder(t *testing.T) {
	e := New(DefaultPolicy())
	records := []source.Record{
		{Name: "b-pkg", Source: "flatpak"},
		{Name: "a-pkg", Source: "snap"},
		{Name: "b-pkg", Source: "pacman"},
	}

	out := e.Dedup(records, false)
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].Name != "b-pkg" || out[1].Name != "a-pkg" {
		t.Errorf("order = [%s %s], expected first-appearance order", out[0].Name, out[1].Name)
	}
	if out[0].Source != "pacman" {
		t.Errorf("representative = %q, expected pacman", out[0].Source)
	}
}
