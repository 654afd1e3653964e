package source

import "testing"

func TestNamesAndKnown(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("expected 7 sources, got %d: %v", len(names), names)
	}

	for _, name := range names {
		if !Known(name) {
			t.Errorf("Known(%q) = false, expected true", name)
		}
	}

	for _, name := range []string{"", "brew", "PACMAN", "yum"} {
		if Known(name) {
			t.Errorf("Known(%q) = true, expected false", name)
		}
	}
}

func TestTierOrdering(t *testing.T) {
	// Ranking depends on the numeric ordering of the tiers.
	if !(TierNative > TierCommunity && TierCommunity > TierContainer && TierContainer > TierStore) {
		t.Error("tier constants must order native > community > container > store")
	}
}

func TestTierOf(t *testing.T) {
	cases := map[string]Tier{
		"pacman":  TierNative,
		"apt":     TierNative,
		"dnf":     TierNative,
		"zypper":  TierNative,
		"aur":     TierCommunity,
		"flatpak": TierContainer,
		"snap":    TierStore,
		"unknown": TierStore,
	}

	for name, expected := range cases {
		if tier := TierOf(name); tier != expected {
			t.Errorf("TierOf(%q) = %v, expected %v", name, tier, expected)
		}
	}
}

func TestTierString(t *testing.T) {
	cases := map[Tier]string{
		TierNative:    "native",
		TierCommunity: "community",
		TierContainer: "container",
		TierStore:     "store",
		Tier(99):      "unknown",
	}

	for tier, expected := range cases {
		if s := tier.String(); s != expected {
			t.Errorf("Tier(%d).String() = %q, expected %q", tier, s, expected)
		}
	}
}
