package featureflags

import (
	"strconv"
	"testing"
)

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	if !m.Enabled("a", "1") || !m.Enabled("c", "1") || !m.Enabled("e", "1") {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("b", "1") || m.Enabled("d", "1") || m.Enabled("f", "1") {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	if !m.Enabled("always", "1") {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never", "1") {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.Enabled("canary", "42")
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", "42"); got != first {
			t.Fatal("rollout evaluation must be deterministic per viewer")
		}
	}

	if m.Enabled("canary", "") {
		t.Fatal("percentage rollout requires a signed-in viewer")
	}
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,x=on, y = 20% ,z=off ")

	raw := m.Raw()
	if len(raw) != 3 {
		t.Fatalf("expected 3 parsed flags, got %d", len(raw))
	}
	if raw["x"] != "on" || raw["y"] != "20%" || raw["z"] != "off" {
		t.Fatalf("unexpected raw flags: %#v", raw)
	}

	snap := m.Snapshot("123")
	if len(snap) != 3 {
		t.Fatalf("expected snapshot size 3, got %d", len(snap))
	}
}

func TestEnabled_RolloutSplitsViewers(t *testing.T) {
	m := NewManager(LegacyFeedOrder + "=50%")

	enabled := 0
	for i := 0; i < 1000; i++ {
		if m.Enabled(LegacyFeedOrder, "viewer-"+strconv.Itoa(i)) {
			enabled++
		}
	}
	if enabled < 350 || enabled > 650 {
		t.Fatalf("expected roughly half of viewers enabled, got %d/1000", enabled)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	if m.Enabled(LegacyFeedOrder, "1") {
		t.Fatal("nil manager must report every flag disabled")
	}
	if len(m.Raw()) != 0 {
		t.Fatal("nil manager has no raw flags")
	}
}
