package moleman

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSpriteConfigPath_Suffix(t *testing.T) {
	got := SpriteConfigPath("assets/tileset.png")
	if got != "assets/tileset.png.tileset.json" {
		t.Errorf("SpriteConfigPath = %q, want sheet path + .tileset.json", got)
	}
}

func TestLoadSpriteConfig_MissingFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nothere.png.tileset.json")
	c := LoadSpriteConfig(path, 16, 16)

	if c.Path() != path {
		t.Errorf("Path = %q, want %q", c.Path(), path)
	}
	if c.TileWidth() != 16 || c.TileHeight() != 16 {
		t.Errorf("tile dims = %dx%d, want 16x16", c.TileWidth(), c.TileHeight())
	}
	if masks := c.Masks(); len(masks) != 0 {
		t.Errorf("fresh store has masks %v", masks)
	}
}

func TestLoadSpriteConfig_CorruptFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tileset.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := LoadSpriteConfig(path, 16, 16)
	if masks := c.Masks(); len(masks) != 0 {
		t.Errorf("store from corrupt file has masks %v", masks)
	}

	// The store is still bound to the path: a later mutation persists.
	if err := c.AddCandidate(North, SpriteCoord{TileX: 1, TileY: 2}); err != nil {
		t.Fatalf("AddCandidate after corrupt load: %v", err)
	}
	reloaded := LoadSpriteConfig(path, 16, 16)
	if _, ok := reloaded.Lookup(North); !ok {
		t.Error("persisted candidate missing after reload")
	}
}

func TestSpriteConfig_Lookup_EmptyMask_NoCandidate(t *testing.T) {
	c := LoadSpriteConfig(filepath.Join(t.TempDir(), "c.tileset.json"), 16, 16)

	if coord, ok := c.Lookup(OrientationNone); ok {
		t.Errorf("Lookup on empty store = (%v, true), want absence", coord)
	}
}

func TestSpriteConfig_Lookup_FirstCandidateWins(t *testing.T) {
	c := LoadSpriteConfig(filepath.Join(t.TempDir(), "c.tileset.json"), 16, 16)
	first := SpriteCoord{TileX: 2, TileY: 0}
	if err := c.AddCandidate(North, first); err != nil {
		t.Fatal(err)
	}
	if err := c.AddCandidate(North, SpriteCoord{TileX: 5, TileY: 5}); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		coord, ok := c.Lookup(North)
		if !ok {
			t.Fatal("Lookup = absence, want candidate")
		}
		if coord != first {
			t.Fatalf("Lookup = %v, want first candidate %v", coord, first)
		}
	}
}

func TestSpriteConfig_AddCandidate_Dedup(t *testing.T) {
	c := LoadSpriteConfig(filepath.Join(t.TempDir(), "c.tileset.json"), 16, 16)
	coord := SpriteCoord{TileX: 3, TileY: 1}

	if err := c.AddCandidate(East, coord); err != nil {
		t.Fatal(err)
	}
	gen := c.Generation()
	if err := c.AddCandidate(East, coord); err != nil {
		t.Fatal(err)
	}

	if got := c.Candidates(East); len(got) != 1 {
		t.Errorf("candidates = %v, want a single entry", got)
	}
	if c.Generation() != gen {
		t.Error("duplicate add bumped the generation")
	}
}

func TestSpriteConfig_Generation_IncreasesOnMutation(t *testing.T) {
	c := LoadSpriteConfig(filepath.Join(t.TempDir(), "c.tileset.json"), 16, 16)

	g0 := c.Generation()
	if err := c.AddCandidate(North, SpriteCoord{TileX: 0, TileY: 0}); err != nil {
		t.Fatal(err)
	}
	g1 := c.Generation()
	if g1 <= g0 {
		t.Errorf("generation %d -> %d, want strict increase", g0, g1)
	}
}

func TestSpriteConfig_PersistRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png.tileset.json")
	c := LoadSpriteConfig(path, 16, 8)

	entries := map[Orientation][]SpriteCoord{
		OrientationNone:  {{TileX: 0, TileY: 0}},
		North:            {{TileX: 1, TileY: 0}, {TileX: 1, TileY: 1}},
		North | NorthEast: {{TileX: 7, TileY: 3}},
		OrientationAll:   {{TileX: 4, TileY: 4}},
	}
	for mask, coords := range entries {
		for _, coord := range coords {
			if err := c.AddCandidate(mask, coord); err != nil {
				t.Fatalf("AddCandidate(%v, %v): %v", mask, coord, err)
			}
		}
	}

	reloaded := LoadSpriteConfig(path, 0, 0)
	if reloaded.TileWidth() != 16 || reloaded.TileHeight() != 8 {
		t.Errorf("reloaded tile dims = %dx%d, want 16x8", reloaded.TileWidth(), reloaded.TileHeight())
	}
	for mask, want := range entries {
		if got := reloaded.Candidates(mask); !reflect.DeepEqual(got, want) {
			t.Errorf("mask %v candidates = %v, want %v", mask, got, want)
		}
	}
	if got, want := reloaded.Masks(), c.Masks(); !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded masks = %v, want %v", got, want)
	}
}

func TestSpriteConfig_PersistFailure_MemoryStaysAuthoritative(t *testing.T) {
	// Binding the store to a path inside a missing directory makes
	// every persist fail without touching the in-memory mapping.
	path := filepath.Join(t.TempDir(), "missing-dir", "c.tileset.json")
	c := LoadSpriteConfig(path, 16, 16)

	coord := SpriteCoord{TileX: 2, TileY: 2}
	err := c.AddCandidate(South, coord)
	if err == nil {
		t.Fatal("AddCandidate into unwritable path = nil error, want error")
	}
	if !strings.Contains(err.Error(), "persist sprite config") {
		t.Errorf("error = %v, want persist context", err)
	}

	// Lookups keep serving the committed in-memory state.
	got, ok := c.Lookup(South)
	if !ok || got != coord {
		t.Errorf("Lookup after failed persist = (%v, %v), want (%v, true)", got, ok, coord)
	}
}

func TestSpriteConfig_Masks_Sorted(t *testing.T) {
	c := LoadSpriteConfig(filepath.Join(t.TempDir(), "c.tileset.json"), 16, 16)
	for _, mask := range []Orientation{OrientationAll, North, OrientationNone, West | SouthWest} {
		if err := c.AddCandidate(mask, SpriteCoord{}); err != nil {
			t.Fatal(err)
		}
	}

	masks := c.Masks()
	for i := 1; i < len(masks); i++ {
		if masks[i-1] >= masks[i] {
			t.Fatalf("Masks() not ascending: %v", masks)
		}
	}
	if len(masks) != 4 {
		t.Errorf("len(Masks()) = %d, want 4", len(masks))
	}
}

func TestLoadSpriteConfig_SkipsBadMaskKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.tileset.json")
	raw := `{
  "tileWidth": 16,
  "tileHeight": 16,
  "masks": {
    "1": [{"x": 1, "y": 0}],
    "not-a-mask": [{"x": 9, "y": 9}],
    "999": [{"x": 9, "y": 9}]
  }
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	c := LoadSpriteConfig(path, 16, 16)
	if masks := c.Masks(); len(masks) != 1 || masks[0] != North {
		t.Errorf("masks = %v, want [N]", masks)
	}
}
