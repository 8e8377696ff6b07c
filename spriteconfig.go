package moleman

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// SpriteCoord is a (tileX, tileY) coordinate into a sprite sheet,
// addressing one tile of the sheet's grid.
type SpriteCoord struct {
	TileX int `json:"x"`
	TileY int `json:"y"`
}

// SpriteConfig maps adjacency masks to candidate sprite-sheet
// coordinates and persists that mapping to a sidecar JSON file next to
// the sheet it describes.
//
// The store is shared between the renderer (reads) and the config
// editor (writes), so every accessor takes the store's lock for the
// duration of a single call. Mutations persist write-through: the
// on-disk file never lags memory by more than one mutation. A failed
// persist is reported to the caller but leaves the in-memory mapping
// authoritative; lookups keep working.
type SpriteConfig struct {
	mu         sync.Mutex
	path       string
	tileWidth  int
	tileHeight int
	candidates map[Orientation][]SpriteCoord
	generation uint64
}

// SpriteConfigPath returns the sidecar config path for a sprite sheet:
// the sheet path with a ".tileset.json" suffix.
func SpriteConfigPath(sheetPath string) string {
	return sheetPath + ".tileset.json"
}

// jsonSpriteConfig is the persisted form of a SpriteConfig.
type jsonSpriteConfig struct {
	TileWidth  int                      `json:"tileWidth"`
	TileHeight int                      `json:"tileHeight"`
	Masks      map[string][]SpriteCoord `json:"masks"`
}

// LoadSpriteConfig loads the mapping persisted at path, or returns an
// empty store bound to that path. A missing file is the expected
// first-run state and a corrupt one is recoverable, so neither is an
// error; both log a warning in debug mode. tileWidth and tileHeight
// are the per-tile pixel dimensions the config is authored against,
// used when the file does not record its own.
func LoadSpriteConfig(path string, tileWidth, tileHeight int) *SpriteConfig {
	c := &SpriteConfig{
		path:       path,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		candidates: make(map[Orientation][]SpriteCoord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			debugf("sprite config %s unreadable, starting empty: %v", path, err)
		}
		return c
	}

	var record jsonSpriteConfig
	if err := json.Unmarshal(data, &record); err != nil {
		debugf("sprite config %s corrupt, starting empty: %v", path, err)
		return c
	}

	if record.TileWidth > 0 {
		c.tileWidth = record.TileWidth
	}
	if record.TileHeight > 0 {
		c.tileHeight = record.TileHeight
	}
	for key, coords := range record.Masks {
		mask, err := ParseOrientationKey(key)
		if err != nil {
			debugf("sprite config %s: skipping entry: %v", path, err)
			continue
		}
		c.candidates[mask] = append([]SpriteCoord(nil), coords...)
	}
	return c
}

// Path returns the sidecar file path the store persists to.
func (c *SpriteConfig) Path() string { return c.path }

// TileWidth returns the per-tile pixel width the config is bound to.
// Immutable after load, so no lock is needed.
func (c *SpriteConfig) TileWidth() int { return c.tileWidth }

// TileHeight returns the per-tile pixel height the config is bound to.
func (c *SpriteConfig) TileHeight() int { return c.tileHeight }

// Lookup returns the sprite coordinate configured for the exact mask.
// When several candidates are configured the first one wins; the
// tie-break is deterministic so identical occupancy always renders
// identically within a run. The second result is false when the mask
// has no candidates at all.
func (c *SpriteConfig) Lookup(mask Orientation) (SpriteCoord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.candidates[mask]
	if len(list) == 0 {
		return SpriteCoord{}, false
	}
	return list[0], true
}

// Candidates returns a copy of the candidate list for the mask, in
// configuration order. The copy may be retained or mutated freely.
func (c *SpriteConfig) Candidates(mask Orientation) []SpriteCoord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]SpriteCoord(nil), c.candidates[mask]...)
}

// Masks returns every mask with at least one candidate, ascending.
func (c *SpriteConfig) Masks() []Orientation {
	c.mu.Lock()
	defer c.mu.Unlock()

	masks := make([]Orientation, 0, len(c.candidates))
	for mask, list := range c.candidates {
		if len(list) > 0 {
			masks = append(masks, mask)
		}
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })
	return masks
}

// Generation returns a counter that increases on every mutation.
// Consumers compare it against a remembered value to decide whether a
// rebuild is due.
func (c *SpriteConfig) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// AddCandidate appends a coordinate to the mask's candidate list and
// persists the store. Adding a coordinate the mask already has is a
// no-op. A persist failure is returned for the editor to surface; the
// in-memory mapping keeps the new candidate either way.
func (c *SpriteConfig) AddCandidate(mask Orientation, coord SpriteCoord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.candidates[mask] {
		if existing == coord {
			return nil
		}
	}
	c.candidates[mask] = append(c.candidates[mask], coord)
	c.generation++
	return c.persistLocked()
}

// Persist serializes the full mapping to the bound path. Mutating
// operations call this automatically; it is exported for callers that
// want to force a rewrite (e.g. after a reported persist failure).
func (c *SpriteConfig) Persist() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked()
}

func (c *SpriteConfig) persistLocked() error {
	record := jsonSpriteConfig{
		TileWidth:  c.tileWidth,
		TileHeight: c.tileHeight,
		Masks:      make(map[string][]SpriteCoord, len(c.candidates)),
	}
	for mask, coords := range c.candidates {
		if len(coords) == 0 {
			continue
		}
		record.Masks[mask.Key()] = coords
	}

	data, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return fmt.Errorf("moleman: encode sprite config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("moleman: persist sprite config: %w", err)
	}
	return nil
}
