package board

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tilematch/internal/core"
)

// ItemType is one kind of tile. Two items are the same kind when their IDs
// match; Name, Glyph, Color and Value are presentation and scoring data.
type ItemType struct {
	ID    string
	Name  string
	Glyph rune
	Color core.Color
	Value int
}

// Is reports whether t and other are the same kind of item.
func (t ItemType) Is(other ItemType) bool {
	return t.ID == other.ID
}

func (t ItemType) String() string {
	return t.ID
}

// Catalog supplies the item types a board is filled with.
type Catalog interface {
	// Items returns every item type. Never empty for a valid catalog.
	Items() []ItemType

	// Random draws one item type uniformly.
	Random() ItemType
}

// Rand is the random source a catalog draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// ItemCatalog is a fixed set of distinct item types with a uniform draw.
type ItemCatalog struct {
	items []ItemType
	rng   Rand
}

// NewCatalog validates items and returns a catalog drawing from rng.
func NewCatalog(items []ItemType, rng Rand) (*ItemCatalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, it.ID)
		}
		seen[it.ID] = true
	}
	if err := CheckValues(items); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("board: catalog needs a random source")
	}
	return &ItemCatalog{items: slices.Clone(items), rng: rng}, nil
}

// CheckValues reports the first item with a negative Value.
func CheckValues(items []ItemType) error {
	for _, it := range items {
		if it.Value < 0 {
			return fmt.Errorf("%w: %q is worth %d", ErrNegativeValue, it.ID, it.Value)
		}
	}
	return nil
}

// Items returns a copy of the catalog's item types.
func (c *ItemCatalog) Items() []ItemType {
	return slices.Clone(c.items)
}

// Random draws one item type uniformly.
func (c *ItemCatalog) Random() ItemType {
	return c.items[c.rng.IntN(len(c.items))]
}

// Lookup finds an item type by ID.
func (c *ItemCatalog) Lookup(id string) (ItemType, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return ItemType{}, false
}
