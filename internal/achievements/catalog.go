package achievements

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryExplorer   Category = "EXPLORER"
	CategoryCommunity  Category = "COMMUNITY"
	CategoryScholar    Category = "SCHOLAR"
	CategoryAssistant  Category = "ASSISTANT"
	CategoryStudio     Category = "STUDIO"
	CategoryDedication Category = "DEDICATION"
)

// Definition is one row of the achievement catalog. Definitions are immutable
// for the life of the process; display strings are bilingual and carried
// through to the API untouched.
type Definition struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	MaxProgress   int      `json:"maxProgress"`
	XP            int      `json:"xp"`
	TitleEn       string   `json:"titleEn"`
	TitleAr       string   `json:"titleAr"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionAr string   `json:"descriptionAr"`
}

// Catalog is the validated, ordered achievement table, built once at startup.
type Catalog struct {
	defs []Definition
	byID map[string]int
}

// NewCatalog validates the definitions and builds the lookup table.
// Duplicate ids and non-positive targets are construction errors rather than
// runtime surprises.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs: make([]Definition, len(defs)),
		byID: make(map[string]int, len(defs)),
	}
	copy(c.defs, defs)

	for i, d := range c.defs {
		if d.ID == "" {
			return nil, fmt.Errorf("achievement at index %d has empty id", i)
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate achievement id %q", d.ID)
		}
		if d.MaxProgress < 1 {
			return nil, fmt.Errorf("achievement %q: maxProgress must be >= 1, got %d", d.ID, d.MaxProgress)
		}
		if d.XP < 0 {
			return nil, fmt.Errorf("achievement %q: xp must not be negative, got %d", d.ID, d.XP)
		}
		c.byID[d.ID] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog for compiled-in definition lists, where a bad
// table is a programming error.
func MustCatalog(defs []Definition) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the definition for id. The second return value reports
// whether the id exists; callers must treat false as a soft miss, never an
// error condition.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// All returns the definitions in catalog order. The slice is a copy.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Record mirrors one persisted per-achievement state row.
type Record struct {
	Progress   int        `json:"progress"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}
