package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogValidates(t *testing.T) {
	_, err := NewCatalog([]Definition{
		{ID: "dup", MaxProgress: 1, XP: 10},
		{ID: "dup", MaxProgress: 2, XP: 10},
	})
	assert.ErrorContains(t, err, "duplicate achievement id")

	_, err = NewCatalog([]Definition{{ID: "zero-target", MaxProgress: 0, XP: 10}})
	assert.ErrorContains(t, err, "maxProgress must be >= 1")

	_, err = NewCatalog([]Definition{{ID: "neg-xp", MaxProgress: 1, XP: -5}})
	assert.ErrorContains(t, err, "xp must not be negative")

	_, err = NewCatalog([]Definition{{MaxProgress: 1}})
	assert.ErrorContains(t, err, "empty id")
}

func TestCatalogLookup(t *testing.T) {
	c, err := NewCatalog([]Definition{
		{ID: "ice-breaker", Category: CategoryCommunity, MaxProgress: 1, XP: 15},
	})
	require.NoError(t, err)

	def, ok := c.Lookup("ice-breaker")
	assert.True(t, ok)
	assert.Equal(t, 15, def.XP)

	_, ok = c.Lookup("does-not-exist")
	assert.False(t, ok)
}

func TestBuiltinCatalogIsValid(t *testing.T) {
	c, err := NewCatalog(Builtin())
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 40)

	// Spot-check a definition the frontend depends on.
	def, ok := c.Lookup("ice-breaker")
	require.True(t, ok)
	assert.Equal(t, CategoryCommunity, def.Category)
	assert.Equal(t, 1, def.MaxProgress)
	assert.NotEmpty(t, def.TitleAr)
}

func TestLevelFormula(t *testing.T) {
	assert.Equal(t, 1, Level(0))
	assert.Equal(t, 1, Level(30))
	assert.Equal(t, 1, Level(999))
	assert.Equal(t, 2, Level(1000))
	assert.Equal(t, 3, Level(2500))
}
