package locations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-form/internal/itinerary"
	"github.com/pkordes/itinerary-form/internal/locations"
)

// compile-time check: Catalog is what the validator consumes.
var _ itinerary.LocationSet = (*locations.Catalog)(nil)

func TestNew_TrimsDedupesAndSorts(t *testing.T) {
	c := locations.New([]string{"Japan", " India ", "", "France", "India", "   "})

	assert.Equal(t, []string{"France", "India", "Japan"}, c.Names())
	assert.Equal(t, 3, c.Len())
}

func TestNew_OrderInsensitive(t *testing.T) {
	a := locations.New([]string{"India", "France", "Japan"})
	b := locations.New([]string{"Japan", "India", "France"})

	assert.Equal(t, a.Names(), b.Names())
}

func TestContains(t *testing.T) {
	c := locations.New([]string{"India", "New Zealand"})

	assert.True(t, c.Contains("India"))
	assert.True(t, c.Contains("New Zealand"))
	assert.False(t, c.Contains("india"))
	assert.False(t, c.Contains(""))
}

func TestNames_ReturnsCopy(t *testing.T) {
	c := locations.New([]string{"India", "France"})

	names := c.Names()
	names[0] = "Atlantis"

	assert.Equal(t, []string{"France", "India"}, c.Names())
}

func TestDefault_ContainsKnownCountries(t *testing.T) {
	c, err := locations.Default()

	require.NoError(t, err)
	assert.True(t, c.Contains("India"))
	assert.True(t, c.Contains("France"))
	assert.Greater(t, c.Len(), 10)
}

func TestParse_Empty(t *testing.T) {
	_, err := locations.Parse([]byte("locations: []\n"))

	assert.ErrorIs(t, err, locations.ErrEmpty)
}

func TestParse_Malformed(t *testing.T) {
	_, err := locations.Parse([]byte("locations: [unterminated\n"))

	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locations:\n  - Mars\n  - Venus\n  - Mars\n"), 0o600))

	c, err := locations.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Mars", "Venus"}, c.Names())
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	c, err := locations.Load("")

	require.NoError(t, err)
	assert.True(t, c.Contains("India"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := locations.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
