package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/jchairstudios/catalog-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?page=3", nil)

	got, err := ParseQueryInt(r, "page", 1, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = ParseQueryInt(r, "limit", 24, 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 24, got)

	r = httptest.NewRequest("GET", "/?page=abc", nil)
	_, err = ParseQueryInt(r, "page", 1, 1, 100)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	r = httptest.NewRequest("GET", "/?page=0", nil)
	_, err = ParseQueryInt(r, "page", 1, 1, 100)
	require.Error(t, err)
}

func TestParseQueryCSV(t *testing.T) {
	r := httptest.NewRequest("GET", "/?brands=L%27Or%C3%A9al,+Wella+,,Novex", nil)
	assert.Equal(t, []string{"L'Oréal", "Wella", "Novex"}, ParseQueryCSV(r, "brands"))

	r = httptest.NewRequest("GET", "/?brands=+,+", nil)
	assert.Nil(t, ParseQueryCSV(r, "brands"))

	r = httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, ParseQueryCSV(r, "brands"))
}

func TestParseQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/?featured=true&is_new=1&in_stock=no", nil)
	assert.True(t, ParseQueryBool(r, "featured"))
	assert.True(t, ParseQueryBool(r, "is_new"))
	assert.False(t, ParseQueryBool(r, "in_stock"))
	assert.False(t, ParseQueryBool(r, "missing"))
}

func TestParseQueryFloat(t *testing.T) {
	r := httptest.NewRequest("GET", "/?min_rating=4.5", nil)
	got, err := ParseQueryFloat(r, "min_rating", 0, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)

	r = httptest.NewRequest("GET", "/?min_rating=6", nil)
	_, err = ParseQueryFloat(r, "min_rating", 0, 0, 5)
	require.Error(t, err)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "coloração", SanitizeString("  coloração  ", 64))
	assert.Equal(t, "ab", SanitizeString("abcd", 2))
	assert.Equal(t, "abcd", SanitizeString("abcd", 0))
}
