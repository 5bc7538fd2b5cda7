package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorFamily(t *testing.T) {
	for _, value := range []string{"claros", "medios", "escuros", "especiais"} {
		family, err := ParseColorFamily(value)
		require.NoError(t, err, value)
		assert.Equal(t, value, family.String())
		assert.True(t, family.IsValid())
	}
}

func TestParseColorFamilyRejectsUnknown(t *testing.T) {
	for _, value := range []string{"", "neon", "Claros", "tons-claros"} {
		_, err := ParseColorFamily(value)
		assert.Error(t, err, "value %q", value)
	}
	assert.False(t, ColorFamily("pastel").IsValid())
}
