package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Wella", "wella"},
		{"L'Oréal Paris", "l-or-al-paris"},
		{"Forever Liss", "forever-liss"},
		{"  Salon Line  ", "salon-line"},
		{"100% Pro!!", "100-pro"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
