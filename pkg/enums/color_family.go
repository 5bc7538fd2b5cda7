package enums

import "fmt"

// ColorFamily buckets hair-dye shades the way the storefront groups them:
// claros (light), medios (medium), escuros (dark), especiais (fashion shades).
type ColorFamily string

const (
	ColorFamilyClaros    ColorFamily = "claros"
	ColorFamilyMedios    ColorFamily = "medios"
	ColorFamilyEscuros   ColorFamily = "escuros"
	ColorFamilyEspeciais ColorFamily = "especiais"
)

var validColorFamilies = []ColorFamily{
	ColorFamilyClaros,
	ColorFamilyMedios,
	ColorFamilyEscuros,
	ColorFamilyEspeciais,
}

// String implements fmt.Stringer.
func (f ColorFamily) String() string {
	return string(f)
}

// IsValid reports whether the value is a known ColorFamily.
func (f ColorFamily) IsValid() bool {
	for _, candidate := range validColorFamilies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseColorFamily converts raw input into a ColorFamily.
func ParseColorFamily(value string) (ColorFamily, error) {
	for _, candidate := range validColorFamilies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid color family %q", value)
}
