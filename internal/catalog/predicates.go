package catalog

import (
	"strings"

	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

// The category predicate sets below are heuristic keyword classifiers over
// unstructured product text: case-insensitive substring containment only, no
// tokenization, no stemming. Within one facet group any selected value matches
// (OR); distinct groups narrow the set (AND). Products missing an optional
// field simply fail the predicates that need it.

func applyTintasFilters(products []Product, filters Filters) []Product {
	filtered := products

	if len(filters.HairColor) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			for _, raw := range filters.HairColor {
				color := strings.ToLower(raw)
				if strings.Contains(name, color) {
					return true
				}
				if p.ColorInfo != nil && strings.Contains(strings.ToLower(p.ColorInfo.Tone), color) {
					return true
				}
				if anyContains(p.Colors, color) || anyContains(p.Tags, color) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.ColorFamily) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			description := strings.ToLower(p.Description)
			for _, raw := range filters.ColorFamily {
				family, err := enums.ParseColorFamily(raw)
				if err != nil {
					// An unknown family value matches nothing.
					continue
				}
				switch family {
				case enums.ColorFamilyClaros:
					if strings.Contains(name, "loiro") || strings.Contains(name, "platinado") ||
						strings.Contains(name, "claro") || strings.Contains(description, "claro") {
						return true
					}
				case enums.ColorFamilyMedios:
					if strings.Contains(name, "castanho") || strings.Contains(name, "médio") ||
						strings.Contains(description, "médio") {
						return true
					}
				case enums.ColorFamilyEscuros:
					if strings.Contains(name, "preto") || strings.Contains(name, "chocolate") ||
						strings.Contains(name, "escuro") || strings.Contains(description, "escuro") {
						return true
					}
				case enums.ColorFamilyEspeciais:
					if strings.Contains(name, "ruivo") || strings.Contains(name, "cinza") ||
						strings.Contains(name, "mogno") || strings.Contains(name, "especial") {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.Coverage) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			features := joinedFeatures(p)
			description := strings.ToLower(p.Description)
			for _, coverage := range filters.Coverage {
				switch coverage {
				case "cobertura-total":
					if strings.Contains(features, "cobertura 100%") ||
						strings.Contains(features, "cobertura total") ||
						strings.Contains(description, "cobertura total") {
						return true
					}
				case "cobertura-parcial":
					if strings.Contains(features, "cobertura parcial") ||
						strings.Contains(description, "cobertura parcial") {
						return true
					}
				case "tonalizante":
					if strings.Contains(features, "tonalizante") ||
						strings.Contains(description, "tonalizante") {
						return true
					}
				case "reflexos":
					if strings.Contains(features, "reflexos") ||
						strings.Contains(description, "reflexos") {
						return true
					}
				}
			}
			return false
		})
	}

	// Ammonia true keeps only ammonia-FREE products; see Filters.Ammonia.
	if filters.Ammonia {
		filtered = keep(filtered, func(p Product) bool {
			features := joinedFeatures(p)
			description := strings.ToLower(p.Description)
			return strings.Contains(features, "sem amônia") ||
				strings.Contains(features, "sem ammonia") ||
				strings.Contains(description, "sem amônia") ||
				strings.Contains(description, "sem ammonia")
		})
	}

	return filtered
}

func applyProgressivasFilters(products []Product, filters Filters) []Product {
	filtered := products

	if len(filters.StraighteningLevel) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			description := strings.ToLower(p.Description)
			for _, level := range filters.StraighteningLevel {
				switch level {
				case "liso-total":
					if strings.Contains(name, "liso total") || strings.Contains(description, "liso total") {
						return true
					}
				case "liso-natural":
					if strings.Contains(name, "liso natural") || strings.Contains(description, "liso natural") {
						return true
					}
				case "reduz-volume":
					if strings.Contains(name, "reduz volume") || strings.Contains(description, "reduz volume") {
						return true
					}
				case "define-cachos":
					if strings.Contains(name, "define cachos") || strings.Contains(description, "define cachos") {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.Formula) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			features := joinedFeatures(p)
			description := strings.ToLower(p.Description)
			name := strings.ToLower(p.Name)
			for _, raw := range filters.Formula {
				switch raw {
				case "sem-formol":
					if strings.Contains(features, "sem formol") ||
						strings.Contains(features, "livre de formol") ||
						strings.Contains(description, "sem formol") ||
						strings.Contains(name, "sem formol") {
						return true
					}
				case "queratina":
					if strings.Contains(features, "queratina") ||
						strings.Contains(description, "queratina") ||
						strings.Contains(name, "queratina") {
						return true
					}
				case "chocolate":
					if strings.Contains(name, "chocolate") || strings.Contains(description, "chocolate") {
						return true
					}
				case "ouro":
					if strings.Contains(name, "ouro") || strings.Contains(name, "gold") ||
						strings.Contains(description, "ouro") || strings.Contains(description, "24k") {
						return true
					}
				default:
					// Unrecognized formulas fall back to a raw substring test.
					formula := strings.ToLower(raw)
					if strings.Contains(features, formula) ||
						strings.Contains(description, formula) ||
						strings.Contains(name, formula) {
						return true
					}
				}
			}
			return false
		})
	}

	return filtered
}

func applyHidratacaoFilters(products []Product, filters Filters) []Product {
	filtered := products

	if len(filters.TreatmentType) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			category := strings.ToLower(p.Category)
			for _, treatment := range filters.TreatmentType {
				switch treatment {
				case "mascara":
					if strings.Contains(name, "máscara") || strings.Contains(name, "mascara") ||
						strings.Contains(category, "máscara") {
						return true
					}
				case "leave-in":
					if strings.Contains(name, "leave-in") || strings.Contains(name, "leave in") {
						return true
					}
				case "creme-pentear":
					if strings.Contains(name, "creme para pentear") ||
						strings.Contains(name, "creme de pentear") {
						return true
					}
				case "oleo":
					if strings.Contains(name, "óleo") || strings.Contains(name, "oleo") {
						return true
					}
				case "serum":
					if strings.Contains(name, "sérum") || strings.Contains(name, "serum") {
						return true
					}
				case "ampola":
					if strings.Contains(name, "ampola") {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.HairType) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			description := strings.ToLower(p.Description)
			features := joinedFeatures(p)
			for _, raw := range filters.HairType {
				hairType := strings.ToLower(raw)
				if strings.Contains(description, hairType) || strings.Contains(features, hairType) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.ProblemTarget) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			features := joinedFeatures(p)
			description := strings.ToLower(p.Description)
			name := strings.ToLower(p.Name)
			for _, raw := range filters.ProblemTarget {
				switch raw {
				case "frizz":
					if strings.Contains(features, "antifrizz") || strings.Contains(features, "anti-frizz") ||
						strings.Contains(name, "antifrizz") || strings.Contains(description, "antifrizz") {
						return true
					}
				case "volume":
					if strings.Contains(features, "volume") || strings.Contains(name, "volume") ||
						strings.Contains(description, "volume") {
						return true
					}
				case "brilho":
					if strings.Contains(features, "brilho") || strings.Contains(name, "brilho") ||
						strings.Contains(description, "brilho") {
						return true
					}
				case "pontas-duplas":
					if strings.Contains(features, "pontas duplas") ||
						strings.Contains(description, "pontas duplas") {
						return true
					}
				case "porosidade":
					if strings.Contains(features, "antiporosidade") ||
						strings.Contains(description, "antiporosidade") {
						return true
					}
				default:
					problem := strings.ToLower(raw)
					if strings.Contains(features, problem) || strings.Contains(description, problem) {
						return true
					}
				}
			}
			return false
		})
	}

	return filtered
}

func applyBotoxFilters(products []Product, filters Filters) []Product {
	filtered := products

	if len(filters.TreatmentType) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			for _, treatment := range filters.TreatmentType {
				switch treatment {
				case "btx-traditional":
					if strings.Contains(name, "btx") || strings.Contains(name, "botox") {
						return true
					}
				case "btx-organic":
					if strings.Contains(name, "orgânico") || strings.Contains(name, "organic") {
						return true
					}
				case "btx-zero":
					if strings.Contains(name, "zero") || strings.Contains(name, "0%") {
						return true
					}
				case "btx-premium":
					if strings.Contains(name, "premium") {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.Formula) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			features := joinedFeatures(p)
			description := strings.ToLower(p.Description)
			for _, raw := range filters.Formula {
				switch raw {
				case "sem-formol":
					if strings.Contains(features, "0% formol") ||
						strings.Contains(features, "sem formol") ||
						strings.Contains(description, "livre de formol") {
						return true
					}
				case "argan":
					if strings.Contains(features, "argan") || strings.Contains(description, "argan") {
						return true
					}
				default:
					formula := strings.ToLower(raw)
					if strings.Contains(features, formula) || strings.Contains(description, formula) {
						return true
					}
				}
			}
			return false
		})
	}

	return filtered
}

func applyQuimicosFilters(products []Product, filters Filters) []Product {
	filtered := products

	if len(filters.ChemicalType) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			category := strings.ToLower(p.Category)
			for _, chemical := range filters.ChemicalType {
				switch chemical {
				case "descolorante":
					if strings.Contains(name, "descolorante") || strings.Contains(category, "descolorante") {
						return true
					}
				case "oxigenada":
					if strings.Contains(name, "oxigenada") || strings.Contains(name, "água oxigenada") {
						return true
					}
				case "revelador":
					if strings.Contains(name, "revelador") {
						return true
					}
				case "neutralizante":
					if strings.Contains(name, "neutralizante") {
						return true
					}
				}
			}
			return false
		})
	}

	if len(filters.Concentration) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			description := strings.ToLower(p.Description)
			for _, raw := range filters.Concentration {
				// Facet keys use hyphens ("20-vol"); product text spells them
				// with spaces ("20 vol").
				conc := strings.ToLower(strings.ReplaceAll(raw, "-", " "))
				if strings.Contains(name, conc) || strings.Contains(description, conc) {
					return true
				}
			}
			return false
		})
	}

	if len(filters.Volume) > 0 {
		filtered = keep(filtered, func(p Product) bool {
			name := strings.ToLower(p.Name)
			description := strings.ToLower(p.Description)
			specs := specBlob(p)
			for _, raw := range filters.Volume {
				vol := strings.ToLower(raw)
				if strings.Contains(name, vol) || strings.Contains(description, vol) ||
					strings.Contains(specs, vol) {
					return true
				}
			}
			return false
		})
	}

	return filtered
}
