package catalog

import (
	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

// FacetOption is one selectable value inside a facet group.
type FacetOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	// Family is set for hair-color options and names the color family bucket
	// the shade belongs to.
	Family enums.ColorFamily `json:"family,omitempty"`
	// Country is set for brand options (ISO 3166-1 alpha-2).
	Country string `json:"country,omitempty"`
}

// FacetGroup is a named group of options rendered as one filter section.
type FacetGroup struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Options []FacetOption `json:"options,omitempty"`
	// Toggle groups render as a single checkbox instead of an option list.
	Toggle bool `json:"toggle,omitempty"`
	// Note documents surprising semantics, e.g. the ammonia inversion.
	Note string `json:"note,omitempty"`
}

// FilterOptions describes every facet the UI can offer for one category.
type FilterOptions struct {
	Category enums.CatalogCategory `json:"category"`
	Groups   []FacetGroup          `json:"groups"`
}

var filterOptionsByCategory = map[enums.CatalogCategory]FilterOptions{
	enums.CatalogCategoryTintas: {
		Category: enums.CatalogCategoryTintas,
		Groups: []FacetGroup{
			{Key: "brand", Label: "Marca", Options: []FacetOption{
				{Value: "loreal", Label: "L'Oréal Paris", Country: "FR"},
				{Value: "wella", Label: "Wella", Country: "DE"},
				{Value: "beauty-color", Label: "Beauty Color", Country: "BR"},
				{Value: "biocolor", Label: "BioColor", Country: "BR"},
				{Value: "amend", Label: "Amend", Country: "BR"},
				{Value: "alta-moda", Label: "Alta Moda", Country: "BR"},
				{Value: "nutrisse", Label: "Nutrisse", Country: "FR"},
				{Value: "excllusiv", Label: "Excllusiv", Country: "BR"},
			}},
			{Key: "hair_color", Label: "Cor", Options: []FacetOption{
				{Value: "loiro", Label: "Loiro", Family: enums.ColorFamilyClaros},
				{Value: "castanho", Label: "Castanho", Family: enums.ColorFamilyMedios},
				{Value: "preto", Label: "Preto", Family: enums.ColorFamilyEscuros},
				{Value: "ruivo", Label: "Ruivo", Family: enums.ColorFamilyEspeciais},
				{Value: "cinza", Label: "Cinza", Family: enums.ColorFamilyEspeciais},
				{Value: "platinado", Label: "Platinado", Family: enums.ColorFamilyClaros},
				{Value: "chocolate", Label: "Chocolate", Family: enums.ColorFamilyEscuros},
				{Value: "mogno", Label: "Mogno", Family: enums.ColorFamilyEspeciais},
			}},
			{Key: "color_family", Label: "Família de Cor", Options: []FacetOption{
				{Value: enums.ColorFamilyClaros.String(), Label: "Tons Claros"},
				{Value: enums.ColorFamilyMedios.String(), Label: "Tons Médios"},
				{Value: enums.ColorFamilyEscuros.String(), Label: "Tons Escuros"},
				{Value: enums.ColorFamilyEspeciais.String(), Label: "Tons Especiais"},
			}},
			{Key: "coverage", Label: "Cobertura", Options: []FacetOption{
				{Value: "cobertura-total", Label: "Cobertura Total (100%)"},
				{Value: "cobertura-parcial", Label: "Cobertura Parcial"},
				{Value: "tonalizante", Label: "Tonalizante"},
				{Value: "reflexos", Label: "Reflexos"},
			}},
			{Key: "ammonia", Label: "Sem Amônia", Toggle: true,
				Note: "selecting this keeps only ammonia-free products"},
		},
	},
	enums.CatalogCategoryProgressivas: {
		Category: enums.CatalogCategoryProgressivas,
		Groups: []FacetGroup{
			{Key: "brand", Label: "Marca", Options: []FacetOption{
				{Value: "cocochoco", Label: "CocoCHOCO", Country: "BR"},
				{Value: "tzaha", Label: "T'ZAHA", Country: "BR"},
				{Value: "brazilicious", Label: "Brazilicious", Country: "BR"},
				{Value: "cadiveu", Label: "Cadiveu", Country: "BR"},
				{Value: "inoar", Label: "Inoar", Country: "BR"},
			}},
			{Key: "straightening_level", Label: "Nível de Alisamento", Options: []FacetOption{
				{Value: "liso-total", Label: "Liso Total"},
				{Value: "liso-natural", Label: "Liso Natural"},
				{Value: "reduz-volume", Label: "Redução de Volume"},
				{Value: "define-cachos", Label: "Define Cachos"},
			}},
			{Key: "formula", Label: "Fórmula", Options: []FacetOption{
				{Value: "sem-formol", Label: "Sem Formol"},
				{Value: "queratina", Label: "Queratina"},
				{Value: "acido-glicolico", Label: "Ácido Glicólico"},
				{Value: "tanino", Label: "Tanino"},
				{Value: "chocolate", Label: "Chocolate"},
				{Value: "ouro", Label: "Ouro 24k"},
			}},
		},
	},
	enums.CatalogCategoryHidratacao: {
		Category: enums.CatalogCategoryHidratacao,
		Groups: []FacetGroup{
			{Key: "brand", Label: "Marca", Options: []FacetOption{
				{Value: "novex", Label: "Novex", Country: "BR"},
				{Value: "forever-liss", Label: "Forever Liss", Country: "BR"},
				{Value: "skala", Label: "Skala", Country: "BR"},
				{Value: "salon-line", Label: "Salon Line", Country: "BR"},
			}},
			{Key: "treatment_type", Label: "Tipo de Produto", Options: []FacetOption{
				{Value: "mascara", Label: "Máscara"},
				{Value: "leave-in", Label: "Leave-in"},
				{Value: "creme-pentear", Label: "Creme para Pentear"},
				{Value: "oleo", Label: "Óleo"},
				{Value: "serum", Label: "Sérum"},
				{Value: "ampola", Label: "Ampola"},
			}},
			{Key: "hair_type", Label: "Tipo de Cabelo", Options: []FacetOption{
				{Value: "ressecado", Label: "Cabelo Ressecado"},
				{Value: "danificado", Label: "Cabelo Danificado"},
				{Value: "cacheado", Label: "Cabelo Cacheado"},
				{Value: "crespo", Label: "Cabelo Crespo"},
				{Value: "liso", Label: "Cabelo Liso"},
				{Value: "misto", Label: "Cabelo Misto"},
			}},
			{Key: "problem_target", Label: "Problema Alvo", Options: []FacetOption{
				{Value: "frizz", Label: "Anti-Frizz"},
				{Value: "volume", Label: "Controle de Volume"},
				{Value: "brilho", Label: "Brilho Intenso"},
				{Value: "maciez", Label: "Maciez"},
				{Value: "pontas-duplas", Label: "Pontas Duplas"},
				{Value: "porosidade", Label: "Antiporosidade"},
			}},
		},
	},
	enums.CatalogCategoryBotox: {
		Category: enums.CatalogCategoryBotox,
		Groups: []FacetGroup{
			{Key: "brand", Label: "Marca", Options: []FacetOption{
				{Value: "topvip", Label: "TopVip", Country: "BR"},
				{Value: "forever-liss", Label: "Forever Liss", Country: "BR"},
				{Value: "hobety", Label: "Hobety", Country: "BR"},
				{Value: "leads-care", Label: "Leads Care", Country: "BR"},
			}},
			{Key: "treatment_type", Label: "Tipo de Botox", Options: []FacetOption{
				{Value: "btx-traditional", Label: "BTX Tradicional"},
				{Value: "btx-organic", Label: "BTX Orgânico"},
				{Value: "btx-zero", Label: "BTX Zero Formol"},
				{Value: "btx-premium", Label: "BTX Premium"},
			}},
			{Key: "formula", Label: "Fórmula", Options: []FacetOption{
				{Value: "sem-formol", Label: "0% Formol"},
				{Value: "queratina", Label: "Com Queratina"},
				{Value: "argan", Label: "Óleo de Argan"},
				{Value: "colageno", Label: "Colágeno"},
				{Value: "aminoacidos", Label: "Aminoácidos"},
			}},
		},
	},
	enums.CatalogCategoryQuimicos: {
		Category: enums.CatalogCategoryQuimicos,
		Groups: []FacetGroup{
			{Key: "brand", Label: "Marca", Options: []FacetOption{
				{Value: "wella", Label: "Wella", Country: "DE"},
				{Value: "loreal", Label: "L'Oréal", Country: "FR"},
				{Value: "matrix", Label: "Matrix", Country: "US"},
				{Value: "schwarzkopf", Label: "Schwarzkopf", Country: "DE"},
			}},
			{Key: "chemical_type", Label: "Tipo de Produto", Options: []FacetOption{
				{Value: "descolorante", Label: "Descolorante"},
				{Value: "oxigenada", Label: "Água Oxigenada"},
				{Value: "revelador", Label: "Revelador"},
				{Value: "neutralizante", Label: "Neutralizante"},
			}},
			{Key: "concentration", Label: "Concentração", Options: []FacetOption{
				{Value: "10-vol", Label: "10 Volumes"},
				{Value: "20-vol", Label: "20 Volumes"},
				{Value: "30-vol", Label: "30 Volumes"},
				{Value: "40-vol", Label: "40 Volumes"},
			}},
			{Key: "volume", Label: "Tamanho", Options: []FacetOption{
				{Value: "90ml", Label: "90ml"},
				{Value: "900ml", Label: "900ml"},
				{Value: "1000ml", Label: "1L"},
				{Value: "5000ml", Label: "5L"},
			}},
		},
	},
}

// FilterOptionsFor returns the facet metadata for a category.
func FilterOptionsFor(category enums.CatalogCategory) (FilterOptions, bool) {
	opts, ok := filterOptionsByCategory[category]
	return opts, ok
}
