package seed

import (
	"github.com/shopspring/decimal"

	"github.com/jchairstudios/catalog-backend/pkg/db/models"
	dbtypes "github.com/jchairstudios/catalog-backend/pkg/db/types"
	"github.com/jchairstudios/catalog-backend/pkg/enums"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func dp(value string) *decimal.Decimal {
	dec := decimal.RequireFromString(value)
	return &dec
}

func ip(v int) *int { return &v }

func bp(v bool) *bool { return &v }

func sp(v string) *string { return &v }

// Products returns the starter catalog. IDs are stable slugs so reseeding an
// environment refreshes rows instead of duplicating them.
func Products() []models.CatalogProduct {
	return []models.CatalogProduct{
		{
			ID:             "tinta-loreal-001",
			Name:           "L'Oréal Paris Coloração Capilar Loiro Claro",
			Brand:          "L'Oréal Paris",
			Category:       enums.CatalogCategoryTintas,
			Subcategory:    "Coloração Capilar",
			Description:    "Coloração com cobertura total de fios brancos. Fórmula sem amônia com proteção UV.",
			Price:          d("17.84"),
			OriginalPrice:  dp("21.41"),
			PriceBRL:       dp("74.80"),
			Features:       []string{"Cobertura 100%", "Sem Amônia", "Proteção UV", "Nutrição + Cor"},
			Tags:           []string{"tinta", "loiro", "sem-amonia", "cobertura-total"},
			Colors:         []string{"loiro claro", "dourado"},
			ColorTone:      sp("Loiro Claro"),
			ColorHex:       sp("#F5E6A3"),
			ColorUndertone: sp("Dourado"),
			Stock:          ip(26),
			InStock:        bp(true),
			Rating:         4.5,
			Reviews:        127,
			Featured:       true,
			IsNew:          true,
			IsActive:       true,
		},
		{
			ID:            "tinta-wella-002",
			Name:          "Wella Koleston Perfect Castanho Escuro",
			Brand:         "Wella",
			Category:      enums.CatalogCategoryTintas,
			Subcategory:   "Coloração Capilar",
			Description:   "Coloração profissional com tecnologia ME+ para redução de alergias. Cobertura uniforme.",
			Price:         d("23.50"),
			OriginalPrice: dp("28.90"),
			PriceBRL:      dp("95.20"),
			Features:      []string{"Tecnologia ME+", "Cobertura Uniforme", "Longa Duração", "Brilho Intenso"},
			Tags:          []string{"tinta", "castanho", "profissional"},
			Colors:        []string{"castanho escuro", "marrom"},
			Stock:         ip(18),
			InStock:       bp(true),
			Rating:        4.7,
			Reviews:       89,
			HasDiscount:   true,
			IsActive:      true,
		},
		{
			ID:          "progressiva-cocochoco-001",
			Name:        "CocoCHOCO Professional Original Premium Keratin Treatment",
			Brand:       "CocoCHOCO",
			Category:    enums.CatalogCategoryProgressivas,
			Subcategory: "Progressiva",
			Description: "Tratamento premium de queratina brasileira com chocolate. Fórmula livre de formaldeído.",
			Price:       d("61.32"),
			PriceBRL:    dp("320.00"),
			Features:    []string{"Queratina Brasileira", "Premium Treatment", "Livre de Formaldeído", "Resultado Profissional"},
			Tags:        []string{"progressiva", "queratina", "sem-formol", "chocolate"},
			Colors:      []string{"Marrom"},
			Stock:       ip(15),
			InStock:     bp(true),
			Rating:      4.9,
			Reviews:     347,
			Featured:    true,
			IsActive:    true,
		},
		{
			ID:          "progressiva-tzaha-001",
			Name:        "T'ZAHA Diamante Total Liss Therapy 3D",
			Brand:       "T'ZAHA",
			Category:    enums.CatalogCategoryProgressivas,
			Subcategory: "Progressiva",
			Description: "Kit completo de terapia capilar 3D com shampoo e gloss. Tratamento sem formol com tecnologia Diamante.",
			Price:       d("35.64"),
			PriceBRL:    dp("180.50"),
			Features:    []string{"Therapy 3D", "Kit Shampoo + Gloss", "Sem Formol", "Tecnologia Diamante"},
			Tags:        []string{"progressiva", "sem-formol", "kit-completo"},
			Colors:      []string{"Preto/Dourado"},
			Stock:       ip(28),
			InStock:     bp(true),
			Rating:      4.7,
			Reviews:     156,
			IsNew:       true,
			IsActive:    true,
		},
		{
			ID:          "hidratacao-novex-001",
			Name:        "Novex Creme para Pentear Antiporosidade 72H - Cachos Mega Volume",
			Brand:       "Novex",
			Category:    enums.CatalogCategoryHidratacao,
			Subcategory: "Hidratação",
			Description: "Creme para pentear com fórmula antiporosidade que proporciona volume e definição para cabelos ressecados.",
			Price:       d("10.59"),
			PriceBRL:    dp("42.90"),
			Features:    []string{"Antiporosidade 72H", "Mega Volume", "Para Cabelos Ressecados", "Definição de Cachos"},
			Tags:        []string{"hidratacao", "creme-pentear", "antiporosidade", "cachos"},
			Colors:      []string{"Rosa"},
			Stock:       ip(32),
			InStock:     bp(true),
			Rating:      4.6,
			Reviews:     187,
			IsActive:    true,
		},
		{
			ID:          "hidratacao-novex-002",
			Name:        "Novex Salon Blindagem Leave-in Impermeabilizante",
			Brand:       "Novex",
			Category:    enums.CatalogCategoryHidratacao,
			Subcategory: "Hidratação",
			Description: "Leave-in com proteção absoluta antifrizz, anti pontas duplas e brilho extremo. Proteção para altas temperaturas até 232°C.",
			Price:       d("9.16"),
			PriceBRL:    dp("35.50"),
			Features:    []string{"Proteção Absoluta", "Antifrizz", "Anti Pontas Duplas", "Brilho Extremo", "Proteção até 232°C"},
			Tags:        []string{"hidratacao", "leave-in", "antifrizz", "protecao-termica"},
			Colors:      []string{"Cinza/Dourado"},
			Stock:       ip(28),
			InStock:     bp(true),
			Rating:      4.8,
			Reviews:     143,
			Featured:    true,
			IsActive:    true,
		},
		{
			ID:          "botox-topvip-001",
			Name:        "TopVip BTX Topterapia Formula 0%",
			Brand:       "TopVip",
			Category:    enums.CatalogCategoryBotox,
			Subcategory: "Botox Capilar",
			Description: "Botox capilar livre de formol com ação hidratante e alisante. Contém D'pantenol, óleo de argan e aminoácidos.",
			Price:       d("9.66"),
			PriceBRL:    dp("38.80"),
			Features:    []string{"0% Formol", "Com D'pantenol", "Óleo de Argan", "Aminoácidos", "Uso Profissional"},
			Tags:        []string{"botox", "sem-formol", "hidratante", "argan"},
			Colors:      []string{"Amarelo"},
			Stock:       ip(25),
			InStock:     bp(true),
			Rating:      4.7,
			Reviews:     143,
			IsActive:    true,
		},
		{
			ID:          "botox-forever-liss-001",
			Name:        "Forever Liss BTOX Zero Máscara Ultra Hidratante",
			Brand:       "Forever Liss",
			Category:    enums.CatalogCategoryBotox,
			Subcategory: "Botox Capilar",
			Description: "Máscara ultra hidratante com fórmula orgânica antifrizz. Rica em óleo de argan, óleo de coco e manteiga de karité.",
			Price:       d("12.60"),
			PriceBRL:    dp("53.49"),
			Features:    []string{"Máscara Ultra Hidratante", "Óleo de Argan", "Óleo de Coco", "Manteiga de Karité", "Antifrizz"},
			Tags:        []string{"botox", "mascara", "hidratante", "organico"},
			Colors:      []string{"Azul/Branco"},
			Stock:       ip(38),
			InStock:     bp(true),
			Rating:      4.6,
			Reviews:     87,
			IsNew:       true,
			IsActive:    true,
		},
		{
			ID:          "quimico-bw-descolorante-001",
			Name:        "BW Pó Descolorante Profissional Dust Free",
			Brand:       "BW Professional",
			Category:    enums.CatalogCategoryQuimicos,
			Subcategory: "Produtos Químicos",
			Description: "Pó descolorante azul dust free com até 9 tons de clareamento. Uso profissional com oxigenada de 20 vol ou 30 vol.",
			Price:       d("14.20"),
			PriceBRL:    dp("59.90"),
			Features:    []string{"Dust Free", "9 Tons de Clareamento", "Uso Profissional"},
			Tags:        []string{"quimico", "descolorante", "profissional"},
			Specifications: dbtypes.StringMap{
				"conteudo": "500g",
				"tipo":     "descolorante",
			},
			Stock:    ip(40),
			InStock:  bp(true),
			Rating:   4.4,
			Reviews:  62,
			IsActive: true,
		},
		{
			ID:          "quimico-oxigenada-20vol-001",
			Name:        "Água Oxigenada Cremosa 20 Vol",
			Brand:       "Salon Line",
			Category:    enums.CatalogCategoryQuimicos,
			Subcategory: "Produtos Químicos",
			Description: "Água oxigenada cremosa estabilizada 20 vol para coloração e descoloração. Embalagem de 900ml.",
			Price:       d("6.90"),
			PriceBRL:    dp("27.90"),
			Features:    []string{"Cremosa", "Estabilizada", "20 Vol"},
			Tags:        []string{"quimico", "oxigenada", "20-vol"},
			Specifications: dbtypes.StringMap{
				"conteudo":     "900ml",
				"concentracao": "20 vol",
			},
			Stock:    ip(55),
			InStock:  bp(true),
			Rating:   4.3,
			Reviews:  38,
			IsActive: true,
		},
	}
}
