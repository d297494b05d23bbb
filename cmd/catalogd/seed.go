package main

import (
	"github.com/spf13/cobra"

	"github.com/sarhadcorp/catalog-api/internal/domain"
	"github.com/sarhadcorp/catalog-api/internal/repository"
)

// seedProducts is the starter catalog for a fresh deployment.
var seedProducts = []domain.Product{
	{
		Name:        "Rock Phosphate",
		Slug:        "rock-phosphate",
		Description: "Rock Phosphate is a natural source of phosphorus, essential for plant growth and development. Our high-grade Rock Phosphate contains significant amounts of P2O5, making it ideal for fertilizer production and agricultural applications.",
		Category:    "Phosphate Minerals",
		Specifications: map[string]string{
			"P2O5 Content": "28%-30%",
			"Mesh Size":    "180-200",
			"Moisture":     "Max 2%",
		},
		Applications: []string{"Fertilizer Production", "Agricultural Use", "Animal Feed Supplement"},
		IsFeatured:   true,
	},
	{
		Name:        "Talc or Soap Stone",
		Slug:        "talc-or-soap-stone",
		Description: "Talc, also known as Soap Stone, is a soft mineral with excellent lubricating properties. Our premium Talc is widely used in cosmetics, pharmaceuticals, paper manufacturing, and as a filler in various industrial applications.",
		Category:    "Industrial Minerals",
		Specifications: map[string]string{
			"Whiteness":  "90-95%",
			"Brightness": "85-90%",
			"Mesh Size":  "200-325",
		},
		Applications: []string{"Cosmetics", "Pharmaceuticals", "Paper Manufacturing", "Plastics", "Paints"},
		IsFeatured:   true,
	},
	{
		Name:        "Calcium Fluoride",
		Slug:        "calcium-fluoride",
		Description: "Calcium Fluoride (CaF2) is a naturally occurring mineral with high purity. It is essential in the production of hydrofluoric acid, aluminum, and steel manufacturing. Our Calcium Fluoride meets international quality standards.",
		Category:    "Fluoride Minerals",
		Specifications: map[string]string{
			"CaF2 Content": "85-95%",
			"SiO2":         "Max 5%",
			"Mesh Size":    "100-200",
		},
		Applications: []string{"Steel Manufacturing", "Aluminum Production", "Hydrofluoric Acid Production", "Ceramics"},
	},
	{
		Name:        "Calcium Carbonate",
		Slug:        "calcium-carbonate",
		Description: "Calcium Carbonate is one of the most versatile industrial minerals. Our high-purity Calcium Carbonate is used extensively in paper, paint, plastic, rubber, and construction industries as a filler and extender.",
		Category:    "Carbonate Minerals",
		Specifications: map[string]string{
			"CaCO3 Content": "95-98%",
			"Brightness":    "90-95%",
			"Mesh Size":     "200-400",
		},
		Applications: []string{"Paper Industry", "Paints & Coatings", "Plastics", "Rubber", "Construction Materials"},
		IsFeatured:   true,
	},
	{
		Name:        "Quartz",
		Slug:        "quartz",
		Description: "Quartz is one of the most abundant minerals on Earth. Our high-purity Quartz is used in glass manufacturing, electronics, ceramics, and as a raw material in various industrial processes requiring silica.",
		Category:    "Silicate Minerals",
		Specifications: map[string]string{
			"SiO2 Content": "98-99.5%",
			"Fe2O3":        "Max 0.05%",
			"Mesh Size":    "100-300",
		},
		Applications: []string{"Glass Manufacturing", "Electronics", "Ceramics", "Foundry", "Water Filtration"},
	},
	{
		Name:        "Dolomite",
		Slug:        "dolomite",
		Description: "Dolomite is a calcium magnesium carbonate mineral. Our Dolomite is used in steel production, glass manufacturing, agriculture, and construction. It provides both calcium and magnesium benefits.",
		Category:    "Carbonate Minerals",
		Specifications: map[string]string{
			"CaO":       "30-32%",
			"MgO":       "18-20%",
			"Mesh Size": "100-200",
		},
		Applications: []string{"Steel Production", "Glass Manufacturing", "Agriculture", "Construction", "Water Treatment"},
	},
	{
		Name:        "Brite",
		Slug:        "brite",
		Description: "Brite is a high-quality industrial mineral used as a filler and extender in various applications. Our Brite offers excellent brightness and whiteness properties, making it ideal for paper, paint, and plastic industries.",
		Category:    "Industrial Minerals",
		Specifications: map[string]string{
			"Brightness": "85-90%",
			"Whiteness":  "90-95%",
			"Mesh Size":  "200-325",
		},
		Applications: []string{"Paper Industry", "Paints", "Plastics", "Rubber"},
	},
	{
		Name:        "Mica",
		Slug:        "mica",
		Description: "Mica is a group of silicate minerals known for their excellent electrical insulation properties. Our Mica is used in electronics, construction, cosmetics, and as a filler in various industrial applications.",
		Category:    "Silicate Minerals",
		Specifications: map[string]string{
			"Muscovite Content": "90-95%",
			"Mesh Size":         "20-200",
			"Moisture":          "Max 1%",
		},
		Applications: []string{"Electronics", "Construction", "Cosmetics", "Paints", "Plastics"},
	},
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the starter product set",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := bootstrap()
			if err != nil {
				return err
			}
			repos := repository.NewRepositories(srv)

			// Idempotent: a non-empty catalog means someone already owns
			// the data, so touch nothing.
			count, err := repos.Product.Count(cmd.Context())
			if err != nil {
				return err
			}
			if count > 0 {
				srv.Logger.Info().Int64("products", count).Msg("products already exist, skipping seed")
				return nil
			}

			for i := range seedProducts {
				p := seedProducts[i]
				if p.Applications == nil {
					p.Applications = []string{}
				}
				p.Images = []string{}

				if _, err := repos.Product.Create(cmd.Context(), &p); err != nil {
					return err
				}
			}

			srv.Logger.Info().Int("products", len(seedProducts)).Msg("products seeded successfully")
			return nil
		},
	}
}
