package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"pizzaria-backend/internal/domain"
	categoryrepo "pizzaria-backend/internal/repository/category"
	productrepo "pizzaria-backend/internal/repository/product"
	zonerepo "pizzaria-backend/internal/repository/zone"
)

type CategoryWriter interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Category, error)
	Create(ctx context.Context, in categoryrepo.CreateInput) (*domain.Category, error)
}

type ProductWriter interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, pizzeriaID, id string, in productrepo.UpdateInput) (*domain.Product, error)
}

type ZoneWriter interface {
	ListByPizzeria(ctx context.Context, pizzeriaID string) ([]domain.DeliveryZone, error)
	Create(ctx context.Context, in zonerepo.CreateInput) (*domain.DeliveryZone, error)
}

// MenuDocument is the import file format: the full menu of one pizzeria.
type MenuDocument struct {
	Categories []MenuCategory `json:"categories"`
	Zones      []MenuZone     `json:"zones"`
}

type MenuCategory struct {
	Name      string        `json:"name"`
	SortOrder int           `json:"sortOrder"`
	Products  []MenuProduct `json:"products"`
}

type MenuProduct struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	ImageURL       string      `json:"imageUrl"`
	AllowsHalfHalf bool        `json:"allowsHalfHalf"`
	Prices         []MenuPrice `json:"prices"`
}

type MenuPrice struct {
	SizeName   string `json:"sizeName"`
	PriceCents int64  `json:"priceCents"`
}

type MenuZone struct {
	NeighborhoodName string `json:"neighborhoodName"`
	PriceCents       int64  `json:"priceCents"`
}

// Importer loads a menu document into one pizzeria. Existing categories and
// products are matched by name and updated in place; zones are only created,
// never touched, so operator price edits survive re-imports.
type Importer struct {
	categories CategoryWriter
	products   ProductWriter
	zones      ZoneWriter
	pizzeriaID string
}

func New(categories CategoryWriter, products ProductWriter, zones ZoneWriter, pizzeriaID string) *Importer {
	return &Importer{
		categories: categories,
		products:   products,
		zones:      zones,
		pizzeriaID: pizzeriaID,
	}
}

// Run parses the JSON document and imports it. It returns the number of
// products created or updated.
func (i *Importer) Run(ctx context.Context, r io.Reader) (int, error) {
	var doc MenuDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode menu: %w", err)
	}
	if err := validate(doc); err != nil {
		return 0, err
	}

	existingCats, err := i.categories.ListByPizzeria(ctx, i.pizzeriaID)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}
	catByName := make(map[string]string, len(existingCats))
	for _, c := range existingCats {
		catByName[c.Name] = c.ID
	}

	existingProds, err := i.products.ListByPizzeria(ctx, i.pizzeriaID)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}
	prodByName := make(map[string]string, len(existingProds))
	for _, p := range existingProds {
		prodByName[p.Name] = p.ID
	}

	imported := 0
	for _, cat := range doc.Categories {
		catID, ok := catByName[cat.Name]
		if !ok {
			created, err := i.categories.Create(ctx, categoryrepo.CreateInput{
				PizzeriaID: i.pizzeriaID,
				Name:       cat.Name,
				SortOrder:  cat.SortOrder,
			})
			if err != nil {
				return imported, fmt.Errorf("create category %s: %w", cat.Name, err)
			}
			catID = created.ID
			catByName[cat.Name] = catID
		}

		for _, prod := range cat.Products {
			prices := make([]domain.ProductPrice, 0, len(prod.Prices))
			for _, pp := range prod.Prices {
				prices = append(prices, domain.ProductPrice{SizeName: pp.SizeName, PriceCents: pp.PriceCents})
			}

			if id, ok := prodByName[prod.Name]; ok {
				_, err = i.products.Update(ctx, i.pizzeriaID, id, productrepo.UpdateInput{
					CategoryID:     catID,
					Name:           prod.Name,
					Description:    prod.Description,
					ImageURL:       prod.ImageURL,
					Available:      true,
					AllowsHalfHalf: prod.AllowsHalfHalf,
					Prices:         prices,
				})
			} else {
				_, err = i.products.Create(ctx, productrepo.CreateInput{
					PizzeriaID:     i.pizzeriaID,
					CategoryID:     catID,
					Name:           prod.Name,
					Description:    prod.Description,
					ImageURL:       prod.ImageURL,
					Available:      true,
					AllowsHalfHalf: prod.AllowsHalfHalf,
					Prices:         prices,
				})
			}
			if err != nil {
				return imported, fmt.Errorf("import product %s: %w", prod.Name, err)
			}
			imported++
		}
	}

	if len(doc.Zones) > 0 {
		existingZones, err := i.zones.ListByPizzeria(ctx, i.pizzeriaID)
		if err != nil {
			return imported, fmt.Errorf("list zones: %w", err)
		}
		known := make(map[string]bool, len(existingZones))
		for _, z := range existingZones {
			known[z.NeighborhoodName] = true
		}
		for _, z := range doc.Zones {
			if known[z.NeighborhoodName] {
				continue
			}
			if _, err := i.zones.Create(ctx, zonerepo.CreateInput{
				PizzeriaID:       i.pizzeriaID,
				NeighborhoodName: z.NeighborhoodName,
				PriceCents:       z.PriceCents,
				Active:           true,
			}); err != nil {
				return imported, fmt.Errorf("create zone %s: %w", z.NeighborhoodName, err)
			}
		}
	}

	return imported, nil
}

func validate(doc MenuDocument) error {
	for _, cat := range doc.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("category with empty name")
		}
		for _, prod := range cat.Products {
			if strings.TrimSpace(prod.Name) == "" {
				return fmt.Errorf("product with empty name in category %s", cat.Name)
			}
			if len(prod.Prices) == 0 {
				return fmt.Errorf("product %s has no prices", prod.Name)
			}
			for _, pp := range prod.Prices {
				if strings.TrimSpace(pp.SizeName) == "" || pp.PriceCents <= 0 {
					return fmt.Errorf("product %s has an invalid price entry", prod.Name)
				}
			}
		}
	}
	for _, z := range doc.Zones {
		if strings.TrimSpace(z.NeighborhoodName) == "" {
			return fmt.Errorf("zone with empty neighborhood name")
		}
		if z.PriceCents < 0 {
			return fmt.Errorf("zone %s has a negative fee", z.NeighborhoodName)
		}
	}
	return nil
}
