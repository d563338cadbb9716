package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"foodapp/internal/domain"
)

type FoodWriter interface {
	Create(ctx context.Context, f domain.FoodItem) (*domain.FoodItem, error)
}

// JSONImporter reads a menu export and inserts food items.
type JSONImporter struct {
	reader   io.Reader
	foodRepo FoodWriter
}

func NewJSONImporter(r io.Reader, repo FoodWriter) *JSONImporter {
	return &JSONImporter{reader: r, foodRepo: repo}
}

type menuEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

// Run parses the export and inserts every valid entry, returning the count.
func (i *JSONImporter) Run(ctx context.Context) (int, error) {
	var entries []menuEntry
	dec := json.NewDecoder(i.reader)
	if err := dec.Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode menu export: %w", err)
	}

	imported := 0
	for idx, e := range entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.Category) == "" {
			return imported, fmt.Errorf("invalid menu entry at index %d (name and category required)", idx)
		}
		if e.PriceCents < 0 {
			return imported, fmt.Errorf("invalid menu entry %q: negative price", e.Name)
		}
		if _, err := i.foodRepo.Create(ctx, domain.FoodItem{
			Name:        strings.TrimSpace(e.Name),
			Description: strings.TrimSpace(e.Description),
			PriceCents:  e.PriceCents,
			Category:    strings.TrimSpace(e.Category),
			Image:       e.Image,
		}); err != nil {
			return imported, fmt.Errorf("insert %q: %w", e.Name, err)
		}
		imported++
	}
	return imported, nil
}
