// Package importer loads menu items from a CSV export into the catalog.
// Each item spans one or more rows: the first row carries the item fields
// and its first size, continuation rows (empty name) add further sizes.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"menu-admin-api/internal/domain"
	menuitemrepo "menu-admin-api/internal/repository/menuitem"
	"menu-admin-api/internal/slug"
)

// ItemWriter persists one imported item with all of its child rows.
type ItemWriter interface {
	Create(ctx context.Context, in menuitemrepo.WriteInput) (*domain.MenuItem, error)
}

// CategoryResolver maps a category name from the file to its identifier,
// creating the category when it does not exist yet.
type CategoryResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// CSVImporter reads menu CSV exports and inserts items with their sizes.
type CSVImporter struct {
	reader     *csv.Reader
	items      ItemWriter
	categories CategoryResolver
}

func NewCSVImporter(r io.Reader, items ItemWriter, categories CategoryResolver) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		items:      items,
		categories: categories,
	}
}

type csvItem struct {
	Category string
	Name     string
	NameAr   string
	Desc     string
	DescAr   string
	Sizes    []csvSize
}

type csvSize struct {
	Name   string
	NameAr string
	Price  int64
}

// Run parses CSV rows and inserts items grouped by name.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvItem
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := pick(record, index, "name")
		size, err := parseSize(record, index)
		if err != nil {
			return imported, fmt.Errorf("row for %q: %w", name, err)
		}

		if name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = &csvItem{
				Category: pick(record, index, "category"),
				Name:     name,
				NameAr:   pick(record, index, "name_ar"),
				Desc:     pick(record, index, "description"),
				DescAr:   pick(record, index, "description_ar"),
			}
		}

		// Continuation rows carry extra sizes for the current item.
		if current != nil && size != nil {
			current.Sizes = append(current.Sizes, *size)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, item *csvItem) error {
	if item.Category == "" || len(item.Sizes) == 0 {
		return fmt.Errorf("invalid item row for %q: category and at least one size are required", item.Name)
	}
	// Same both-or-neither rule the dashboard enforces on descriptions.
	if (item.Desc != "") != (item.DescAr != "") {
		return fmt.Errorf("invalid item row for %q: both descriptions must be provided together, or both must be empty", item.Name)
	}

	categoryID, err := i.categories.Resolve(ctx, item.Category)
	if err != nil {
		return fmt.Errorf("resolve category %q: %w", item.Category, err)
	}

	in := menuitemrepo.WriteInput{
		Item: domain.MenuItem{
			CategoryID:   categoryID,
			Name:         item.Name,
			Slug:         slug.Make(item.Name),
			Description:  item.Desc,
			Availability: true,
			IsActive:     true,
		},
	}
	for _, s := range item.Sizes {
		in.Sizes = append(in.Sizes, domain.MenuItemSize{
			ID:       uuid.NewString(),
			Price:    s.Price,
			IsActive: true,
			Name:     s.Name,
			NameAr:   s.NameAr,
		})
	}
	if item.NameAr != "" {
		in.Translation = &domain.Translation{
			Locale:      domain.LocaleAR,
			Name:        item.NameAr,
			Description: item.DescAr,
		}
	}

	if _, err := i.items.Create(ctx, in); err != nil {
		return fmt.Errorf("create item %q: %w", item.Name, err)
	}
	return nil
}

func parseSize(record []string, index map[string]int) (*csvSize, error) {
	name := pick(record, index, "size")
	priceStr := pick(record, index, "price")
	if name == "" && priceStr == "" {
		return nil, nil
	}
	if name == "" || priceStr == "" {
		return nil, fmt.Errorf("size rows need both size and price")
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil || price < 0 {
		return nil, fmt.Errorf("invalid price %q", priceStr)
	}
	return &csvSize{
		Name:   name,
		NameAr: pick(record, index, "size_ar"),
		Price:  price,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
