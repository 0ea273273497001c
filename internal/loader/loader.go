// Package loader implements the one-shot catalog import: it reads product
// rows from an Excel spreadsheet and upserts them into the products table,
// never overwriting rows that already exist.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"shopkart/backend/internal/model"
	"shopkart/backend/internal/repository"
)

// Summary reports what a run did with each spreadsheet row.
type Summary struct {
	Inserted int
	Skipped  int // duplicate uniq_id, row left untouched
	Failed   int
}

type Loader struct {
	store *repository.Store
}

func New(store *repository.Store) *Loader {
	return &Loader{store: store}
}

// Run imports every row of the first sheet. A row that fails to parse or to
// insert is counted and logged but does not abort the rest of the batch.
func (l *Loader) Run(ctx context.Context, path string) (Summary, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	if len(file.Sheets) == 0 {
		return Summary{}, fmt.Errorf("spreadsheet has no sheets")
	}

	sheet := file.Sheets[0]
	if sheet.MaxRow < 2 {
		return Summary{}, fmt.Errorf("spreadsheet is empty or missing header row")
	}

	columns, err := headerIndex(sheet.Rows[0])
	if err != nil {
		return Summary{}, err
	}

	log.Printf("Importing %d records into the products table", sheet.MaxRow-1)

	var summary Summary
	for i := 1; i < sheet.MaxRow; i++ {
		product, err := parseRow(sheet.Rows[i], columns)
		if err != nil {
			log.Printf("Row %d: %v", i+1, err)
			summary.Failed++
			continue
		}

		inserted, err := l.store.UpsertProduct(ctx, product)
		if err != nil {
			log.Printf("Row %d: %v", i+1, err)
			summary.Failed++
			continue
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Skipped++
		}
	}

	return summary, nil
}

// headerIndex maps the header row's column names to their indexes.
func headerIndex(header *xlsx.Row) (map[string]int, error) {
	columns := make(map[string]int, len(header.Cells))
	for i, cell := range header.Cells {
		name := strings.ToLower(strings.TrimSpace(cell.String()))
		if name != "" {
			columns[name] = i
		}
	}
	for _, required := range []string{"product_name", "retail_price", "discounted_price"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}
	return columns, nil
}

func parseRow(row *xlsx.Row, columns map[string]int) (model.Product, error) {
	get := func(name string) string {
		index, ok := columns[name]
		if !ok || index >= len(row.Cells) {
			return ""
		}
		return strings.TrimSpace(row.Cells[index].String())
	}

	name := get("product_name")
	if name == "" {
		return model.Product{}, fmt.Errorf("missing product_name")
	}

	retailPrice, err := strconv.ParseFloat(get("retail_price"), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("bad retail_price: %w", err)
	}
	discountedPrice, err := strconv.ParseFloat(get("discounted_price"), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("bad discounted_price: %w", err)
	}

	uniqID := get("uniq_id")
	if uniqID == "" {
		uniqID = uuid.NewString()
	}

	return model.Product{
		UniqID:          uniqID,
		Name:            name,
		RetailPrice:     retailPrice,
		DiscountedPrice: discountedPrice,
		Images:          parseImageCell(get("image")),
		Description:     get("description"),
	}, nil
}

// parseImageCell decodes the source's stringified JSON array of image URLs.
// A malformed value is logged and treated as no images; it never fails the row.
func parseImageCell(value string) []string {
	if value == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(value), &images); err != nil {
		log.Printf("Error parsing image JSON: %v", err)
		return nil
	}
	return images
}
