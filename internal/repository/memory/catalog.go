package memory

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/repository"
)

// Catalog is an immutable in-memory tool catalog.
type Catalog struct {
	byCode map[string]domain.Tool
	sorted []domain.Tool
}

var _ repository.ToolCatalog = (*Catalog)(nil)

// NewCatalog builds a catalog from tools. Codes must be non-empty and unique
// and daily charges must not be negative.
func NewCatalog(tools []domain.Tool) (*Catalog, error) {
	c := &Catalog{
		byCode: make(map[string]domain.Tool, len(tools)),
		sorted: make([]domain.Tool, 0, len(tools)),
	}
	for _, t := range tools {
		if t.Code == "" {
			return nil, fmt.Errorf("tool code is required")
		}
		if _, dup := c.byCode[t.Code]; dup {
			return nil, fmt.Errorf("duplicate tool code: %s", t.Code)
		}
		if t.DailyCharge.IsNegative() {
			return nil, fmt.Errorf("tool %s: daily charge cannot be negative", t.Code)
		}
		c.byCode[t.Code] = t
		c.sorted = append(c.sorted, t)
	}
	sort.Slice(c.sorted, func(i, j int) bool { return c.sorted[i].Code < c.sorted[j].Code })
	return c, nil
}

// Lookup returns the tool with the given code.
func (c *Catalog) Lookup(code string) (domain.Tool, bool) {
	t, ok := c.byCode[code]
	return t, ok
}

// List returns a copy of the catalog ordered by code.
func (c *Catalog) List() []domain.Tool {
	out := make([]domain.Tool, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// DefaultTools returns the built-in catalog entries.
func DefaultTools() []domain.Tool {
	return []domain.Tool{
		{Code: "CHNS", Type: "Chainsaw", Brand: "Stihl", DailyCharge: decimal.RequireFromString("1.49"), WeekdayCharge: true, WeekendCharge: false, HolidayCharge: true},
		{Code: "LADW", Type: "Ladder", Brand: "Werner", DailyCharge: decimal.RequireFromString("1.99"), WeekdayCharge: true, WeekendCharge: true, HolidayCharge: false},
		{Code: "JAKD", Type: "Jackhammer", Brand: "DeWalt", DailyCharge: decimal.RequireFromString("2.99"), WeekdayCharge: true, WeekendCharge: false, HolidayCharge: false},
		{Code: "JAKR", Type: "Jackhammer", Brand: "Ridgid", DailyCharge: decimal.RequireFromString("2.99"), WeekdayCharge: true, WeekendCharge: false, HolidayCharge: false},
	}
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultTools())
	if err != nil {
		panic(err)
	}
	return c
}

// FromRepository loads every tool of repo into a catalog.
func FromRepository(ctx context.Context, repo repository.ToolRepository) (*Catalog, error) {
	tools, err := repo.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return NewCatalog(tools)
}

type catalogFile struct {
	Tools []toolEntry `yaml:"tools"`
}

type toolEntry struct {
	Code          string `yaml:"code"`
	Type          string `yaml:"type"`
	Brand         string `yaml:"brand"`
	DailyCharge   string `yaml:"daily_charge"`
	WeekdayCharge bool   `yaml:"weekday_charge"`
	WeekendCharge bool   `yaml:"weekend_charge"`
	HolidayCharge bool   `yaml:"holiday_charge"`
}

// LoadFile reads a YAML catalog:
//
//	tools:
//	  - code: LADW
//	    type: Ladder
//	    brand: Werner
//	    daily_charge: "1.99"
//	    weekday_charge: true
//	    weekend_charge: true
//	    holiday_charge: false
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a catalog from the YAML document in data.
func ParseYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	tools := make([]domain.Tool, 0, len(f.Tools))
	for _, e := range f.Tools {
		charge, err := decimal.NewFromString(e.DailyCharge)
		if err != nil {
			return nil, fmt.Errorf("tool %s: invalid daily charge %q: %w", e.Code, e.DailyCharge, err)
		}
		tools = append(tools, domain.Tool{
			Code:          e.Code,
			Type:          e.Type,
			Brand:         e.Brand,
			DailyCharge:   charge,
			WeekdayCharge: e.WeekdayCharge,
			WeekendCharge: e.WeekendCharge,
			HolidayCharge: e.HolidayCharge,
		})
	}
	return NewCatalog(tools)
}
