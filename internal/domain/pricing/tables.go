package pricing

import (
	"strings"
	"time"

	"remodeling_proposals/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Season names used as keys of the seasonal table.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

// Tables holds the three multiplier tables keyed by lower-case names.
type Tables struct {
	Regional     map[string]decimal.Decimal
	PropertyType map[string]decimal.Decimal
	Seasonal     map[string]decimal.Decimal
}

// DefaultTables returns the built-in multipliers.
func DefaultTables() Tables {
	return Tables{
		Regional: map[string]decimal.Decimal{
			"north": decimal.RequireFromString("1.2"),
			"south": decimal.RequireFromString("0.9"),
			"east":  decimal.RequireFromString("1.1"),
			"west":  decimal.RequireFromString("1.0"),
		},
		PropertyType: map[string]decimal.Decimal{
			"residential": decimal.RequireFromString("1.0"),
			"commercial":  decimal.RequireFromString("1.3"),
			"industrial":  decimal.RequireFromString("1.5"),
		},
		Seasonal: map[string]decimal.Decimal{
			SeasonSpring: decimal.RequireFromString("1.1"),
			SeasonSummer: decimal.RequireFromString("1.0"),
			SeasonFall:   decimal.RequireFromString("0.9"),
			SeasonWinter: decimal.RequireFromString("0.8"),
		},
	}
}

// TablesFromRecords overlays stored multiplier records on the defaults.
// Records of the rate dimensions are ignored.
func TablesFromRecords(records []entities.PricingRecord) Tables {
	t := DefaultTables()
	for _, r := range records {
		key := normalizeKey(r.Key)
		if key == "" {
			continue
		}
		switch r.Dimension {
		case entities.DimensionRegional:
			t.Regional[key] = r.Rate
		case entities.DimensionPropertyType:
			t.PropertyType[key] = r.Rate
		case entities.DimensionSeasonal:
			t.Seasonal[key] = r.Rate
		}
	}
	return t
}

// SeasonFor maps a date to its season by calendar month only.
func SeasonFor(at time.Time) string {
	switch at.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

func (t Tables) clone() Tables {
	return Tables{
		Regional:     cloneTable(t.Regional),
		PropertyType: cloneTable(t.PropertyType),
		Seasonal:     cloneTable(t.Seasonal),
	}
}

func cloneTable(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[normalizeKey(k)] = v
	}
	return out
}

func lookup(table map[string]decimal.Decimal, key string) decimal.Decimal {
	if v, ok := table[normalizeKey(key)]; ok {
		return v
	}
	return one
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
