// Package catalogue derives the displayed inventory list and owns the inventory
// collection.
package catalogue

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/linesmerrill/storefront-api/models"
)

// Derive returns the listings of full that match query and filters, ordered by sortKey.
// full is never modified.
func Derive(full []models.VehicleListing, query string, filters models.FilterSet, sortKey models.SortKey) []models.VehicleListing {
	list := make([]models.VehicleListing, 0, len(full))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, v := range full {
		if q != "" && !strings.Contains(searchText(v), q) {
			continue
		}
		if !matchesFilters(v, filters) {
			continue
		}
		list = append(list, v)
	}

	sort.SliceStable(list, less(list, sortKey))
	return list
}

func searchText(v models.VehicleListing) string {
	return strings.ToLower(strings.Join([]string{v.Title, v.Make, v.Model, v.Body, v.Fuel, v.Location}, " "))
}

func matchesFilters(v models.VehicleListing, f models.FilterSet) bool {
	if f.Make != "" && v.Make != f.Make {
		return false
	}
	if f.Body != "" && v.Body != f.Body {
		return false
	}
	if f.Fuel != "" && v.Fuel != f.Fuel {
		return false
	}
	if f.Location != "" && v.Location != f.Location {
		return false
	}
	if f.Transmission != "" && v.Transmission != f.Transmission {
		return false
	}
	if bound, ok := parseBound(f.MaxPrice); ok && v.Price > bound {
		return false
	}
	if bound, ok := parseBound(f.MaxMileage); ok && float64(v.Mileage) > bound {
		return false
	}
	if bound, ok := parseBound(f.YearMin); ok && float64(v.Year) < bound {
		return false
	}
	if bound, ok := parseBound(f.YearMax); ok && float64(v.Year) > bound {
		return false
	}
	return true
}

// parseBound reports ok=false for an empty or non-numeric bound, which constrains nothing
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func less(list []models.VehicleListing, key models.SortKey) func(i, j int) bool {
	switch key {
	case models.SortPriceAsc:
		return func(i, j int) bool { return list[i].Price < list[j].Price }
	case models.SortPriceDesc:
		return func(i, j int) bool { return list[i].Price > list[j].Price }
	case models.SortMileageAsc:
		return func(i, j int) bool { return list[i].Mileage < list[j].Mileage }
	case models.SortMileageDesc:
		return func(i, j int) bool { return list[i].Mileage > list[j].Mileage }
	case models.SortYearAsc:
		return func(i, j int) bool { return list[i].Year < list[j].Year }
	case models.SortYearDesc:
		return func(i, j int) bool { return list[i].Year > list[j].Year }
	default:
		return func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) }
	}
}

// ParseSortKey maps a query value to a SortKey, unknown values sort newest first
func ParseSortKey(raw string) models.SortKey {
	switch k := models.SortKey(strings.TrimSpace(raw)); k {
	case models.SortPriceAsc, models.SortPriceDesc,
		models.SortMileageAsc, models.SortMileageDesc,
		models.SortYearAsc, models.SortYearDesc:
		return k
	default:
		return models.SortNewest
	}
}

// ParseFilterSet reads the filter fields from query parameters of the same name
func ParseFilterSet(values url.Values) models.FilterSet {
	return models.FilterSet{
		Make:         values.Get("make"),
		Body:         values.Get("body"),
		Fuel:         values.Get("fuel"),
		Transmission: values.Get("transmission"),
		Location:     values.Get("location"),
		MaxPrice:     values.Get("maxPrice"),
		MaxMileage:   values.Get("maxMileage"),
		YearMin:      values.Get("yearMin"),
		YearMax:      values.Get("yearMax"),
	}
}
