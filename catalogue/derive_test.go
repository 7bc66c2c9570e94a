package catalogue_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/linesmerrill/storefront-api/catalogue"
	"github.com/linesmerrill/storefront-api/models"
)

var (
	t1 = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	t3 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

func fixture() []models.VehicleListing {
	return []models.VehicleListing{
		{ID: "focus", Title: "2020 Ford Focus", Make: "Ford", Model: "Focus", Year: 2020, Price: 10000, Mileage: 30000, Body: "Hatchback", Fuel: "Petrol", Transmission: "Manual", Location: "Helensburgh", CreatedAt: t1},
		{ID: "golf", Title: "2018 VW Golf", Make: "VW", Model: "Golf", Year: 2018, Price: 8000, Mileage: 60000, Body: "Hatchback", Fuel: "Diesel", Transmission: "Automatic", Location: "Glasgow", CreatedAt: t2},
		{ID: "leaf", Title: "2021 Nissan Leaf", Make: "Nissan", Model: "Leaf", Year: 2021, Price: 15000, Mileage: 12000, Body: "Hatchback", Fuel: "Electric", Transmission: "Automatic", Location: "Helensburgh", CreatedAt: t3},
	}
}

func ids(list []models.VehicleListing) []string {
	out := []string{}
	for _, v := range list {
		out = append(out, v.ID)
	}
	return out
}

func TestDeriveExample(t *testing.T) {
	inventory := []models.VehicleListing{
		{ID: "a", Year: 2020, Price: 10000, Mileage: 30000, CreatedAt: t1},
		{ID: "b", Year: 2018, Price: 8000, Mileage: 60000, CreatedAt: t2},
	}

	assert.Equal(t, []string{"a", "b"}, ids(catalogue.Derive(inventory, "", models.FilterSet{}, models.SortPriceDesc)))
	assert.Equal(t, []string{"b"}, ids(catalogue.Derive(inventory, "", models.FilterSet{MaxPrice: "9000"}, models.SortPriceDesc)))
}

func TestDeriveDefaultsToNewestFirst(t *testing.T) {
	assert.Equal(t, []string{"leaf", "golf", "focus"}, ids(catalogue.Derive(fixture(), "", models.FilterSet{}, models.SortNewest)))
	assert.Equal(t, []string{"leaf", "golf", "focus"}, ids(catalogue.Derive(fixture(), "", models.FilterSet{}, "bogus")))
}

func TestDeriveQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "   ", []string{"leaf", "golf", "focus"}},
		{"case folded", "  NISSAN ", []string{"leaf"}},
		{"matches location", "helens", []string{"leaf", "focus"}},
		{"matches fuel", "diesel", []string{"golf"}},
		{"spans fields", "ford focus hatch", []string{"focus"}},
		{"transmission is not searched", "manual", []string{}},
		{"no match", "tesla", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(catalogue.Derive(fixture(), tt.query, models.FilterSet{}, models.SortNewest)))
		})
	}
}

func TestDeriveFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters models.FilterSet
		want    []string
	}{
		{"make", models.FilterSet{Make: "VW"}, []string{"golf"}},
		{"make is case sensitive", models.FilterSet{Make: "vw"}, []string{}},
		{"location and fuel", models.FilterSet{Location: "Helensburgh", Fuel: "Petrol"}, []string{"focus"}},
		{"transmission", models.FilterSet{Transmission: "Automatic"}, []string{"leaf", "golf"}},
		{"max mileage", models.FilterSet{MaxMileage: "30000"}, []string{"leaf", "focus"}},
		{"year range", models.FilterSet{YearMin: "2019", YearMax: "2020"}, []string{"focus"}},
		{"non numeric bound is ignored", models.FilterSet{MaxPrice: "cheap"}, []string{"leaf", "golf", "focus"}},
		{"zero bound applies", models.FilterSet{MaxPrice: "0"}, []string{}},
		{"all conjunctive", models.FilterSet{Body: "Hatchback", MaxPrice: "12000", YearMin: "2019"}, []string{"focus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(catalogue.Derive(fixture(), "", tt.filters, models.SortNewest)))
		})
	}
}

func TestDeriveSortKeys(t *testing.T) {
	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortPriceAsc, []string{"golf", "focus", "leaf"}},
		{models.SortPriceDesc, []string{"leaf", "focus", "golf"}},
		{models.SortMileageAsc, []string{"leaf", "focus", "golf"}},
		{models.SortMileageDesc, []string{"golf", "focus", "leaf"}},
		{models.SortYearAsc, []string{"golf", "focus", "leaf"}},
		{models.SortYearDesc, []string{"leaf", "focus", "golf"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(catalogue.Derive(fixture(), "", models.FilterSet{}, tt.key)))
		})
	}
}

func TestDeriveMileageDescIsNonIncreasing(t *testing.T) {
	inventory := []models.VehicleListing{
		{ID: "a", Mileage: 100}, {ID: "b", Mileage: 90000}, {ID: "c", Mileage: 5000}, {ID: "d", Mileage: 45000},
	}

	got := catalogue.Derive(inventory, "", models.FilterSet{}, models.SortMileageDesc)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Mileage, got[i].Mileage)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, ids(got))
}

func TestDeriveSortIsStable(t *testing.T) {
	inventory := []models.VehicleListing{
		{ID: "a", Price: 5000}, {ID: "b", Price: 3000}, {ID: "c", Price: 5000}, {ID: "d", Price: 3000},
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(catalogue.Derive(inventory, "", models.FilterSet{}, models.SortPriceAsc)))
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(catalogue.Derive(inventory, "", models.FilterSet{}, models.SortPriceDesc)))
}

func TestDeriveDoesNotModifyInput(t *testing.T) {
	inventory := fixture()
	_ = catalogue.Derive(inventory, "", models.FilterSet{}, models.SortPriceAsc)
	assert.Equal(t, fixture(), inventory)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortMileageDesc, catalogue.ParseSortKey("mileage-desc"))
	assert.Equal(t, models.SortNewest, catalogue.ParseSortKey(""))
	assert.Equal(t, models.SortNewest, catalogue.ParseSortKey("cheapest"))
}

func TestParseFilterSet(t *testing.T) {
	values, _ := url.ParseQuery("make=Ford&fuel=Petrol&maxPrice=9000&yearMin=2015&q=ignored")

	assert.Equal(t, models.FilterSet{Make: "Ford", Fuel: "Petrol", MaxPrice: "9000", YearMin: "2015"}, catalogue.ParseFilterSet(values))
}
