package catalogue

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/linesmerrill/storefront-api/models"
)

// ErrMissingFields is returned when a draft lacks make, model or price
var ErrMissingFields = errors.New("Please fill make, model and price.")

// Draft is the add-vehicle form. Fields hold what was entered, defaults are applied by
// Build.
type Draft struct {
	Title        models.FormValue `json:"title"`
	Make         models.FormValue `json:"make"`
	Model        models.FormValue `json:"model"`
	Year         models.FormValue `json:"year"`
	Price        models.FormValue `json:"price"`
	Mileage      models.FormValue `json:"mileage"`
	Body         models.FormValue `json:"body"`
	Fuel         models.FormValue `json:"fuel"`
	Transmission models.FormValue `json:"transmission"`
	Location     models.FormValue `json:"location"`
	Color        models.FormValue `json:"color"`
	Vin          models.FormValue `json:"vin"`
	Description  models.FormValue `json:"description"`
	Images       []string         `json:"images"`
}

// AddImage appends an image URL or data URI, blanks are ignored
func (d *Draft) AddImage(image string) {
	image = strings.TrimSpace(image)
	if image == "" {
		return
	}
	d.Images = append(d.Images, image)
}

// RemoveImage drops the image at index i, an out of range index does nothing
func (d *Draft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:i:i], d.Images[i+1:]...)
}

// Validate checks the required fields. A price that is blank, zero, infinite or not a
// positive number counts as missing.
func (d Draft) Validate() error {
	if d.Make.String() == "" || d.Model.String() == "" {
		return ErrMissingFields
	}
	if _, ok := parsePrice(d.Price.String()); !ok {
		return ErrMissingFields
	}
	return nil
}

// Build turns a valid draft into a listing. Blank numbers become 0, a blank year is
// the current year, a blank title is "<year> <make> <model>" and a blank location is
// defaultLocation.
func (d Draft) Build(id string, now time.Time, defaultLocation string) (models.VehicleListing, error) {
	if err := d.Validate(); err != nil {
		return models.VehicleListing{}, err
	}

	year := parseInt(d.Year.String())
	if year == 0 {
		year = now.Year()
	}
	title := d.Title.String()
	if title == "" {
		title = fmt.Sprintf("%d %s %s", year, d.Make.String(), d.Model.String())
	}
	location := d.Location.String()
	if location == "" {
		location = defaultLocation
	}
	price, _ := parsePrice(d.Price.String())

	mileage := parseInt(d.Mileage.String())
	if mileage < 0 {
		mileage = 0
	}

	images := make([]string, 0, len(d.Images))
	for _, img := range d.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	return models.VehicleListing{
		ID:           id,
		Title:        title,
		Make:         d.Make.String(),
		Model:        d.Model.String(),
		Year:         year,
		Price:        price,
		Mileage:      mileage,
		Body:         d.Body.String(),
		Fuel:         d.Fuel.String(),
		Transmission: d.Transmission.String(),
		Location:     location,
		Color:        d.Color.String(),
		Vin:          d.Vin.String(),
		Description:  d.Description.String(),
		Images:       images,
		CreatedAt:    now.UTC(),
	}, nil
}

// parsePrice accepts finite positive numbers only, NaN and Inf would make the
// collection unencodable
func parsePrice(raw string) (float64, bool) {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, false
	}
	return price, true
}

// parseInt accepts integers and decimals such as "2019" or "45000.0". Anything else,
// including values outside the int32 range, is 0.
func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}
