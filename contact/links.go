// Package contact builds the outbound messaging and directions links.
package contact

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/linesmerrill/storefront-api/models"
)

const (
	whatsAppBase   = "https://wa.me/"
	directionsBase = "https://www.google.com/maps/dir/?api=1&destination="

	// DefaultMessage pre-fills a messaging link that has no text of its own
	DefaultMessage = "Hi, I'm interested in one of your vehicles."
	// NoLink is returned when there is nothing to link to
	NoLink = "#"
)

// WhatsAppLink links to a chat with phone pre-filled with text. Everything but the
// digits of phone is dropped.
func WhatsAppLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return NoLink
	}
	if text == "" {
		text = DefaultMessage
	}
	return whatsAppBase + digits + "?text=" + EscapeComponent(text)
}

// DirectionsLink links to driving directions towards address
func DirectionsLink(address string) string {
	if address == "" {
		return NoLink
	}
	return directionsBase + EscapeComponent(address)
}

// VehicleEnquiry is the pre-filled message of a listing's contact button
func VehicleEnquiry(v models.VehicleListing) string {
	return fmt.Sprintf("Hi, I'm interested in the %s for £%s. Is it available?", v.Title, FormatNumber(v.Price))
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s for use inside a URL query value, leaving the same
// characters unescaped as a browser's encodeURIComponent
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// FormatNumber groups the integer part in thousands and keeps up to three decimals,
// 12500 becomes "12,500" and 9995.5 becomes "9,995.5"
func FormatNumber(n float64) string {
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}
	raw := strconv.FormatFloat(n, 'f', 3, 64)
	intPart, frac, _ := strings.Cut(raw, ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}
