// Package images turns uploaded image files into strings a listing or the logo can
// hold: a data URI by default, or the URL of the object in a remote image store.
package images

import (
	"encoding/base64"
	"errors"
	"mime"
	"net/http"
	"strings"
)

// ErrNotImage is returned for a payload that is not an image
var ErrNotImage = errors.New("file is not an image")

// EncodeDataURI returns data as a base64 data URI. An empty or generic contentType is
// sniffed from data.
func EncodeDataURI(contentType string, data []byte) (string, error) {
	contentType, err := imageType(contentType, data)
	if err != nil {
		return "", err
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func imageType(contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType == "application/octet-stream" {
		mediaType, _, _ = mime.ParseMediaType(http.DetectContentType(data))
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", ErrNotImage
	}
	return mediaType, nil
}

// IsDataURI reports whether s is an embedded image rather than a URL
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, "data:image/")
}
