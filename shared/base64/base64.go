package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataURLPrefix = "data:"
	base64Marker  = ";base64,"
)

var ErrInvalidDataURL = errors.New("invalid base64 data URL")

// GetContentType returns the media type of a base64 data URL, or empty when the URL is malformed.
func GetContentType(file string) string {
	start := len(dataURLPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode splits a data URL into its media type and decoded payload.
func Decode(file string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(file, dataURLPrefix) {
		return "", nil, ErrInvalidDataURL
	}

	contentType = GetContentType(file)
	if contentType == "" {
		return "", nil, ErrInvalidDataURL
	}

	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	if len(data) == 0 {
		return "", nil, ErrInvalidDataURL
	}

	return contentType, data, nil
}

// Extension maps an image media type to a file extension.
func Extension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
