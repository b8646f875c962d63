package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFace is returned when a renderer is created without a face.
	ErrNilFace = errors.New("text: nil font face")

	// ErrInvalidSize is returned for non-positive or non-finite font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")
)

// UnknownFilterError is returned when parsing an unrecognized filter name.
type UnknownFilterError struct {
	Name string
}

func (e *UnknownFilterError) Error() string {
	return "text: unknown filter " + `"` + e.Name + `"`
}
