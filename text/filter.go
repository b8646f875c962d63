package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
)

// Filter selects which character classes survive layout.
// Glyphs outside the selected classes are dropped and leave no gap.
type Filter uint8

const (
	// FilterNone keeps every glyph.
	FilterNone Filter = iota

	// FilterLettersOnly keeps letters.
	FilterLettersOnly

	// FilterDigitsOnly keeps decimal digits.
	FilterDigitsOnly

	// FilterAlnumOnly keeps letters and digits.
	FilterAlnumOnly

	// FilterSymbolsOnly keeps characters that are neither letters nor digits.
	FilterSymbolsOnly

	// FilterLettersAndSymbols drops digits.
	FilterLettersAndSymbols

	// FilterDigitsAndSymbols drops letters.
	FilterDigitsAndSymbols
)

var filterNames = [...]string{
	FilterNone:              "none",
	FilterLettersOnly:       "letters",
	FilterDigitsOnly:        "digits",
	FilterAlnumOnly:         "alnum",
	FilterSymbolsOnly:       "symbols",
	FilterLettersAndSymbols: "letters+symbols",
	FilterDigitsAndSymbols:  "digits+symbols",
}

// Character classes used by the filters.
var (
	letterSet = runes.In(unicode.Letter)
	digitSet  = runes.In(unicode.Digit)
	symbolSet = runes.Predicate(func(r rune) bool {
		return !letterSet.Contains(r) && !digitSet.Contains(r) &&
			!unicode.IsSpace(r) && !unicode.IsControl(r)
	})
)

// filterTable lists, per filter, whether letters, digits and symbols pass.
var filterTable = [...][3]bool{
	FilterNone:              {true, true, true},
	FilterLettersOnly:       {true, false, false},
	FilterDigitsOnly:        {false, true, false},
	FilterAlnumOnly:         {true, true, false},
	FilterSymbolsOnly:       {false, false, true},
	FilterLettersAndSymbols: {true, false, true},
	FilterDigitsAndSymbols:  {false, true, true},
}

// String returns the string representation of the filter.
func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return "unknown"
}

// Allows reports whether r passes the filter. FilterNone and unknown
// filters allow everything.
func (f Filter) Allows(r rune) bool {
	if f == FilterNone || int(f) >= len(filterTable) {
		return true
	}
	classes := filterTable[f]
	switch {
	case letterSet.Contains(r):
		return classes[0]
	case digitSet.Contains(r):
		return classes[1]
	case symbolSet.Contains(r):
		return classes[2]
	default:
		return false
	}
}

// ParseFilter parses a filter name as produced by String.
// Matching is case-insensitive; "" parses as FilterNone.
func ParseFilter(s string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return FilterNone, nil
	}
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return FilterNone, &UnknownFilterError{Name: s}
}

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(b []byte) error {
	v, err := ParseFilter(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
