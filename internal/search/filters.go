package search

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	SortByName       = "name"
	SortByHourlyRate = "hourlyRate"
	SortByExperience = "experience"

	DefaultSortBy = SortByName
)

// Query string keys used when filters are reflected into a shareable URL.
const (
	KeyCategory      = "category"
	KeyLocation      = "location"
	KeyMinRate       = "minRate"
	KeyMaxRate       = "maxRate"
	KeyMinExperience = "minExperience"
	KeySortBy        = "sortBy"
)

// Filters is the worker search state. Numeric filters are nil when absent.
// SortBy is not a filter; an empty value means DefaultSortBy.
type Filters struct {
	Category      string
	Location      string
	MinRate       *float64
	MaxRate       *float64
	MinExperience *int
	SortBy        string
}

func (f Filters) HasCategory() bool { return strings.TrimSpace(f.Category) != "" }
func (f Filters) HasLocation() bool { return strings.TrimSpace(f.Location) != "" }

func (f Filters) HasNumeric() bool {
	return f.MinRate != nil || f.MaxRate != nil || f.MinExperience != nil
}

// Populated counts the filter dimensions that are set.
func (f Filters) Populated() int {
	n := 0
	if f.HasCategory() {
		n++
	}
	if f.HasLocation() {
		n++
	}
	if f.MinRate != nil {
		n++
	}
	if f.MaxRate != nil {
		n++
	}
	if f.MinExperience != nil {
		n++
	}
	return n
}

func (f Filters) SortKey() string {
	if s := strings.TrimSpace(f.SortBy); s != "" {
		return s
	}
	return DefaultSortBy
}

// Encode writes only the populated fields.
func (f Filters) Encode() url.Values {
	v := url.Values{}
	if f.HasCategory() {
		v.Set(KeyCategory, f.Category)
	}
	if f.HasLocation() {
		v.Set(KeyLocation, f.Location)
	}
	if f.MinRate != nil {
		v.Set(KeyMinRate, formatFloat(*f.MinRate))
	}
	if f.MaxRate != nil {
		v.Set(KeyMaxRate, formatFloat(*f.MaxRate))
	}
	if f.MinExperience != nil {
		v.Set(KeyMinExperience, strconv.Itoa(*f.MinExperience))
	}
	if strings.TrimSpace(f.SortBy) != "" {
		v.Set(KeySortBy, f.SortBy)
	}
	return v
}

// Parse is the inverse of Encode. Unparsable numeric values are treated as
// absent.
func Parse(v url.Values) Filters {
	f := Filters{
		Category: v.Get(KeyCategory),
		Location: v.Get(KeyLocation),
		SortBy:   v.Get(KeySortBy),
	}
	if strings.TrimSpace(f.Category) == "" {
		f.Category = ""
	}
	if strings.TrimSpace(f.Location) == "" {
		f.Location = ""
	}
	if strings.TrimSpace(f.SortBy) == "" {
		f.SortBy = ""
	}
	f.MinRate = parseFloat(v.Get(KeyMinRate))
	f.MaxRate = parseFloat(v.Get(KeyMaxRate))
	f.MinExperience = parseInt(v.Get(KeyMinExperience))
	return f
}

func ParseQuery(raw string) (Filters, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Filters{}, err
	}
	return Parse(v), nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	x, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

// parseInt truncates fractional input toward zero, so "2.5" reads as 2.
func parseInt(raw string) *int {
	x := parseFloat(raw)
	if x == nil || math.Abs(*x) > math.MaxInt32 {
		return nil
	}
	n := int(*x)
	return &n
}
