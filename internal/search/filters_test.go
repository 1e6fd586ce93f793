package search

import (
	"net/url"
	"reflect"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// allCombinations builds every present/absent mix of the six fields.
func allCombinations() []Filters {
	out := make([]Filters, 0, 64)
	for mask := 0; mask < 64; mask++ {
		var f Filters
		if mask&1 != 0 {
			f.Category = "CAT_42"
		}
		if mask&2 != 0 {
			f.Location = "Navi Mumbai / Sector 7"
		}
		if mask&4 != 0 {
			f.MinRate = floatPtr(150.5)
		}
		if mask&8 != 0 {
			f.MaxRate = floatPtr(2000)
		}
		if mask&16 != 0 {
			f.MinExperience = intPtr(3)
		}
		if mask&32 != 0 {
			f.SortBy = SortByHourlyRate
		}
		out = append(out, f)
	}
	return out
}

func TestFilters_RoundTrip(t *testing.T) {
	for _, f := range allCombinations() {
		encoded := f.Encode().Encode()
		got, err := ParseQuery(encoded)
		if err != nil {
			t.Fatalf("parse %q: %v", encoded, err)
		}
		if !reflect.DeepEqual(got, f) {
			t.Fatalf("round trip mismatch for %q: got %+v want %+v", encoded, got, f)
		}
	}
}

func TestFilters_EncodeOnlyPopulated(t *testing.T) {
	v := Filters{Category: "  ", MinRate: floatPtr(0)}.Encode()
	if _, ok := v[KeyCategory]; ok {
		t.Fatalf("blank category must not be encoded")
	}
	if v.Get(KeyMinRate) != "0" {
		t.Fatalf("expected minRate=0, got %q", v.Get(KeyMinRate))
	}
	if len(v) != 1 {
		t.Fatalf("expected a single key, got %v", v)
	}
}

func TestParse_UnparsableNumericIsAbsent(t *testing.T) {
	f := Parse(url.Values{
		KeyMinRate:       {"cheap"},
		KeyMaxRate:       {"NaN"},
		KeyMinExperience: {"two"},
	})
	if f.MinRate != nil || f.MaxRate != nil || f.MinExperience != nil {
		t.Fatalf("expected numeric filters absent, got %+v", f)
	}
	if f.Populated() != 0 {
		t.Fatalf("expected nothing populated")
	}
}

func TestParse_FractionalExperienceTruncates(t *testing.T) {
	f := Parse(url.Values{KeyMinExperience: {" 2.5 "}})
	if f.MinExperience == nil || *f.MinExperience != 2 {
		t.Fatalf("expected minExperience 2, got %v", f.MinExperience)
	}
	if got := f.Encode().Get(KeyMinExperience); got != "2" {
		t.Fatalf("expected encoded minExperience 2, got %q", got)
	}
}

func TestFilters_SortKeyDefault(t *testing.T) {
	if (Filters{}).SortKey() != "name" {
		t.Fatalf("expected default sort by name")
	}
	if (Filters{SortBy: SortByExperience}).SortKey() != SortByExperience {
		t.Fatalf("expected explicit sort to win")
	}
}
