package search

import (
	"net/url"
	"strconv"
	"strings"
)

type Endpoint string

const (
	EndpointAll         Endpoint = "all"
	EndpointCategory    Endpoint = "category"
	EndpointLocation    Endpoint = "location"
	EndpointAdvanced    Endpoint = "advanced"
	EndpointSkill       Endpoint = "skill"
	EndpointSuggestions Endpoint = "suggestions"
)

const (
	pathAll         = "/api/workers/all"
	pathByCategory  = "/api/workers/search/category/"
	pathByLocation  = "/api/workers/search/location/"
	pathBySkill     = "/api/workers/search/skill/"
	pathAdvanced    = "/api/search/workers/advanced"
	pathSuggestions = "/api/search/suggestions"
)

// Request is a single backend call chosen for a search.
type Request struct {
	Endpoint Endpoint
	Path     string
	Query    url.Values
}

func (r Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// Plan selects exactly one backend call for the filters and page.
func Plan(f Filters, page int) Request {
	idx := strconv.Itoa(BackendIndex(page))
	size := strconv.Itoa(PageSize)

	switch n := f.Populated(); {
	case n == 0:
		return Request{
			Endpoint: EndpointAll,
			Path:     pathAll,
			Query:    url.Values{"page": {idx}, "size": {size}, "sortBy": {f.SortKey()}},
		}
	case n == 1 && f.HasCategory():
		return Request{
			Endpoint: EndpointCategory,
			Path:     pathByCategory + url.PathEscape(strings.TrimSpace(f.Category)),
			Query:    url.Values{"page": {idx}, "size": {size}},
		}
	case n == 1 && f.HasLocation():
		return Request{
			Endpoint: EndpointLocation,
			Path:     pathByLocation + url.PathEscape(strings.TrimSpace(f.Location)),
			Query:    url.Values{"page": {idx}, "size": {size}},
		}
	default:
		return Request{
			Endpoint: EndpointAdvanced,
			Path:     pathAdvanced,
			Query:    advancedQuery(f, idx, size),
		}
	}
}

func advancedQuery(f Filters, idx, size string) url.Values {
	q := url.Values{}
	if f.HasCategory() {
		q.Set("categoryId", strings.TrimSpace(f.Category))
	}
	if f.HasLocation() {
		q.Set("location", strings.TrimSpace(f.Location))
	}
	if f.MinRate != nil {
		q.Set("minPrice", formatFloat(*f.MinRate))
	}
	if f.MaxRate != nil {
		q.Set("maxPrice", formatFloat(*f.MaxRate))
	}
	if f.MinExperience != nil {
		q.Set("experienceYears", strconv.Itoa(*f.MinExperience))
	}
	q.Set("pageNumber", idx)
	q.Set("pageSize", size)
	q.Set("sortBy", f.SortKey())
	return q
}

// BySkill is the skill-scoped listing. Plan never selects it.
func BySkill(skillID string, page int) Request {
	return Request{
		Endpoint: EndpointSkill,
		Path:     pathBySkill + url.PathEscape(strings.TrimSpace(skillID)),
		Query:    url.Values{"page": {strconv.Itoa(BackendIndex(page))}, "size": {strconv.Itoa(PageSize)}},
	}
}

func Suggestions(query string) Request {
	return Request{
		Endpoint: EndpointSuggestions,
		Path:     pathSuggestions,
		Query:    url.Values{"query": {query}},
	}
}
