package dto

import (
	"kaamwala/internal/domain/worker"
	"kaamwala/internal/search"
	"kaamwala/internal/usecase"
)

type WorkerSearchResponse struct {
	Workers    []worker.Card   `json:"workers"`
	Pagination Pagination      `json:"pagination"`
	Endpoint   search.Endpoint `json:"endpoint"`
	Query      string          `json:"query"`
}

type Pagination struct {
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
	NextPage *int `json:"nextPage,omitempty"`
}

func NewWorkerSearchResponse(res usecase.WorkerSearchResult) WorkerSearchResponse {
	workers := res.Workers
	if workers == nil {
		workers = []worker.Card{}
	}
	p := Pagination{Page: res.Page, PageSize: res.PageSize, HasMore: res.HasMore}
	if res.HasMore {
		next := res.Page + 1
		p.NextPage = &next
	}
	return WorkerSearchResponse{Workers: workers, Pagination: p, Endpoint: res.Endpoint, Query: res.Query}
}
