package usecase

import (
	"context"
	"log"
	"strings"

	"kaamwala/internal/domain/worker"
	"kaamwala/internal/search"
	"kaamwala/internal/session"
)

type WorkerSearchResult struct {
	Workers  []worker.Card   `json:"workers"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
	HasMore  bool            `json:"hasMore"`
	Endpoint search.Endpoint `json:"endpoint"`
	// Query is the shareable query string for the filters.
	Query string `json:"query"`
}

type WorkerSearchUsecase interface {
	Search(ctx context.Context, sess *session.Session, f search.Filters, page int) (WorkerSearchResult, error)
	BySkill(ctx context.Context, sess *session.Session, skillID string, page int) (WorkerSearchResult, error)
	Suggestions(ctx context.Context, sess *session.Session, query string) ([]string, error)
}

type WorkerSearch struct {
	api    WorkerAPI
	logger *log.Logger
}

func NewWorkerSearchUsecase(api WorkerAPI, logger *log.Logger) *WorkerSearch {
	return &WorkerSearch{api: api, logger: logger}
}

func (u *WorkerSearch) Search(ctx context.Context, sess *session.Session, f search.Filters, page int) (WorkerSearchResult, error) {
	req := search.Plan(f, page)
	res, err := u.run(ctx, sess, req, page)
	if err != nil {
		return WorkerSearchResult{}, err
	}
	res.Query = f.Encode().Encode()
	return res, nil
}

func (u *WorkerSearch) BySkill(ctx context.Context, sess *session.Session, skillID string, page int) (WorkerSearchResult, error) {
	if strings.TrimSpace(skillID) == "" {
		return WorkerSearchResult{}, invalidField("skillId", "required", "")
	}
	return u.run(ctx, sess, search.BySkill(skillID, page), page)
}

// Suggestions skips the backend for queries that normalise to nothing.
func (u *WorkerSearch) Suggestions(ctx context.Context, sess *session.Session, query string) ([]string, error) {
	q := search.NormalizeQuery(query)
	if q == "" {
		return []string{}, nil
	}
	out, err := u.api.Suggestions(withSession(ctx, sess), q)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *WorkerSearch) run(ctx context.Context, sess *session.Session, req search.Request, page int) (WorkerSearchResult, error) {
	rows, err := u.api.Workers(withSession(ctx, sess), req)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[WorkerSearch] backend call failed | endpoint=%s err=%v", req.Endpoint, err)
		}
		return WorkerSearchResult{}, err
	}
	return WorkerSearchResult{
		Workers:  worker.NormalizeAll(rows, u.api.BaseURL()),
		Page:     search.ClampPage(page),
		PageSize: search.PageSize,
		HasMore:  search.HasMore(len(rows), search.PageSize),
		Endpoint: req.Endpoint,
	}, nil
}

var _ WorkerSearchUsecase = (*WorkerSearch)(nil)
