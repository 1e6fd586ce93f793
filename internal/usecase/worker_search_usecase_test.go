package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kaamwala/internal/domain/worker"
	"kaamwala/internal/search"
)

func fullPage() []worker.Row {
	rows := make([]worker.Row, search.PageSize)
	for i := range rows {
		rows[i] = worker.Row{UserID: fmt.Sprintf("W%d", i), Name: "Worker"}
	}
	return rows
}

func TestSearch_CategoryOnly(t *testing.T) {
	api := newFakeAPI()
	api.rows = fullPage()
	uc := NewWorkerSearchUsecase(api, nil)

	res, err := uc.Search(context.Background(), nil, search.Filters{Category: "Plumber"}, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Endpoint != search.EndpointCategory || api.lastRequest.Endpoint != search.EndpointCategory {
		t.Fatalf("expected category endpoint, got %s", res.Endpoint)
	}
	if !res.HasMore || res.Page != 2 || len(res.Workers) != search.PageSize {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Query != "category=Plumber" {
		t.Fatalf("unexpected query %q", res.Query)
	}
	if res.Workers[0].ImageURL != worker.DefaultAvatar {
		t.Fatalf("expected default avatar, got %q", res.Workers[0].ImageURL)
	}
}

func TestSearch_ShortPageHasNoMore(t *testing.T) {
	api := newFakeAPI()
	api.rows = fullPage()[:3]
	uc := NewWorkerSearchUsecase(api, nil)

	rate := 100.0
	res, err := uc.Search(context.Background(), nil, search.Filters{MinRate: &rate}, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.HasMore || res.Page != 1 || res.Endpoint != search.EndpointAdvanced {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSearch_BackendError(t *testing.T) {
	api := newFakeAPI()
	api.workersErr = errors.New("down")
	uc := NewWorkerSearchUsecase(api, nil)
	if _, err := uc.Search(context.Background(), nil, search.Filters{}, 1); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBySkill_RequiresID(t *testing.T) {
	uc := NewWorkerSearchUsecase(newFakeAPI(), nil)
	if _, err := uc.BySkill(context.Background(), nil, " ", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSuggestions_EmptyQuerySkipsBackend(t *testing.T) {
	api := newFakeAPI()
	api.suggestions = []string{"plumber"}
	uc := NewWorkerSearchUsecase(api, nil)

	out, err := uc.Suggestions(context.Background(), nil, " -- ")
	if err != nil || len(out) != 0 || out == nil {
		t.Fatalf("expected empty non-nil list, got %v err=%v", out, err)
	}
	out, _ = uc.Suggestions(context.Background(), nil, "Plum")
	if len(out) != 1 {
		t.Fatalf("expected backend suggestions, got %v", out)
	}
}
