package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"kaamwala/internal/domain/category"
)

const (
	cacheKeyActiveCategories    = "categories:active"
	cacheKeyActiveSubCategories = "categories:subcategories:active"
)

type CategoryUsecase interface {
	ListActive(ctx context.Context) ([]category.Category, error)
	ListActiveSubCategories(ctx context.Context) ([]category.SubCategory, error)
	Get(ctx context.Context, id string) (category.Category, error)
	GetSubCategory(ctx context.Context, id string) (category.SubCategory, error)
}

type Category struct {
	api    CategoryAPI
	cache  ReferenceCache
	ttl    time.Duration
	logger *log.Logger
}

// NewCategoryUsecase caches the active lists in cache when it is non-nil.
func NewCategoryUsecase(api CategoryAPI, cache ReferenceCache, ttl time.Duration, logger *log.Logger) *Category {
	return &Category{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (u *Category) ListActive(ctx context.Context) ([]category.Category, error) {
	return cached(ctx, u, cacheKeyActiveCategories, u.api.ActiveCategories)
}

func (u *Category) ListActiveSubCategories(ctx context.Context) ([]category.SubCategory, error) {
	return cached(ctx, u, cacheKeyActiveSubCategories, u.api.ActiveSubCategories)
}

func (u *Category) Get(ctx context.Context, id string) (category.Category, error) {
	if strings.TrimSpace(id) == "" {
		return category.Category{}, invalidField("id", "required", "")
	}
	return u.api.Category(ctx, id)
}

func (u *Category) GetSubCategory(ctx context.Context, id string) (category.SubCategory, error) {
	if strings.TrimSpace(id) == "" {
		return category.SubCategory{}, invalidField("id", "required", "")
	}
	return u.api.SubCategory(ctx, id)
}

func cached[T any](ctx context.Context, u *Category, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if u.cache != nil {
		var hit []T
		ok, err := u.cache.GetJSON(ctx, key, &hit)
		if err != nil && u.logger != nil {
			u.logger.Printf("[Category] cache read failed | key=%s err=%v", key, err)
		}
		if ok {
			return hit, nil
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, u.ttl); err != nil && u.logger != nil {
			u.logger.Printf("[Category] cache write failed | key=%s err=%v", key, err)
		}
	}
	return items, nil
}

var _ CategoryUsecase = (*Category)(nil)
