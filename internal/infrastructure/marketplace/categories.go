package marketplace

import (
	"context"
	"net/url"

	"kaamwala/internal/domain/category"
)

func (c *Client) ActiveCategories(ctx context.Context) ([]category.Category, error) {
	var out []category.Category
	if _, err := c.getJSON(ctx, "/api/categories/active", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ActiveSubCategories(ctx context.Context) ([]category.SubCategory, error) {
	var out []category.SubCategory
	if _, err := c.getJSON(ctx, "/api/categories/subcategories/active", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Category(ctx context.Context, id string) (category.Category, error) {
	var out category.Category
	_, err := c.getJSON(ctx, "/api/categories/getById/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) SubCategory(ctx context.Context, id string) (category.SubCategory, error) {
	var out category.SubCategory
	_, err := c.getJSON(ctx, "/api/categories/subcategories/getById/"+url.PathEscape(id), &out)
	return out, err
}
