package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"kaamwala/internal/domain/user"
)

func (c *Client) CreateSkill(ctx context.Context, rec SkillRecord) (user.UserSkill, error) {
	var out user.UserSkill
	_, err := c.doJSON(ctx, http.MethodPost, "/api/user-skills/create", rec, &out)
	return out, err
}

func (c *Client) UserSkills(ctx context.Context, userID string) ([]user.UserSkill, error) {
	var out []user.UserSkill
	if _, err := c.getJSON(ctx, "/api/user-skills/user/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSkill(ctx context.Context, id string, s user.UserSkill) (user.UserSkill, error) {
	var out user.UserSkill
	_, err := c.doJSON(ctx, http.MethodPut, "/api/user-skills/"+url.PathEscape(id), s, &out)
	return out, err
}

func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/user-skills/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) BulkCreateSkills(ctx context.Context, userID string, skills []user.UserSkill) ([]user.UserSkill, error) {
	if skills == nil {
		skills = []user.UserSkill{}
	}
	var out []user.UserSkill
	if _, err := c.doJSON(ctx, http.MethodPost, "/api/user-skills/bulk-create/"+url.PathEscape(userID), skills, &out); err != nil {
		return nil, err
	}
	return out, nil
}
