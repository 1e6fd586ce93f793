package usecase

import (
	"context"
	"time"

	"kaamwala/internal/domain/category"
	"kaamwala/internal/domain/contact"
	"kaamwala/internal/domain/user"
	"kaamwala/internal/domain/worker"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/search"
)

type WorkerAPI interface {
	Workers(ctx context.Context, req search.Request) ([]worker.Row, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
	BaseURL() string
}

type CategoryAPI interface {
	ActiveCategories(ctx context.Context) ([]category.Category, error)
	ActiveSubCategories(ctx context.Context) ([]category.SubCategory, error)
	Category(ctx context.Context, id string) (category.Category, error)
	SubCategory(ctx context.Context, id string) (category.SubCategory, error)
}

type UserAPI interface {
	CreateUser(ctx context.Context, p user.RegistrationPayload) (user.User, error)
	User(ctx context.Context, id string) (user.User, error)
	UserByEmail(ctx context.Context, email string) (user.User, error)
	UpdateUser(ctx context.Context, id string, u user.User) (user.User, error)
	DeleteUser(ctx context.Context, id string) error
	Users(ctx context.Context, pageNumber, pageSize int) ([]user.User, error)
	UploadImage(ctx context.Context, userID string, f marketplace.File) error
}

type SkillAPI interface {
	CreateSkill(ctx context.Context, rec marketplace.SkillRecord) (user.UserSkill, error)
	UserSkills(ctx context.Context, userID string) ([]user.UserSkill, error)
	UpdateSkill(ctx context.Context, id string, s user.UserSkill) (user.UserSkill, error)
	DeleteSkill(ctx context.Context, id string) error
	BulkCreateSkills(ctx context.Context, userID string, skills []user.UserSkill) ([]user.UserSkill, error)
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (marketplace.LoginResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (user.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
}

type ContactAPI interface {
	SubmitContact(ctx context.Context, m contact.Message) (string, error)
	ContactMessages(ctx context.Context) ([]contact.Message, error)
}

// ReferenceCache stores JSON documents with a TTL. Misses and errors fall
// through to the backend.
type ReferenceCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Validator checks struct tags.
type Validator interface {
	Struct(s any) error
}

var (
	_ WorkerAPI   = (*marketplace.Client)(nil)
	_ CategoryAPI = (*marketplace.Client)(nil)
	_ UserAPI     = (*marketplace.Client)(nil)
	_ SkillAPI    = (*marketplace.Client)(nil)
	_ AuthAPI     = (*marketplace.Client)(nil)
	_ ContactAPI  = (*marketplace.Client)(nil)
)
