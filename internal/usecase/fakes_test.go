package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"kaamwala/internal/domain/category"
	"kaamwala/internal/domain/contact"
	"kaamwala/internal/domain/user"
	"kaamwala/internal/domain/worker"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/pkg/validate"
	"kaamwala/internal/search"
	"kaamwala/internal/session"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeAPI struct {
	mu sync.Mutex

	rows        []worker.Row
	lastRequest search.Request
	suggestions []string
	workersErr  error

	categories    []category.Category
	categoryCalls int

	users        map[string]user.User
	createResult user.User
	createErr    error
	createCalls  int
	created      []user.RegistrationPayload
	updated      []user.User
	uploadErr    error
	uploads      []string
	deleted      []string
	listPage     int
	listSize     int

	bulkErr   error
	bulk      [][]user.UserSkill
	skillRecs []marketplace.SkillRecord

	login     marketplace.LoginResult
	loginErr  error
	meErr     error
	me        user.User
	logoutErr error
	logouts   int
	tokens    []string

	contactMsgs []contact.Message
	contactErr  error

	block chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{users: map[string]user.User{}}
}

func (f *fakeAPI) token(ctx context.Context) {
	if c, ok := marketplace.CredentialsFromContext(ctx); ok {
		tok, _ := c.Token(ctx)
		f.tokens = append(f.tokens, tok)
	}
}

func (f *fakeAPI) Workers(ctx context.Context, req search.Request) ([]worker.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastRequest = req
	return f.rows, f.workersErr
}

func (f *fakeAPI) Suggestions(_ context.Context, q string) ([]string, error) {
	return f.suggestions, nil
}

func (f *fakeAPI) BaseURL() string { return "" }

func (f *fakeAPI) ActiveCategories(context.Context) ([]category.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categoryCalls++
	return f.categories, nil
}

func (f *fakeAPI) ActiveSubCategories(context.Context) ([]category.SubCategory, error) {
	return nil, nil
}

func (f *fakeAPI) Category(_ context.Context, id string) (category.Category, error) {
	return category.Category{CategoryID: id}, nil
}

func (f *fakeAPI) SubCategory(_ context.Context, id string) (category.SubCategory, error) {
	return category.SubCategory{SubCategoryID: id}, nil
}

func (f *fakeAPI) CreateUser(_ context.Context, p user.RegistrationPayload) (user.User, error) {
	f.mu.Lock()
	f.createCalls++
	f.created = append(f.created, p)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.createResult, f.createErr
}

func (f *fakeAPI) User(ctx context.Context, id string) (user.User, error) {
	f.token(ctx)
	u, ok := f.users[id]
	if !ok {
		return user.User{}, &marketplace.APIError{StatusCode: 404, Message: "User not found"}
	}
	return u, nil
}

func (f *fakeAPI) UserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, &marketplace.APIError{StatusCode: 404, Message: "User not found"}
}

func (f *fakeAPI) UpdateUser(_ context.Context, id string, u user.User) (user.User, error) {
	f.updated = append(f.updated, u)
	f.users[id] = u
	return u, nil
}

func (f *fakeAPI) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Users(_ context.Context, page, size int) ([]user.User, error) {
	f.listPage, f.listSize = page, size
	out := []user.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeAPI) UploadImage(_ context.Context, id string, _ marketplace.File) error {
	f.uploads = append(f.uploads, id)
	return f.uploadErr
}

func (f *fakeAPI) CreateSkill(_ context.Context, rec marketplace.SkillRecord) (user.UserSkill, error) {
	f.skillRecs = append(f.skillRecs, rec)
	return rec.UserSkill, nil
}

func (f *fakeAPI) UserSkills(context.Context, string) ([]user.UserSkill, error) { return nil, nil }

func (f *fakeAPI) UpdateSkill(_ context.Context, _ string, s user.UserSkill) (user.UserSkill, error) {
	return s, nil
}

func (f *fakeAPI) DeleteSkill(context.Context, string) error { return nil }

func (f *fakeAPI) BulkCreateSkills(_ context.Context, _ string, skills []user.UserSkill) ([]user.UserSkill, error) {
	f.bulk = append(f.bulk, skills)
	if f.bulkErr != nil {
		return nil, f.bulkErr
	}
	return skills, nil
}

func (f *fakeAPI) Login(context.Context, string, string) (marketplace.LoginResult, error) {
	return f.login, f.loginErr
}

func (f *fakeAPI) Logout(ctx context.Context) error {
	f.token(ctx)
	f.logouts++
	return f.logoutErr
}

func (f *fakeAPI) Me(ctx context.Context) (user.User, error) {
	f.token(ctx)
	return f.me, f.meErr
}

func (f *fakeAPI) ForgotPassword(context.Context, string) (string, error) {
	return "Reset link sent", nil
}

func (f *fakeAPI) SubmitContact(_ context.Context, m contact.Message) (string, error) {
	f.contactMsgs = append(f.contactMsgs, m)
	return "Thanks for reaching out", f.contactErr
}

func (f *fakeAPI) ContactMessages(context.Context) ([]contact.Message, error) {
	return f.contactMsgs, nil
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
	err   error
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.items == nil {
		c.items = map[string][]byte{}
	}
	c.items[key] = b
	return nil
}

type seqIDs struct{ n int }

func (s *seqIDs) SkillID(userID string) string {
	s.n++
	return fmt.Sprintf("USK_%s_%d", userID, s.n)
}

func newSession(id string) *session.Session {
	return session.NewStore(session.NewMemory(), time.Hour, nil).Session(id)
}

func newValidator() *validate.Validator {
	return validate.New()
}
