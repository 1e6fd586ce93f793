package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"kaamwala/internal/app"
	"kaamwala/internal/config"
	"kaamwala/internal/delivery/http/middleware"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/pkg/idgen"
	"kaamwala/internal/pkg/jwt"
	"kaamwala/internal/pkg/validate"
	"kaamwala/internal/session"

	"github.com/gofiber/fiber/v3"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// fakeMarketplace records the calls the gateway makes and answers with canned
// envelopes.
type fakeMarketplace struct {
	mu      sync.Mutex
	calls   []string
	bulk    []map[string]any
	created map[string]any
	updated map[string]any
	authHdr []string
}

func (f *fakeMarketplace) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.authHdr = append(f.authHdr, r.Header.Get("Authorization"))
}

func (f *fakeMarketplace) called(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeMarketplace) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.record(r)

	worker := map[string]any{
		"userId": "WORKER_1", "name": "Ravi Kumar", "email": "ravi@example.com",
		"role": "worker", "serviceAreas": "Pune", "preferredLocation": "Pune",
		"phone": "9876543210", "gender": "Male",
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/users/create":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.created = body
		f.mu.Unlock()
		writeEnvelope(w, 200, map[string]any{"success": true, "data": worker})
	case r.Method == http.MethodPut && r.URL.Path == "/users/update/WORKER_1":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.updated = body
		f.mu.Unlock()
		writeEnvelope(w, 200, map[string]any{"success": true, "data": body})
	case r.Method == http.MethodPost && r.URL.Path == "/users/uploadImage/WORKER_1":
		if err := r.ParseMultipartForm(1 << 20); err != nil || r.MultipartForm.File[marketplace.ImageField] == nil {
			writeEnvelope(w, 400, map[string]any{"success": false, "message": "missing image"})
			return
		}
		writeEnvelope(w, 200, map[string]any{"success": true})
	case r.Method == http.MethodPost && r.URL.Path == "/api/user-skills/bulk-create/WORKER_1":
		var skills []map[string]any
		_ = json.NewDecoder(r.Body).Decode(&skills)
		f.mu.Lock()
		f.bulk = skills
		f.mu.Unlock()
		writeEnvelope(w, 200, map[string]any{"success": true, "data": skills})
	case r.Method == http.MethodGet && r.URL.Path == "/users/getById/WORKER_1":
		worker["name"] = "Ravi (backend)"
		writeEnvelope(w, 200, map[string]any{"success": true, "data": worker})
	case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
		writeEnvelope(w, 200, map[string]any{"success": true, "token": "backend-token", "data": map[string]any{"user": worker}})
	case r.Method == http.MethodGet && r.URL.Path == "/api/auth/me":
		if r.Header.Get("Authorization") != "Bearer backend-token" {
			writeEnvelope(w, 401, map[string]any{"success": false, "message": "Unauthorized"})
			return
		}
		writeEnvelope(w, 200, map[string]any{"success": true, "data": worker})
	case r.Method == http.MethodPost && r.URL.Path == "/api/auth/logout":
		writeEnvelope(w, 200, map[string]any{"success": true})
	case r.Method == http.MethodGet && r.URL.Path == "/api/workers/search/category/Plumbing":
		rows := []map[string]any{{
			"userId": "W1", "name": "Meera", "experienceYears": 6, "serviceArea": "Pune",
			"phoneNumber": "9123456789", "imageName": "w1.png",
			"userSkills": []map[string]any{{"subCategoryName": "Pipe Fitting"}},
		}}
		writeEnvelope(w, 200, map[string]any{"success": true, "data": rows})
	case r.Method == http.MethodGet && r.URL.Path == "/api/search/workers/advanced":
		writeEnvelope(w, 500, map[string]any{"success": false, "message": "Search index rebuilding"})
	default:
		writeEnvelope(w, 404, map[string]any{"success": false, "message": "Not found: " + r.URL.Path})
	}
}

type gateway struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func newGateway(t *testing.T) (*gateway, *fakeMarketplace, string) {
	t.Helper()

	fake := &fakeMarketplace{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	logger := log.New(io.Discard, "", 0)
	c := &app.Container{
		Config: config.Config{
			App:     config.AppConfig{AppName: "kaamwala", Environment: "test", HTTPPort: "0"},
			Session: config.SessionConfig{Secret: testSecret, Backend: config.SessionBackendMemory, TTL: time.Hour},
		},
		Logger:      logger,
		Sessions:    session.NewStore(session.NewMemory(), time.Hour, logger),
		Marketplace: marketplace.NewClientWithHTTP(srv.URL, srv.Client(), logger),
		JWT:         jwt.NewHMACService(testSecret, "kaamwala", time.Hour),
		Validator:   validate.New(),
		SkillIDs:    idgen.NewUUID(),
	}
	return &gateway{t: t, app: app.New(c).Fiber}, fake, srv.URL
}

func (g *gateway) do(req *http.Request) (int, semanticResponse) {
	g.t.Helper()
	if g.token != "" {
		req.Header.Set(middleware.HeaderSession, g.token)
	}

	resp, err := g.app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		g.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if tok := resp.Header.Get(middleware.HeaderSession); tok != "" {
		g.token = tok
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		g.t.Fatalf("%s %s: decode: %v", req.Method, req.URL.Path, err)
	}
	if sr.Status != resp.StatusCode {
		g.t.Fatalf("envelope status %d does not match HTTP status %d", sr.Status, resp.StatusCode)
	}
	return resp.StatusCode, sr
}

func (g *gateway) get(path string) (int, semanticResponse) {
	return g.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (g *gateway) postJSON(path string, body any) (int, semanticResponse) {
	return g.sendJSON(http.MethodPost, path, body)
}

func (g *gateway) sendJSON(method, path string, body any) (int, semanticResponse) {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return g.do(req)
}

func registrationRequest(t *testing.T) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name": "Ravi Kumar", "email": "ravi@example.com", "password": "secret1",
		"gender": "Male", "phone": "9876543210", "role": "worker",
		"experience": "5", "hourlyRate": "300", "serviceAreas": "Pune",
		"skills": "SUB_A,SUB_B",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="userImage"; filename="me.png"`)
	h.Set("Content-Type", "image/png")
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestGateway_RegisterThenProfileHandoff(t *testing.T) {
	g, fake, _ := newGateway(t)

	status, sr := g.do(registrationRequest(t))
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", status, sr.Message)
	}
	var reg struct {
		User     map[string]any   `json:"user"`
		Warnings []map[string]any `json:"warnings"`
		Redirect string           `json:"redirect"`
	}
	if err := json.Unmarshal(sr.Data, &reg); err != nil {
		t.Fatalf("register: decode data: %v", err)
	}
	if len(reg.Warnings) != 0 || reg.Redirect != "/profile/WORKER_1" {
		t.Fatalf("register: unexpected data %s", sr.Data)
	}
	if !fake.called("POST /users/uploadImage/WORKER_1") {
		t.Fatalf("expected image upload")
	}
	if len(fake.bulk) != 2 || fake.bulk[0]["isPrimarySkill"] != true || fake.bulk[1]["isPrimarySkill"] != false {
		t.Fatalf("expected two skills with the first primary, got %v", fake.bulk)
	}

	_, sr = g.get("/api/v1/profile/WORKER_1")
	var view struct {
		User        map[string]any `json:"user"`
		FromHandoff bool           `json:"fromHandoff"`
		Action      string         `json:"action"`
	}
	_ = json.Unmarshal(sr.Data, &view)
	if !view.FromHandoff || view.User["name"] != "Ravi Kumar" {
		t.Fatalf("expected first view from handoff, got %s", sr.Data)
	}

	_, sr = g.get("/api/v1/profile/WORKER_1")
	_ = json.Unmarshal(sr.Data, &view)
	if view.FromHandoff || view.User["name"] != "Ravi (backend)" {
		t.Fatalf("expected second view from backend, got %s", sr.Data)
	}
}

func TestGateway_NumericJSONFields(t *testing.T) {
	g, fake, _ := newGateway(t)

	status, sr := g.postJSON("/api/v1/auth/register", map[string]any{
		"name": "Ravi Kumar", "email": "ravi@example.com", "password": "secret1",
		"gender": "Male", "phone": "9876543210", "role": "worker",
		"experience": 5, "hourlyRate": 300.5, "serviceAreas": "Pune",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", status, sr.Message)
	}
	fake.mu.Lock()
	created := fake.created
	fake.mu.Unlock()
	if created["experience"] != float64(5) || created["hourlyRate"] != 300.5 {
		t.Fatalf("register: expected numeric fields forwarded, got %v", created)
	}

	status, sr = g.postJSON("/api/v1/auth/register", map[string]any{
		"name": "Ravi Kumar", "email": "ravi@example.com", "password": "secret1",
		"gender": "Male", "phone": "9876543210", "role": "worker",
		"experience": nil, "hourlyRate": "abc", "serviceAreas": "Pune",
	})
	if status != http.StatusCreated {
		t.Fatalf("register with null and text: expected 201, got %d (%s)", status, sr.Message)
	}

	status, sr = g.sendJSON(http.MethodPut, "/api/v1/profile/WORKER_1", map[string]any{
		"phone": "9876543210", "experience": 7, "hourlyRate": 450, "serviceAreas": "Pune",
	})
	if status != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d (%s)", status, sr.Message)
	}
	fake.mu.Lock()
	updated := fake.updated
	fake.mu.Unlock()
	if updated["experience"] != float64(7) || updated["hourlyRate"] != float64(450) {
		t.Fatalf("profile: expected numeric fields merged, got %v", updated)
	}
	var view struct {
		PrimaryLocation string `json:"primaryLocation"`
	}
	_ = json.Unmarshal(sr.Data, &view)
	if view.PrimaryLocation != "Pune" {
		t.Fatalf("profile: expected primary location Pune, got %s", sr.Data)
	}

	status, _ = g.sendJSON(http.MethodPut, "/api/v1/profile/WORKER_1", map[string]any{
		"phone": "9876543210", "experience": 7, "hourlyRate": 20, "serviceAreas": "Pune",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("profile: expected numeric rate below minimum to fail validation, got %d", status)
	}
}

func TestGateway_LoginMeLogout(t *testing.T) {
	g, fake, _ := newGateway(t)

	status, sr := g.postJSON("/api/v1/auth/login", map[string]string{"email": "ravi@example.com", "password": "secret1"})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", status, sr.Message)
	}
	if g.token == "" {
		t.Fatalf("login: expected a session token")
	}

	status, sr = g.get("/api/v1/auth/me")
	if status != http.StatusOK {
		t.Fatalf("me: expected 200, got %d (%s)", status, sr.Message)
	}
	fake.mu.Lock()
	lastAuth := fake.authHdr[len(fake.authHdr)-1]
	fake.mu.Unlock()
	if lastAuth != "Bearer backend-token" {
		t.Fatalf("me: expected bearer token, got %q", lastAuth)
	}

	if status, _ := g.postJSON("/api/v1/auth/logout", nil); status != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", status)
	}

	status, sr = g.get("/api/v1/auth/me")
	if status != http.StatusUnauthorized {
		t.Fatalf("me after logout: expected 401, got %d", status)
	}
	if !strings.Contains(string(sr.Data), `"/login"`) {
		t.Fatalf("me after logout: expected login redirect, got %s", sr.Data)
	}
}

func TestGateway_SearchNormalizesAndMapsErrors(t *testing.T) {
	g, _, base := newGateway(t)

	status, sr := g.get("/api/v1/workers/search?category=Plumbing&page=1")
	if status != http.StatusOK {
		t.Fatalf("search: expected 200, got %d (%s)", status, sr.Message)
	}
	var res struct {
		Workers  []map[string]any `json:"workers"`
		Endpoint string           `json:"endpoint"`
		Query    string           `json:"query"`
	}
	if err := json.Unmarshal(sr.Data, &res); err != nil {
		t.Fatalf("search: decode: %v", err)
	}
	if res.Endpoint != "category" || res.Query != "category=Plumbing" || len(res.Workers) != 1 {
		t.Fatalf("search: unexpected result %s", sr.Data)
	}
	w := res.Workers[0]
	if w["experience"] != float64(6) || w["serviceAreas"] != "Pune" || w["phone"] != "9123456789" {
		t.Fatalf("search: expected normalized card, got %v", w)
	}
	if w["imageUrl"] != base+"/users/image/W1" {
		t.Fatalf("search: unexpected image url %v", w["imageUrl"])
	}

	status, sr = g.get("/api/v1/workers/search?location=Pune&minRate=100")
	if status != http.StatusInternalServerError || sr.Message != "Search index rebuilding" {
		t.Fatalf("advanced search: expected verbatim 500, got %d %q", status, sr.Message)
	}
}

func TestGateway_ValidationAndHealth(t *testing.T) {
	g, fake, _ := newGateway(t)

	status, sr := g.postJSON("/api/v1/contact", map[string]string{
		"name": "A", "email": "nope", "subject": "general", "message": "hi",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("contact: expected 400, got %d", status)
	}
	var fields []map[string]string
	_ = json.Unmarshal(sr.Data, &fields)
	if len(fields) != 3 {
		t.Fatalf("contact: expected name, email and message errors, got %s", sr.Data)
	}
	if fake.called("POST /api/contact/submit") {
		t.Fatalf("contact: backend must not be called")
	}

	if status, _ := g.get("/health"); status != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", status)
	}
}
