package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tripnest/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) GetUser(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return models.ErrConflict
	}
	f.users[user.Email] = user
	return nil
}

type fakeTokenStore struct {
	tokens map[string]models.Token
	writes int
}

func (f *fakeTokenStore) GetToken(_ context.Context, email string) (*models.Token, error) {
	t, ok := f.tokens[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token models.Token) error {
	f.tokens[token.Email] = token
	f.writes++
	return nil
}

func newTestHandlers(t *testing.T) (*Handlers, *fakeTokenStore) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("12345"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	users := &fakeUserStore{users: map[string]models.User{
		"jack@test.com": {Email: "jack@test.com", Password: string(hashed), Name: "Jack Chen"},
	}}
	tokens := &fakeTokenStore{tokens: map[string]models.Token{}}
	return NewHandlers(users, tokens), tokens
}

func postToken(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/user/gettoken", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.GetToken(w, req, nil)
	return w
}

func TestGetTokenMissingFields(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := postToken(t, h, `{"email":"jack@test.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetTokenUnknownUser(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := postToken(t, h, `{"email":"nobody@test.com","password":"12345"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetTokenWrongPassword(t *testing.T) {
	h, tokens := newTestHandlers(t)

	w := postToken(t, h, `{"email":"jack@test.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if tokens.writes != 0 {
		t.Fatalf("expected no token writes, got %d", tokens.writes)
	}
}

func TestGetTokenIdempotent(t *testing.T) {
	h, tokens := newTestHandlers(t)

	first := postToken(t, h, `{"email":"jack@test.com","password":"12345"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", first.Code, first.Body.String())
	}
	second := postToken(t, h, `{"email":"jack@test.com","password":"12345"}`)
	if second.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", second.Code)
	}

	if first.Body.String() != second.Body.String() {
		t.Fatalf("expected identical tokens, got %s vs %s", first.Body.String(), second.Body.String())
	}
	if tokens.writes != 1 {
		t.Fatalf("expected exactly one token write, got %d", tokens.writes)
	}
}

func TestGetTokenAcceptsFormData(t *testing.T) {
	h, _ := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/gettoken",
		strings.NewReader("email=jack@test.com&password=12345"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.GetToken(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestMintTokenDeterministic(t *testing.T) {
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	if mintToken("jack@test.com", at) != mintToken("jack@test.com", at) {
		t.Fatal("expected deterministic token for fixed email and time")
	}
	if mintToken("jack@test.com", at) == mintToken("jill@test.com", at) {
		t.Fatal("expected different tokens for different emails")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h, _ := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(`{"email":"jack@test.com","password":"12345","name":"Jack"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Register(w, req, nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestRegisterThenGetToken(t *testing.T) {
	h, _ := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(`{"email":"jill@test.com","password":"secret","name":"Jill"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Register(w, req, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	got := postToken(t, h, `{"email":"jill@test.com","password":"secret"}`)
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200 after registration, got %d", got.Code)
	}
}
