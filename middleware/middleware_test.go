package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

type fakeTokenStore struct {
	tokens map[string]string
}

func (f *fakeTokenStore) GetToken(_ context.Context, email string) (*models.Token, error) {
	v, ok := f.tokens[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &models.Token{Email: email, Token: v}, nil
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token models.Token) error {
	f.tokens[token.Email] = token.Token
	return nil
}

func newTestGate() *Gate {
	return NewGate(&fakeTokenStore{tokens: map[string]string{
		"jack@test.com": "tok-abc",
	}})
}

func runGate(gate *Gate, setAuth func(*http.Request)) (*httptest.ResponseRecorder, bool, string) {
	called := false
	email := ""
	handler := gate.Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		email = utils.GetUserEmail(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if setAuth != nil {
		setAuth(req)
	}
	w := httptest.NewRecorder()
	handler(w, req, nil)
	return w, called, email
}

func TestGateMissingCredentials(t *testing.T) {
	w, called, _ := runGate(newTestGate(), nil)
	if called {
		t.Fatal("handler must not run without credentials")
	}
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGateUnknownUser(t *testing.T) {
	w, called, _ := runGate(newTestGate(), func(r *http.Request) {
		r.SetBasicAuth("nobody@test.com", "tok-abc")
	})
	if called || w.Code != http.StatusUnauthorized {
		t.Fatalf("expected denial, called=%v code=%d", called, w.Code)
	}
}

func TestGateWrongToken(t *testing.T) {
	w, called, _ := runGate(newTestGate(), func(r *http.Request) {
		r.SetBasicAuth("jack@test.com", "tok-wrong")
	})
	if called || w.Code != http.StatusUnauthorized {
		t.Fatalf("expected denial, called=%v code=%d", called, w.Code)
	}
}

func TestGateGrantsAndInjectsEmail(t *testing.T) {
	w, called, email := runGate(newTestGate(), func(r *http.Request) {
		r.SetBasicAuth("jack@test.com", "tok-abc")
	})
	if !called {
		t.Fatal("handler should have run")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if email != "jack@test.com" {
		t.Fatalf("expected email on context, got %q", email)
	}
}
