package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFormOrJSONReadsJSONBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"email":"jack@test.com","password":"12345","extra":42}`))
	req.Header.Set("Content-Type", "application/json")

	got := FormOrJSON(req, "email", "password", "missing")
	if got["email"] != "jack@test.com" || got["password"] != "12345" {
		t.Fatalf("unexpected fields: %v", got)
	}
	if got["missing"] != "" {
		t.Fatalf("missing key should be empty, got %q", got["missing"])
	}
}

func TestFormOrJSONReadsFormBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader("email=jack%40test.com&password=12345"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := FormOrJSON(req, "email", "password")
	if got["email"] != "jack@test.com" || got["password"] != "12345" {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestFormOrJSONMalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	got := FormOrJSON(req, "email")
	if got["email"] != "" {
		t.Fatalf("expected empty field on malformed body, got %q", got["email"])
	}
}
