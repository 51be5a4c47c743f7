package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"time"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// Handlers serves the token and registration endpoints. Stores are
// injected so tests can swap in fakes.
type Handlers struct {
	Users  UserStore
	Tokens TokenStore
}

func NewHandlers(users UserStore, tokens TokenStore) *Handlers {
	return &Handlers{Users: users, Tokens: tokens}
}

// GetToken exchanges email+password for the user's API token. The first
// successful call mints and persists a token; every later call returns
// the same value unchanged.
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fields := utils.FormOrJSON(r, "email", "password")
	email := fields["email"]
	password := fields["password"]

	if email == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "You have to enter a valid email address and valid password")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.GetUser(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "User is not registered")
		return
	}
	if err != nil {
		log.Printf("user lookup failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	existing, err := h.Tokens.GetToken(ctx, email)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": existing.Token})
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		log.Printf("token lookup failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	now := time.Now()
	token := models.Token{
		Email:    user.Email,
		Token:    mintToken(user.Email, now),
		IssuedAt: now.Unix(),
	}
	if err := h.Tokens.CreateToken(ctx, token); err != nil {
		log.Printf("token persist failed for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token.Token})
}

// Protected is a demo endpoint proving the caller passed the auth gate.
func Protected(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "You are authorized to see this message",
	})
}

// mintToken derives an opaque token from the email and issue time through
// a one-way hash.
func mintToken(email string, at time.Time) string {
	hash := sha256.New()
	hash.Write([]byte(email + at.Format("2006-01-02 15:04:05")))
	return hex.EncodeToString(hash.Sum(nil))
}
