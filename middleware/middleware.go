package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"time"

	"tripnest/auth"
	"tripnest/globals"
	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
)

// Gate guards protected routes with HTTP Basic credentials where the
// password field carries the issued API token, not the account password.
type Gate struct {
	Tokens auth.TokenStore
}

func NewGate(tokens auth.TokenStore) *Gate {
	return &Gate{Tokens: tokens}
}

func (g *Gate) Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email, token, ok := r.BasicAuth()
		if !ok || email == "" || token == "" {
			deny(w)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stored, err := g.Tokens.GetToken(ctx, email)
		if errors.Is(err, models.ErrNotFound) {
			deny(w)
			return
		}
		if err != nil {
			// Fail closed: an unreachable token store denies access.
			log.Printf("token lookup failed for %s: %v", email, err)
			deny(w)
			return
		}

		if subtle.ConstantTimeCompare([]byte(stored.Token), []byte(token)) != 1 {
			deny(w)
			return
		}

		reqCtx := context.WithValue(r.Context(), globals.UserEmailKey, email)
		next(w, r.WithContext(reqCtx), ps)
	}
}

func deny(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
	utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
}
