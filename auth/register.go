package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"tripnest/models"
	"tripnest/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account with a bcrypt-hashed password.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fields := utils.FormOrJSON(r, "email", "password", "name")
	email := fields["email"]
	password := fields["password"]
	name := fields["name"]

	if email == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password for %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user := models.User{Email: email, Password: string(hashed), Name: name}
	err = h.Users.CreateUser(ctx, user)
	if errors.Is(err, models.ErrConflict) {
		utils.RespondWithError(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		log.Printf("failed to register %s: %v", email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "User registered successfully",
		"email":   user.Email,
	})
}
