package handlers

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/infra/http/middleware"
	"github.com/rsharda/kam-leads/internal/usecase"
)

const tokenTTL = 1 * time.Hour

type AuthHandler struct {
	Users     entity.UserRepositoryInterface
	JWTSecret []byte
}

func NewAuthHandler(users entity.UserRepositoryInterface, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret}
}

// Register (POST /auth/register)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var errs usecase.ValidationErrors
	if len(strings.TrimSpace(body.Username)) < 3 {
		errs = append(errs, usecase.ValidationError{Field: "username", Message: "must be at least 3 characters long"})
	}
	if _, err := mail.ParseAddress(body.Email); err != nil {
		errs = append(errs, usecase.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(body.Password) < 6 {
		errs = append(errs, usecase.ValidationError{Field: "password", Message: "must be at least 6 characters long"})
	}
	if body.Role != "" && !entity.IsValidRole(body.Role) {
		errs = append(errs, usecase.ValidationError{Field: "role", Message: "must be one of Admin, KAM, Viewer"})
	}
	if len(errs) > 0 {
		writeMessage(w, http.StatusBadRequest, errs.Error())
		return
	}

	if _, err := h.Users.FindByEmail(r.Context(), body.Email); err == nil {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	} else if !usecase.IsNotFound(err) {
		writeError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user := entity.NewUser(body.Username, body.Email, string(hash), body.Role)
	if err := h.Users.Insert(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login (POST /auth/login) verifies credentials and issues an HS256
// token carrying the role claim checked by the route middleware.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), body.Email)
	if err != nil {
		if usecase.IsNotFound(err) {
			writeMessage(w, http.StatusBadRequest, "Invalid email or password")
			return
		}
		writeError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user": map[string]string{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func (h *AuthHandler) issueToken(user *entity.User) (string, error) {
	claims := middleware.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.JWTSecret)
}
