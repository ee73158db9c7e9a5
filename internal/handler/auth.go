package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ticketing-service/internal/auth"
	"ticketing-service/internal/model"
	"ticketing-service/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(u *model.User) error
	GetByEmail(email string) (*model.User, error)
}

type AuthHandler struct {
	Users  UserStore
	Tokens *auth.Service
	Now    func() time.Time
}

func NewAuthHandler(users UserStore, tokens *auth.Service) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Now: time.Now}
}

// Register creates a user account.
//
//	@Summary		Register
//	@Description	Create a new account with an email, password, display name and role
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Account data"
//	@Success		201	{object}	model.User
//	@Failure		400	{string}	string	"Bad request"
//	@Failure		409	{string}	string	"Email already registered"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if input.Email == "" {
		SendError(w, http.StatusBadRequest, "email must not be empty")
		return
	}
	if len(input.Password) < 8 {
		SendError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}
	role := model.Role(input.Role)
	if input.Role == "" {
		role = model.RoleCustomer
	}
	if !role.Valid() {
		SendError(w, http.StatusBadRequest, "role must be customer, organizer or venue_owner")
		return
	}

	if _, err := h.Users.GetByEmail(input.Email); err == nil {
		SendError(w, http.StatusConflict, "email already registered")
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusInternalServerError, "could not check email")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		Name:         input.Name,
		Role:         role,
		CreatedAt:    h.Now(),
	}

	if err := h.Users.Create(user); err != nil {
		SendError(w, http.StatusInternalServerError, "could not create account")
		return
	}

	SendJSON(w, http.StatusCreated, user)
}

// Login authenticates a user and issues a session token.
//
//	@Summary		Login
//	@Description	Exchange email and password for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200	{object}	LoginResponse
//	@Failure		400	{string}	string	"Bad request"
//	@Failure		401	{string}	string	"Invalid credentials"
//	@Failure		500	{string}	string	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		SendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.GetByEmail(input.Email)
	if errors.Is(err, repository.ErrNotFound) {
		SendError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not load account")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		SendError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, expiresAt, err := h.Tokens.Issue(user, h.Now())
	if err != nil {
		SendError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	SendJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	})
}

// RegisterRequest is the request body for creating an account.
//
//	@Description	Account registration request
type RegisterRequest struct {
	Email    string `json:"email" example:"jamie@example.com"`
	Password string `json:"password" example:"correct-horse-battery"`
	Name     string `json:"name" example:"Jamie"`
	Role     string `json:"role" example:"customer"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
}
