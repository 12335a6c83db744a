package api

import (
	"net/http"

	"github.com/openblogger/blog-backend/auth"
	"github.com/openblogger/blog-backend/database"
	"github.com/openblogger/blog-backend/errs"
	"github.com/openblogger/blog-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userRepo    *database.UserRepo
	authService *auth.Service
}

func newUserHandler(userRepo *database.UserRepo, authService *auth.Service) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userRepo:    userRepo,
		authService: authService,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse carries the public fields of a user, never the hash.
type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// signup registers a new user
// @Summary Sign up
// @Description Registers a new user with a unique username and email
// @Tags Users
// @Accept json
// @Produce json
// @Param user body signupRequest true "Signup data"
// @Success 200 {object} userResponse "Created user"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid data or username taken"
// @Router /signup [post]
func (h userHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("username already registered"))
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to hash password")
			h.responder.WriteError(w, errs.NewInternalError("could not process password"))
			return
		}

		user := models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: hashed,
		}
		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create user", "user", err))
			return
		}

		h.responder.WriteJSON(w, userResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})
	}
}

// login exchanges a username/password pair for a bearer token
// @Summary Log in
// @Description Authenticates a user and issues a time-limited bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} tokenResponse "Access token"
// @Failure 401 {object} ErrorResponse "Unauthorized - Incorrect username or password"
// @Router /login [post]
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if apiErr := decodeAndValidate(r, &req); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		user, err := h.authService.Authenticate(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			// Same message whether the username exists or not.
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.responder.WriteError(w, errs.NewUnauthorizedError("incorrect username or password"))
			return
		}

		token, err := h.authService.IssueToken(user.Username)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign access token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue token"))
			return
		}

		h.responder.WriteJSON(w, tokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
