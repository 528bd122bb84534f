package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlist/internal/delivery/http/helpers"
	"eventlist/internal/domain"
)

// LoginRequest is the request body for POST /auth/token.
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the data payload for POST /auth/token (200).
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginSuccessResponse is the success response envelope for POST /auth/token (200).
type LoginSuccessResponse struct {
	Data  LoginResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Obtain an organizer API token
// @Description Exchanges the organizer password for a bearer token used on mutating endpoints.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Organizer password"
// @Success 200 {object} controllers.LoginSuccessResponse "data contains the bearer token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/token [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}
