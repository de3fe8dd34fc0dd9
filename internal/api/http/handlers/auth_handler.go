package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-gateway/internal/api/dto"
	"github.com/spec-kit/auth-gateway/internal/auth"
	"github.com/spec-kit/auth-gateway/internal/events"
	"github.com/spec-kit/auth-gateway/internal/service"
	apperrors "github.com/spec-kit/auth-gateway/pkg/util/errorutil"
)

// AuthHandler exposes registration, login and caller-info endpoints.
type AuthHandler struct {
	users      *service.UserService
	issuer     *auth.TokenIssuer
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(users *service.UserService, issuer *auth.TokenIssuer, dispatcher events.Dispatcher, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, dispatcher: dispatcher, logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	user, err := h.users.Register(c.Context(), req.Username, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewUserResponse(user))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	details, err := h.issuer.Issue(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidUsername) || errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Info("login rejected", zap.String("username", req.Username), zap.Error(err))
			h.publish(c, events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventLoginFailed,
				Username:  req.Username,
				Timestamp: time.Now(),
				Payload:   events.LoginFailedPayload{Reason: err.Error()},
			})
			return apperrors.NewUnauthorized(err.Error())
		}
		return apperrors.MapError(err)
	}

	h.publish(c, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLoginSucceeded,
		Username:  req.Username,
		Timestamp: time.Now(),
		Payload:   events.LoginSucceededPayload{UserID: details.UserID, ExpiresAt: details.ExpiresAt},
	})

	return c.JSON(dto.AuthResponse{
		UserID:    details.UserID,
		Token:     details.Token,
		IssuedAt:  dto.Date{Time: details.IssuedAt},
		ExpiresAt: dto.Date{Time: details.ExpiresAt},
	})
}

// Info handles GET /auth/info. It serves the live profile behind the
// authorized context, not the claims snapshot.
func (h *AuthHandler) Info(c *fiber.Ctx) error {
	authCtx, ok := auth.AuthorizedFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}
	id, _, ok := authCtx.Principal.Identity()
	if !ok {
		return apperrors.NewUnauthorized("unauthorized")
	}

	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *AuthHandler) publish(c *fiber.Ctx, event events.Event) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(c.Context(), event)
}
