package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-gateway/internal/domain"
	"github.com/spec-kit/auth-gateway/internal/events"
	apperrors "github.com/spec-kit/auth-gateway/pkg/util/errorutil"
)

const authorizedContextKey = "auth_context"

// SecurityPipeline runs extraction, verification and authorization for
// every non-public route. Failures are terminal for the request: there is
// no backtracking and no retry.
type SecurityPipeline struct {
	verifier   *TokenVerifier
	gate       *AuthorizationGate
	public     map[string]struct{}
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// PipelineDependencies bundles what the pipeline needs.
type PipelineDependencies struct {
	Verifier     *TokenVerifier
	Gate         *AuthorizationGate
	PublicRoutes []string
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewSecurityPipeline constructs the pipeline middleware.
func NewSecurityPipeline(deps PipelineDependencies) *SecurityPipeline {
	public := make(map[string]struct{}, len(deps.PublicRoutes))
	for _, route := range deps.PublicRoutes {
		public[route] = struct{}{}
	}
	return &SecurityPipeline{
		verifier:   deps.Verifier,
		gate:       deps.Gate,
		public:     public,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Handle enforces authentication. OPTIONS requests and configured public
// routes bypass the pipeline entirely; everything else must present a valid
// bearer token backed by an enabled account.
func (p *SecurityPipeline) Handle(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodOptions {
		return c.Next()
	}
	if _, ok := p.public[c.Path()]; ok {
		return c.Next()
	}

	token, ok := extractBearer(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return p.reject(c, "missing bearer token")
	}

	result, err := p.verifier.Verify(token)
	if err != nil {
		p.logger.Debug("token verification failed", zap.Error(err), zap.String("path", c.Path()))
		return p.reject(c, err.Error())
	}

	candidate, err := CandidateFromClaims(result.Claims)
	if err != nil {
		return p.reject(c, "malformed subject claim")
	}

	authCtx, err := p.gate.Authorize(c.Context(), candidate)
	if err != nil {
		if errors.Is(err, ErrAccountDisabled) {
			return p.reject(c, err.Error())
		}
		return apperrors.MapError(err)
	}

	c.Locals(authorizedContextKey, authCtx)
	return c.Next()
}

// reject records the rejection server-side and returns a generic 401.
// Token failure detail is never sent to clients.
func (p *SecurityPipeline) reject(c *fiber.Ctx, reason string) error {
	if p.dispatcher != nil {
		_ = p.dispatcher.Publish(c.Context(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRequestRejected,
			Timestamp: time.Now(),
			Payload: events.RequestRejectedPayload{
				Path:   c.Path(),
				Method: c.Method(),
				Reason: reason,
			},
		})
	}
	return apperrors.NewUnauthorized("unauthorized")
}

func extractBearer(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// AuthorizedFromContext retrieves the trusted context stored by the pipeline.
func AuthorizedFromContext(c *fiber.Ctx) (*AuthorizedContext, bool) {
	val := c.Locals(authorizedContextKey)
	if val == nil {
		return nil, false
	}
	authCtx, ok := val.(*AuthorizedContext)
	return authCtx, ok
}

// RequireRole ensures the authenticated caller holds one of the allowed
// roles. Authentication failures are 401; an authenticated caller with the
// wrong role is 403.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		authCtx, ok := AuthorizedFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("unauthorized")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[authCtx.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
