package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authorizer/internal/common"
	"github.com/dmitrijs2005/authorizer/internal/logging"
	"github.com/dmitrijs2005/authorizer/internal/server/basicauth"
	"github.com/dmitrijs2005/authorizer/internal/server/registry"
)

type Handlers struct {
	registry *registry.Registry
	logger   logging.Logger
}

func NewHandlers(reg *registry.Registry, l logging.Logger) *Handlers {
	return &Handlers{registry: reg, logger: l.With("module", "rest")}
}

// authorizeRequest is the envelope the gateway sends per request.
type authorizeRequest struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// verdictResponse mirrors basicauth.Verdict on the wire. Principal is a
// pointer so the inactive response serializes as
// {"active":false,"principal":null}.
type verdictResponse struct {
	Active    bool    `json:"active"`
	Principal *string `json:"principal"`
}

func toResponse(v basicauth.Verdict) verdictResponse {
	if !v.Active {
		return verdictResponse{}
	}
	principal := v.Principal
	return verdictResponse{Active: true, Principal: &principal}
}

// Authorize handles POST /authorize. A malformed envelope (unparsable
// body, wrong type field, missing token) is reported as a request-format
// error, since it indicates protocol misuse rather than a failed login;
// everything else folds into a verdict.
func (h *Handlers) Authorize(c *gin.Context) {
	var req authorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(c, "Request error, unparsable envelope", "request_id", c.GetString(requestIDKey))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": common.ErrMalformedRequest.Error()})
		return
	}

	if req.Type != common.RequestTypeToken || req.Token == "" {
		h.logger.Error(c, "Request error, missing type or token field", "request_id", c.GetString(requestIDKey))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": common.ErrMalformedRequest.Error()})
		return
	}

	verdict := basicauth.Validate(req.Token, h.registry)

	// diagnostics carry the attempted username only, never a password
	if verdict.Active {
		h.logger.Info(c, "Validation successful", "username", verdict.Principal, "request_id", c.GetString(requestIDKey))
	} else {
		h.logger.Info(c, "Validation failed", "username", basicauth.Username(req.Token), "request_id", c.GetString(requestIDKey))
	}

	c.JSON(http.StatusOK, toResponse(verdict))
}

// Health handles GET /healthz.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "users": h.registry.Len()})
}
