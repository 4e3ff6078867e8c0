package handler

import (
	"github.com/XrayFinanceDEV/xbrlbudget-sub001/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
)

// CredentialHandler receives bearer tokens from the host application. The
// dashboard never obtains credentials itself; the host pushes them here and
// revokes them on logout. The token is write-only: status reports presence,
// never the value.
type CredentialHandler struct {
	BaseHandler
	relay *auth.Relay
}

// NewCredentialHandler creates a new CredentialHandler
func NewCredentialHandler(relay *auth.Relay) *CredentialHandler {
	return &CredentialHandler{relay: relay}
}

// RegisterRoutes registers the credential routes
func (h *CredentialHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cred := rg.Group("/credential")
	cred.POST("", h.Push)
	cred.DELETE("", h.Revoke)
	cred.GET("/status", h.Status)
}

// PushCredentialRequest carries a bearer token from the host
// @Description Bearer token for the analytical service
type PushCredentialRequest struct {
	Token string `json:"token" binding:"required"`
}

// Push godoc
// @ID           pushCredential
// @Summary      Push a bearer token
// @Description  Stores the token for upstream calls. Calls blocked waiting for a credential resume immediately.
// @Tags         credentials
// @Accept       json
// @Param        request body PushCredentialRequest true "Token to install"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse
// @Router       /credential [post]
func (h *CredentialHandler) Push(c *gin.Context) {
	var req PushCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	h.relay.Push(req.Token)
	h.NoContent(c)
}

// Revoke godoc
// @ID           revokeCredential
// @Summary      Revoke the bearer token
// @Description  Drops the stored token, typically on host logout. Subsequent upstream calls fail with CREDENTIAL_MISSING until a new token is pushed.
// @Tags         credentials
// @Success      204 "No Content"
// @Router       /credential [delete]
func (h *CredentialHandler) Revoke(c *gin.Context) {
	h.relay.Revoke()
	h.NoContent(c)
}

// Status godoc
// @ID           getCredentialStatus
// @Summary      Check credential presence
// @Description  Reports whether a usable token is currently stored. The token itself is never returned.
// @Tags         credentials
// @Produce      json
// @Success      200 {object} APIResponse[CredentialStatusData]
// @Router       /credential/status [get]
func (h *CredentialHandler) Status(c *gin.Context) {
	_, present := h.relay.Token()
	h.Success(c, CredentialStatusData{Present: present})
}
