package handler

import "github.com/gin-gonic/gin"

// bindPayload reads a free-form JSON object body. Scenario and assumption
// payloads are forwarded to the analytical service untouched, so nothing
// is enforced beyond "must be a JSON object".
func (h *BaseHandler) bindPayload(c *gin.Context) (map[string]any, bool) {
	payload := make(map[string]any)
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.BadRequest(c, "Request body must be a JSON object")
		return nil, false
	}
	return payload, true
}
