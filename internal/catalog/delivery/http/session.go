package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-manager/internal/catalog/session"
	"catalog-manager/pkg/log"
)

// sessionID returns the caller's view session id, issuing a cookie for a new
// one when the request carries none. The returned context carries the id for
// logging.
func (h *handler) sessionID(c *gin.Context) (context.Context, string) {
	id, err := c.Cookie(SessionCookieName)
	if err != nil || id == "" {
		id = session.NewID()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, 0, "/", "", false, true)
	}
	return context.WithValue(c.Request.Context(), log.SessionIDKey, id), id
}
