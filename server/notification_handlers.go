package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listNotifications returns the caller's notifications, newest first.
func (s *Server) listNotifications(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	notifications, err := s.Notifications.ListByOwner(c.Request.Context(), user.Id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
