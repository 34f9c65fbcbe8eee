package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listUsers returns every account on the network.
func (s *Server) listUsers(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	users, err := s.Users.ListAll(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// getUser returns a single account.
func (s *Server) getUser(c *gin.Context) {
	if _, ok := s.currentUser(c); !ok {
		return
	}
	user, err := s.Users.FindByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.Id, "created_at": user.CreatedAt})
}
