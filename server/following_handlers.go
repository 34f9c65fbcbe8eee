package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listFollowings returns the ids of users the caller follows.
func (s *Server) listFollowings(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	followingIds := []string{}
	for _, following := range user.Followings {
		followingIds = append(followingIds, following.Id)
	}
	c.JSON(http.StatusOK, followingIds)
}

// follow adds the target user to the caller's followings.
func (s *Server) follow(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	if err := s.Users.Follow(c.Request.Context(), user.Id, c.Param("userId")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// unfollow removes the target user from the caller's followings.
func (s *Server) unfollow(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	if err := s.Users.Unfollow(c.Request.Context(), user.Id, c.Param("userId")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
