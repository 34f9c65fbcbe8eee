package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yfei-chen/circlefeed/utils"
)

type createCircleInput struct {
	Name string `json:"name" binding:"required"`
}

// createCircle creates an empty circle owned by the caller.
func (s *Server) createCircle(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	var input createCircleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	circle, err := s.Circles.CreateCircle(c.Request.Context(), user.Id, input.Name)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, circle)
}

// listCircles returns the caller's circles with members.
func (s *Server) listCircles(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	circles, err := s.Circles.ListByOwner(c.Request.Context(), user.Id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, circles)
}

// getCircle returns one of the caller's circles with members.
func (s *Server) getCircle(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	circle, err := s.Circles.FindByID(c.Request.Context(), c.Param("circleId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if circle.OwnerID != user.Id {
		c.JSON(http.StatusForbidden, gin.H{"code": utils.ErrorPolicyRejection, "msg": "not your circle"})
		return
	}
	c.JSON(http.StatusOK, circle)
}

// deleteCircle removes one of the caller's circles.
func (s *Server) deleteCircle(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	circle, err := s.Circles.FindByID(c.Request.Context(), c.Param("circleId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if circle.OwnerID != user.Id {
		c.JSON(http.StatusForbidden, gin.H{"code": utils.ErrorPolicyRejection, "msg": "not your circle"})
		return
	}
	if err := s.Circles.Delete(c.Request.Context(), circle.Id); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addCircleMember puts a user into one of the caller's circles.
func (s *Server) addCircleMember(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	circle, err := s.Circles.FindByID(c.Request.Context(), c.Param("circleId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if circle.OwnerID != user.Id {
		c.JSON(http.StatusForbidden, gin.H{"code": utils.ErrorPolicyRejection, "msg": "not your circle"})
		return
	}
	if err := s.Circles.AddMember(c.Request.Context(), circle.Id, c.Param("memberId")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeCircleMember takes a user out of one of the caller's circles.
func (s *Server) removeCircleMember(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	circle, err := s.Circles.FindByID(c.Request.Context(), c.Param("circleId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if circle.OwnerID != user.Id {
		c.JSON(http.StatusForbidden, gin.H{"code": utils.ErrorPolicyRejection, "msg": "not your circle"})
		return
	}
	if err := s.Circles.RemoveMember(c.Request.Context(), circle.Id, c.Param("memberId")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
