package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/model"
	"github.com/yfei-chen/circlefeed/utils"
)

type createCommentInput struct {
	Content string `json:"content" binding:"required"`
}

type createReactionInput struct {
	Emoji string `json:"emoji" binding:"required"`
}

// visiblePost loads a post and enforces profile-context visibility,
// which is the gate for all engagement on a known post.
func (s *Server) visiblePost(c *gin.Context, viewer *model.User) (*model.Post, bool) {
	post, err := s.Posts.FindByID(c.Request.Context(), c.Param("postId"))
	if err != nil {
		s.abortWithError(c, err)
		return nil, false
	}
	if !s.Visibility.CanSee(c.Request.Context(), viewer, post, engine.ContextProfile) {
		s.abortWithError(c, engine.ErrNotFound)
		return nil, false
	}
	return post, true
}

func (s *Server) createComment(c *gin.Context) {
	s.createCommentImpl(c, nil)
}

func (s *Server) createNestedComment(c *gin.Context) {
	commentId := c.Param("commentId")
	s.createCommentImpl(c, &commentId)
}

func (s *Server) createCommentImpl(c *gin.Context, parentCommentId *string) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	post, ok := s.visiblePost(c, user)
	if !ok {
		return
	}
	var input createCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	comment, err := s.Engagements.CreateComment(c.Request.Context(), user, post, input.Content, parentCommentId)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) listComments(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	post, ok := s.visiblePost(c, user)
	if !ok {
		return
	}
	comments, err := s.Engagements.ListComments(c.Request.Context(), post.Id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) createReaction(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	post, ok := s.visiblePost(c, user)
	if !ok {
		return
	}
	var input createReactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	reaction, err := s.Engagements.CreateReaction(c.Request.Context(), user, post, input.Emoji)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reaction)
}

func (s *Server) listReactions(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	post, ok := s.visiblePost(c, user)
	if !ok {
		return
	}
	reactions, err := s.Engagements.ListReactions(c.Request.Context(), post.Id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reactions)
}

func (s *Server) deleteReaction(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	if err := s.Engagements.DeleteReaction(c.Request.Context(), user.Id, c.Param("reactionId")); err != nil {
		s.abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
