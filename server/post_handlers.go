package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/utils"
)

type createPostInput struct {
	Content        string   `json:"content"`
	IsPublic       bool     `json:"is_public"`
	CircleIds      []string `json:"circle_ids"`
	Reshareable    bool     `json:"reshareable"`
	ResharedFromID *string  `json:"reshared_from"`
	MediaList      []string `json:"media_list"`
}

// createPost publishes a post, optionally resharing an existing one.
func (s *Server) createPost(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	var input createPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	if input.Content == "" && len(input.MediaList) == 0 && input.ResharedFromID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": "post is empty"})
		return
	}

	// Target circles must exist and belong to the author.
	circles, err := s.Circles.FindByIDs(c.Request.Context(), user.Id, input.CircleIds)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	postId, err := s.Resharing.CreatePost(c.Request.Context(), engine.CreatePostInput{
		Author:         user,
		Content:        input.Content,
		IsPublic:       input.IsPublic,
		Circles:        circles,
		Reshareable:    input.Reshareable,
		ResharedFromID: input.ResharedFromID,
		MediaList:      input.MediaList,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": postId})
}

// getPost returns a single post if the viewer may see it. Profile
// context applies: fetching a known post by id is not gated on follow.
func (s *Server) getPost(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	post, err := s.Posts.FindByID(c.Request.Context(), c.Param("postId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if !s.Visibility.CanSee(c.Request.Context(), user, post, engine.ContextProfile) {
		// hidden posts look identical to missing ones
		s.abortWithError(c, engine.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, post)
}

// homeFeed streams the viewer's home feed, most recent first.
func (s *Server) homeFeed(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	posts, err := s.Feeds.HomeFeed(c.Request.Context(), user).Collect()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// profileFeed streams a user's posts as visible to the viewer.
func (s *Server) profileFeed(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	owner, err := s.Users.FindByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	posts, err := s.Feeds.ProfileFeed(c.Request.Context(), user, owner).Collect()
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
