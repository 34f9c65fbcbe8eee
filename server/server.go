// Package server exposes the REST API over the engine and stores.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/yfei-chen/circlefeed/engine"
	"github.com/yfei-chen/circlefeed/model"
	"github.com/yfei-chen/circlefeed/server/middlewares"
	"github.com/yfei-chen/circlefeed/store"
	"github.com/yfei-chen/circlefeed/utils"
	. "github.com/yfei-chen/circlefeed/utils/log"
	"gorm.io/gorm"
)

// Server wires the HTTP handlers to the engine and its collaborators.
type Server struct {
	Config        *Config
	Users         *store.UserStore
	Circles       *store.CircleStore
	Posts         *store.PostStore
	Notifications *store.NotificationStore
	Engagements   *store.EngagementStore
	Visibility    *engine.Visibility
	Resharing     *engine.Resharing
	Feeds         *engine.Feeds
}

// NewServer builds a fully wired server on the given DB connection.
func NewServer(config *Config, db *gorm.DB) *Server {
	users := store.NewUserStore(db)
	circles := store.NewCircleStore(db)
	posts := store.NewPostStore(db)
	notifications := store.NewNotificationStore(db)
	visibility := &engine.Visibility{Memberships: circles}
	sanitizer := store.NewSanitizer()

	return &Server{
		Config:        config,
		Users:         users,
		Circles:       circles,
		Posts:         posts,
		Notifications: notifications,
		Engagements:   store.NewEngagementStore(db, notifications, sanitizer),
		Visibility:    visibility,
		Resharing: &engine.Resharing{
			Posts:         posts,
			Notifications: notifications,
			Sanitize:      sanitizer,
			Visibility:    visibility,
		},
		Feeds: &engine.Feeds{
			Posts:      posts,
			Visibility: visibility,
		},
	}
}

// RegisterRoutes attaches all API routes to the router. Sign-up and
// sign-in stay outside the JWT middleware.
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/signUp", s.signUp)
	router.POST("/api/signIn", s.signIn)

	api := router.Group("/api", middlewares.JWT(s.Config.JWTSecret))
	api.GET("/me", s.me)
	api.GET("/users", s.listUsers)
	api.GET("/user/:userId", s.getUser)

	api.GET("/posts", s.homeFeed)
	api.POST("/posts", s.createPost)
	api.GET("/post/:postId", s.getPost)
	api.GET("/profile/:userId", s.profileFeed)

	api.GET("/circles", s.listCircles)
	api.POST("/circles", s.createCircle)
	api.GET("/circle/:circleId", s.getCircle)
	api.DELETE("/circle/:circleId", s.deleteCircle)
	api.POST("/circle/:circleId/membership/:memberId", s.addCircleMember)
	api.DELETE("/circle/:circleId/membership/:memberId", s.removeCircleMember)

	api.GET("/followings", s.listFollowings)
	api.POST("/following/:userId", s.follow)
	api.DELETE("/following/:userId", s.unfollow)

	api.GET("/posts/:postId/comments", s.listComments)
	api.POST("/posts/:postId/comment", s.createComment)
	api.POST("/posts/:postId/comment/:commentId/comment", s.createNestedComment)
	api.GET("/posts/:postId/reactions", s.listReactions)
	api.POST("/posts/:postId/reactions", s.createReaction)
	api.DELETE("/posts/:postId/reaction/:reactionId", s.deleteReaction)

	api.GET("/notifications", s.listNotifications)
}

// currentUser resolves the authenticated user from the "sub" header the
// JWT middleware injected, followings preloaded.
func (s *Server) currentUser(c *gin.Context) (*model.User, bool) {
	sub := c.Request.Header.Get("sub")
	user, err := s.Users.FindByID(c.Request.Context(), sub)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code": utils.ErrorTokenAuthFail,
			"msg":  "unknown user",
		})
		return nil, false
	}
	return user, true
}

// abortWithError translates engine and store errors into API replies.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case engine.IsRejection(err), errors.Is(err, store.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorPolicyRejection, "msg": err.Error()})
	case errors.Is(err, engine.ErrNotFound),
		errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrCircleNotFound),
		errors.Is(err, store.ErrCommentNotFound),
		errors.Is(err, store.ErrReactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": utils.ErrorNotFound, "msg": err.Error()})
	default:
		Log.Error("request failed: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": utils.ErrorInternal, "msg": "internal error"})
	}
}
