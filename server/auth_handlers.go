package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/yfei-chen/circlefeed/store"
	"github.com/yfei-chen/circlefeed/utils"
)

type credentialsInput struct {
	Id       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// signUp creates a new account with the chosen id.
func (s *Server) signUp(c *gin.Context) {
	if !s.Config.AllowSignup {
		c.JSON(http.StatusForbidden, gin.H{"code": utils.ErrorPolicyRejection, "msg": "sign up is not open at this moment"})
		return
	}
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	user, err := s.Users.CreateUser(c.Request.Context(), input.Id, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserIdTaken) {
			c.JSON(http.StatusConflict, gin.H{"code": utils.ErrorPolicyRejection, "msg": err.Error()})
			return
		}
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.Id})
}

// signIn checks the credentials and hands out an access token.
func (s *Server) signIn(c *gin.Context) {
	var input credentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": utils.ErrorBadRequest, "msg": err.Error()})
		return
	}
	if !s.Users.CheckPassword(c.Request.Context(), input.Id, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"code": utils.ErrorTokenAuthFail, "msg": "invalid id or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": input.Id})
	signed, err := token.SignedString(s.Config.JWTSecret)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": signed})
}

// me returns the authenticated user's own information.
func (s *Server) me(c *gin.Context) {
	user, ok := s.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.Id})
}
