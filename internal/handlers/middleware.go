package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

const userContextKey = "currentUser"

func abortWithError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := err.Error()
	if kind == apperrors.KindInternal {
		// Never leak persistence internals to clients.
		message = "internal server error"
	}
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{
		"kind":  string(kind),
		"error": message,
	})
}

// AuthMiddleware resolves the bearer token to a user on every protected
// request and stores it on the context.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortWithError(c, apperrors.Auth("missing bearer token"))
			return
		}

		user, err := authService.ResolveUser(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authService.RequireAdmin(currentUser(c)); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	user, _ := c.MustGet(userContextKey).(*models.User)
	return user
}
