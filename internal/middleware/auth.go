package middleware

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshadsshinde/hospital-management-system/internal/apierr"
	"github.com/Harshadsshinde/hospital-management-system/internal/models"
	"github.com/Harshadsshinde/hospital-management-system/internal/token"
)

// Cookie names encode the expected role class: the dashboard (Admin) and the
// patient frontend carry separate sessions. The decoded user's stored role is
// still checked independently; the cookie name alone is never trusted.
const (
	AdminCookie   = "adminToken"
	PatientCookie = "patientToken"
)

const contextUserKey = "currentUser"

// UserLoader loads the user referenced by a verified token.
type UserLoader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// Authenticate reads the named cookie, verifies the token, loads the
// referenced user and enforces the expected role. The loaded user is placed
// in the request context for downstream handlers.
func Authenticate(users UserLoader, tokens *token.Service, cookieName string, expected models.Role) gin.HandlerFunc {
	notAuthenticated := "User is not authenticated!"
	if expected == models.RoleAdmin {
		notAuthenticated = "Dashboard User is not authenticated!"
	}

	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(cookieName)
		if err != nil || tokenStr == "" {
			abort(c, apierr.BadRequest(notAuthenticated))
			return
		}

		userIDHex, err := tokens.Verify(tokenStr)
		if err != nil {
			abort(c, err)
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			abort(c, token.ErrInvalidToken)
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// The token may outlive the account; treat both a missing user
			// and a store failure as an authentication failure.
			abort(c, apierr.BadRequest(notAuthenticated))
			return
		}

		if user.Role != expected {
			abort(c, apierr.Forbidden(fmt.Sprintf("%s not authorized for this resource!", user.Role)))
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// Authorize allows a previously authenticated user through only when their
// role is in the allowed set. Pure predicate, no I/O.
func Authorize(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, apierr.BadRequest("User is not authenticated!"))
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abort(c, apierr.Forbidden(fmt.Sprintf("%s not allowed to access this resource!", user.Role)))
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
