package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/userhub-dev/userhub/internal/apperrors"
	"github.com/userhub-dev/userhub/internal/auth"
	"github.com/userhub-dev/userhub/internal/models"
	"github.com/userhub-dev/userhub/internal/types"
	"gorm.io/gorm"
)

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func AuthMiddleware(database *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			abortUnauthorized(ctx, "Authorization token is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(ctx, "Authorization header format must be Bearer {token}")
			return
		}

		token, err := auth.VerifyJWT(parts[1])

		if err != nil {
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			abortUnauthorized(ctx, "Invalid token claims")
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			abortUnauthorized(ctx, "Invalid user ID in token claims")
			return
		}

		var user models.User

		if err := database.First(&user, uint(userIDFloat)).Error; err != nil {
			abortUnauthorized(ctx, "User not found")
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		ctx.Next()
	}
}

// abortUnauthorized routes the failure through ErrorHandler so 401s share
// the standard error body.
func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.Error(&apperrors.UnauthorizedError{Message: message})
	ctx.Abort()
}

func GetCurrentUser(ctx *gin.Context) (AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return AuthenticatedUser{}, &apperrors.UnauthorizedError{Message: "User not authenticated"}
	}

	authenticatedUser, ok := user.(AuthenticatedUser)

	if !ok {
		return AuthenticatedUser{}, &apperrors.UnauthorizedError{Message: "Invalid user type in context"}
	}

	return authenticatedUser, nil
}
