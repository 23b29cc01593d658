package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/userhub-dev/userhub/internal/auth"
	"github.com/userhub-dev/userhub/internal/middleware"
	"github.com/userhub-dev/userhub/internal/services"
	"github.com/userhub-dev/userhub/internal/types"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var (
	Domain = os.Getenv("DOMAIN")
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := bindJSON(ctx, &body); err != nil {
		ctx.Error(err)
		return
	}

	user, err := h.users.Authenticate(body.Email, body.Password)

	if err != nil {
		ctx.Error(err)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email)

	if err != nil {
		ctx.Error(err)
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   Domain,
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	currentUser, err := middleware.GetCurrentUser(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": currentUser})
}
