package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/userhub-dev/userhub/internal/apperrors"
	"github.com/userhub-dev/userhub/internal/services"
	"github.com/userhub-dev/userhub/internal/types"
	"github.com/userhub-dev/userhub/internal/validation"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// bindJSON binds the request body and converts binding failures into the
// batched validation error rendered by the error middleware.
func bindJSON(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		if details, ok := validation.Messages(err); ok {
			return apperrors.NewValidationError(details)
		}
		return &apperrors.ValidationError{Message: "Invalid request body"}
	}

	return nil
}

func parseUserID(ctx *gin.Context) (uint, error) {
	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)

	if err != nil {
		return 0, &apperrors.ValidationError{Message: "Invalid user id"}
	}

	return uint(userID), nil
}

func (h *UserHandler) CreateUser(ctx *gin.Context) {
	var body types.CreateUserRequest

	if err := bindJSON(ctx, &body); err != nil {
		ctx.Error(err)
		return
	}

	user, err := h.users.CreateUser(body)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (h *UserHandler) GetUser(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	user, err := h.users.GetUserByID(userID)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	var body types.UpdateUserRequest

	if err := bindJSON(ctx, &body); err != nil {
		ctx.Error(err)
		return
	}

	user, err := h.users.UpdateUser(userID, body)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	if err := h.users.DeleteUser(userID); err != nil {
		ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
