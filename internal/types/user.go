package types

import "github.com/userhub-dev/userhub/internal/models"

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6,max=129"`
	Name     string `json:"name" binding:"omitempty,max=120"`
}

// UpdateUserRequest fields are pointers so that an absent field can be told
// apart from an empty one: absent means "leave unchanged".
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Password *string `json:"password" binding:"omitempty,min=6,max=129"`
	Name     *string `json:"name" binding:"omitempty,max=120"`
}

// UserResponse never carries the password. The project list is omitted
// entirely when the user owns no projects.
type UserResponse struct {
	ID               uint                       `json:"id"`
	Email            string                     `json:"email"`
	Name             string                     `json:"name"`
	ExternalProjects []*ExternalProjectResponse `json:"externalProjects,omitempty"`
}

func NewUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}

	response := &UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}

	for _, project := range user.ExternalProjects {
		response.ExternalProjects = append(response.ExternalProjects, NewExternalProjectResponse(&project))
	}

	return response
}
