package types

import "github.com/userhub-dev/userhub/internal/models"

type CreateExternalProjectRequest struct {
	ID   string `json:"id" binding:"required,max=200"`
	Name string `json:"name" binding:"required,max=120"`
}

type UpdateExternalProjectRequest struct {
	Name *string `json:"name" binding:"omitempty,max=120"`
}

type ExternalProjectResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID uint   `json:"userId,omitempty"`
}

func NewExternalProjectResponse(project *models.ExternalProject) *ExternalProjectResponse {
	if project == nil {
		return nil
	}

	return &ExternalProjectResponse{
		ID:     project.ID,
		Name:   project.Name,
		UserID: project.UserID,
	}
}
