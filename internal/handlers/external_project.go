package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/userhub-dev/userhub/internal/services"
	"github.com/userhub-dev/userhub/internal/types"
)

type ExternalProjectHandler struct {
	projects *services.ExternalProjectService
}

func NewExternalProjectHandler(projects *services.ExternalProjectService) *ExternalProjectHandler {
	return &ExternalProjectHandler{projects: projects}
}

func (h *ExternalProjectHandler) AddExternalProject(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	var body types.CreateExternalProjectRequest

	if err := bindJSON(ctx, &body); err != nil {
		ctx.Error(err)
		return
	}

	project, err := h.projects.AddExternalProject(userID, body)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

func (h *ExternalProjectHandler) ListExternalProjects(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	projects, err := h.projects.GetExternalProjectsByUserID(userID)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *ExternalProjectHandler) GetExternalProject(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	project, err := h.projects.GetExternalProject(ctx.Param("project_id"), userID)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ExternalProjectHandler) UpdateExternalProject(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	var body types.UpdateExternalProjectRequest

	if err := bindJSON(ctx, &body); err != nil {
		ctx.Error(err)
		return
	}

	project, err := h.projects.UpdateExternalProject(ctx.Param("project_id"), userID, body)

	if err != nil {
		ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *ExternalProjectHandler) DeleteExternalProject(ctx *gin.Context) {
	userID, err := parseUserID(ctx)

	if err != nil {
		ctx.Error(err)
		return
	}

	if err := h.projects.DeleteExternalProject(ctx.Param("project_id"), userID); err != nil {
		ctx.Error(err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
