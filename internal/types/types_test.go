package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/userhub-dev/userhub/internal/models"
)

func TestNewUserResponseNil(t *testing.T) {
	assert.Nil(t, NewUserResponse(nil))
}

func TestNewExternalProjectResponseNil(t *testing.T) {
	assert.Nil(t, NewExternalProjectResponse(nil))
}

func TestUserResponseOmitsPasswordAndEmptyProjects(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@x.com", Password: "$2a$10$hash", Name: "A"}

	body, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "externalProjects")
	assert.EqualValues(t, 1, payload["id"])
}

func TestUserResponseIncludesProjects(t *testing.T) {
	user := &models.User{
		ID:    1,
		Email: "a@x.com",
		ExternalProjects: []models.ExternalProject{
			{ID: "p1", UserID: 1, Name: "Proj"},
		},
	}

	response := NewUserResponse(user)
	require.Len(t, response.ExternalProjects, 1)
	assert.Equal(t, "p1", response.ExternalProjects[0].ID)
	assert.EqualValues(t, 1, response.ExternalProjects[0].UserID)
}

func TestExternalProjectResponseOmitsUnresolvedOwner(t *testing.T) {
	project := &models.ExternalProject{ID: "p1", Name: "Proj"}

	body, err := json.Marshal(NewExternalProjectResponse(project))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.NotContains(t, payload, "userId")
}
