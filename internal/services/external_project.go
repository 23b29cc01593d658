package services

import (
	"errors"

	"github.com/userhub-dev/userhub/internal/apperrors"
	"github.com/userhub-dev/userhub/internal/models"
	"github.com/userhub-dev/userhub/internal/types"
	"gorm.io/gorm"
)

// ExternalProjectService owns the project lifecycle. Project ids are unique
// per owner only (composite key), and every operation resolves the owning
// user first, so a missing user is always reported before a missing project.
type ExternalProjectService struct {
	db *gorm.DB
}

func NewExternalProjectService(db *gorm.DB) *ExternalProjectService {
	return &ExternalProjectService{db: db}
}

func (s *ExternalProjectService) userExists(tx *gorm.DB, userID uint) error {
	var count int64

	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return &apperrors.UserNotFoundError{UserID: userID}
	}

	return nil
}

func (s *ExternalProjectService) AddExternalProject(userID uint, req types.CreateExternalProjectRequest) (*types.ExternalProjectResponse, error) {
	project := models.ExternalProject{
		ID:     req.ID,
		UserID: userID,
		Name:   req.Name,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, userID); err != nil {
			return err
		}

		var count int64

		if err := tx.Model(&models.ExternalProject{}).
			Where("id = ? AND user_id = ?", req.ID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return &apperrors.ExternalProjectAlreadyExistsError{ProjectID: req.ID, UserID: userID}
		}

		if err := tx.Create(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &apperrors.ExternalProjectAlreadyExistsError{ProjectID: req.ID, UserID: userID}
			}
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return types.NewExternalProjectResponse(&project), nil
}

func (s *ExternalProjectService) GetExternalProjectsByUserID(userID uint) ([]*types.ExternalProjectResponse, error) {
	var projects []models.ExternalProject

	// Single snapshot for the owner check and the listing.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, userID); err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Find(&projects).Error
	})

	if err != nil {
		return nil, err
	}

	response := make([]*types.ExternalProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, types.NewExternalProjectResponse(&projects[i]))
	}

	return response, nil
}

func (s *ExternalProjectService) findProject(tx *gorm.DB, projectID string, userID uint) (*models.ExternalProject, error) {
	var project models.ExternalProject

	err := tx.Where("id = ? AND user_id = ?", projectID, userID).First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.ExternalProjectNotFoundError{ProjectID: projectID, UserID: userID}
		}
		return nil, err
	}

	return &project, nil
}

func (s *ExternalProjectService) GetExternalProject(projectID string, userID uint) (*types.ExternalProjectResponse, error) {
	var project *models.ExternalProject

	// Single snapshot, so the user-first error precedence holds even while a
	// concurrent delete is removing the owner.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, userID); err != nil {
			return err
		}

		var err error
		project, err = s.findProject(tx, projectID, userID)
		return err
	})

	if err != nil {
		return nil, err
	}

	return types.NewExternalProjectResponse(project), nil
}

func (s *ExternalProjectService) UpdateExternalProject(projectID string, userID uint, req types.UpdateExternalProjectRequest) (*types.ExternalProjectResponse, error) {
	var project *models.ExternalProject

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, userID); err != nil {
			return err
		}

		var err error
		project, err = s.findProject(tx, projectID, userID)

		if err != nil {
			return err
		}

		if req.Name != nil {
			project.Name = *req.Name
		}

		return tx.Save(project).Error
	})

	if err != nil {
		return nil, err
	}

	return types.NewExternalProjectResponse(project), nil
}

func (s *ExternalProjectService) DeleteExternalProject(projectID string, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userExists(tx, userID); err != nil {
			return err
		}

		project, err := s.findProject(tx, projectID, userID)

		if err != nil {
			return err
		}

		return tx.Delete(project).Error
	})
}
