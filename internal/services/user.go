package services

import (
	"errors"

	"github.com/userhub-dev/userhub/internal/apperrors"
	"github.com/userhub-dev/userhub/internal/auth"
	"github.com/userhub-dev/userhub/internal/models"
	"github.com/userhub-dev/userhub/internal/types"
	"gorm.io/gorm"
)

// UserService owns the user lifecycle and the global email-uniqueness
// invariant. Every mutation runs in a single transaction; the unique index on
// email backs up the pre-check so concurrent creates cannot both succeed.
type UserService struct {
	db     *gorm.DB
	hasher auth.PasswordHasher
}

func NewUserService(db *gorm.DB, hasher auth.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

func (s *UserService) CreateUser(req types.CreateUserRequest) (*types.UserResponse, error) {
	passwordHash, err := s.hasher.Hash(req.Password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    req.Email,
		Password: passwordHash,
		Name:     req.Name,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return &apperrors.UserAlreadyExistsError{Email: req.Email}
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &apperrors.UserAlreadyExistsError{Email: req.Email}
			}
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return types.NewUserResponse(&user), nil
}

func (s *UserService) GetUserByID(id uint) (*types.UserResponse, error) {
	var user models.User

	// Both reads run in one transaction so they observe a single snapshot.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.UserNotFoundError{UserID: id}
			}
			return err
		}

		// Projects are resolved with an explicit query rather than a join.
		return tx.Where("user_id = ?", id).Find(&user.ExternalProjects).Error
	})

	if err != nil {
		return nil, err
	}

	return types.NewUserResponse(&user), nil
}

// Authenticate resolves a login attempt to the stored user record. Unknown
// emails and wrong passwords fail identically.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.UnauthorizedError{Message: "Invalid email or password"}
		}
		return nil, err
	}

	if err := s.hasher.Verify(user.Password, password); err != nil {
		return nil, &apperrors.UnauthorizedError{Message: "Invalid email or password"}
	}

	return &user, nil
}

// UpdateUser applies partial-update semantics: fields absent from the request
// are left unchanged. An empty email or password is treated as absent; an
// empty name is a valid new value.
func (s *UserService) UpdateUser(id uint, req types.UpdateUserRequest) (*types.UserResponse, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.UserNotFoundError{UserID: id}
			}
			return err
		}

		if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
			var count int64

			if err := tx.Model(&models.User{}).Where("email = ?", *req.Email).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return &apperrors.UserAlreadyExistsError{Email: *req.Email}
			}

			user.Email = *req.Email
		}

		if req.Password != nil && *req.Password != "" {
			passwordHash, err := s.hasher.Hash(*req.Password)

			if err != nil {
				return err
			}

			user.Password = passwordHash
		}

		if req.Name != nil {
			user.Name = *req.Name
		}

		if err := tx.Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &apperrors.UserAlreadyExistsError{Email: user.Email}
			}
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return types.NewUserResponse(&user), nil
}

// DeleteUser removes the user and every project it owns. The schema-level
// cascade covers the same ground; the explicit delete keeps the behavior
// identical on storage engines that need foreign keys switched on.
func (s *UserService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.UserNotFoundError{UserID: id}
			}
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.ExternalProject{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
