package repository

import (
	"errors"
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new staff account
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by id
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, username)
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether a username is already taken
func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Update saves all fields of an existing user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user by id
func (r *UserRepository) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

// ListAll returns every staff account
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("username asc").Find(&users).Error
	return users, err
}

// CreateRefreshToken stores a new refresh token
func (r *UserRepository) CreateRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

// FindActiveRefreshToken finds a non-revoked, unexpired refresh token for a user
func (r *UserRepository) FindActiveRefreshToken(token, userID string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := r.db.Where("token = ? AND user_id = ? AND is_revoked = ? AND expires_at > NOW()", token, userID, false).
		First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: refresh token", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &stored, nil
}

// FindRefreshToken finds a non-revoked refresh token regardless of owner
func (r *UserRepository) FindRefreshToken(token string) (*models.RefreshToken, error) {
	var stored models.RefreshToken
	err := r.db.Where("token = ? AND is_revoked = ?", token, false).First(&stored).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: refresh token", apperr.ErrNotFound)
		}
		return nil, err
	}
	return &stored, nil
}

// SaveRefreshToken persists changes to a refresh token (e.g. revocation)
func (r *UserRepository) SaveRefreshToken(token *models.RefreshToken) error {
	return r.db.Save(token).Error
}
