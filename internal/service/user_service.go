package service

import (
	"errors"
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
)

// UserService owns staff accounts: authentication plus admin-only account
// management.
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Authenticate verifies a username/password pair. The failure is the same
// whichever field was wrong.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrAuthenticationFailed
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, apperr.ErrAuthenticationFailed
	}
	return user, nil
}

// CreateUserInput carries the fields for creating a staff account.
type CreateUserInput struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required,min=4"`
	Role     models.Role `json:"role" binding:"required"`
	Zone     string      `json:"zone"`
	Name     string      `json:"name"`
	Position string      `json:"position"`
}

// Create adds a staff account. Admin only. An hc account must carry the
// zone it belongs to.
func (s *UserService) Create(caller policy.Caller, input CreateUserInput) (*models.User, error) {
	if err := policy.Authorize(caller, policy.ActionManageUsers, policy.AnyZone); err != nil {
		return nil, err
	}

	if !models.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrInvalidInput, input.Role)
	}
	if input.Role == models.RoleHC && input.Zone == "" {
		return nil, fmt.Errorf("%w: hc accounts require a zone", apperr.ErrInvalidInput)
	}

	if exists, err := s.users.ExistsByUsername(input.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: username already exists", apperr.ErrConflict)
	}

	user := &models.User{
		Username: input.Username,
		Role:     input.Role,
		Zone:     input.Zone,
		Name:     input.Name,
		Position: input.Position,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput carries the optional fields for updating a staff account.
type UpdateUserInput struct {
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
	Zone     *string      `json:"zone"`
	Name     *string      `json:"name"`
	Position *string      `json:"position"`
}

// Update modifies a staff account. Admin only.
func (s *UserService) Update(caller policy.Caller, id string, input UpdateUserInput) (*models.User, error) {
	if err := policy.Authorize(caller, policy.ActionManageUsers, policy.AnyZone); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && !models.ValidRole(*input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrInvalidInput, *input.Role)
	}

	// The patched account must still satisfy the hc-requires-zone rule: an
	// hc account with no zone would bypass the zone filters entirely.
	role := user.Role
	if input.Role != nil {
		role = *input.Role
	}
	zone := user.Zone
	if input.Zone != nil {
		zone = *input.Zone
	}
	if role == models.RoleHC && zone == "" {
		return nil, fmt.Errorf("%w: hc accounts require a zone", apperr.ErrInvalidInput)
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Zone != nil {
		user.Zone = *input.Zone
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Position != nil {
		user.Position = *input.Position
	}
	if input.Password != nil && *input.Password != "" {
		if err := user.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a staff account. Admin only; an admin cannot delete their
// own account.
func (s *UserService) Delete(caller policy.Caller, id string) error {
	if err := policy.Authorize(caller, policy.ActionManageUsers, policy.AnyZone); err != nil {
		return err
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		return err
	}

	if user.ID == caller.ID {
		return fmt.Errorf("%w: cannot delete your own account", apperr.ErrInvalidOperation)
	}

	return s.users.Delete(id)
}

// List returns every staff account. Admin only.
func (s *UserService) List(caller policy.Caller) ([]models.User, error) {
	if err := policy.Authorize(caller, policy.ActionManageUsers, policy.AnyZone); err != nil {
		return nil, err
	}
	return s.users.ListAll()
}

// Get returns one staff account. Admin only.
func (s *UserService) Get(caller policy.Caller, id string) (*models.User, error) {
	if err := policy.Authorize(caller, policy.ActionManageUsers, policy.AnyZone); err != nil {
		return nil, err
	}
	return s.users.FindByID(id)
}
