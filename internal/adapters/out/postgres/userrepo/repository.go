// Package userrepo persists user accounts. The core only needs the actor
// view: identity, role and account status.
package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents a user account row.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   int
	Status int
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves the actor view of an account.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (user.Actor, error) {
	if err := id.Validate(); err != nil {
		return user.Actor{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Actor{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.Actor{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return user.Actor{}, err
	}

	return user.NewActor(actorID, user.Role(dto.Role), user.Status(dto.Status))
}

// UpdateRole changes the role of an account.
func (r *GormUserRepository) UpdateRole(ctx context.Context, id kernel.UUID, role user.Role) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", id.Bytes()).
		Update("role", int(role))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
