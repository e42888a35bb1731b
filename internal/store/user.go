package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
)

type userStore struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewUserStore(db *gorm.DB) *userStore {
	return &userStore{db: db, clock: time.Now}
}

// ListUsers returns the active users holding one of roles.
func (s *userStore) ListUsers(ctx context.Context, roles []models.Role) ([]*models.User, error) {
	var users []*models.User
	err := s.db.WithContext(ctx).
		Where("status = ? AND role IN ?", models.StatusActive, roles).
		Order(listOrder).
		Find(&users).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "user")
	}
	return users, nil
}

func (s *userStore) GetUser(ctx context.Context, id string, roles []models.Role) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ? AND role IN ?", id, models.StatusActive, roles).
		Take(&user).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "user")
	}
	return &user, nil
}

// FetchByPhone resolves an active user by phone number, ignoring case.
// Numbers are stored normalized, so the lookup normalizes its input only.
func (s *userStore) FetchByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("phone_number = ? AND status = ?", models.NormalizePhone(phone), models.StatusActive).
		Take(&user).Error
	if err != nil {
		return nil, translate(ctx, err, "read", "user")
	}
	return &user, nil
}

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	return insert(ctx, s.db, s.clock(), user)
}

func (s *userStore) UpdateUser(ctx context.Context, user *models.User) error {
	return save(ctx, s.db, s.clock(), user)
}

func (s *userStore) RetireUser(ctx context.Context, id string, roles []models.Role) error {
	return retire[models.User](ctx, s.db, s.clock(), "id = ? AND role IN ?", id, roles)
}

// TouchLastLogin records a successful login without refreshing updated_at.
func (s *userStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("last_login", at)
	if res.Error != nil {
		return translate(ctx, res.Error, "update", "user")
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError("user not found")
	}
	return nil
}
