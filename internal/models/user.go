package models

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GregMSThompson/gatabank/internal/errs"
)

type User struct {
	Entity
	// unique among active accounts only, so a retired number can sign up again
	PhoneNumber string  `gorm:"size:300;not null;uniqueIndex:idx_users_phone_active,where:status = 'ACTIVE'"`
	Password    *string `gorm:"size:300"`
	Name        *string `gorm:"size:300"`

	CityID     *string   `gorm:"size:36;index"`
	City       *City     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	DistrictID *string   `gorm:"size:36;index"`
	District   *District `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	VillageID  *string   `gorm:"size:36;index"`
	Village    *Village  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Address    *string   `gorm:"size:500"`

	DateOfBirth *time.Time `gorm:"type:date"`
	LastLogin   *time.Time
	Role        Role `gorm:"size:32;not null;default:COLLABORATOR;index"`
}

// NormalizePhone is the lookup form of a phone number.
func NormalizePhone(phone string) string {
	return strings.ToLower(strings.TrimSpace(phone))
}

func (u *User) SetPassword(raw string) error {
	if raw == "" {
		return errs.NewValidationError("password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return errs.NewValidationError("password is too long")
		}
		return err
	}
	h := string(hash)
	u.Password = &h
	return nil
}

// CheckPassword compares raw against the stored hash. A user who never set
// a password cannot authenticate at all.
func (u *User) CheckPassword(raw string) (bool, error) {
	if u.Password == nil || *u.Password == "" {
		return false, errs.NewAuthenticationError("password_empty",
			"You have not set a password. Use forgot password to set one.")
	}
	err := bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(raw))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleSuperuser
}

func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}

func (u *User) HasPermission(c Capability) bool {
	return u.IsActive() && u.Role.Can(c)
}

func (u *User) HasModulePermission(module string) bool {
	return u.IsActive() && u.Role.CanAccessModule(module)
}
