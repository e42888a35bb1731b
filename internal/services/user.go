package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GregMSThompson/gatabank/internal/dto"
	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

type userStore interface {
	ListUsers(ctx context.Context, roles []models.Role) ([]*models.User, error)
	GetUser(ctx context.Context, id string, roles []models.Role) (*models.User, error)
	FetchByPhone(ctx context.Context, phone string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	RetireUser(ctx context.Context, id string, roles []models.Role) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// addressLookup resolves the active geography rows a user may point at.
type addressLookup interface {
	GetCity(ctx context.Context, id string) (*models.City, error)
	GetDistrict(ctx context.Context, id string) (*models.District, error)
	GetVillage(ctx context.Context, id string) (*models.Village, error)
}

type userService struct {
	store     userStore
	geography addressLookup
	clockNow  func() time.Time
}

func NewUserService(store userStore, geography addressLookup) *userService {
	return &userService{
		store:     store,
		geography: geography,
		clockNow:  time.Now,
	}
}

func (s *userService) ListUsers(ctx context.Context, view models.AccountView) ([]dto.UserResponse, error) {
	users, err := s.store.ListUsers(ctx, view.Roles())
	if err != nil {
		return nil, err
	}
	return dto.NewUserList(users), nil
}

func (s *userService) GetUser(ctx context.Context, view models.AccountView, id string) (dto.UserResponse, error) {
	user, err := s.store.GetUser(ctx, id, view.Roles())
	if err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) CreateUser(ctx context.Context, view models.AccountView, req dto.UserRequest) (dto.UserResponse, error) {
	user := &models.User{}
	if err := s.apply(ctx, user, req); err != nil {
		return dto.UserResponse{}, err
	}
	user.Role = view.Pin(user.Role)

	if err := s.store.CreateUser(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	logger.FromContext(ctx).Info("user created", "user_id", user.ID, "role", user.Role)
	return dto.NewUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, view models.AccountView, id string, req dto.UserRequest) (dto.UserResponse, error) {
	user, err := s.store.GetUser(ctx, id, view.Roles())
	if err != nil {
		return dto.UserResponse{}, err
	}
	if err := s.apply(ctx, user, req); err != nil {
		return dto.UserResponse{}, err
	}
	user.Role = view.Pin(user.Role)

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return dto.UserResponse{}, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, view models.AccountView, id string) error {
	if err := s.store.RetireUser(ctx, id, view.Roles()); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("user retired", "user_id", id, "view", view)
	return nil
}

// Login checks a phone/password pair and records the login time.
// Unknown phones and wrong passwords are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (dto.UserResponse, error) {
	log := logger.FromContext(ctx)

	user, err := s.store.FetchByPhone(ctx, req.PhoneNumber)
	if err != nil {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return dto.UserResponse{}, invalidCredentials()
		}
		return dto.UserResponse{}, err
	}

	ok, err := user.CheckPassword(req.Password)
	if err != nil {
		return dto.UserResponse{}, err
	}
	if !ok {
		log.Warn("login rejected", "user_id", user.ID)
		return dto.UserResponse{}, invalidCredentials()
	}

	now := s.clockNow()
	if err := s.store.TouchLastLogin(ctx, user.ID, now); err != nil {
		return dto.UserResponse{}, err
	}
	user.LastLogin = &now

	log.Info("user logged in", "user_id", user.ID)
	return dto.NewUserResponse(user), nil
}

// FetchByPhone resolves the active account behind a verified phone number.
func (s *userService) FetchByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.store.FetchByPhone(ctx, phone)
}

// SetRole is the administrative path that can grant any role, superuser
// included. The HTTP views never reach it.
func (s *userService) SetRole(ctx context.Context, id string, role models.Role) error {
	if !role.Valid() {
		return errs.NewValidationError("unknown role " + string(role))
	}
	all := append(models.ViewStaff.Roles(), models.ViewCollaborator.Roles()...)
	user, err := s.store.GetUser(ctx, id, all)
	if err != nil {
		return err
	}
	user.Role = role
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("role changed", "user_id", id, "role", role)
	return nil
}

func invalidCredentials() error {
	return errs.NewAuthenticationError("invalid_credentials", "phone number or password is incorrect")
}

// apply copies the request onto user after validating it.
func (s *userService) apply(ctx context.Context, user *models.User, req dto.UserRequest) error {
	phone := models.NormalizePhone(req.PhoneNumber)
	if phone == "" {
		return errs.NewValidationError("phoneNumber is required")
	}

	var dob *time.Time
	if req.DateOfBirth != nil && strings.TrimSpace(*req.DateOfBirth) != "" {
		t, err := time.Parse(dto.DateLayout, strings.TrimSpace(*req.DateOfBirth))
		if err != nil {
			return errs.NewValidationError("dateOfBirth must be formatted as YYYY-MM-DD")
		}
		if t.After(s.clockNow()) {
			return errs.NewValidationError("dateOfBirth must not be in the future")
		}
		dob = &t
	}

	if err := s.checkAddress(ctx, req); err != nil {
		return err
	}

	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return err
		}
	}

	user.PhoneNumber = phone
	user.Name = req.Name
	user.DateOfBirth = dob
	user.CityID = req.CityID
	user.DistrictID = req.DistrictID
	user.VillageID = req.VillageID
	user.Address = req.Address
	return nil
}

// checkAddress verifies each referenced geography row exists and that a
// district sits in the given city and a village in the given district.
func (s *userService) checkAddress(ctx context.Context, req dto.UserRequest) error {
	if req.CityID != nil {
		if _, err := s.geography.GetCity(ctx, *req.CityID); err != nil {
			return asAddressError(err, "city")
		}
	}
	if req.DistrictID != nil {
		district, err := s.geography.GetDistrict(ctx, *req.DistrictID)
		if err != nil {
			return asAddressError(err, "district")
		}
		if req.CityID != nil && (district.CityID == nil || *district.CityID != *req.CityID) {
			return errs.NewValidationError("district does not belong to the given city")
		}
	}
	if req.VillageID != nil {
		village, err := s.geography.GetVillage(ctx, *req.VillageID)
		if err != nil {
			return asAddressError(err, "village")
		}
		if req.DistrictID != nil && (village.DistrictID == nil || *village.DistrictID != *req.DistrictID) {
			return errs.NewValidationError("village does not belong to the given district")
		}
	}
	return nil
}

func asAddressError(err error, what string) error {
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return errs.NewValidationError("unknown " + what)
	}
	return err
}
