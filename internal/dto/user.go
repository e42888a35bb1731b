package dto

import (
	"time"

	"github.com/GregMSThompson/gatabank/internal/models"
)

// UserRequest is the write form for both account views. The role is never
// read from the client; the view decides it.
type UserRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Password    *string `json:"password"`
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
	CityID      *string `json:"cityId"`
	DistrictID  *string `json:"districtId"`
	VillageID   *string `json:"villageId"`
	Address     *string `json:"address"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type UserResponse struct {
	Meta
	PhoneNumber string      `json:"phoneNumber"`
	Name        *string     `json:"name"`
	DateOfBirth *string     `json:"dateOfBirth"`
	CityID      *string     `json:"cityId"`
	DistrictID  *string     `json:"districtId"`
	VillageID   *string     `json:"villageId"`
	Address     *string     `json:"address"`
	Role        models.Role `json:"role"`
	LastLogin   *time.Time  `json:"lastLogin"`
}

func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		Meta:        metaOf(u.Entity),
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		CityID:      u.CityID,
		DistrictID:  u.DistrictID,
		VillageID:   u.VillageID,
		Address:     u.Address,
		Role:        u.Role,
		LastLogin:   u.LastLogin,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(DateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

func NewUserList(users []*models.User) []UserResponse {
	return mapPtrs(users, NewUserResponse)
}
