package models

import (
	"testing"
	"time"

	"github.com/GregMSThompson/gatabank/internal/errs"
)

func TestCheckPasswordWithoutPassword(t *testing.T) {
	u := &User{}
	ok, err := u.CheckPassword("anything")
	if ok {
		t.Fatalf("CheckPassword returned true for user without password")
	}
	authErr, isAuth := err.(*errs.AuthenticationError)
	if !isAuth {
		t.Fatalf("error = %T, want *errs.AuthenticationError", err)
	}
	if authErr.Code != "password_empty" {
		t.Fatalf("code = %q, want password_empty", authErr.Code)
	}
}

func TestSetAndCheckPassword(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == nil || *u.Password == "s3cret-pass" {
		t.Fatalf("password stored in plaintext or missing")
	}

	ok, err := u.CheckPassword("s3cret-pass")
	if err != nil || !ok {
		t.Fatalf("CheckPassword(correct) = %v, %v", ok, err)
	}
	ok, err = u.CheckPassword("wrong")
	if err != nil || ok {
		t.Fatalf("CheckPassword(wrong) = %v, %v", ok, err)
	}
}

func TestSetPasswordRejectsEmpty(t *testing.T) {
	u := &User{}
	if _, ok := u.SetPassword("").(*errs.ValidationError); !ok {
		t.Fatalf("expected validation error for empty password")
	}
}

func TestNormalizePhone(t *testing.T) {
	if NormalizePhone(" John@Example ") != NormalizePhone("john@example") {
		t.Fatalf("phone lookup must be case-insensitive")
	}
}

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role   Role
		cap    Capability
		expect bool
	}{
		{RoleCollaborator, CapCatalogRead, true},
		{RoleCollaborator, CapCatalogWrite, false},
		{RoleStaff, CapCatalogWrite, true},
		{RoleStaff, CapUsersManage, false},
		{RoleSuperuser, CapUsersManage, true},
		{Role("GHOST"), CapCatalogRead, false},
	}
	for _, tc := range cases {
		u := &User{Entity: Entity{Status: StatusActive}, Role: tc.role}
		if got := u.HasPermission(tc.cap); got != tc.expect {
			t.Errorf("%s.HasPermission(%s) = %v, want %v", tc.role, tc.cap, got, tc.expect)
		}
	}
}

func TestModulePermission(t *testing.T) {
	staff := &User{Entity: Entity{Status: StatusActive}, Role: RoleStaff}
	if !staff.HasModulePermission("catalog") {
		t.Fatalf("staff should access catalog module")
	}
	if staff.HasModulePermission("users") {
		t.Fatalf("staff should not access users module")
	}

	retired := &User{Entity: Entity{Status: StatusInactive}, Role: RoleSuperuser}
	if retired.HasModulePermission("users") || retired.HasPermission(CapCatalogRead) {
		t.Fatalf("inactive accounts hold no permissions")
	}
}

func TestStaffPredicates(t *testing.T) {
	cases := []struct {
		role      Role
		staff     bool
		superuser bool
	}{
		{RoleCollaborator, false, false},
		{RoleStaff, true, false},
		{RoleSuperuser, true, true},
	}
	for _, tc := range cases {
		u := &User{Role: tc.role}
		if u.IsStaff() != tc.staff || u.IsSuperuser() != tc.superuser {
			t.Errorf("%s: IsStaff=%v IsSuperuser=%v", tc.role, u.IsStaff(), u.IsSuperuser())
		}
	}
}

func TestAccountViewPin(t *testing.T) {
	if got := ViewStaff.Pin(RoleCollaborator); got != RoleStaff {
		t.Fatalf("staff view pin = %s", got)
	}
	if got := ViewStaff.Pin(RoleSuperuser); got != RoleSuperuser {
		t.Fatalf("staff view must keep superuser, got %s", got)
	}
	if got := ViewCollaborator.Pin(RoleSuperuser); got != RoleCollaborator {
		t.Fatalf("collaborator view pin = %s", got)
	}
}

func TestTouchKeepsOrdering(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e := &Entity{}
	e.Touch(created)
	if !e.CreatedAt.Equal(created) || !e.UpdatedAt.Equal(created) {
		t.Fatalf("first touch should set both timestamps: %+v", e)
	}

	later := created.Add(time.Hour)
	e.Touch(later)
	if !e.CreatedAt.Equal(created) || !e.UpdatedAt.Equal(later) {
		t.Fatalf("second touch must only move UpdatedAt: %+v", e)
	}

	e.Touch(created.Add(-time.Hour))
	if e.UpdatedAt.Before(e.CreatedAt) {
		t.Fatalf("UpdatedAt moved before CreatedAt: %+v", e)
	}
}
