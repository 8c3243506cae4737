package controllers

import (
	"testing"

	"restobook-backend/models"
)

func TestRegistrationRole(t *testing.T) {
	if got := registrationRole(0); got != models.RoleAdmin {
		t.Errorf("registrationRole(0) = %q, want %q", got, models.RoleAdmin)
	}
	for _, n := range []int64{1, 2, 50} {
		if got := registrationRole(n); got != models.RoleStaff {
			t.Errorf("registrationRole(%d) = %q, want %q", n, got, models.RoleStaff)
		}
	}
}
