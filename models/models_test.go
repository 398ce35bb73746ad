package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role    Role
		manage  bool
		viewAll bool
	}{
		{RoleAdmin, true, true},
		{RoleReceptionist, false, false},
		{RoleVeterinarian, false, false},
		{RoleClient, false, false},
	}
	for _, tc := range cases {
		if got := tc.role.CanManageReservations(); got != tc.manage {
			t.Errorf("%s.CanManageReservations() = %v, want %v", tc.role, got, tc.manage)
		}
		if got := tc.role.CanViewAllReservations(); got != tc.viewAll {
			t.Errorf("%s.CanViewAllReservations() = %v, want %v", tc.role, got, tc.viewAll)
		}
	}
}

func TestReservationItemSubtotalRecomputedOnSave(t *testing.T) {
	item := ReservationItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("10.00"),
		Subtotal:  decimal.RequireFromString("99.99"), // stale on purpose
	}
	if err := item.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if got := item.Subtotal.StringFixed(2); got != "30.00" {
		t.Errorf("subtotal = %s, want 30.00", got)
	}
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Carla", LastName: "Mendoza"}
	if u.FullName() != "Carla Mendoza" {
		t.Errorf("got %q", u.FullName())
	}
	solo := User{FirstName: "Carla"}
	if solo.FullName() != "Carla" {
		t.Errorf("got %q", solo.FullName())
	}
}
