package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	svc, err := NewDefaultService()
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     Role
		resource string
		action   string
		allowed  bool
	}{
		{"manager reads financial reports", RoleManager, ResourceReport, ActionFinancial, true},
		{"frontoffice writes bookings", RoleFrontOffice, ResourceBooking, ActionWrite, true},
		{"frontoffice cannot see financial reports", RoleFrontOffice, ResourceReport, ActionFinancial, false},
		{"housekeeping completes tasks", RoleHousekeeping, ResourceTask, ActionComplete, true},
		{"housekeeping cannot create tasks", RoleHousekeeping, ResourceTask, ActionWrite, false},
		{"housekeeping files damage reports", RoleHousekeeping, ResourceDamage, ActionCreate, true},
		{"owner cannot change damage status", RoleOwner, ResourceDamage, ActionManage, false},
		{"owner reads own dashboard", RoleOwner, ResourceOwner, ActionRead, true},
		{"owner cannot read bookings list", RoleOwner, ResourceBooking, ActionRead, false},
		{"owner cannot write owner notes", RoleOwner, ResourceOwner, ActionNotes, false},
		{"unknown role denied", Role("guest"), ResourceBooking, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestRBACService_CapabilitiesMatchEnforcer(t *testing.T) {
	svc := newTestService(t)

	for _, role := range Roles() {
		for _, c := range svc.Capabilities(role) {
			var resource, action string
			for i := range c {
				if c[i] == ':' {
					resource, action = c[:i], c[i+1:]
					break
				}
			}
			allowed, err := svc.Enforce(EnforceRequest{Role: role, Resource: resource, Action: action})
			assert.NoError(t, err)
			assert.True(t, allowed, "%s should have %s", role, c)
		}
	}

	assert.Empty(t, svc.Capabilities(Role("guest")))
}

func TestRole_ScopedToProperty(t *testing.T) {
	assert.False(t, RoleManager.ScopedToProperty())
	assert.True(t, RoleFrontOffice.ScopedToProperty())
	assert.True(t, RoleOwner.ScopedToProperty())
	assert.False(t, Role("guest").Valid())
}
