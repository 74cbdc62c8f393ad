package authz_test

import (
	"testing"

	"github.com/barkada-pos/api/internal/authz"
	"github.com/barkada-pos/api/internal/enum"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role string
		cap  authz.Capability
		want bool
	}{
		{enum.RoleWaiter, authz.CapPOSOperate, true},
		{enum.RoleWaiter, authz.CapTableService, true},
		{enum.RoleWaiter, authz.CapVouchersManage, false},
		{enum.RoleBartender, authz.CapPOSOperate, true},
		{enum.RoleBartender, authz.CapTableService, false},
		{enum.RoleKitchen, authz.CapQueueAdvance, true},
		{enum.RoleKitchen, authz.CapPOSOperate, false},
		{enum.RoleManager, authz.CapVouchersManage, true},
		{enum.RoleManager, authz.CapPOSOperate, false},
		{enum.RoleManager, authz.CapReportsView, true},
		{enum.RoleWaiter, authz.CapReportsView, false},
		{enum.RoleSecurity, authz.CapVouchersRedeem, true},
		{enum.RoleSecurity, authz.CapQueueView, false},
		{enum.RoleOwner, authz.CapStaffEvaluate, true},
		{"INTERN", authz.CapMenuView, false}, // unknown role holds nothing
	}

	for _, tt := range tests {
		if got := authz.Can(tt.role, tt.cap); got != tt.want {
			t.Errorf("Can(%s, %s): got %v, want %v", tt.role, tt.cap, got, tt.want)
		}
	}
}

func TestEveryRoleHasARow(t *testing.T) {
	for _, role := range []string{
		enum.RoleOwner, enum.RoleManager, enum.RoleBartender, enum.RoleKitchen,
		enum.RoleWaiter, enum.RoleSecurity, enum.RoleDeveloper,
	} {
		if len(authz.CapabilitiesFor(role)) == 0 {
			t.Errorf("role %s has no capabilities", role)
		}
	}
}
