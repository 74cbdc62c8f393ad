// Package authz maps roles to capabilities. Visibility of screens and
// actions is driven entirely by this table; adding a role means adding a
// row here, not touching call sites.
package authz

import "github.com/barkada-pos/api/internal/enum"

// Capability names an action or surface a role may use.
type Capability string

const (
	CapPOSOperate         Capability = "pos.operate"
	CapTableService       Capability = "pos.table_service"
	CapMenuView           Capability = "menu.view"
	CapQueueView          Capability = "queue.view"
	CapQueueAdvance       Capability = "queue.advance"
	CapInventoryView      Capability = "inventory.view"
	CapReservationsManage Capability = "reservations.manage"
	CapVouchersManage     Capability = "vouchers.manage"
	CapVouchersRedeem     Capability = "vouchers.redeem"
	CapStaffEvaluate      Capability = "staff.evaluate"
	CapReportsView        Capability = "reports.view"
)

// capabilities is the single source of truth for role → allowed actions.
var capabilities = map[string][]Capability{
	enum.RoleOwner: {
		CapMenuView, CapInventoryView, CapReservationsManage,
		CapVouchersManage, CapVouchersRedeem, CapStaffEvaluate,
		CapQueueView, CapReportsView,
	},
	enum.RoleManager: {
		CapMenuView, CapInventoryView, CapReservationsManage,
		CapVouchersManage, CapVouchersRedeem, CapStaffEvaluate,
		CapQueueView, CapReportsView,
	},
	enum.RoleBartender: {
		CapPOSOperate, CapMenuView, CapQueueView, CapQueueAdvance,
		CapInventoryView,
	},
	enum.RoleKitchen: {
		CapMenuView, CapQueueView, CapQueueAdvance,
	},
	enum.RoleWaiter: {
		CapPOSOperate, CapTableService, CapMenuView, CapQueueView,
		CapReservationsManage,
	},
	enum.RoleSecurity: {
		CapVouchersRedeem,
	},
	enum.RoleDeveloper: {
		CapPOSOperate, CapTableService, CapMenuView, CapQueueView,
		CapQueueAdvance, CapInventoryView, CapReservationsManage,
		CapVouchersManage, CapVouchersRedeem, CapStaffEvaluate,
		CapReportsView,
	},
}

// Can reports whether the role holds the capability.
func Can(role string, cap Capability) bool {
	for _, c := range capabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// CapabilitiesFor returns the role's capability set; empty for unknown
// roles, which therefore can do nothing beyond authenticated basics.
func CapabilitiesFor(role string) []Capability {
	out := make([]Capability, len(capabilities[role]))
	copy(out, capabilities[role])
	return out
}
