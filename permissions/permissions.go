package permissions

// Capability is one gated action in the back office. The set is closed:
// every role maps to a fixed capability list, with no per-user overrides.
type Capability string

const (
	CapManageUsers     Capability = "MANAGE_USERS"
	CapManageAreas     Capability = "MANAGE_AREAS"
	CapManageTables    Capability = "MANAGE_TABLES"
	CapManageMenu      Capability = "MANAGE_MENU"
	CapManageInventory Capability = "MANAGE_INVENTORY"
	CapTakeOrders      Capability = "TAKE_ORDERS"
	CapCancelOrders    Capability = "CANCEL_ORDERS"
	CapViewOrders      Capability = "VIEW_ORDERS"
)

var roleCapabilities = map[string][]Capability{
	"ADMIN": {
		CapManageUsers, CapManageAreas, CapManageTables, CapManageMenu,
		CapManageInventory, CapTakeOrders, CapCancelOrders, CapViewOrders,
	},
	"WAITER": {
		CapTakeOrders, CapViewOrders,
	},
	"KITCHEN": {
		CapViewOrders,
	},
	"CASHIER": {
		CapViewOrders, CapCancelOrders,
	},
}

// ForRole returns the capability set for a role. Unknown roles get no
// capabilities rather than an error, so a stale token cannot escalate.
func ForRole(role string) []Capability {
	caps, ok := roleCapabilities[role]
	if !ok {
		return nil
	}
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// Allows reports whether the role grants the capability.
func Allows(role string, cap Capability) bool {
	for _, c := range roleCapabilities[role] {
		if c == cap {
			return true
		}
	}
	return false
}

// IsAdministrator reports whether the role is the administrator role.
func IsAdministrator(role string) bool {
	return role == "ADMIN"
}
