package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sebitservices/SaborHub-sub000/permissions"
)

func TestAdminHasEveryCapability(t *testing.T) {
	all := []permissions.Capability{
		permissions.CapManageUsers,
		permissions.CapManageAreas,
		permissions.CapManageTables,
		permissions.CapManageMenu,
		permissions.CapManageInventory,
		permissions.CapTakeOrders,
		permissions.CapCancelOrders,
		permissions.CapViewOrders,
	}
	for _, cap := range all {
		assert.True(t, permissions.Allows("ADMIN", cap), string(cap))
	}
}

func TestWaiterTakesOrdersButCannotCancel(t *testing.T) {
	assert.True(t, permissions.Allows("WAITER", permissions.CapTakeOrders))
	assert.False(t, permissions.Allows("WAITER", permissions.CapCancelOrders))
	assert.False(t, permissions.Allows("WAITER", permissions.CapManageUsers))
}

func TestCashierCancelsButDoesNotTakeOrders(t *testing.T) {
	assert.True(t, permissions.Allows("CASHIER", permissions.CapCancelOrders))
	assert.False(t, permissions.Allows("CASHIER", permissions.CapTakeOrders))
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	assert.Empty(t, permissions.ForRole("MANAGER"))
	assert.False(t, permissions.Allows("MANAGER", permissions.CapViewOrders))
	assert.False(t, permissions.Allows("", permissions.CapViewOrders))
}

func TestEveryKnownRoleMapsToSomething(t *testing.T) {
	for _, role := range []string{"ADMIN", "WAITER", "KITCHEN", "CASHIER"} {
		assert.NotEmpty(t, permissions.ForRole(role), role)
	}
}

func TestIsAdministrator(t *testing.T) {
	assert.True(t, permissions.IsAdministrator("ADMIN"))
	assert.False(t, permissions.IsAdministrator("WAITER"))
}
