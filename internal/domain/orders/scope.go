package orders

import "github.com/fredriick/Electrify-sub009/internal/domain/users"

// Scope restricts q to the orders viewer may see: customers see their own
// orders, suppliers the orders containing their items, admins everything.
func Scope(q *OrderQuery, viewer *users.Profile) {
	q.CustomerID, q.SupplierID = "", ""
	switch viewer.Role {
	case users.RoleCustomer:
		q.CustomerID = viewer.ID
	case users.RoleSupplier:
		q.SupplierID = viewer.ID
	}
}

// VisibleTo reports whether viewer may read the order.
func (o *Order) VisibleTo(viewer *users.Profile) bool {
	switch {
	case viewer.Role.IsAdmin():
		return true
	case o.CustomerID == viewer.ID:
		return true
	case viewer.Role == users.RoleSupplier:
		return o.HasSupplier(viewer.ID)
	}
	return false
}
