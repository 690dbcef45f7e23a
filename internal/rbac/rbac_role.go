package rbac

import "sort"

type Role string

const (
	RoleManager      Role = "manager"
	RoleFrontOffice  Role = "frontoffice"
	RoleHousekeeping Role = "housekeeping"
	RoleOwner        Role = "owner"
)

// Resources and actions used by route guards.
const (
	ResourceBooking  = "booking"
	ResourceUnit     = "unit"
	ResourceProperty = "property"
	ResourceTask     = "task"
	ResourceReport   = "report"
	ResourceUser     = "user"
	ResourceDamage   = "damage"
	ResourceOwner    = "owner"

	ActionRead      = "read"
	ActionWrite     = "write"
	ActionComplete  = "complete"
	ActionGeneral   = "general"
	ActionFinancial = "financial"
	ActionManage    = "manage"
	ActionCreate    = "create"
	ActionNotes     = "notes"
)

// roleCapabilities is the only place role permissions are declared. It feeds
// both the casbin policy and the capability list sent to clients.
var roleCapabilities = map[Role][]string{
	RoleManager: {
		"booking:read", "booking:write",
		"unit:read", "unit:write",
		"property:read", "property:write",
		"task:read", "task:write", "task:complete",
		"report:general", "report:financial",
		"user:manage",
		"damage:create", "damage:read", "damage:manage",
		"owner:read", "owner:notes",
	},
	RoleFrontOffice: {
		"booking:read", "booking:write",
		"unit:read",
		"property:read",
		"task:read", "task:write", "task:complete",
		"report:general",
	},
	RoleHousekeeping: {
		"booking:read",
		"unit:read",
		"property:read",
		"task:read", "task:complete",
		"damage:create",
	},
	RoleOwner: {
		"damage:read",
		"owner:read",
	},
}

func Roles() []Role {
	return []Role{RoleManager, RoleFrontOffice, RoleHousekeeping, RoleOwner}
}

func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// ScopedToProperty reports whether users with this role only see their own
// property group.
func (r Role) ScopedToProperty() bool {
	return r != RoleManager
}

// Capabilities returns a sorted copy of the role's capability list.
func (r Role) Capabilities() []string {
	caps := append([]string(nil), roleCapabilities[r]...)
	sort.Strings(caps)
	return caps
}
