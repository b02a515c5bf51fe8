// Package access holds the role-based access table shared by the API guards
// and by the client affordances.
package access

import (
	"github.com/muhu-travel/backoffice-api/internal/domain"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceUsers        Resource = "users"
	ResourceClients      Resource = "clients"
	ResourceEmployees    Resource = "employees"
	ResourceProviders    Resource = "providers"
	ResourcePackages     Resource = "packages"
	ResourceReservations Resource = "reservations"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) Allowed() bool {
	return d == Allow
}

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

var (
	allActions   = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	allResources = []Resource{
		ResourceUsers,
		ResourceClients,
		ResourceEmployees,
		ResourceProviders,
		ResourcePackages,
		ResourceReservations,
	}
)

var (
	crud     = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
	readOnly = []Action{ActionRead}
	cru      = []Action{ActionCreate, ActionRead, ActionUpdate}
	cr       = []Action{ActionCreate, ActionRead}
)

// table is the single source of truth. A missing entry means deny.
var table = map[domain.Role]map[Resource][]Action{
	domain.RoleAdmin: {
		ResourceUsers:        crud,
		ResourcePackages:     crud,
		ResourceEmployees:    crud,
		ResourceProviders:    crud,
		ResourceClients:      cru,
		ResourceReservations: crud,
	},
	domain.RoleAgent: {
		ResourcePackages:     readOnly,
		ResourceEmployees:    readOnly,
		ResourceProviders:    readOnly,
		ResourceClients:      cru,
		ResourceReservations: cr,
	},
}

// Decide reports whether role may perform action on resource.
func Decide(role domain.Role, action Action, resource Resource) Decision {
	for _, a := range table[role][resource] {
		if a == action {
			return Allow
		}
	}

	return Deny
}

// Actions returns the actions role may perform on resource, in create/read/update/delete order.
func Actions(role domain.Role, resource Resource) []Action {
	actions := []Action{}
	for _, a := range allActions {
		if Decide(role, a, resource).Allowed() {
			actions = append(actions, a)
		}
	}

	return actions
}

// Matrix returns the allowed actions of role for every resource it can reach at all.
func Matrix(role domain.Role) map[Resource][]Action {
	m := make(map[Resource][]Action)
	for _, r := range allResources {
		if actions := Actions(role, r); len(actions) > 0 {
			m[r] = actions
		}
	}

	return m
}

func Resources() []Resource {
	return append([]Resource(nil), allResources...)
}

func ParseResource(s string) (Resource, bool) {
	for _, r := range allResources {
		if string(r) == s {
			return r, true
		}
	}

	return "", false
}
