package authz

import (
	sq "github.com/Masterminds/squirrel"

	"gearguard/internal/entities"
)

type Resource string

const (
	ResourceEquipment Resource = "equipment"
	ResourceTeams     Resource = "teams"
	ResourceRequests  Resource = "requests"
	ResourceDashboard Resource = "dashboard"
)

type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionAssign Action = "assign"
	ActionImport Action = "import"
)

type rule struct {
	Role     entities.Role
	Resource Resource
	Action   Action
}

// policy is the single source of truth for (role, resource, action)
// decisions. Row-level visibility is handled separately by the scope
// builders below.
var policy = map[rule]bool{}

func allow(role entities.Role, resource Resource, actions ...Action) {
	for _, action := range actions {
		policy[rule{role, resource, action}] = true
	}
}

func init() {
	for _, role := range []entities.Role{entities.RoleAdmin, entities.RoleUser, entities.RoleTechnician} {
		allow(role, ResourceEquipment, ActionList, ActionRead)
		allow(role, ResourceTeams, ActionList, ActionRead)
		allow(role, ResourceRequests, ActionList, ActionRead, ActionCreate)
		allow(role, ResourceDashboard, ActionRead)
	}

	allow(entities.RoleAdmin, ResourceEquipment, ActionCreate, ActionUpdate, ActionDelete, ActionImport)
	allow(entities.RoleAdmin, ResourceTeams, ActionCreate, ActionUpdate, ActionDelete)
	allow(entities.RoleAdmin, ResourceRequests, ActionUpdate, ActionDelete, ActionAssign)

	allow(entities.RoleTechnician, ResourceRequests, ActionUpdate, ActionAssign)
}

// Allowed consults the policy table. Row-level constraints (team scoping,
// ownership) still apply on top of a positive answer.
func Allowed(role entities.Role, resource Resource, action Action) bool {
	return policy[rule{role, resource, action}]
}

// RequestScope returns the visibility predicate for maintenance requests,
// or nil when the caller sees everything. Column names are prefixed with
// the mr alias used by the request queries.
//
// A technician without a team affiliation is left unscoped, mirroring the
// historical behavior.
func RequestScope(actor *entities.User) sq.Sqlizer {
	switch actor.Role {
	case entities.RoleUser:
		return sq.Eq{"mr.created_by": actor.ID}
	case entities.RoleTechnician:
		if actor.HasTeam() {
			return sq.Eq{"mr.team_id": *actor.TeamID}
		}
	}
	return nil
}

// EquipmentScope returns the visibility predicate for equipment rows.
// Only technicians with a team affiliation are restricted.
func EquipmentScope(actor *entities.User) sq.Sqlizer {
	if actor.Role == entities.RoleTechnician && actor.HasTeam() {
		return sq.Eq{"e.team_id": *actor.TeamID}
	}
	return nil
}

// teamMatch treats two absent affiliations as equal, matching the original
// comparison semantics.
func teamMatch(a, b *uint64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// CanReadRequest applies the row-level read rule for a single request.
func CanReadRequest(actor *entities.User, request *entities.MaintenanceRequest) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleUser:
		return request.CreatedBy == actor.ID
	case entities.RoleTechnician:
		if !actor.HasTeam() {
			return true
		}
		return request.TeamID != nil && *request.TeamID == *actor.TeamID
	}
	return false
}

// CanUpdateRequest gates general-field updates: admins are unconstrained,
// technicians only touch requests of their own team.
func CanUpdateRequest(actor *entities.User, request *entities.MaintenanceRequest) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleTechnician:
		return teamMatch(request.TeamID, actor.TeamID)
	}
	return false
}

// CanSelfAssign confines technician self-assignment to the request's team.
func CanSelfAssign(actor *entities.User, request *entities.MaintenanceRequest) bool {
	if actor.Role != entities.RoleTechnician {
		return false
	}
	return teamMatch(request.TeamID, actor.TeamID)
}
