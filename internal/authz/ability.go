// Package authz implements the capability engine: a pure, per-call
// evaluation of whether an actor may perform an action on a resource.
// Rules form an ordered additive table; any matching rule permits, and
// absence of a matching rule denies. There is no explicit deny list.
package authz

import (
	"github.com/google/uuid"

	"github.com/socialblog/backend/internal/domain"
)

// Action is a capability. Manage implies every other action.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionRead   Action = "READ"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionManage Action = "MANAGE"
)

func (a Action) String() string { return string(a) }

// Decision is the outcome of an ability evaluation.
type Decision bool

const (
	Permit Decision = true
	Deny   Decision = false
)

// Resource is any entity the engine can authorize against. The kind
// discriminator drives dispatch; ownership rules consult ResourceOwner.
type Resource interface {
	ResourceKind() domain.ResourceKind
	ResourceOwner() uuid.UUID
}

// anyKind is the wildcard resource kind used by role-based rules.
const anyKind domain.ResourceKind = "*"

// rule maps a condition to a Permit for an action on a resource kind.
type rule struct {
	// when decides whether the rule applies to this actor/resource pair.
	when func(actor *domain.User, res Resource) bool
	// action the rule grants; ActionManage subsumes all actions.
	action Action
	// kind the rule covers; anyKind matches every recognized kind.
	kind domain.ResourceKind
}

// ruleTable is evaluated top to bottom. Rules are additive: the first
// rule whose condition, action and kind all match yields Permit.
var ruleTable = []rule{
	// Admins manage everything.
	{
		when:   func(actor *domain.User, _ Resource) bool { return actor.IsAdmin() },
		action: ActionManage,
		kind:   anyKind,
	},
	// Everyone else reads everything.
	{
		when:   func(actor *domain.User, _ Resource) bool { return !actor.IsAdmin() },
		action: ActionRead,
		kind:   anyKind,
	},
	// Authors manage their own posts and comments, regardless of role.
	{
		when:   ownerMatches,
		action: ActionManage,
		kind:   domain.KindPost,
	},
	{
		when:   ownerMatches,
		action: ActionManage,
		kind:   domain.KindComment,
	},
}

func ownerMatches(actor *domain.User, res Resource) bool {
	owner := res.ResourceOwner()
	return owner != uuid.Nil && owner == actor.ID
}

// Evaluate decides whether actor may perform action on res.
// A nil actor or nil resource, or a resource with an unrecognized kind
// discriminator, evaluates to Deny — never a panic.
func Evaluate(actor *domain.User, action Action, res Resource) Decision {
	if actor == nil || res == nil {
		return Deny
	}
	kind := res.ResourceKind()
	if !kind.IsValid() {
		return Deny
	}

	for _, r := range ruleTable {
		if r.kind != anyKind && r.kind != kind {
			continue
		}
		if r.action != ActionManage && r.action != action {
			continue
		}
		if r.when(actor, res) {
			return Permit
		}
	}
	return Deny
}

// Can is a convenience wrapper returning Evaluate as a bool.
func Can(actor *domain.User, action Action, res Resource) bool {
	return Evaluate(actor, action, res) == Permit
}

// Require returns nil when the action is permitted and
// domain.ErrForbidden otherwise.
func Require(actor *domain.User, action Action, res Resource) error {
	if Evaluate(actor, action, res) == Permit {
		return nil
	}
	return domain.ErrForbidden
}
