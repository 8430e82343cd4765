package registry

import "fwadmin/internal/domain"

type Action string

const (
	ActionViewIndex      Action = "view-index"
	ActionCreateHost     Action = "create-host"
	ActionEditHost       Action = "edit-host"
	ActionRenewHost      Action = "renew-host"
	ActionDeleteHost     Action = "delete-host"
	ActionApproveHost    Action = "approve-host"
	ActionListUnapproved Action = "list-unapproved"
	ActionCreateRule     Action = "create-rule"
	ActionDeleteRule     Action = "delete-rule"
)

// Policy is the single place permission checks live. Every operation calls
// Authorize before touching anything, instead of scattering per-handler
// checks across the boundary layer.
type Policy struct {
	AllowedGroup   string
	ModeratorGroup string
}

// Authorize returns nil when the caller may perform action, ErrUnauthenticated
// for anonymous callers and a wrapped ErrForbidden otherwise. Ownership-gated
// actions need the target host; passing a nil host for those is a programming
// error and is rejected.
func (p Policy) Authorize(caller Caller, action Action, host *domain.Host) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}

	switch action {
	case ActionViewIndex, ActionCreateHost:
		if !caller.HasGroup(p.AllowedGroup) {
			return forbidden(ReasonNotAllowed)
		}
		return nil

	case ActionApproveHost, ActionListUnapproved:
		if !caller.HasGroup(p.ModeratorGroup) {
			return forbidden(ReasonNotModerator)
		}
		return nil

	case ActionEditHost, ActionRenewHost, ActionDeleteHost,
		ActionCreateRule, ActionDeleteRule:
		if host == nil {
			return invalid("action %s requires a target host", action)
		}
		if caller.ID != host.OwnerID {
			return forbidden(ReasonNotOwner)
		}
		return nil
	}

	return forbidden("unknown action " + string(action))
}
