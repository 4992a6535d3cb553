// Package policy holds the per-resource access table. Every endpoint is
// gated by one (resource, action) pair evaluated against the caller's
// identity by a single pure function.
package policy

import "github.com/marquee-dev/marquee/internal/service"

type Resource string

const (
	ResourceMovie   Resource = "movie"
	ResourceTheater Resource = "theater"
	ResourceShowing Resource = "showing"
	ResourceSnack   Resource = "snack"
	ResourceBooking Resource = "booking"
	ResourceUser    Resource = "user"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionCreate Action = "create"
	ActionPurge  Action = "purge"
)

type Decision int

const (
	Anyone Decision = iota
	Authenticated
	Staff
	// StaffMember is the application-level staff flag. Only snack mutation
	// uses it; everything else checks the admin flag. The two flags are kept
	// separate to match existing user records.
	StaffMember
)

// Identity describes the caller after token verification. The zero value is
// an anonymous caller.
type Identity struct {
	UserID        int64
	Authenticated bool
	IsStaff       bool
	IsStaffMember bool
	IsSuperuser   bool
}

var table = map[Resource]map[Action]Decision{
	ResourceMovie: {
		ActionRead:  Anyone,
		ActionWrite: Staff,
	},
	ResourceTheater: {
		ActionRead:  Authenticated,
		ActionWrite: Staff,
	},
	ResourceShowing: {
		ActionRead:  Authenticated,
		ActionWrite: Staff,
		ActionPurge: Staff,
	},
	ResourceSnack: {
		ActionRead:  Authenticated,
		ActionWrite: StaffMember,
	},
	ResourceBooking: {
		ActionRead:   Authenticated,
		ActionCreate: Authenticated,
	},
	ResourceUser: {
		ActionRead:   Staff,
		ActionCreate: Staff,
	},
}

// Check returns nil when the identity may perform the action, or
// service.ErrUnauthorized / service.ErrForbidden otherwise. Unknown pairs
// are denied.
func Check(resource Resource, action Action, id Identity) error {
	actions, ok := table[resource]
	if !ok {
		return service.ErrForbidden
	}
	decision, ok := actions[action]
	if !ok {
		return service.ErrForbidden
	}

	switch decision {
	case Anyone:
		return nil
	case Authenticated:
		if !id.Authenticated {
			return service.ErrUnauthorized
		}
		return nil
	case Staff:
		if !id.Authenticated {
			return service.ErrUnauthorized
		}
		if !id.IsStaff && !id.IsSuperuser {
			return service.ErrForbidden
		}
		return nil
	case StaffMember:
		if !id.Authenticated {
			return service.ErrUnauthorized
		}
		if !id.IsStaffMember {
			return service.ErrForbidden
		}
		return nil
	}
	return service.ErrForbidden
}
