// Package locomotion serializes rig movement between competing providers.
//
// Several components may want to reposition the play-space rig in the same
// frame (body tracking, teleport, smooth turn). The System hands out exclusive
// access: a provider asks with TryBegin, moves the rig if granted, and calls
// End immediately afterward. A denied provider simply tries again next frame;
// nothing queues and nothing blocks.
package locomotion

// System is a single-owner advisory lock over rig movement. The whole update
// runs on the frame thread, so ownership is a plain field.
type System struct {
	owner any
}

func NewSystem() *System {
	return &System{}
}

// TryBegin grants exclusive rig access to owner. Re-entrant for the current
// owner; denied while anyone else holds it.
func (s *System) TryBegin(owner any) bool {
	if owner == nil {
		return false
	}
	if s.owner != nil && s.owner != owner {
		return false
	}
	s.owner = owner
	return true
}

// End releases the grant. Only the current owner can release; anyone else
// calling End is ignored.
func (s *System) End(owner any) {
	if s.owner == owner {
		s.owner = nil
	}
}

// Busy reports whether some provider currently holds the grant.
func (s *System) Busy() bool {
	return s.owner != nil
}
