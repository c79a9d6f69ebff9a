package fabric

// IntervalType enumerates the two mechanical roles an interval can play.
type IntervalType int

const (
	Push IntervalType = iota // strut: rigid, holds joints apart
	Pull                     // cable: tensioned, draws joints together
)

func (t IntervalType) String() string {
	switch t {
	case Push:
		return "Push"
	case Pull:
		return "Pull"
	default:
		return "unknown"
	}
}

// ParseIntervalType converts an external type tag to its IntervalType.
// The enumeration is closed: anything but the two known tags reports
// false, and loaders treat that as a format error rather than letting
// an unrecognized tag silently skip the strut inset downstream.
func ParseIntervalType(s string) (IntervalType, bool) {
	switch s {
	case "Push":
		return Push, true
	case "Pull":
		return Pull, true
	default:
		return 0, false
	}
}

// Role is the semantic classification a solver assigns to an interval.
// Roles are carried as display metadata; values outside KnownRoles load
// fine but are flagged by validation.
type Role string

const (
	RoleNexusPush  Role = "NexusPush"
	RoleColumnPush Role = "ColumnPush"
	RoleTriangle   Role = "Triangle"
	RoleRing       Role = "Ring"
	RoleNexusCross Role = "NexusCross"
	RoleColumnCross Role = "ColumnCross"
	RoleBowMid     Role = "BowMid"
	RoleBowEnd     Role = "BowEnd"
	RoleFacePull   Role = "FacePull"
)

// KnownRoles is the set of roles observed in solver output.
var KnownRoles = map[Role]bool{
	RoleNexusPush:   true,
	RoleColumnPush:  true,
	RoleTriangle:    true,
	RoleRing:        true,
	RoleNexusCross:  true,
	RoleColumnCross: true,
	RoleBowMid:      true,
	RoleBowEnd:      true,
	RoleFacePull:    true,
}
