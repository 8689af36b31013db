package models

// Location identifies one of the eight fixed regions of a biped chassis.
// Codes match the abbreviations used in MegaMek MTF armor fields.
type Location string

const (
	Head        Location = "HD"
	CenterTorso Location = "CT"
	LeftTorso   Location = "LT"
	RightTorso  Location = "RT"
	LeftArm     Location = "LA"
	RightArm    Location = "RA"
	LeftLeg     Location = "LL"
	RightLeg    Location = "RL"
)

// Locations lists every location in canonical order. Iteration over
// locations must use this slice so results are deterministic.
var Locations = []Location{
	Head, CenterTorso, LeftTorso, RightTorso,
	LeftArm, RightArm, LeftLeg, RightLeg,
}

// slotCounts is the fixed critical-slot capacity per location (sum 78).
var slotCounts = map[Location]int{
	Head:        6,
	CenterTorso: 12,
	LeftTorso:   12,
	RightTorso:  12,
	LeftArm:     12,
	RightArm:    12,
	LeftLeg:     6,
	RightLeg:    6,
}

// Capacity returns the total critical-slot count for the location.
func (l Location) Capacity() int {
	return slotCounts[l]
}

// Valid reports whether l is one of the eight biped locations.
func (l Location) Valid() bool {
	_, ok := slotCounts[l]
	return ok
}

// IsTorso reports whether l is a torso location.
func (l Location) IsTorso() bool {
	return l == CenterTorso || l == LeftTorso || l == RightTorso
}

// IsLeg reports whether l is a leg location.
func (l Location) IsLeg() bool {
	return l == LeftLeg || l == RightLeg
}

// IsArm reports whether l is an arm location.
func (l Location) IsArm() bool {
	return l == LeftArm || l == RightArm
}

// LocationPair is a left/right pair used when spreading equipment evenly.
type LocationPair struct {
	Left  Location
	Right Location
}

// Pairs lists the paired locations in fill order: torsos, arms, legs.
// Center Torso and Head are unpaired last-resort locations.
var Pairs = []LocationPair{
	{LeftTorso, RightTorso},
	{LeftArm, RightArm},
	{LeftLeg, RightLeg},
}

// fullNames maps MTF location headers to codes.
var fullNames = map[string]Location{
	"Head":         Head,
	"Center Torso": CenterTorso,
	"Left Torso":   LeftTorso,
	"Right Torso":  RightTorso,
	"Left Arm":     LeftArm,
	"Right Arm":    RightArm,
	"Left Leg":     LeftLeg,
	"Right Leg":    RightLeg,
}

// ParseLocation resolves either a code ("LT") or an MTF header name
// ("Left Torso") to a Location. The second return is false for
// unrecognized names, including quad and LAM locations.
func ParseLocation(s string) (Location, bool) {
	if loc, ok := fullNames[s]; ok {
		return loc, true
	}
	loc := Location(s)
	if loc.Valid() {
		return loc, true
	}
	return "", false
}

// String returns the full display name for the location.
func (l Location) String() string {
	switch l {
	case Head:
		return "Head"
	case CenterTorso:
		return "Center Torso"
	case LeftTorso:
		return "Left Torso"
	case RightTorso:
		return "Right Torso"
	case LeftArm:
		return "Left Arm"
	case RightArm:
		return "Right Arm"
	case LeftLeg:
		return "Left Leg"
	case RightLeg:
		return "Right Leg"
	default:
		return string(l)
	}
}
