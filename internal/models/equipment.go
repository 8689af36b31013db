package models

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Restriction limits which locations an equipment definition may occupy.
// It is a tag on the definition, set once at catalog-load time, and the
// placement checker is the only code that interprets it.
type Restriction string

const (
	RestrictNone       Restriction = ""
	RestrictTorsoOnly  Restriction = "torso"
	RestrictTorsoOrLeg Restriction = "torso-or-leg"
	RestrictNotHead    Restriction = "not-head"
	RestrictHeadOnly   Restriction = "head"
)

// Allows reports whether the restriction permits placement in loc.
func (r Restriction) Allows(loc Location) bool {
	switch r {
	case RestrictNone:
		return true
	case RestrictTorsoOnly:
		return loc.IsTorso()
	case RestrictTorsoOrLeg:
		return loc.IsTorso() || loc.IsLeg()
	case RestrictNotHead:
		return loc != Head
	case RestrictHeadOnly:
		return loc == Head
	default:
		return false
	}
}

// EquipmentCategory is the coarse classification of a definition, used by
// the validator's heat and ammo checks.
type EquipmentCategory string

const (
	CategoryWeapon    EquipmentCategory = "weapon"
	CategoryAmmo      EquipmentCategory = "ammo"
	CategoryEquipment EquipmentCategory = "equipment"
	CategoryStructure EquipmentCategory = "structure"
	CategoryArmor     EquipmentCategory = "armor"
	CategoryCASE      EquipmentCategory = "case"
)

// EquipmentDef is the closed equipment-definition record. Instances are
// populated once from the catalog; no code probes alternate field names.
type EquipmentDef struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    EquipmentCategory `json:"category"`
	Slots       int               `json:"slots"`
	Tonnage     float64           `json:"tonnage"`
	Heat        int               `json:"heat,omitempty"`
	TechBase    TechBase          `json:"tech_base"`
	Restriction Restriction       `json:"restriction,omitempty"`
	Unhittable  bool              `json:"unhittable,omitempty"`
	Explosive   bool              `json:"explosive,omitempty"`
}

// Placement records the location and the exact slot indices a mount
// occupies. Slots are contiguous ascending indices.
type Placement struct {
	Location Location `json:"location"`
	Slots    []int    `json:"slots"`
}

// Contains reports whether the placement occupies slot index i.
func (p *Placement) Contains(i int) bool {
	if p == nil {
		return false
	}
	for _, s := range p.Slots {
		if s == i {
			return true
		}
	}
	return false
}

// Mount is one placed-or-unplaced occurrence of an equipment definition
// on the unit. A nil Placement means the mount is unallocated.
type Mount struct {
	ID        string        `json:"id"`
	Def       *EquipmentDef `json:"def"`
	Placement *Placement    `json:"placement,omitempty"`
}

// NewMount creates an unallocated mount for def with a fresh instance id.
func NewMount(def *EquipmentDef) Mount {
	return Mount{ID: uuid.NewString(), Def: def}
}

// Placed reports whether the mount currently occupies slots.
func (m Mount) Placed() bool {
	return m.Placement != nil
}

// WithPlacement returns a copy of m holding the given placement. The
// receiver is never mutated; layout operators build new mount values.
func (m Mount) WithPlacement(loc Location, slots []int) Mount {
	dup := make([]int, len(slots))
	copy(dup, slots)
	m.Placement = &Placement{Location: loc, Slots: dup}
	return m
}

// WithoutPlacement returns a copy of m with the placement cleared.
func (m Mount) WithoutPlacement() Mount {
	m.Placement = nil
	return m
}

// MountsAt returns the mounts placed in loc, ordered by lowest occupied
// slot index.
func MountsAt(mounts []Mount, loc Location) []Mount {
	var out []Mount
	for _, m := range mounts {
		if m.Placement != nil && m.Placement.Location == loc {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return minSlot(out[i]) < minSlot(out[j])
	})
	return out
}

func minSlot(m Mount) int {
	lo := m.Placement.Slots[0]
	for _, s := range m.Placement.Slots[1:] {
		if s < lo {
			lo = s
		}
	}
	return lo
}

// CheckMount verifies the per-mount boundary invariants: a known
// definition with a positive slot count, and a placement (if any) that is
// contiguous and within location bounds. Overlap with reserved slots and
// other mounts is the allocation engine's concern, not checked here.
func CheckMount(m Mount) error {
	if m.Def == nil {
		return fmt.Errorf("mount %s: nil equipment definition", m.ID)
	}
	if m.Def.Slots < 1 {
		return fmt.Errorf("mount %s (%s): slot count must be positive, got %d", m.ID, m.Def.Name, m.Def.Slots)
	}
	p := m.Placement
	if p == nil {
		return nil
	}
	if !p.Location.Valid() {
		return fmt.Errorf("mount %s (%s): unknown location %q", m.ID, m.Def.Name, string(p.Location))
	}
	if len(p.Slots) != m.Def.Slots {
		return fmt.Errorf("mount %s (%s): occupies %d slots, definition requires %d", m.ID, m.Def.Name, len(p.Slots), m.Def.Slots)
	}
	for i, s := range p.Slots {
		if s < 0 || s >= p.Location.Capacity() {
			return fmt.Errorf("mount %s (%s): slot %d out of bounds for %s", m.ID, m.Def.Name, s, p.Location)
		}
		if i > 0 && s != p.Slots[i-1]+1 {
			return fmt.Errorf("mount %s (%s): slots not contiguous", m.ID, m.Def.Name)
		}
	}
	return nil
}
