package crits

import (
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// occupiedSet returns the slot indices in loc held by mounts other than
// excludeID. Pass an empty excludeID to include every mount.
func occupiedSet(loc models.Location, mounts []models.Mount, excludeID string) map[int]bool {
	set := make(map[int]bool)
	for _, m := range mounts {
		if m.ID == excludeID || m.Placement == nil || m.Placement.Location != loc {
			continue
		}
		for _, s := range m.Placement.Slots {
			set[s] = true
		}
	}
	return set
}

// freeSlots returns the assignable indices of loc in ascending order:
// everything not reserved by the topology and not occupied by a mount
// other than excludeID.
func freeSlots(loc models.Location, engine models.EngineType, gyro models.GyroType, mounts []models.Mount, excludeID string) []int {
	reserved := ReservedSet(loc, engine, gyro)
	occupied := occupiedSet(loc, mounts, excludeID)
	var out []int
	for i := 0; i < loc.Capacity(); i++ {
		if !reserved[i] && !occupied[i] {
			out = append(out, i)
		}
	}
	return out
}

// AssignableStarts returns every legal starting slot index at which def
// could be placed in loc given the current layout, ascending. The
// definition's restriction tag is checked first; an item too large for
// the remaining free space yields an empty result, never an error.
// A mount already holding slots in loc does not block itself: pass its
// id as excludeID when probing a move, or "" for a fresh placement.
func AssignableStarts(loc models.Location, def *models.EquipmentDef, cfg models.Config, mounts []models.Mount, excludeID string) []int {
	if def == nil || def.Slots < 1 {
		return nil
	}
	if !def.Restriction.Allows(loc) {
		return nil
	}

	free := freeSlots(loc, cfg.Engine, cfg.Gyro, mounts, excludeID)
	var starts []int
	run := 0
	for i := range free {
		if i > 0 && free[i] == free[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run >= def.Slots {
			starts = append(starts, free[i-def.Slots+1])
		}
	}
	return starts
}

// CanPlace reports whether def fits at exactly start in loc.
func CanPlace(loc models.Location, start int, def *models.EquipmentDef, cfg models.Config, mounts []models.Mount, excludeID string) bool {
	for _, s := range AssignableStarts(loc, def, cfg, mounts, excludeID) {
		if s == start {
			return true
		}
	}
	return false
}

// slotRange returns the n consecutive indices beginning at start.
func slotRange(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
