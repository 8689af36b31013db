package crits

import (
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// engineGyroLocations are the locations whose reserved footprint depends
// on the engine or gyro choice.
var engineGyroLocations = []models.Location{
	models.CenterTorso, models.LeftTorso, models.RightTorso,
}

// Displacement reports the equipment forced out by a configuration
// change, and the locations where it happened.
type Displacement struct {
	MountIDs  []string          `json:"instance_ids,omitempty"`
	Locations []models.Location `json:"locations,omitempty"`
}

// Any reports whether the change displaces anything.
func (d Displacement) Any() bool {
	return len(d.MountIDs) > 0
}

// Displaced compares the reserved footprint before and after an engine or
// gyro change and returns every mount whose occupied slots fall inside
// the newly reserved region. Callers must evict these mounts before
// committing the new configuration; a shrinking footprint never
// displaces anything.
func Displaced(mounts []models.Mount, oldEngine, newEngine models.EngineType, oldGyro, newGyro models.GyroType) Displacement {
	var d Displacement
	for _, loc := range engineGyroLocations {
		oldSet := ReservedSet(loc, oldEngine, oldGyro)
		newly := make(map[int]bool)
		for _, s := range Reserved(loc, newEngine, newGyro) {
			if !oldSet[s] {
				newly[s] = true
			}
		}
		if len(newly) == 0 {
			continue
		}

		hit := false
		for _, m := range models.MountsAt(mounts, loc) {
			for _, s := range m.Placement.Slots {
				if newly[s] {
					d.MountIDs = append(d.MountIDs, m.ID)
					hit = true
					break
				}
			}
		}
		if hit {
			d.Locations = append(d.Locations, loc)
		}
	}
	return d
}

// Evict returns a new mount list with the placements of the given
// instance ids cleared. Mount instances are never deleted here; they
// become unallocated and stay on the unit.
func Evict(mounts []models.Mount, ids []string) []models.Mount {
	evict := make(map[string]bool, len(ids))
	for _, id := range ids {
		evict[id] = true
	}
	out := make([]models.Mount, len(mounts))
	for i, m := range mounts {
		if evict[m.ID] {
			out[i] = m.WithoutPlacement()
		} else {
			out[i] = m
		}
	}
	return out
}
