package crits

import (
	"sort"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// Assignment is one new placement produced by a layout operator.
type Assignment struct {
	MountID  string          `json:"instance_id"`
	Location models.Location `json:"location"`
	Slots    []int           `json:"slots"`
}

// Result is the outcome of a bulk layout operation. Unassigned lists
// mounts that found no room anywhere, an expected caller-visible
// condition. Dropped lists previously placed mounts that a compaction
// could not re-place; that indicates the reserved-slot computation and
// the placement invariant have diverged, and callers must surface it as
// a defect rather than discard the equipment silently.
type Result struct {
	Assignments []Assignment `json:"assignments"`
	Unassigned  []string     `json:"unassigned,omitempty"`
	Dropped     []string     `json:"dropped,omitempty"`
}

// Apply returns a new mount list with the result's placements applied.
// Mounts named in Unassigned or Dropped keep their previous placement;
// the input is never mutated.
func (r Result) Apply(mounts []models.Mount) []models.Mount {
	byID := make(map[string]Assignment, len(r.Assignments))
	for _, a := range r.Assignments {
		byID[a.MountID] = a
	}
	out := make([]models.Mount, len(mounts))
	for i, m := range mounts {
		if a, ok := byID[m.ID]; ok {
			out[i] = m.WithPlacement(a.Location, a.Slots)
		} else {
			out[i] = m
		}
	}
	return out
}

// fillOrder sorts fill candidates deterministically: name, then id.
func fillOrder(mounts []models.Mount) {
	sort.SliceStable(mounts, func(i, j int) bool {
		if mounts[i].Def.Name != mounts[j].Def.Name {
			return mounts[i].Def.Name < mounts[j].Def.Name
		}
		return mounts[i].ID < mounts[j].ID
	})
}

// Fill spreads unallocated unhittable equipment across the chassis:
// alternating between the sides of each location pair (torsos, arms,
// legs), switching sides after every successful placement, then the
// center torso, then the head's single open slot. Already placed mounts
// are left untouched. Items with no room anywhere come back in
// Unassigned.
func Fill(mounts []models.Mount, cfg models.Config) Result {
	var res Result

	var cands []models.Mount
	for _, m := range mounts {
		if !m.Placed() && m.Def != nil && m.Def.Unhittable {
			cands = append(cands, m)
		}
	}
	fillOrder(cands)

	// working reflects every placement made so far, so each scan sees
	// the slots claimed by earlier fill steps.
	working := append([]models.Mount(nil), mounts...)

	place := func(m models.Mount, loc models.Location) bool {
		starts := AssignableStarts(loc, m.Def, cfg, working, m.ID)
		if len(starts) == 0 {
			return false
		}
		slots := slotRange(starts[0], m.Def.Slots)
		res.Assignments = append(res.Assignments, Assignment{MountID: m.ID, Location: loc, Slots: slots})
		for i := range working {
			if working[i].ID == m.ID {
				working[i] = working[i].WithPlacement(loc, slots)
			}
		}
		return true
	}

	idx := 0
	for _, pair := range models.Pairs {
		sides := [2]models.Location{pair.Left, pair.Right}
		side := 0
		for idx < len(cands) {
			placed := false
			for attempt := 0; attempt < 2 && !placed; attempt++ {
				loc := sides[(side+attempt)%2]
				if place(cands[idx], loc) {
					// next item goes to the other side
					side = (side + attempt + 1) % 2
					placed = true
				}
			}
			if !placed {
				break // pair exhausted, move on
			}
			idx++
		}
	}

	for _, loc := range []models.Location{models.CenterTorso, models.Head} {
		for idx < len(cands) && place(cands[idx], loc) {
			idx++
		}
	}

	for ; idx < len(cands); idx++ {
		res.Unassigned = append(res.Unassigned, cands[idx].ID)
	}
	return res
}

// nextRun returns the lowest start >= cursor of a run of n consecutive
// unreserved indices within capacity.
func nextRun(reserved map[int]bool, capacity, cursor, n int) (int, bool) {
	run := 0
	for i := cursor; i < capacity; i++ {
		if reserved[i] {
			run = 0
			continue
		}
		run++
		if run >= n {
			return i - n + 1, true
		}
	}
	return 0, false
}

// repack walks each location from slot zero, assigning the ordered
// mounts the next contiguous unreserved run long enough for each. It is
// the shared core of Compact and Sort; only the input ordering differs.
func repack(mounts []models.Mount, cfg models.Config, order func([]models.Mount)) Result {
	var res Result
	for _, loc := range models.Locations {
		placed := models.MountsAt(mounts, loc)
		if order != nil {
			order(placed)
		}
		reserved := ReservedSet(loc, cfg.Engine, cfg.Gyro)
		cursor := 0
		for _, m := range placed {
			start, ok := nextRun(reserved, loc.Capacity(), cursor, m.Def.Slots)
			if !ok {
				res.Dropped = append(res.Dropped, m.ID)
				continue
			}
			res.Assignments = append(res.Assignments, Assignment{
				MountID:  m.ID,
				Location: loc,
				Slots:    slotRange(start, m.Def.Slots),
			})
			cursor = start + m.Def.Slots
		}
	}
	return res
}

// Compact defragments every location to the lowest free indices while
// preserving the relative order of the equipment already placed there.
// Unplaced mounts are ignored.
func Compact(mounts []models.Mount, cfg models.Config) Result {
	return repack(mounts, cfg, nil)
}

// Sort repacks every location with equipment ordered by required slot
// count descending, ties broken by name ascending. The sort is stable, so
// equal-key items keep their prior relative order.
func Sort(mounts []models.Mount, cfg models.Config) Result {
	return repack(mounts, cfg, func(placed []models.Mount) {
		sort.SliceStable(placed, func(i, j int) bool {
			if placed[i].Def.Slots != placed[j].Def.Slots {
				return placed[i].Def.Slots > placed[j].Def.Slots
			}
			return placed[i].Def.Name < placed[j].Def.Name
		})
	})
}
