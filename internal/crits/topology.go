// Package crits implements the critical-slot allocation engine: reserved
// slot topology, placement checking, bulk layout operators, and
// displacement detection. Every function is pure; inputs are never
// mutated and results are new values.
package crits

import (
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// gyroSlotCounts is the number of center-torso slots each gyro variant
// claims, directly below the lower engine block.
var gyroSlotCounts = map[models.GyroType]int{
	models.GyroStandard:  4,
	models.GyroCompact:   2,
	models.GyroHeavyDuty: 4,
	models.GyroXL:        6,
}

// engineCTSlotCounts is the total center-torso footprint per engine
// variant. Standard-footprint engines split 3 slots below the gyro and
// the rest above it; the compact engine fits entirely below.
var engineCTSlotCounts = map[models.EngineType]int{
	models.EngineStandard: 6,
	models.EngineXL:       6,
	models.EngineClanXL:   6,
	models.EngineLight:    6,
	models.EngineXXL:      6,
	models.EngineClanXXL:  6,
	models.EngineCompact:  3,
	models.EngineICE:      6,
	models.EngineFuelCell: 6,
	models.EngineFission:  6,
}

// engineSideSlotCounts is the per-side-torso footprint of engines whose
// shielding extends outside the center torso.
var engineSideSlotCounts = map[models.EngineType]int{
	models.EngineXL:      3,
	models.EngineClanXL:  2,
	models.EngineLight:   2,
	models.EngineXXL:     6,
	models.EngineClanXXL: 4,
}

// GyroSlots returns the center-torso slot count for the gyro variant.
func GyroSlots(gyro models.GyroType) int {
	return gyroSlotCounts[gyro]
}

// EngineSideSlots returns the per-side-torso slot count for the engine
// variant; zero for engines contained in the center torso.
func EngineSideSlots(engine models.EngineType) int {
	return engineSideSlotCounts[engine]
}

// headReserved is the fixed head footprint: life support (0), sensors
// (1), cockpit (2), sensors (4), life support (5). Slot 3 is the single
// assignable head slot.
var headReserved = []int{0, 1, 2, 4, 5}

// actuatorReserved is the fixed limb footprint: four actuators from the
// shoulder/hip down, indices 0 through 3.
var actuatorReserved = []int{0, 1, 2, 3}

// Reserved returns the slot indices in loc that are claimed by system
// components under the given engine and gyro, in ascending order. It is
// pure and total over all enumerated triples; unknown enum values are
// rejected at the configuration boundary, never here. The returned slice
// is freshly allocated each call.
func Reserved(loc models.Location, engine models.EngineType, gyro models.GyroType) []int {
	switch {
	case loc == models.Head:
		return append([]int(nil), headReserved...)

	case loc.IsArm() || loc.IsLeg():
		return append([]int(nil), actuatorReserved...)

	case loc == models.CenterTorso:
		engineTotal := engineCTSlotCounts[engine]
		lower := engineTotal
		if lower > 3 {
			lower = 3
		}
		upper := engineTotal - lower
		count := lower + gyroSlotCounts[gyro] + upper
		out := make([]int, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, i)
		}
		return out

	case loc == models.LeftTorso || loc == models.RightTorso:
		side := engineSideSlotCounts[engine]
		out := make([]int, 0, side)
		for i := 0; i < side; i++ {
			out = append(out, i)
		}
		return out
	}
	return nil
}

// ReservedSet returns Reserved as a membership set.
func ReservedSet(loc models.Location, engine models.EngineType, gyro models.GyroType) map[int]bool {
	slots := Reserved(loc, engine, gyro)
	set := make(map[int]bool, len(slots))
	for _, s := range slots {
		set[s] = true
	}
	return set
}
