package validation

import (
	"math"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// StructurePoints holds the per-location internal structure points for
// one tonnage class. The head is always 3.
type StructurePoints struct {
	CenterTorso int
	SideTorso   int
	Arm         int
	Leg         int
}

// StructureByTonnage is the standard internal structure table.
var StructureByTonnage = map[int]StructurePoints{
	20:  {6, 5, 3, 4},
	25:  {8, 6, 4, 6},
	30:  {10, 7, 5, 7},
	35:  {11, 8, 6, 8},
	40:  {12, 10, 6, 10},
	45:  {14, 11, 7, 11},
	50:  {16, 12, 8, 12},
	55:  {18, 13, 9, 13},
	60:  {20, 14, 10, 14},
	65:  {21, 15, 10, 15},
	70:  {22, 15, 11, 15},
	75:  {23, 16, 12, 16},
	80:  {25, 17, 13, 17},
	85:  {27, 18, 14, 18},
	90:  {29, 19, 15, 19},
	95:  {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// HeadStructurePoints is fixed regardless of tonnage.
const HeadStructurePoints = 3

// StructurePointsAt returns the internal structure points for one
// location at the given tonnage, or 0 for tonnages outside the table.
func StructurePointsAt(tonnage int, loc models.Location) int {
	if loc == models.Head {
		return HeadStructurePoints
	}
	sp, ok := StructureByTonnage[tonnage]
	if !ok {
		return 0
	}
	switch {
	case loc == models.CenterTorso:
		return sp.CenterTorso
	case loc == models.LeftTorso || loc == models.RightTorso:
		return sp.SideTorso
	case loc.IsArm():
		return sp.Arm
	case loc.IsLeg():
		return sp.Leg
	}
	return 0
}

// MaxArmorAt returns the maximum armor points for one location: twice
// the internal structure, except the head which caps at 9.
func MaxArmorAt(tonnage int, loc models.Location) int {
	if loc == models.Head {
		return 9
	}
	return 2 * StructurePointsAt(tonnage, loc)
}

// engineBaseWeight is the standard fusion engine weight in tons, keyed
// by rating at 25-point steps. Intermediate ratings interpolate.
var engineBaseWeight = map[int]float64{
	50:  1.5,
	75:  2.0,
	100: 3.0,
	125: 4.0,
	150: 5.5,
	175: 7.0,
	200: 8.5,
	225: 10.0,
	250: 12.5,
	275: 15.5,
	300: 19.0,
	325: 23.5,
	350: 29.5,
	375: 36.5,
	400: 52.5,
}

// engineWeightMultiplier scales the base weight per engine variant.
var engineWeightMultiplier = map[models.EngineType]float64{
	models.EngineStandard: 1.0,
	models.EngineXL:       0.5,
	models.EngineClanXL:   0.5,
	models.EngineLight:    0.75,
	models.EngineXXL:      1.0 / 3.0,
	models.EngineClanXXL:  1.0 / 3.0,
	models.EngineCompact:  1.5,
	models.EngineICE:      2.0,
	models.EngineFuelCell: 1.2,
	models.EngineFission:  1.75,
}

// EngineWeight returns the engine weight in tons for a rating and
// variant, rounded up to the half ton. Ratings between table steps use
// linear interpolation, the same fallback shape as the structure table.
func EngineWeight(rating int, engine models.EngineType) float64 {
	base := engineBaseWeightAt(rating)
	mult, ok := engineWeightMultiplier[engine]
	if !ok {
		mult = 1.0
	}
	return RoundHalfTon(base * mult)
}

func engineBaseWeightAt(rating int) float64 {
	if w, ok := engineBaseWeight[rating]; ok {
		return w
	}
	lower := (rating / 25) * 25
	upper := lower + 25
	lw, lok := engineBaseWeight[lower]
	uw, uok := engineBaseWeight[upper]
	switch {
	case lok && uok:
		frac := float64(rating-lower) / 25.0
		return lw + (uw-lw)*frac
	case lok:
		return lw
	case uok:
		return uw
	}
	// Off-table ratings: rough linear estimate
	return float64(rating) * 0.06
}

// gyroWeightMultiplier scales the standard gyro weight per variant.
var gyroWeightMultiplier = map[models.GyroType]float64{
	models.GyroStandard:  1.0,
	models.GyroCompact:   1.5,
	models.GyroHeavyDuty: 2.0,
	models.GyroXL:        0.5,
}

// GyroWeight returns the gyro weight in tons: one ton per full 100
// points of engine rating (rounded up), scaled by the variant.
func GyroWeight(rating int, gyro models.GyroType) float64 {
	base := math.Ceil(float64(rating) / 100.0)
	mult, ok := gyroWeightMultiplier[gyro]
	if !ok {
		mult = 1.0
	}
	return RoundHalfTon(base * mult)
}

// structureWeightFactor is the internal structure weight as a fraction
// of chassis tonnage.
var structureWeightFactor = map[models.StructureType]float64{
	models.StructureStandard:   0.10,
	models.StructureEndoSteel:  0.05,
	models.StructureComposite:  0.05,
	models.StructureReinforced: 0.20,
}

// StructureWeight returns the internal structure weight in tons, rounded
// up to the half ton.
func StructureWeight(tonnage int, structure models.StructureType) float64 {
	factor, ok := structureWeightFactor[structure]
	if !ok {
		factor = 0.10
	}
	return RoundHalfTon(float64(tonnage) * factor)
}

// armorPointsPerTon is the armor coverage per ton of each armor variant.
var armorPointsPerTon = map[models.ArmorType]float64{
	models.ArmorStandard:     16.0,
	models.ArmorFerroFibrous: 17.92,
	models.ArmorLightFerro:   16.96,
	models.ArmorHeavyFerro:   19.84,
	models.ArmorStealth:      16.0,
}

// ArmorWeight returns the armor weight in tons for the allocated points,
// rounded up to the half ton.
func ArmorWeight(totalPoints int, armor models.ArmorType) float64 {
	perTon, ok := armorPointsPerTon[armor]
	if !ok {
		perTon = 16.0
	}
	return RoundHalfTon(float64(totalPoints) / perTon)
}

// CockpitWeight is the fixed cockpit weight in tons.
const CockpitWeight = 3.0

// requiredStructureCrits is the unhittable critical-item count each
// structure variant spreads across the chassis, by tech base.
func requiredStructureCrits(structure models.StructureType, tech models.TechBase) int {
	if structure != models.StructureEndoSteel {
		return 0
	}
	if tech == models.TechClan {
		return 7
	}
	return 14
}

// requiredArmorCrits is the unhittable critical-item count each armor
// variant spreads across the chassis, by tech base.
func requiredArmorCrits(armor models.ArmorType, tech models.TechBase) int {
	switch armor {
	case models.ArmorFerroFibrous:
		if tech == models.TechClan {
			return 7
		}
		return 14
	case models.ArmorLightFerro:
		return 7
	case models.ArmorHeavyFerro:
		return 21
	case models.ArmorStealth:
		return 12
	}
	return 0
}

// MaxEngineRating caps the rating a fusion plant can reach.
const MaxEngineRating = 400

// MinHeatSinks is the minimum heat sink count every design carries.
const MinHeatSinks = 10

// RoundHalfTon rounds a weight up to the next half ton.
func RoundHalfTon(tons float64) float64 {
	return math.Ceil(tons*2.0) / 2.0
}

// MovementHeat returns the worst-case heat from movement: running costs
// 2, jumping costs one per jump MP with a floor of 3.
func MovementHeat(jumpMP int) int {
	heat := 2
	if jumpMP > 0 {
		jump := jumpMP
		if jump < 3 {
			jump = 3
		}
		if jump > heat {
			heat = jump
		}
	}
	return heat
}
