package validation

import (
	"fmt"
	"strings"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/crits"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// RuleResult is the outcome of one rule checker. Rule violations are
// always returned as entries, never raised, so callers can render the
// complete set at once.
type RuleResult struct {
	Rule     string   `json:"rule"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Valid reports whether the rule passed (warnings do not fail a rule).
func (r RuleResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *RuleResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *RuleResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// CheckWeight sums component and equipment weights against the
// configured tonnage. Comparison is tolerance-free: any overage is an
// error, any shortfall only a warning so intentionally underweight
// designs stay valid.
func CheckWeight(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "weight"}

	total := StructureWeight(cfg.Tonnage, cfg.Structure)
	total += EngineWeight(cfg.EngineRating, cfg.Engine)
	total += GyroWeight(cfg.EngineRating, cfg.Gyro)
	total += CockpitWeight
	if cfg.HeatSinkCount > MinHeatSinks {
		total += float64(cfg.HeatSinkCount - MinHeatSinks)
	}
	total += ArmorWeight(cfg.TotalArmor(), cfg.Armor)
	for _, m := range mounts {
		if m.Def != nil {
			total += m.Def.Tonnage
		}
	}

	limit := float64(cfg.Tonnage)
	switch {
	case total > limit:
		res.errorf("design weighs %.1f tons, %.1f over the %d-ton limit", total, total-limit, cfg.Tonnage)
	case total < limit:
		res.warnf("design weighs %.1f tons, %.1f under the %d-ton limit", total, limit-total, cfg.Tonnage)
	}
	return res
}

// CheckHeat enforces the heat sink minimum and warns when the worst-case
// heat load exceeds dissipation.
func CheckHeat(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "heat"}

	if cfg.HeatSinkCount < MinHeatSinks {
		res.errorf("at least %d heat sinks required, have %d", MinHeatSinks, cfg.HeatSinkCount)
	}

	dissipation := cfg.HeatSinkCount
	if cfg.HeatSinks == models.HeatSinkDouble {
		dissipation *= 2
	}

	load := MovementHeat(cfg.JumpMP)
	for _, m := range mounts {
		if m.Def != nil && m.Def.Category == models.CategoryWeapon {
			load += m.Def.Heat
		}
	}
	if load > dissipation {
		res.warnf("worst-case heat load %d exceeds dissipation %d", load, dissipation)
	}
	return res
}

// CheckMovement ties the engine rating to tonnage and walking speed and
// enforces the rating cap and the jump limit.
func CheckMovement(cfg models.Config, _ []models.Mount) RuleResult {
	res := RuleResult{Rule: "movement"}

	want := cfg.WalkMP * cfg.Tonnage
	if cfg.EngineRating != want {
		res.errorf("engine rating %d does not support walk MP %d at %d tons (need %d)",
			cfg.EngineRating, cfg.WalkMP, cfg.Tonnage, want)
	}
	if cfg.EngineRating > MaxEngineRating {
		res.errorf("engine rating %d exceeds the %d cap", cfg.EngineRating, MaxEngineRating)
	}
	if cfg.EngineRating < 1 {
		res.errorf("engine rating must be positive, got %d", cfg.EngineRating)
	}
	if cfg.JumpMP > cfg.WalkMP {
		res.errorf("jump MP %d exceeds walk MP %d", cfg.JumpMP, cfg.WalkMP)
	}
	return res
}

// CheckArmor enforces per-location armor maxima, including the fixed
// head cap, and rejects rear armor outside the torsos.
func CheckArmor(cfg models.Config, _ []models.Mount) RuleResult {
	res := RuleResult{Rule: "armor"}

	for _, loc := range models.Locations {
		pts, ok := cfg.ArmorAlloc[loc]
		if !ok {
			continue
		}
		if pts.Rear > 0 && !loc.IsTorso() {
			res.errorf("%s cannot mount rear armor", loc)
		}
		if pts.Front < 0 || pts.Rear < 0 {
			res.errorf("%s armor points must not be negative", loc)
			continue
		}
		max := MaxArmorAt(cfg.Tonnage, loc)
		if pts.Total() > max {
			res.errorf("%s armor %d exceeds maximum %d", loc, pts.Total(), max)
		}
	}
	return res
}

// CheckStructure verifies that the unhittable critical items demanded by
// the structure and armor variants are actually on the unit.
func CheckStructure(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "structure"}

	structCrits := 0
	armorCrits := 0
	for _, m := range mounts {
		if m.Def == nil || !m.Def.Unhittable {
			continue
		}
		switch m.Def.Category {
		case models.CategoryStructure:
			structCrits++
		case models.CategoryArmor:
			armorCrits++
		}
	}

	if want := requiredStructureCrits(cfg.Structure, cfg.TechBase); structCrits != want {
		res.errorf("%s structure requires %d critical items, found %d", cfg.Structure, want, structCrits)
	}
	if want := requiredArmorCrits(cfg.Armor, cfg.TechBase); armorCrits != want {
		res.errorf("%s armor requires %d critical items, found %d", cfg.Armor, want, armorCrits)
	}
	return res
}

// CheckSlots verifies the physical slot invariants: placements inside
// bounds and contiguous, no overlap with the reserved footprint or with
// each other, and no per-location overflow.
func CheckSlots(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "slots"}

	type claim struct {
		name string
	}
	claimed := make(map[models.Location]map[int]claim)

	for _, m := range mounts {
		if err := models.CheckMount(m); err != nil {
			res.errorf("%v", err)
			continue
		}
		if m.Placement == nil {
			continue
		}
		loc := m.Placement.Location
		reserved := crits.ReservedSet(loc, cfg.Engine, cfg.Gyro)
		if claimed[loc] == nil {
			claimed[loc] = make(map[int]claim)
		}
		for _, s := range m.Placement.Slots {
			if reserved[s] {
				res.errorf("%s slot %d: %s overlaps a system-reserved slot", loc, s, m.Def.Name)
				continue
			}
			if prev, ok := claimed[loc][s]; ok {
				res.errorf("%s slot %d: %s overlaps %s", loc, s, m.Def.Name, prev.name)
				continue
			}
			claimed[loc][s] = claim{name: m.Def.Name}
		}
	}

	for _, loc := range models.Locations {
		used := len(crits.Reserved(loc, cfg.Engine, cfg.Gyro)) + len(claimed[loc])
		if used > loc.Capacity() {
			res.errorf("%s uses %d of %d slots", loc, used, loc.Capacity())
		}
	}
	return res
}

// clanOnlyEngines and clanOnlyHint: engine variants bound to a tech base.
var clanOnlyEngines = map[models.EngineType]bool{
	models.EngineClanXL:  true,
	models.EngineClanXXL: true,
}

// CheckTechBase verifies component and equipment tech bases against the
// design's. A Mixed design accepts everything.
func CheckTechBase(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "tech base"}
	if cfg.TechBase == models.TechMixed {
		return res
	}

	if clanOnlyEngines[cfg.Engine] && cfg.TechBase != models.TechClan {
		res.errorf("%s engine requires a Clan or Mixed tech base", cfg.Engine)
	}

	for _, m := range mounts {
		if m.Def == nil || m.Def.TechBase == "" {
			continue
		}
		if m.Def.TechBase != cfg.TechBase {
			res.errorf("%s is %s equipment on a %s design", m.Def.Name, m.Def.TechBase, cfg.TechBase)
		}
	}
	return res
}

// xlFamily are the engines that shut down on side-torso loss, which
// makes un-CASEd ammunition far more dangerous.
var xlFamily = map[models.EngineType]bool{
	models.EngineXL:     true,
	models.EngineLight:  true,
	models.EngineXXL:    true,
	models.EngineClanXL: true, models.EngineClanXXL: true,
}

// CheckAmmo is the CASE advisory: explosive ammunition in a location
// without CASE protection draws a warning, never an error. Clan designs
// carry integral CASE everywhere.
func CheckAmmo(cfg models.Config, mounts []models.Mount) RuleResult {
	res := RuleResult{Rule: "ammo"}
	if cfg.TechBase == models.TechClan {
		return res
	}

	caseAt := make(map[models.Location]bool)
	explosiveAt := make(map[models.Location][]string)
	for _, m := range mounts {
		if m.Def == nil || m.Placement == nil {
			continue
		}
		switch {
		case m.Def.Category == models.CategoryCASE:
			caseAt[m.Placement.Location] = true
		case m.Def.Explosive:
			explosiveAt[m.Placement.Location] = append(explosiveAt[m.Placement.Location], m.Def.Name)
		}
	}

	for _, loc := range models.Locations {
		names := explosiveAt[loc]
		if len(names) == 0 || caseAt[loc] {
			continue
		}
		if xlFamily[cfg.Engine] {
			res.warnf("%s carries explosive %s without CASE; a %s engine will not survive the loss", loc, strings.Join(names, ", "), cfg.Engine)
		} else {
			res.warnf("%s carries explosive %s without CASE", loc, strings.Join(names, ", "))
		}
	}
	return res
}
