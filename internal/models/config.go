package models

import (
	"fmt"
	"strings"
)

// TechBase identifies the technology base of a design or component.
type TechBase string

const (
	TechInnerSphere TechBase = "Inner Sphere"
	TechClan        TechBase = "Clan"
	TechMixed       TechBase = "Mixed"
)

// EngineType identifies the fusion (or other) engine variant. XL-family
// engines carry heat-exchanger shielding into the side torsos and so
// claim side-torso critical slots.
type EngineType string

const (
	EngineStandard EngineType = "Standard"
	EngineXL       EngineType = "XL"
	EngineClanXL   EngineType = "Clan XL"
	EngineLight    EngineType = "Light"
	EngineXXL      EngineType = "XXL"
	EngineClanXXL  EngineType = "Clan XXL"
	EngineCompact  EngineType = "Compact"
	EngineICE      EngineType = "ICE"
	EngineFuelCell EngineType = "Fuel Cell"
	EngineFission  EngineType = "Fission"
)

// GyroType identifies the gyro variant, which determines how many
// center-torso slots the gyro claims.
type GyroType string

const (
	GyroStandard  GyroType = "Standard"
	GyroCompact   GyroType = "Compact"
	GyroHeavyDuty GyroType = "Heavy-Duty"
	GyroXL        GyroType = "XL"
)

// StructureType identifies the internal structure variant.
type StructureType string

const (
	StructureStandard  StructureType = "Standard"
	StructureEndoSteel StructureType = "Endo Steel"
	StructureComposite StructureType = "Composite"
	StructureReinforced StructureType = "Reinforced"
)

// ArmorType identifies the armor variant.
type ArmorType string

const (
	ArmorStandard     ArmorType = "Standard"
	ArmorFerroFibrous ArmorType = "Ferro-Fibrous"
	ArmorLightFerro   ArmorType = "Light Ferro-Fibrous"
	ArmorHeavyFerro   ArmorType = "Heavy Ferro-Fibrous"
	ArmorStealth      ArmorType = "Stealth"
)

// HeatSinkType identifies the heat sink variant.
type HeatSinkType string

const (
	HeatSinkSingle HeatSinkType = "Single"
	HeatSinkDouble HeatSinkType = "Double"
)

// ArmorPoints holds the armor allocation for one location. Rear is only
// meaningful for torso locations and stays zero elsewhere.
type ArmorPoints struct {
	Front int `json:"front"`
	Rear  int `json:"rear,omitempty"`
}

// Total returns front plus rear points.
func (a ArmorPoints) Total() int {
	return a.Front + a.Rear
}

// Config is the immutable chassis configuration for one validation pass.
// Engine and Gyro are the only fields that affect critical-slot topology;
// the rest feed the construction validator. A configuration change
// produces a new value, never an in-place mutation.
type Config struct {
	Tonnage       int                      `json:"tonnage"`
	TechBase      TechBase                 `json:"tech_base"`
	Engine        EngineType               `json:"engine_type"`
	EngineRating  int                      `json:"engine_rating"`
	Gyro          GyroType                 `json:"gyro_type"`
	Structure     StructureType            `json:"structure_type"`
	Armor         ArmorType                `json:"armor_type"`
	HeatSinks     HeatSinkType             `json:"heat_sink_type"`
	HeatSinkCount int                      `json:"heat_sink_count"`
	WalkMP        int                      `json:"walk_mp"`
	JumpMP        int                      `json:"jump_mp"`
	ArmorAlloc    map[Location]ArmorPoints `json:"armor_allocation,omitempty"`
}

var validEngines = map[EngineType]bool{
	EngineStandard: true, EngineXL: true, EngineClanXL: true,
	EngineLight: true, EngineXXL: true, EngineClanXXL: true,
	EngineCompact: true, EngineICE: true, EngineFuelCell: true,
	EngineFission: true,
}

var validGyros = map[GyroType]bool{
	GyroStandard: true, GyroCompact: true, GyroHeavyDuty: true, GyroXL: true,
}

var validStructures = map[StructureType]bool{
	StructureStandard: true, StructureEndoSteel: true,
	StructureComposite: true, StructureReinforced: true,
}

var validArmors = map[ArmorType]bool{
	ArmorStandard: true, ArmorFerroFibrous: true, ArmorLightFerro: true,
	ArmorHeavyFerro: true, ArmorStealth: true,
}

// Validate checks every boundary invariant at once and reports all
// violations in a single error. Unknown enum values are rejected here so
// the allocation and validation algorithms never see them.
func (c Config) Validate() error {
	var errs []string

	if c.Tonnage < 20 || c.Tonnage > 200 || c.Tonnage%5 != 0 {
		errs = append(errs, fmt.Sprintf("tonnage must be a multiple of 5 in [20, 200], got %d", c.Tonnage))
	}
	switch c.TechBase {
	case TechInnerSphere, TechClan, TechMixed:
	default:
		errs = append(errs, fmt.Sprintf("unknown tech base %q", c.TechBase))
	}
	if !validEngines[c.Engine] {
		errs = append(errs, fmt.Sprintf("unknown engine type %q", c.Engine))
	}
	if !validGyros[c.Gyro] {
		errs = append(errs, fmt.Sprintf("unknown gyro type %q", c.Gyro))
	}
	if !validStructures[c.Structure] {
		errs = append(errs, fmt.Sprintf("unknown structure type %q", c.Structure))
	}
	if !validArmors[c.Armor] {
		errs = append(errs, fmt.Sprintf("unknown armor type %q", c.Armor))
	}
	switch c.HeatSinks {
	case HeatSinkSingle, HeatSinkDouble:
	default:
		errs = append(errs, fmt.Sprintf("unknown heat sink type %q", c.HeatSinks))
	}
	if c.WalkMP < 1 {
		errs = append(errs, fmt.Sprintf("walk MP must be positive, got %d", c.WalkMP))
	}
	if c.JumpMP < 0 {
		errs = append(errs, fmt.Sprintf("jump MP must not be negative, got %d", c.JumpMP))
	}
	if c.HeatSinkCount < 0 {
		errs = append(errs, fmt.Sprintf("heat sink count must not be negative, got %d", c.HeatSinkCount))
	}
	for loc := range c.ArmorAlloc {
		if !loc.Valid() {
			errs = append(errs, fmt.Sprintf("armor allocation for unknown location %q", string(loc)))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// TotalArmor returns the sum of all allocated armor points.
func (c Config) TotalArmor() int {
	total := 0
	for _, pts := range c.ArmorAlloc {
		total += pts.Total()
	}
	return total
}
