package ingestion

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/catalog"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

const shadowHawkMTF = `
chassis:Shadow Hawk
model:SHD-2H
Config:Biped
techbase:Inner Sphere
era:2550
rules level:1

mass:55
engine:275 Fusion Engine(IS)
structure:IS Standard
myomer:Standard
gyro:Standard Gyro
cockpit:Standard Cockpit

heat sinks:10 Single
walk mp:5
jump mp:3

armor:Standard(Inner Sphere)
LA armor:16
RA armor:16
LT armor:18
RT armor:18
CT armor:23
HD armor:9
LL armor:18
RL armor:18
RTL armor:6
RTR armor:6
RTC armor:9

Weapons:3
AC/5, Right Torso
Medium Laser, Left Arm
SRM 6, Left Torso

Left Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
-Empty-

Right Torso:
AC/5
AC/5
AC/5
AC/5
AC/5 Ammo
-Empty-

Left Torso:
SRM 6
SRM 6
-Empty-

Center Torso:
Fusion Engine
Fusion Engine
Fusion Engine
Gyro
Gyro
Gyro
Gyro
Fusion Engine
Fusion Engine
Fusion Engine
Heat Sink
Heat Sink

Head:
Life Support
Sensors
Cockpit
Heat Sink
Sensors
Life Support
`

func TestParseHeader(t *testing.T) {
	f, err := Parse(strings.NewReader(shadowHawkMTF))
	require.NoError(t, err)

	assert.Equal(t, "Shadow Hawk", f.Chassis)
	assert.Equal(t, "SHD-2H", f.Model)
	assert.Equal(t, "Biped", f.Config)
	assert.Equal(t, 55, f.Mass)
	assert.Equal(t, 275, f.EngineRating)
	assert.Equal(t, "Fusion Engine(IS)", f.EngineType)
	assert.Equal(t, "Standard Gyro", f.Gyro)
	assert.Equal(t, 10, f.HeatSinkCount)
	assert.Equal(t, "Single", f.HeatSinkType)
	assert.Equal(t, 5, f.WalkMP)
	assert.Equal(t, 3, f.JumpMP)
	assert.Equal(t, 16, f.ArmorValues["LA"])
	assert.Equal(t, 9, f.ArmorValues["RTC"])
}

func TestParseCritBlocks(t *testing.T) {
	f, err := Parse(strings.NewReader(shadowHawkMTF))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Shoulder", "Upper Arm Actuator", "Lower Arm Actuator",
		"Hand Actuator", "Medium Laser", "-Empty-",
	}, f.Crits[models.LeftArm])
	assert.Len(t, f.Crits[models.CenterTorso], 12)

	// the weapons summary must not leak into crit blocks
	for loc, entries := range f.Crits {
		for _, e := range entries {
			assert.NotContains(t, e, ",", "weapons line in %s block", loc)
		}
	}
}

func TestParseMissingChassis(t *testing.T) {
	_, err := Parse(strings.NewReader("mass:55\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chassis")
}

func TestToConfig(t *testing.T) {
	f, err := Parse(strings.NewReader(shadowHawkMTF))
	require.NoError(t, err)

	cfg := f.ToConfig()
	assert.Equal(t, 55, cfg.Tonnage)
	assert.Equal(t, models.TechInnerSphere, cfg.TechBase)
	assert.Equal(t, models.EngineStandard, cfg.Engine)
	assert.Equal(t, 275, cfg.EngineRating)
	assert.Equal(t, models.GyroStandard, cfg.Gyro)
	assert.Equal(t, models.StructureStandard, cfg.Structure)
	assert.Equal(t, models.ArmorStandard, cfg.Armor)
	assert.Equal(t, models.HeatSinkSingle, cfg.HeatSinks)
	assert.Equal(t, models.ArmorPoints{Front: 18, Rear: 6}, cfg.ArmorAlloc[models.LeftTorso])
	assert.Equal(t, models.ArmorPoints{Front: 23, Rear: 9}, cfg.ArmorAlloc[models.CenterTorso])
	assert.Equal(t, models.ArmorPoints{Front: 16}, cfg.ArmorAlloc[models.LeftArm])

	require.NoError(t, cfg.Validate())
}

func mountsFor(unit *models.Unit, defID string) []models.Mount {
	var out []models.Mount
	for _, m := range unit.Mounts {
		if m.Def.ID == defID {
			out = append(out, m)
		}
	}
	return out
}

func TestToUnit(t *testing.T) {
	f, err := Parse(strings.NewReader(shadowHawkMTF))
	require.NoError(t, err)

	unit, unknown := f.ToUnit(catalog.Builtin())
	assert.Equal(t, "Shadow Hawk SHD-2H", unit.FullName())

	lasers := mountsFor(unit, "medium-laser")
	require.Len(t, lasers, 1)
	assert.Equal(t, models.LeftArm, lasers[0].Placement.Location)
	assert.Equal(t, []int{4}, lasers[0].Placement.Slots)

	// a 4-entry run resolves to one 4-slot mount
	acs := mountsFor(unit, "ac-5")
	require.Len(t, acs, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, acs[0].Placement.Slots)

	srms := mountsFor(unit, "srm-6")
	require.Len(t, srms, 1)
	assert.Equal(t, []int{0, 1}, srms[0].Placement.Slots)

	// consecutive single-slot entries become separate mounts
	var ctSinks, headSinks []models.Mount
	for _, m := range mountsFor(unit, "heat-sink") {
		switch m.Placement.Location {
		case models.CenterTorso:
			ctSinks = append(ctSinks, m)
		case models.Head:
			headSinks = append(headSinks, m)
		}
	}
	require.Len(t, ctSinks, 2)
	assert.Equal(t, []int{10}, ctSinks[0].Placement.Slots)
	assert.Equal(t, []int{11}, ctSinks[1].Placement.Slots)
	require.Len(t, headSinks, 1)
	assert.Equal(t, []int{3}, headSinks[0].Placement.Slots)

	// the ammo name is not in the builtin catalog; it gets a
	// synthesized definition and is reported
	require.Equal(t, []string{"AC/5 Ammo"}, unknown)
	ammo := mountsFor(unit, "ac-5-ammo")
	require.Len(t, ammo, 1)
	assert.Equal(t, []int{4}, ammo[0].Placement.Slots)

	for _, m := range unit.Mounts {
		assert.NoError(t, models.CheckMount(m))
	}
}

func TestResolveDefAliases(t *testing.T) {
	cat := catalog.Builtin()
	tests := []struct {
		raw  string
		want string
	}{
		{"Medium Laser", "medium-laser"},
		{"IS Endo Steel", "endo-steel"},
		{"Clan Ferro-Fibrous", "ferro-fibrous"},
		{"ISCASE", "case"},
		{"Autocannon/5", "ac-5"},
		{"Medium Laser (R)", "medium-laser"},
		{"PPC (omnipod)", "ppc"},
	}
	for _, tt := range tests {
		def, ok := resolveDef(cat, tt.raw)
		if !ok {
			t.Errorf("resolveDef(%q) failed", tt.raw)
			continue
		}
		if def.ID != tt.want {
			t.Errorf("resolveDef(%q) = %s, want %s", tt.raw, def.ID, tt.want)
		}
	}
	if _, ok := resolveDef(cat, "Improbability Drive"); ok {
		t.Error("unknown name resolved")
	}
}

func TestMapEngineType(t *testing.T) {
	tests := []struct {
		in   string
		want models.EngineType
	}{
		{"Fusion Engine(IS)", models.EngineStandard},
		{"XL Engine(IS)", models.EngineXL},
		{"XL (Clan) Engine", models.EngineClanXL},
		{"XXL Engine", models.EngineXXL},
		{"Light Engine(IS)", models.EngineLight},
		{"Compact Fusion Engine", models.EngineCompact},
		{"I.C.E. Engine", models.EngineICE},
		{"Fuel Cell Engine", models.EngineFuelCell},
		{"Fission Engine", models.EngineFission},
	}
	for _, tt := range tests {
		if got := MapEngineType(tt.in); got != tt.want {
			t.Errorf("MapEngineType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestMapClassifiers(t *testing.T) {
	assert.Equal(t, models.GyroCompact, MapGyroType("Compact Gyro"))
	assert.Equal(t, models.GyroHeavyDuty, MapGyroType("Heavy-Duty Gyro"))
	assert.Equal(t, models.GyroXL, MapGyroType("XL Gyro"))
	assert.Equal(t, models.GyroStandard, MapGyroType("Standard Gyro"))

	assert.Equal(t, models.StructureEndoSteel, MapStructureType("IS Endo Steel"))
	assert.Equal(t, models.StructureStandard, MapStructureType("IS Standard"))

	assert.Equal(t, models.ArmorFerroFibrous, MapArmorType("IS Ferro-Fibrous"))
	assert.Equal(t, models.ArmorLightFerro, MapArmorType("IS Light Ferro-Fibrous"))
	assert.Equal(t, models.ArmorHeavyFerro, MapArmorType("IS Heavy Ferro-Fibrous"))
	assert.Equal(t, models.ArmorStealth, MapArmorType("Stealth Armor"))
	assert.Equal(t, models.ArmorStandard, MapArmorType("Standard(Inner Sphere)"))

	assert.Equal(t, models.TechClan, MapTechBase("Clan"))
	assert.Equal(t, models.TechMixed, MapTechBase("Mixed (IS Chassis)"))
	assert.Equal(t, models.TechInnerSphere, MapTechBase("Inner Sphere"))

	assert.Equal(t, models.HeatSinkDouble, MapHeatSinkType("IS Double"))
	assert.Equal(t, models.HeatSinkSingle, MapHeatSinkType("Single"))
}

func TestParseHelpers(t *testing.T) {
	rating, typ := parseEngine("300 XL Engine(IS)")
	assert.Equal(t, 300, rating)
	assert.Equal(t, "XL Engine(IS)", typ)

	count, sink := parseHeatSinks("14 IS Double")
	assert.Equal(t, 14, count)
	assert.Equal(t, "IS Double", sink)

	count, sink = parseHeatSinks("10")
	assert.Equal(t, 10, count)
	assert.Equal(t, "Single", sink)

	assert.Equal(t, 26, parseArmorValue("26"))
	assert.Equal(t, 26, parseArmorValue("Reactive(Inner Sphere):26"))
	assert.Equal(t, 0, parseArmorValue("garbage"))
}

func TestRoundTripThroughValidation(t *testing.T) {
	f, err := Parse(strings.NewReader(shadowHawkMTF))
	require.NoError(t, err)

	unit, _ := f.ToUnit(catalog.Builtin())
	require.True(t, reflect.DeepEqual(unit.Config, f.ToConfig()))
}
