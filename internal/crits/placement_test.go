package crits

import (
	"reflect"
	"testing"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

func testDef(name string, slots int) *models.EquipmentDef {
	return &models.EquipmentDef{
		ID:       name,
		Name:     name,
		Category: models.CategoryEquipment,
		Slots:    slots,
	}
}

func placedMount(def *models.EquipmentDef, loc models.Location, slots ...int) models.Mount {
	m := models.NewMount(def)
	return m.WithPlacement(loc, slots)
}

func stdConfig() models.Config {
	return models.Config{
		Tonnage:       50,
		TechBase:      models.TechInnerSphere,
		Engine:        models.EngineStandard,
		EngineRating:  250,
		Gyro:          models.GyroStandard,
		Structure:     models.StructureStandard,
		Armor:         models.ArmorStandard,
		HeatSinks:     models.HeatSinkSingle,
		HeatSinkCount: 10,
		WalkMP:        5,
	}
}

func TestAssignableStartsHead(t *testing.T) {
	// Scenario: 6 head slots, 5 reserved, exactly one open.
	cfg := stdConfig()
	got := AssignableStarts(models.Head, testDef("Small Laser", 1), cfg, nil, "")
	if !reflect.DeepEqual(got, []int{3}) {
		t.Errorf("AssignableStarts(HD, 1 slot) = %v, want [3]", got)
	}

	if got := AssignableStarts(models.Head, testDef("Large Laser", 2), cfg, nil, ""); got != nil {
		t.Errorf("AssignableStarts(HD, 2 slots) = %v, want none", got)
	}
}

func TestAssignableStartsRestriction(t *testing.T) {
	cfg := stdConfig()
	def := testDef("Jump Jet", 1)
	def.Restriction = models.RestrictTorsoOrLeg

	if got := AssignableStarts(models.LeftArm, def, cfg, nil, ""); got != nil {
		t.Errorf("restricted item offered arm starts %v", got)
	}
	if got := AssignableStarts(models.LeftLeg, def, cfg, nil, ""); !reflect.DeepEqual(got, []int{4, 5}) {
		t.Errorf("AssignableStarts(LL) = %v, want [4 5]", got)
	}
}

func TestAssignableStartsSkipsOccupied(t *testing.T) {
	cfg := stdConfig()
	laser := testDef("Medium Laser", 1)
	mounts := []models.Mount{
		placedMount(testDef("Heat Sink", 1), models.LeftArm, 5),
	}

	// LA has capacity 12, actuators 0-3 reserved, slot 5 occupied.
	got := AssignableStarts(models.LeftArm, laser, cfg, mounts, "")
	want := []int{4, 6, 7, 8, 9, 10, 11}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignableStarts(LA) = %v, want %v", got, want)
	}

	// a 3-slot item cannot straddle the occupied slot
	big := testDef("PPC", 3)
	got = AssignableStarts(models.LeftArm, big, cfg, mounts, "")
	want = []int{6, 7, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignableStarts(LA, 3 slots) = %v, want %v", got, want)
	}
}

func TestAssignableStartsExcludesSelf(t *testing.T) {
	cfg := stdConfig()
	ppc := testDef("PPC", 3)
	m := placedMount(ppc, models.RightArm, 4, 5, 6)
	mounts := []models.Mount{m}

	// probing a move for the mount itself must ignore its own slots
	got := AssignableStarts(models.RightArm, ppc, cfg, mounts, m.ID)
	want := []int{4, 5, 6, 7, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AssignableStarts excluding self = %v, want %v", got, want)
	}
}

func TestAssignableStartsTooBig(t *testing.T) {
	cfg := stdConfig()
	// 9 free CT slots never appear: standard engine + gyro leave 2
	if got := AssignableStarts(models.CenterTorso, testDef("AC/20", 10), cfg, nil, ""); got != nil {
		t.Errorf("oversized item got starts %v", got)
	}
}

func TestCanPlace(t *testing.T) {
	cfg := stdConfig()
	laser := testDef("Medium Laser", 1)
	if !CanPlace(models.Head, 3, laser, cfg, nil, "") {
		t.Error("CanPlace(HD, 3) = false, want true")
	}
	if CanPlace(models.Head, 2, laser, cfg, nil, "") {
		t.Error("CanPlace(HD, 2) = true for a reserved slot")
	}
}
