package crits

import (
	"reflect"
	"testing"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

func TestDisplacedEngineUpgrade(t *testing.T) {
	// Standard engine reserves no side-torso slots; XL claims 0..2.
	// Equipment sitting in that band must be reported.
	inBand := placedMount(testDef("Medium Laser", 1), models.LeftTorso, 1)
	above := placedMount(testDef("Heat Sink", 1), models.LeftTorso, 5)
	otherSide := placedMount(testDef("SRM 6", 2), models.RightTorso, 4, 5)

	d := Displaced([]models.Mount{inBand, above, otherSide},
		models.EngineStandard, models.EngineXL,
		models.GyroStandard, models.GyroStandard)

	if !d.Any() {
		t.Fatal("expected displacement")
	}
	if !reflect.DeepEqual(d.MountIDs, []string{inBand.ID}) {
		t.Errorf("MountIDs = %v, want [%s]", d.MountIDs, inBand.ID)
	}
	if !reflect.DeepEqual(d.Locations, []models.Location{models.LeftTorso}) {
		t.Errorf("Locations = %v, want [LT]", d.Locations)
	}
}

func TestDisplacedPartialOverlapCounts(t *testing.T) {
	// One claimed slot inside the new band is enough.
	m := placedMount(testDef("PPC", 3), models.RightTorso, 2, 3, 4)

	d := Displaced([]models.Mount{m},
		models.EngineStandard, models.EngineXL,
		models.GyroStandard, models.GyroStandard)

	if !reflect.DeepEqual(d.MountIDs, []string{m.ID}) {
		t.Errorf("MountIDs = %v, want [%s]", d.MountIDs, m.ID)
	}
}

func TestDisplacedShrinkingFootprint(t *testing.T) {
	// Standard gyro reserves center-torso slots up to 9; a compact
	// gyro frees two of them. Nothing can be displaced by shrinkage.
	m := placedMount(testDef("Medium Laser", 1), models.CenterTorso, 10)

	d := Displaced([]models.Mount{m},
		models.EngineStandard, models.EngineStandard,
		models.GyroStandard, models.GyroCompact)

	if d.Any() {
		t.Errorf("shrinking footprint displaced %v", d.MountIDs)
	}
}

func TestDisplacedGyroGrowth(t *testing.T) {
	// Standard to XL gyro grows the center-torso footprint from 10 to
	// 12 slots, swallowing the last two free indices.
	m := placedMount(testDef("Heat Sink", 1), models.CenterTorso, 10)

	d := Displaced([]models.Mount{m},
		models.EngineStandard, models.EngineStandard,
		models.GyroStandard, models.GyroXL)

	if !reflect.DeepEqual(d.MountIDs, []string{m.ID}) {
		t.Errorf("MountIDs = %v, want [%s]", d.MountIDs, m.ID)
	}
	if !reflect.DeepEqual(d.Locations, []models.Location{models.CenterTorso}) {
		t.Errorf("Locations = %v, want [CT]", d.Locations)
	}
}

func TestDisplacedBothSideTorsos(t *testing.T) {
	left := placedMount(testDef("Heat Sink", 1), models.LeftTorso, 0)
	right := placedMount(testDef("Heat Sink", 1), models.RightTorso, 1)

	d := Displaced([]models.Mount{left, right},
		models.EngineStandard, models.EngineXXL,
		models.GyroStandard, models.GyroStandard)

	if !reflect.DeepEqual(d.MountIDs, []string{left.ID, right.ID}) {
		t.Errorf("MountIDs = %v, want both sides", d.MountIDs)
	}
	want := []models.Location{models.LeftTorso, models.RightTorso}
	if !reflect.DeepEqual(d.Locations, want) {
		t.Errorf("Locations = %v, want %v", d.Locations, want)
	}
}

func TestDisplacedIgnoresArmsAndLegs(t *testing.T) {
	m := placedMount(testDef("Medium Laser", 1), models.LeftArm, 4)

	d := Displaced([]models.Mount{m},
		models.EngineStandard, models.EngineXXL,
		models.GyroStandard, models.GyroXL)

	if d.Any() {
		t.Errorf("limb equipment displaced by engine change: %v", d.MountIDs)
	}
}

func TestEvictClearsPlacementKeepsMount(t *testing.T) {
	victim := placedMount(testDef("Medium Laser", 1), models.LeftTorso, 1)
	keeper := placedMount(testDef("Heat Sink", 1), models.LeftTorso, 5)
	mounts := []models.Mount{victim, keeper}

	out := Evict(mounts, []string{victim.ID})

	if len(out) != 2 {
		t.Fatalf("evict removed a mount: %d left", len(out))
	}
	if out[0].Placed() {
		t.Error("evicted mount still placed")
	}
	if !out[1].Placed() || !reflect.DeepEqual(out[1].Placement.Slots, []int{5}) {
		t.Errorf("untouched mount changed: %+v", out[1].Placement)
	}
	if !mounts[0].Placed() {
		t.Error("Evict mutated its input")
	}
}

func TestDisplaceEvictRefillRoundTrip(t *testing.T) {
	cfg := stdConfig()
	sink := models.NewMount(&models.EquipmentDef{
		ID: "heat-sink", Name: "Heat Sink", Category: models.CategoryEquipment,
		Slots: 1, Unhittable: true,
	})
	sink = sink.WithPlacement(models.LeftTorso, []int{0})
	mounts := []models.Mount{sink}

	d := Displaced(mounts, cfg.Engine, models.EngineXL, cfg.Gyro, cfg.Gyro)
	if !d.Any() {
		t.Fatal("expected displacement")
	}
	cfg.Engine = models.EngineXL
	mounts = Evict(mounts, d.MountIDs)

	res := Fill(mounts, cfg)
	a := findAssignment(t, res, sink.ID)
	if a.Location != models.LeftTorso || !reflect.DeepEqual(a.Slots, []int{3}) {
		t.Errorf("refilled at %s %v, want LT [3]", a.Location, a.Slots)
	}
}
