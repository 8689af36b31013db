// Package catalog supplies equipment definitions keyed by stable string
// id. The allocation engine and validator consume definitions as
// read-only values; nothing here is ever mutated after load.
package catalog

import (
	"sort"
	"strings"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// Catalog looks up equipment definitions by id.
type Catalog interface {
	Get(id string) (*models.EquipmentDef, bool)
	All() []*models.EquipmentDef
}

// Static is an in-memory catalog populated once at load time.
type Static struct {
	defs map[string]*models.EquipmentDef
}

// NewStatic builds a catalog from the given definitions. Later
// definitions with a duplicate id win.
func NewStatic(defs []*models.EquipmentDef) *Static {
	m := make(map[string]*models.EquipmentDef, len(defs))
	for _, d := range defs {
		m[d.ID] = d
	}
	return &Static{defs: m}
}

// Get returns the definition for id.
func (s *Static) Get(id string) (*models.EquipmentDef, bool) {
	d, ok := s.defs[id]
	return d, ok
}

// All returns every definition ordered by id.
func (s *Static) All() []*models.EquipmentDef {
	out := make([]*models.EquipmentDef, 0, len(s.defs))
	for _, d := range s.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NormalizeID derives a stable catalog id from a display name:
// lowercase, runs of non-alphanumerics collapsed to single dashes.
func NormalizeID(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

// Builtin returns the bundled definition set: the common weapons,
// ammunition, and structural items the CLI tools and tests rely on when
// no SQLite catalog is configured.
func Builtin() *Static {
	defs := []*models.EquipmentDef{
		{ID: "small-laser", Name: "Small Laser", Category: models.CategoryWeapon, Slots: 1, Tonnage: 0.5, Heat: 1, TechBase: models.TechInnerSphere},
		{ID: "medium-laser", Name: "Medium Laser", Category: models.CategoryWeapon, Slots: 1, Tonnage: 1, Heat: 3, TechBase: models.TechInnerSphere},
		{ID: "large-laser", Name: "Large Laser", Category: models.CategoryWeapon, Slots: 2, Tonnage: 5, Heat: 8, TechBase: models.TechInnerSphere},
		{ID: "ppc", Name: "PPC", Category: models.CategoryWeapon, Slots: 3, Tonnage: 7, Heat: 10, TechBase: models.TechInnerSphere},
		{ID: "ac-5", Name: "AC/5", Category: models.CategoryWeapon, Slots: 4, Tonnage: 8, Heat: 1, TechBase: models.TechInnerSphere},
		{ID: "ac-10", Name: "AC/10", Category: models.CategoryWeapon, Slots: 7, Tonnage: 12, Heat: 3, TechBase: models.TechInnerSphere},
		{ID: "ac-20", Name: "AC/20", Category: models.CategoryWeapon, Slots: 10, Tonnage: 14, Heat: 7, TechBase: models.TechInnerSphere, Restriction: models.RestrictNotHead},
		{ID: "lrm-5", Name: "LRM 5", Category: models.CategoryWeapon, Slots: 1, Tonnage: 2, Heat: 2, TechBase: models.TechInnerSphere},
		{ID: "lrm-20", Name: "LRM 20", Category: models.CategoryWeapon, Slots: 5, Tonnage: 10, Heat: 6, TechBase: models.TechInnerSphere},
		{ID: "srm-6", Name: "SRM 6", Category: models.CategoryWeapon, Slots: 2, Tonnage: 3, Heat: 4, TechBase: models.TechInnerSphere},
		{ID: "gauss-rifle", Name: "Gauss Rifle", Category: models.CategoryWeapon, Slots: 7, Tonnage: 15, Heat: 1, TechBase: models.TechInnerSphere, Explosive: true, Restriction: models.RestrictNotHead},
		{ID: "er-large-laser", Name: "ER Large Laser", Category: models.CategoryWeapon, Slots: 1, Tonnage: 4, Heat: 12, TechBase: models.TechClan},
		{ID: "ammo-ac-5", Name: "AC/5 Ammo", Category: models.CategoryAmmo, Slots: 1, Tonnage: 1, TechBase: models.TechInnerSphere, Explosive: true},
		{ID: "ammo-ac-20", Name: "AC/20 Ammo", Category: models.CategoryAmmo, Slots: 1, Tonnage: 1, TechBase: models.TechInnerSphere, Explosive: true},
		{ID: "ammo-lrm-20", Name: "LRM 20 Ammo", Category: models.CategoryAmmo, Slots: 1, Tonnage: 1, TechBase: models.TechInnerSphere, Explosive: true},
		{ID: "ammo-srm-6", Name: "SRM 6 Ammo", Category: models.CategoryAmmo, Slots: 1, Tonnage: 1, TechBase: models.TechInnerSphere, Explosive: true},
		{ID: "heat-sink", Name: "Heat Sink", Category: models.CategoryEquipment, Slots: 1, Tonnage: 0, TechBase: models.TechInnerSphere},
		{ID: "double-heat-sink", Name: "Double Heat Sink", Category: models.CategoryEquipment, Slots: 3, Tonnage: 0, TechBase: models.TechInnerSphere},
		{ID: "jump-jet", Name: "Jump Jet", Category: models.CategoryEquipment, Slots: 1, Tonnage: 0.5, TechBase: models.TechInnerSphere, Restriction: models.RestrictTorsoOrLeg},
		{ID: "case", Name: "CASE", Category: models.CategoryCASE, Slots: 1, Tonnage: 0.5, TechBase: models.TechInnerSphere, Restriction: models.RestrictTorsoOnly},
		{ID: "endo-steel", Name: "Endo Steel", Category: models.CategoryStructure, Slots: 1, Tonnage: 0, TechBase: models.TechInnerSphere, Unhittable: true},
		{ID: "ferro-fibrous", Name: "Ferro-Fibrous", Category: models.CategoryArmor, Slots: 1, Tonnage: 0, TechBase: models.TechInnerSphere, Unhittable: true},
	}
	return NewStatic(defs)
}
