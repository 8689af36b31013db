// Package ingestion parses MegaMek MTF loadout files into unit values
// the allocation engine and validator consume. Catalog ids are resolved
// once here; the engine never probes alternate field names.
package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/catalog"
	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// File holds the fields of one parsed MTF file that matter for
// construction: the configuration header plus the raw per-location
// critical slot entries.
type File struct {
	Chassis       string
	Model         string
	Config        string
	TechBase      string
	Mass          int
	EngineRating  int
	EngineType    string
	Structure     string
	Gyro          string
	Cockpit       string
	HeatSinkCount int
	HeatSinkType  string
	WalkMP        int
	JumpMP        int
	ArmorType     string
	ArmorValues   map[string]int
	Crits         map[models.Location][]string
}

// ParseFile reads an MTF file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads MTF content. Lore blocks and quirks are skipped; location
// blocks collect raw slot entries in order.
func Parse(r io.Reader) (*File, error) {
	data := &File{
		ArmorValues: make(map[string]int),
		Crits:       make(map[models.Location][]string),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLoc models.Location
	inLocation := false
	inWeapons := false

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if loc, ok := matchLocationHeader(trimmed); ok {
			currentLoc = loc
			inLocation = true
			inWeapons = false
			continue
		}
		if strings.HasPrefix(strings.ToLower(trimmed), "weapons:") {
			inWeapons = true
			inLocation = false
			continue
		}
		if inLocation {
			data.Crits[currentLoc] = append(data.Crits[currentLoc], trimmed)
			continue
		}
		if inWeapons {
			// the weapons summary duplicates the crit blocks
			continue
		}

		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		val := strings.TrimSpace(trimmed[idx+1:])

		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "gyro":
			data.Gyro = val
		case "cockpit":
			data.Cockpit = val
		case "heat sinks":
			data.HeatSinkCount, data.HeatSinkType = parseHeatSinks(val)
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		case "la armor", "ra armor", "lt armor", "rt armor", "ct armor",
			"hd armor", "ll armor", "rl armor", "rtl armor", "rtr armor", "rtc armor":
			code := strings.ToUpper(strings.TrimSuffix(key, " armor"))
			data.ArmorValues[code] = parseArmorValue(val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}
	if data.Chassis == "" {
		return nil, fmt.Errorf("missing chassis field")
	}
	return data, nil
}

func matchLocationHeader(line string) (models.Location, bool) {
	if !strings.HasSuffix(line, ":") {
		return "", false
	}
	return models.ParseLocation(strings.TrimSuffix(line, ":"))
}

// parseEngine parses "300 XL Engine(IS)" -> (300, "XL Engine(IS)").
func parseEngine(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		rating, _ := strconv.Atoi(val)
		return rating, ""
	}
	rating, _ := strconv.Atoi(parts[0])
	return rating, parts[1]
}

// parseHeatSinks parses "14 IS Double" -> (14, "IS Double").
func parseHeatSinks(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		count, _ := strconv.Atoi(val)
		return count, "Single"
	}
	count, _ := strconv.Atoi(parts[0])
	return count, parts[1]
}

// parseArmorValue handles both plain "26" and patchwork
// "Reactive(Inner Sphere):26" values.
func parseArmorValue(val string) int {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(val[idx+1:]); err == nil {
			return n
		}
	}
	return 0
}

// MapEngineType resolves an MTF engine string to the engine enum.
func MapEngineType(s string) models.EngineType {
	lower := strings.ToLower(s)
	clan := strings.Contains(lower, "clan")
	switch {
	case strings.Contains(lower, "xxl"):
		if clan {
			return models.EngineClanXXL
		}
		return models.EngineXXL
	case strings.Contains(lower, "xl"):
		if clan {
			return models.EngineClanXL
		}
		return models.EngineXL
	case strings.Contains(lower, "light"):
		return models.EngineLight
	case strings.Contains(lower, "compact"):
		return models.EngineCompact
	case strings.Contains(lower, "i.c.e"), strings.Contains(lower, "ice"):
		return models.EngineICE
	case strings.Contains(lower, "fuel cell"):
		return models.EngineFuelCell
	case strings.Contains(lower, "fission"):
		return models.EngineFission
	default:
		return models.EngineStandard
	}
}

// MapGyroType resolves an MTF gyro string to the gyro enum.
func MapGyroType(s string) models.GyroType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "compact"):
		return models.GyroCompact
	case strings.Contains(lower, "heavy"):
		return models.GyroHeavyDuty
	case strings.Contains(lower, "xl"):
		return models.GyroXL
	default:
		return models.GyroStandard
	}
}

// MapStructureType resolves an MTF structure string.
func MapStructureType(s string) models.StructureType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "endo"):
		return models.StructureEndoSteel
	case strings.Contains(lower, "composite"):
		return models.StructureComposite
	case strings.Contains(lower, "reinforced"):
		return models.StructureReinforced
	default:
		return models.StructureStandard
	}
}

// MapArmorType resolves an MTF armor string.
func MapArmorType(s string) models.ArmorType {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "light ferro"):
		return models.ArmorLightFerro
	case strings.Contains(lower, "heavy ferro"):
		return models.ArmorHeavyFerro
	case strings.Contains(lower, "ferro"):
		return models.ArmorFerroFibrous
	case strings.Contains(lower, "stealth"):
		return models.ArmorStealth
	default:
		return models.ArmorStandard
	}
}

// MapTechBase resolves an MTF techbase string.
func MapTechBase(s string) models.TechBase {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "mixed"):
		return models.TechMixed
	case strings.Contains(lower, "clan"):
		return models.TechClan
	default:
		return models.TechInnerSphere
	}
}

// MapHeatSinkType resolves an MTF heat sink string.
func MapHeatSinkType(s string) models.HeatSinkType {
	if strings.Contains(strings.ToLower(s), "double") {
		return models.HeatSinkDouble
	}
	return models.HeatSinkSingle
}

// ToConfig builds the immutable configuration value from the parsed
// header fields.
func (f *File) ToConfig() models.Config {
	alloc := make(map[models.Location]models.ArmorPoints)
	front := map[string]models.Location{
		"LA": models.LeftArm, "RA": models.RightArm,
		"LT": models.LeftTorso, "RT": models.RightTorso,
		"CT": models.CenterTorso, "HD": models.Head,
		"LL": models.LeftLeg, "RL": models.RightLeg,
	}
	for code, loc := range front {
		if v, ok := f.ArmorValues[code]; ok {
			alloc[loc] = models.ArmorPoints{Front: v}
		}
	}
	rear := map[string]models.Location{
		"RTL": models.LeftTorso, "RTR": models.RightTorso, "RTC": models.CenterTorso,
	}
	for code, loc := range rear {
		if v, ok := f.ArmorValues[code]; ok {
			pts := alloc[loc]
			pts.Rear = v
			alloc[loc] = pts
		}
	}

	return models.Config{
		Tonnage:       f.Mass,
		TechBase:      MapTechBase(f.TechBase),
		Engine:        MapEngineType(f.EngineType),
		EngineRating:  f.EngineRating,
		Gyro:          MapGyroType(f.Gyro),
		Structure:     MapStructureType(f.Structure),
		Armor:         MapArmorType(f.ArmorType),
		HeatSinks:     MapHeatSinkType(f.HeatSinkType),
		HeatSinkCount: f.HeatSinkCount,
		WalkMP:        f.WalkMP,
		JumpMP:        f.JumpMP,
		ArmorAlloc:    alloc,
	}
}

// systemCritNames are crit entries owned by the slot topology, not by
// mounted equipment.
var systemCritNames = []string{
	"-empty-",
	"shoulder", "upper arm actuator", "lower arm actuator", "hand actuator",
	"hip", "upper leg actuator", "lower leg actuator", "foot actuator",
	"life support", "sensors", "cockpit", "gyro",
	"fusion engine", "engine",
}

func isSystemCrit(name string) bool {
	lower := strings.ToLower(name)
	for _, sys := range systemCritNames {
		if lower == sys || strings.HasPrefix(lower, sys) {
			return true
		}
	}
	return false
}

// critAliases maps MegaMek internal crit names to catalog ids that
// NormalizeID alone does not reach.
var critAliases = map[string]string{
	"is-endo-steel":         "endo-steel",
	"clan-endo-steel":       "endo-steel",
	"is-ferro-fibrous":      "ferro-fibrous",
	"clan-ferro-fibrous":    "ferro-fibrous",
	"is-double-heat-sink":   "double-heat-sink",
	"clan-double-heat-sink": "double-heat-sink",
	"iscase":                "case",
	"is-case":               "case",
	"autocannon-5":          "ac-5",
	"autocannon-10":         "ac-10",
	"autocannon-20":         "ac-20",
}

func resolveDef(cat catalog.Catalog, rawName string) (*models.EquipmentDef, bool) {
	clean := strings.TrimSpace(strings.TrimSuffix(rawName, "(R)"))
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "(omnipod)"))
	id := catalog.NormalizeID(clean)
	if def, ok := cat.Get(id); ok {
		return def, true
	}
	if alias, ok := critAliases[id]; ok {
		if def, ok := cat.Get(alias); ok {
			return def, true
		}
	}
	return nil, false
}

// ToUnit builds the caller-held unit value: configuration plus mounts
// with placements read from the crit blocks. Consecutive identical crit
// entries form one mount, or several chunked by the definition's slot
// count. Names the catalog does not know come back in unknown; they get
// a synthesized single-use definition so the layout survives a partial
// catalog.
func (f *File) ToUnit(cat catalog.Catalog) (*models.Unit, []string) {
	unit := &models.Unit{
		Chassis: f.Chassis,
		Model:   f.Model,
		Config:  f.ToConfig(),
	}

	var unknown []string
	for _, loc := range models.Locations {
		entries := f.Crits[loc]
		i := 0
		for i < len(entries) {
			name := entries[i]
			if isSystemCrit(name) {
				i++
				continue
			}
			run := 1
			for i+run < len(entries) && entries[i+run] == name {
				run++
			}

			def, ok := resolveDef(cat, name)
			if !ok {
				clean := strings.TrimSpace(strings.TrimSuffix(name, "(R)"))
				def = &models.EquipmentDef{
					ID:       catalog.NormalizeID(clean),
					Name:     clean,
					Category: models.CategoryEquipment,
					Slots:    run,
				}
				unknown = append(unknown, name)
			}

			// chunk the run into def-sized mounts
			size := def.Slots
			if size < 1 || size > run {
				size = run
			}
			for off := 0; off+size <= run; off += size {
				m := models.NewMount(def)
				slots := make([]int, size)
				for k := range slots {
					slots[k] = i + off + k
				}
				m = m.WithPlacement(loc, slots)
				unit.Mounts = append(unit.Mounts, m)
			}
			i += run
		}
	}
	return unit, unknown
}
