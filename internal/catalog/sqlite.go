package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/SwiggitySwerve/megamek-web-sub006/internal/models"
)

// OpenSQLite loads the equipment table from a SQLite catalog database
// into memory and closes the connection. The database is opened
// read-only; the engine never writes catalog entries.
func OpenSQLite(path string) (*Static, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	rows, err := db.Query(`
		SELECT id, name, category, slots, tonnage, heat, tech_base,
		       restriction, unhittable, explosive
		FROM equipment`)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	var defs []*models.EquipmentDef
	for rows.Next() {
		var d models.EquipmentDef
		var category, techBase, restriction string
		if err := rows.Scan(&d.ID, &d.Name, &category, &d.Slots, &d.Tonnage,
			&d.Heat, &techBase, &restriction, &d.Unhittable, &d.Explosive); err != nil {
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		d.Category = models.EquipmentCategory(category)
		d.TechBase = models.TechBase(techBase)
		d.Restriction = models.Restriction(restriction)
		defs = append(defs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment rows: %w", err)
	}

	return NewStatic(defs), nil
}
