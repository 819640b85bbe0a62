package models

import "database/sql"

// Location represents the Location table
type Location struct {
	LocationID  int            `db:"Location_ID" json:"location_id"`
	Name        string         `db:"Name" json:"name"`
	WorldType   string         `db:"World_Type" json:"world_type"`
	Description sql.NullString `db:"Description" json:"description,omitempty"`
	RiskLevel   sql.NullInt64  `db:"Risk_Level" json:"risk_level,omitempty"`
}

// SurfaceLocation represents the Surface_Location subtype table
type SurfaceLocation struct {
	LocationID        int           `db:"Location_ID" json:"location_id"`
	PopulationDensity sql.NullInt64 `db:"Population_Density" json:"population_density,omitempty"`
}

// UpsideDownLocation represents the UpsideDown_Location subtype table
type UpsideDownLocation struct {
	LocationID      int           `db:"Location_ID" json:"location_id"`
	DistortionLevel sql.NullInt64 `db:"Distortion_Level" json:"distortion_level,omitempty"`
}
