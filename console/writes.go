package console

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/fatih/color"
	"github.com/go-sql-driver/mysql"
)

// rollbackWith aborts a handler transaction and prints the failure, surfacing
// the server error code when the driver provides one.
func rollbackWith(tx *sql.Tx, action string, err error) {
	_ = tx.Rollback()
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		color.Red("Error %s: MySQL error %d: %s", action, myErr.Number, myErr.Message)
		return
	}
	color.Red("Error %s: %v", action, err)
}

func (c *Console) insertEvent() {
	color.Cyan("Insert new Event (CREATE)")
	date := c.prompt("Date (YYYY-MM-DD): ")
	timeStr := c.prompt("Time (HH:MM:SS): ")
	description := c.prompt("Description: ")
	outcome := c.promptDefault("Outcome (Contained/Ongoing/Catastrophic) [Ongoing]: ", "Ongoing")
	severity := c.promptDefault("Severity (Minor/Moderate/Severe) [Moderate]: ", "Moderate")
	locationID := parseOptionalID(c.prompt("Location_ID (blank for NULL): "))
	portalID := parseOptionalID(c.prompt("(Optional) Portal_ID to set on event (blank for none): "))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error inserting event: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Event (Date, Time, Description, Outcome, Severity, Location_ID, Portal_ID) VALUES (?, ?, ?, ?, ?, ?, ?)",
		date, timeStr, description, outcome, severity, locationID, portalID)
	if err != nil {
		rollbackWith(tx, "inserting event", err)
		return
	}
	eventID, _ := res.LastInsertId()
	if err := tx.Commit(); err != nil {
		color.Red("Error inserting event: %v", err)
		return
	}
	color.Green("Inserted Event ID %d", eventID)
}

// createPerson inserts the Person row and, for known roles, the matching
// subtype row in the same transaction.
func (c *Console) createPerson() {
	color.Cyan("Create Person (CREATE)")
	name := c.prompt("Name: ")
	role := c.prompt("Role (Researcher/Agent/Victim/Psychic_Subject): ")
	age := parseOptionalInt(c.prompt("Age (optional): "))
	affiliation := c.prompt("Affiliation: ")
	status := c.promptDefault("Status (Active/Deceased/Missing) [Active]: ", "Active")
	supervisorID := parseOptionalID(c.prompt("Supervisor_ID (blank for NULL): "))
	aliases := sql.NullString{}
	if v := c.prompt("Known_Aliases (comma-separated, optional): "); v != "" {
		aliases = sql.NullString{String: v, Valid: true}
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating person: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Person (Name, Role, Age, Status, Affiliation, Supervisor_ID, Known_Aliases) VALUES (?, ?, ?, ?, ?, ?, ?)",
		name, role, age, status, affiliation, supervisorID, aliases)
	if err != nil {
		rollbackWith(tx, "creating person", err)
		return
	}
	personID, _ := res.LastInsertId()

	switch role {
	case "Researcher":
		clearance := c.prompt("Clearance_Level: ")
		_, err = tx.Exec("INSERT INTO Researcher (Person_ID, Clearance_Level) VALUES (?, ?)", personID, clearance)
	case "Agent":
		successRate := parseOptionalFloat(c.prompt("Success_Rate (0-100): "))
		_, err = tx.Exec("INSERT INTO Agent (Person_ID, Success_Rate) VALUES (?, ?)", personID, successRate)
	case "Victim":
		injury := c.prompt("Injury_Severity: ")
		_, err = tx.Exec("INSERT INTO Victim (Person_ID, Injury_Severity) VALUES (?, ?)", personID, injury)
	case "Psychic_Subject":
		ability := c.prompt("Ability_Type: ")
		power := parseOptionalInt(c.prompt("Power_Level (0-100): "))
		control := parseOptionalInt(c.prompt("Control_Score (0-100): "))
		_, err = tx.Exec("INSERT INTO Psychic_Subject (Person_ID, Ability_Type, Power_Level, Control_Score) VALUES (?, ?, ?, ?)",
			personID, ability, power, control)
	}
	if err != nil {
		rollbackWith(tx, "creating person", err)
		return
	}

	if err := tx.Commit(); err != nil {
		color.Red("Error creating person: %v", err)
		return
	}
	color.Green("Created Person ID %d (%s)", personID, role)
}

func (c *Console) createArtifact() {
	color.Cyan("Create Artifact (CREATE)")
	name := c.prompt("Name: ")
	artifactType := c.promptDefault("Type (Biological/Metallic/Organic/Unknown) [Unknown]: ", "Unknown")
	locationID := parseOptionalID(c.prompt("Found_At Location_ID (blank for NULL): "))
	anomalyLevel := parseOptionalInt(c.prompt("Anomaly_Level (1-10): "))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating artifact: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Artifact (Name, Type, Anomaly_Level, Found_At) VALUES (?, ?, ?, ?)",
		name, artifactType, anomalyLevel, locationID)
	if err != nil {
		rollbackWith(tx, "creating artifact", err)
		return
	}
	artifactID, _ := res.LastInsertId()
	if err := tx.Commit(); err != nil {
		color.Red("Error creating artifact: %v", err)
		return
	}
	color.Green("Created Artifact ID %d", artifactID)
}

// createEntity inserts the Entity row and, for known species, the matching
// subtype row in the same transaction.
func (c *Console) createEntity() {
	color.Cyan("Create Entity (CREATE)")
	name := c.prompt("Name: ")
	species := c.prompt("Species (Monster/Shadow_Creature/Mind_Entity): ")
	threatLevel := c.prompt("Threat_Level (Low/Medium/High/Critical): ")
	originWorld := c.prompt("Origin_World (Normal/UpsideDown): ")
	firstSighting := c.prompt("First_Sighting (YYYY-MM-DD): ")

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating entity: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Entity (Name, Species, Threat_Level, Origin_World, First_Sighting) VALUES (?, ?, ?, ?, ?)",
		name, species, threatLevel, originWorld, firstSighting)
	if err != nil {
		rollbackWith(tx, "creating entity", err)
		return
	}
	entityID, _ := res.LastInsertId()

	switch species {
	case "Monster":
		aggression := parseOptionalInt(c.prompt("Aggression_Index (0-100): "))
		_, err = tx.Exec("INSERT INTO Monster (Entity_ID, Aggression_Index) VALUES (?, ?)", entityID, aggression)
	case "Shadow_Creature":
		corruption := parseOptionalInt(c.prompt("Corruption_Level (0-100): "))
		manifest := c.prompt("Manifestation_Type: ")
		_, err = tx.Exec("INSERT INTO Shadow_Creature (Entity_ID, Corruption_Level, Manifestation_Type) VALUES (?, ?, ?)",
			entityID, corruption, manifest)
	case "Mind_Entity":
		influence := parseOptionalInt(c.prompt("Influence_Range (0-100): "))
		cognitive := parseOptionalInt(c.prompt("Cognitive_Link_Strength (0-100): "))
		_, err = tx.Exec("INSERT INTO Mind_Entity (Entity_ID, Influence_Range, Cognitive_Link_Strength) VALUES (?, ?, ?)",
			entityID, influence, cognitive)
	}
	if err != nil {
		rollbackWith(tx, "creating entity", err)
		return
	}

	if err := tx.Commit(); err != nil {
		color.Red("Error creating entity: %v", err)
		return
	}
	color.Green("Created Entity ID %d (%s)", entityID, species)
}

func (c *Console) createPortal() {
	color.Cyan("Create Portal (CREATE)")
	name := c.prompt("Name: ")
	status := c.promptDefault("Status (Active/Closed) [Active]: ", "Active")
	originID := parseOptionalID(c.prompt("Has_Origin Location_ID: "))
	destID := parseOptionalID(c.prompt("Has_Destination Location_ID: "))
	discovered := c.prompt("Discovered_On (YYYY-MM-DD): ")
	linksTo := parseOptionalID(c.prompt("Links_To Portal_ID (blank for NULL): "))
	coordX := parseOptionalFloat(c.prompt("Coordinate_X (optional, float): "))
	coordY := parseOptionalFloat(c.prompt("Coordinate_Y (optional, float): "))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating portal: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Portal (Name, Status, Has_Origin, Has_Destination, Discovered_On, Links_To, Coordinate_X, Coordinate_Y) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		name, status, originID, destID, discovered, linksTo, coordX, coordY)
	if err != nil {
		rollbackWith(tx, "creating portal", err)
		return
	}
	portalID, _ := res.LastInsertId()
	if err := tx.Commit(); err != nil {
		color.Red("Error creating portal: %v", err)
		return
	}
	color.Green("Created Portal ID %d", portalID)
}

// createReport writes the Report row and its Report_Details row atomically.
func (c *Console) createReport() {
	color.Cyan("Create Report (CREATE)")
	date := c.prompt("Date (YYYY-MM-DD): ")
	authoredByInput := c.prompt("Authored_By Person_ID: ")
	verifiedBy := parseOptionalID(c.prompt("Verified_By Person_ID (blank for NULL): "))
	documentsArtifact := parseOptionalID(c.prompt("Documents_Artifact Artifact_ID (blank for NULL): "))
	summary := c.prompt("Summary: ")
	verdict := c.promptDefault("Verdict (True/False/Unclear) [Unclear]: ", "Unclear")

	authoredBy, err := strconv.Atoi(authoredByInput)
	if err != nil {
		color.Red("Invalid Authored_By Person_ID '%s'. Must be an integer.", authoredByInput)
		return
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating report: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Report (Date, Authored_By, Verified_By, Documents_Artifact) VALUES (?, ?, ?, ?)",
		date, authoredBy, verifiedBy, documentsArtifact)
	if err != nil {
		rollbackWith(tx, "creating report", err)
		return
	}
	reportID, _ := res.LastInsertId()
	_, err = tx.Exec("INSERT INTO Report_Details (Report_ID, Summary, Verdict) VALUES (?, ?, ?)",
		reportID, summary, verdict)
	if err != nil {
		rollbackWith(tx, "creating report", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error creating report: %v", err)
		return
	}
	color.Green("Created Report ID %d", reportID)
}

func (c *Console) createExperiment() {
	color.Cyan("Create Experiment (CREATE)")
	purpose := c.prompt("Purpose: ")
	confidentiality := c.promptDefault("Confidentiality (Low/Medium/High) [High]: ", "High")
	result := c.prompt("Result: ")
	date := c.prompt("Date (YYYY-MM-DD): ")
	conductedBy := parseOptionalID(c.prompt("Conducted_By Person_ID (blank for NULL): "))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error creating experiment: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Experiment (Purpose, Confidentiality, Result, Date, Conducted_By) VALUES (?, ?, ?, ?, ?)",
		purpose, confidentiality, result, date, conductedBy)
	if err != nil {
		rollbackWith(tx, "creating experiment", err)
		return
	}
	expID, _ := res.LastInsertId()
	if err := tx.Commit(); err != nil {
		color.Red("Error creating experiment: %v", err)
		return
	}
	color.Green("Created Experiment ID %d", expID)
}
