package console

import (
	"database/sql"
	"fmt"

	"github.com/fatih/color"

	"github.com/hnl-ops/strangerdb/models"
)

// Update handlers fetch the current row first so blank input keeps the stored
// value, the literal NULL clears nullable columns, and unparseable input
// falls back to the stored value.

func (c *Console) updateEvent() {
	color.Cyan("Update Event (UPDATE)")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}

	var event models.Event
	err := c.db.QueryRow(
		"SELECT Event_ID, Date, Time, Description, Outcome, Severity, Location_ID, Portal_ID FROM Event WHERE Event_ID = ?",
		eventID,
	).Scan(&event.EventID, &event.Date, &event.Time, &event.Description,
		&event.Outcome, &event.Severity, &event.LocationID, &event.PortalID)
	if err == sql.ErrNoRows {
		color.Red("Event not found.")
		return
	}
	if err != nil {
		color.Red("Error updating event: %v", err)
		return
	}

	fmt.Fprintf(c.out, "Current: [%d] %s %s | %s | %s/%s | Location: %s | Portal: %s\n",
		event.EventID, event.Date, event.Time, shorten(orString(event.Description, ""), 50),
		event.Outcome, event.Severity, displayID(event.LocationID), displayID(event.PortalID))

	outcome := reviseString(c.prompt(fmt.Sprintf("Outcome [%s] (or blank to keep): ", event.Outcome)), event.Outcome)
	severity := reviseString(c.prompt(fmt.Sprintf("Severity [%s] (or blank to keep): ", event.Severity)), event.Severity)
	portalID := reviseID(c.prompt(fmt.Sprintf("Portal_ID [%s] (blank to keep, NULL to clear): ", displayID(event.PortalID))), event.PortalID)
	locationID := reviseID(c.prompt(fmt.Sprintf("Location_ID [%s] (blank to keep, NULL to clear): ", displayID(event.LocationID))), event.LocationID)

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error updating event: %v", err)
		return
	}
	_, err = tx.Exec(
		"UPDATE Event SET Outcome = ?, Severity = ?, Portal_ID = ?, Location_ID = ? WHERE Event_ID = ?",
		outcome, severity, portalID, locationID, eventID)
	if err != nil {
		rollbackWith(tx, "updating event", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error updating event: %v", err)
		return
	}
	color.Green("Event %d updated", eventID)
}

func (c *Console) updatePortalStatus() {
	color.Cyan("Update Portal Status (UPDATE)")
	portalID, ok := c.promptRequiredID("Portal_ID: ")
	if !ok {
		return
	}

	var portal models.Portal
	err := c.db.QueryRow(
		"SELECT Portal_ID, Name, Status, Links_To, Coordinate_X, Coordinate_Y FROM Portal WHERE Portal_ID = ?",
		portalID,
	).Scan(&portal.PortalID, &portal.Name, &portal.Status, &portal.LinksTo, &portal.CoordinateX, &portal.CoordinateY)
	if err == sql.ErrNoRows {
		color.Red("Portal not found.")
		return
	}
	if err != nil {
		color.Red("Error updating portal: %v", err)
		return
	}

	fmt.Fprintf(c.out, "Before: [%d] %s | Status: %s | Links_To: %s | X: %v | Y: %v\n",
		portal.PortalID, orString(portal.Name, "N/A"), portal.Status,
		displayID(portal.LinksTo), portal.CoordinateX.Float64, portal.CoordinateY.Float64)

	status := reviseString(c.prompt(fmt.Sprintf("New status (Active/Closed) [%s]: ", portal.Status)), portal.Status)
	linksTo := reviseID(c.prompt("Links_To Portal_ID (blank to keep, NULL to clear): "), portal.LinksTo)
	coordX := reviseFloat(c.prompt("Coordinate_X (blank to keep): "), portal.CoordinateX)
	coordY := reviseFloat(c.prompt("Coordinate_Y (blank to keep): "), portal.CoordinateY)

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error updating portal: %v", err)
		return
	}
	res, err := tx.Exec(
		"UPDATE Portal SET Status = ?, Links_To = ?, Coordinate_X = ?, Coordinate_Y = ? WHERE Portal_ID = ?",
		status, linksTo, coordX, coordY, portalID)
	if err != nil {
		rollbackWith(tx, "updating portal", err)
		return
	}
	affected, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		color.Red("Error updating portal: %v", err)
		return
	}
	color.Green("Portal %d updated to %s. Rows affected: %d", portalID, status, affected)
}

func (c *Console) updatePerson() {
	color.Cyan("Update Person (UPDATE)")
	personID, ok := c.promptRequiredID("Person_ID: ")
	if !ok {
		return
	}

	var person models.Person
	err := c.db.QueryRow(
		"SELECT Person_ID, Name, Role, Age, Status, Affiliation, Supervisor_ID, Known_Aliases FROM Person WHERE Person_ID = ?",
		personID,
	).Scan(&person.PersonID, &person.Name, &person.Role, &person.Age,
		&person.Status, &person.Affiliation, &person.SupervisorID, &person.KnownAliases)
	if err == sql.ErrNoRows {
		color.Red("Person not found.")
		return
	}
	if err != nil {
		color.Red("Error updating person: %v", err)
		return
	}

	fmt.Fprintf(c.out, "Current: [%d] %s - %s (%s, %s) | Supervisor: %s | Aliases: %s\n",
		person.PersonID, person.Name, person.Role, person.Status,
		orString(person.Affiliation, "N/A"), displayID(person.SupervisorID),
		orString(person.KnownAliases, "N/A"))

	affiliation := reviseNullString(c.prompt(fmt.Sprintf("Affiliation [%s] (or blank to keep): ", orString(person.Affiliation, ""))), person.Affiliation)
	status := reviseString(c.prompt(fmt.Sprintf("Status [%s] (or blank to keep): ", person.Status)), person.Status)
	aliases := reviseNullString(c.prompt(fmt.Sprintf("Known_Aliases [%s] (or blank to keep): ", orString(person.KnownAliases, ""))), person.KnownAliases)
	supervisorID := reviseID(c.prompt(fmt.Sprintf("Supervisor_ID [%s] (blank to keep, NULL to clear): ", displayID(person.SupervisorID))), person.SupervisorID)
	newRole := reviseString(c.prompt(fmt.Sprintf("Role [%s] (or blank to keep): ", person.Role)), person.Role)

	// Role changes do not migrate subtype rows; the row in the old role's
	// table is left behind for the operator to reconcile manually.
	if newRole != person.Role {
		color.Yellow("Role change detected: the %s subtype row for this person is NOT migrated and will be orphaned. Update subtype tables manually.", person.Role)
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error updating person: %v", err)
		return
	}
	_, err = tx.Exec(
		"UPDATE Person SET Affiliation = ?, Status = ?, Supervisor_ID = ?, Role = ?, Known_Aliases = ? WHERE Person_ID = ?",
		affiliation, status, supervisorID, newRole, aliases, personID)
	if err != nil {
		rollbackWith(tx, "updating person", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error updating person: %v", err)
		return
	}
	color.Green("Person %d updated", personID)
}

func (c *Console) updateEntity() {
	color.Cyan("Update Entity (UPDATE)")
	entityID, ok := c.promptRequiredID("Entity_ID: ")
	if !ok {
		return
	}

	var entity models.Entity
	err := c.db.QueryRow(
		"SELECT Entity_ID, Name, Species, Threat_Level, Origin_World FROM Entity WHERE Entity_ID = ?",
		entityID,
	).Scan(&entity.EntityID, &entity.Name, &entity.Species, &entity.ThreatLevel, &entity.OriginWorld)
	if err == sql.ErrNoRows {
		color.Red("Entity not found.")
		return
	}
	if err != nil {
		color.Red("Error updating entity: %v", err)
		return
	}

	fmt.Fprintf(c.out, "Current: [%d] %s · %s · %s (%s)\n",
		entity.EntityID, entity.Name, entity.Species, entity.ThreatLevel, entity.OriginWorld)

	name := reviseString(c.prompt(fmt.Sprintf("Name [%s] (or blank to keep): ", entity.Name)), entity.Name)
	threatLevel := reviseString(c.prompt(fmt.Sprintf("Threat_Level [%s] (or blank to keep): ", entity.ThreatLevel)), entity.ThreatLevel)

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error updating entity: %v", err)
		return
	}
	_, err = tx.Exec("UPDATE Entity SET Name = ?, Threat_Level = ? WHERE Entity_ID = ?",
		name, threatLevel, entityID)
	if err != nil {
		rollbackWith(tx, "updating entity", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error updating entity: %v", err)
		return
	}
	color.Green("Entity %d updated", entityID)
	if threatLevel == "Critical" && entity.ThreatLevel != "Critical" {
		color.Red("⚠️  Threat escalated to Critical - immediate action recommended!")
	}
}

func (c *Console) updateArtifact() {
	color.Cyan("Update Artifact (UPDATE)")
	artifactID, ok := c.promptRequiredID("Artifact_ID: ")
	if !ok {
		return
	}

	var artifact models.Artifact
	err := c.db.QueryRow(
		"SELECT Artifact_ID, Name, Type, Anomaly_Level, Found_At FROM Artifact WHERE Artifact_ID = ?",
		artifactID,
	).Scan(&artifact.ArtifactID, &artifact.Name, &artifact.Type, &artifact.AnomalyLevel, &artifact.FoundAt)
	if err == sql.ErrNoRows {
		color.Red("Artifact not found.")
		return
	}
	if err != nil {
		color.Red("Error updating artifact: %v", err)
		return
	}

	fmt.Fprintf(c.out, "Current: [%d] %s - %s (Anomaly %d) | Found_At: %s\n",
		artifact.ArtifactID, orString(artifact.Name, "N/A"), artifact.Type,
		orInt64(artifact.AnomalyLevel), displayID(artifact.FoundAt))

	foundAt := reviseID(c.prompt(fmt.Sprintf("Found_At Location_ID [%s] (blank to keep, NULL to clear): ", displayID(artifact.FoundAt))), artifact.FoundAt)
	anomalyLevel := reviseInt(c.prompt(fmt.Sprintf("Anomaly_Level [%d] (or blank to keep): ", orInt64(artifact.AnomalyLevel))), artifact.AnomalyLevel)

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error updating artifact: %v", err)
		return
	}
	_, err = tx.Exec("UPDATE Artifact SET Found_At = ?, Anomaly_Level = ? WHERE Artifact_ID = ?",
		foundAt, anomalyLevel, artifactID)
	if err != nil {
		rollbackWith(tx, "updating artifact", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error updating artifact: %v", err)
		return
	}
	color.Green("Artifact %d updated", artifactID)
	if anomalyLevel.Valid && anomalyLevel.Int64 > 8 {
		color.Red("⚠️  High anomaly level detected - alert report recommended!")
	}
}
