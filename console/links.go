package console

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

func (c *Console) promptRequiredID(label string) (int, bool) {
	input := c.prompt(label)
	id, err := strconv.Atoi(input)
	if err != nil {
		color.Red("Invalid ID '%s'. Must be an integer.", input)
		return 0, false
	}
	return id, true
}

// linkEventEntity records an Entity_Appearance and mirrors the link in the
// Event_Involves_Entity junction, atomically.
func (c *Console) linkEventEntity() {
	color.Cyan("Link Event to Entity (CREATE)")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	entityID, ok := c.promptRequiredID("Entity_ID: ")
	if !ok {
		return
	}
	startTime := c.prompt("Start_Time (YYYY-MM-DD HH:MM:SS): ")
	endTime := c.prompt("End_Time (YYYY-MM-DD HH:MM:SS): ")

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error linking event to entity: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Entity_Appearance (Entity_ID, Event_ID, Start_Time, End_Time) VALUES (?, ?, ?, ?)",
		entityID, eventID, startTime, endTime)
	if err != nil {
		rollbackWith(tx, "linking event to entity", err)
		return
	}
	appearanceID, _ := res.LastInsertId()
	_, err = tx.Exec("INSERT IGNORE INTO Event_Involves_Entity (Event_ID, Entity_ID) VALUES (?, ?)",
		eventID, entityID)
	if err != nil {
		rollbackWith(tx, "linking event to entity", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error linking event to entity: %v", err)
		return
	}
	color.Green("Linked Entity %d to Event %d (Appearance ID: %d)", entityID, eventID, appearanceID)
}

func (c *Console) unlinkEventEntity() {
	color.Cyan("Unlink Event from Entity")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	entityID, ok := c.promptRequiredID("Entity_ID: ")
	if !ok {
		return
	}
	alsoAppearances := strings.ToLower(c.prompt("Delete Entity_Appearance records too? (yes/no) [no]: "))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error unlinking: %v", err)
		return
	}
	_, err = tx.Exec("DELETE FROM Event_Involves_Entity WHERE Event_ID = ? AND Entity_ID = ?", eventID, entityID)
	if err != nil {
		rollbackWith(tx, "unlinking", err)
		return
	}
	if alsoAppearances == "yes" {
		_, err = tx.Exec("DELETE FROM Entity_Appearance WHERE Event_ID = ? AND Entity_ID = ?", eventID, entityID)
		if err != nil {
			rollbackWith(tx, "unlinking", err)
			return
		}
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error unlinking: %v", err)
		return
	}
	color.Green("Unlinked Entity %d from Event %d", entityID, eventID)
}

func (c *Console) linkArtifactEvent() {
	color.Cyan("Link Artifact to Event (CREATE)")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	artifactID, ok := c.promptRequiredID("Artifact_ID: ")
	if !ok {
		return
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error linking artifact to event: %v", err)
		return
	}
	_, err = tx.Exec("INSERT IGNORE INTO Event_Affects_Artifact (Event_ID, Artifact_ID) VALUES (?, ?)",
		eventID, artifactID)
	if err != nil {
		rollbackWith(tx, "linking artifact to event", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error linking artifact to event: %v", err)
		return
	}
	color.Green("Linked Artifact %d to Event %d", artifactID, eventID)
}

func (c *Console) unlinkArtifactEvent() {
	color.Cyan("Unlink Artifact from Event")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	artifactID, ok := c.promptRequiredID("Artifact_ID: ")
	if !ok {
		return
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error unlinking: %v", err)
		return
	}
	_, err = tx.Exec("DELETE FROM Event_Affects_Artifact WHERE Event_ID = ? AND Artifact_ID = ?", eventID, artifactID)
	if err != nil {
		rollbackWith(tx, "unlinking", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error unlinking: %v", err)
		return
	}
	color.Green("Unlinked Artifact %d from Event %d", artifactID, eventID)
}

func (c *Console) addVictimToEvent() {
	color.Cyan("Add Victim to Event (CREATE)")
	personID, ok := c.promptRequiredID("Person_ID (victim): ")
	if !ok {
		return
	}
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	injurySeverity := c.prompt("Injury_Severity: ")

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error adding victim to event: %v", err)
		return
	}
	res, err := tx.Exec(
		"INSERT INTO Victim_Record (Person_ID, Hurt_In, Injury_Severity) VALUES (?, ?, ?)",
		personID, eventID, injurySeverity)
	if err != nil {
		rollbackWith(tx, "adding victim to event", err)
		return
	}
	victimNo, _ := res.LastInsertId()
	if err := tx.Commit(); err != nil {
		color.Red("Error adding victim to event: %v", err)
		return
	}
	color.Green("Added Victim %d to Event %d (Victim_No: %d)", personID, eventID, victimNo)
}

// removeVictimFromEvent deletes by Victim_No when given, otherwise by the
// event/person pair.
func (c *Console) removeVictimFromEvent() {
	color.Cyan("Remove Victim from Event")
	victimNo := c.prompt("Victim_No (or blank to use Event_ID + Person_ID): ")

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error removing victim: %v", err)
		return
	}
	if victimNo != "" {
		no, convErr := strconv.Atoi(victimNo)
		if convErr != nil {
			_ = tx.Rollback()
			color.Red("Invalid Victim_No '%s'. Must be an integer.", victimNo)
			return
		}
		_, err = tx.Exec("DELETE FROM Victim_Record WHERE Victim_No = ?", no)
	} else {
		eventID, ok := c.promptRequiredID("Event_ID: ")
		if !ok {
			_ = tx.Rollback()
			return
		}
		personID, ok := c.promptRequiredID("Person_ID: ")
		if !ok {
			_ = tx.Rollback()
			return
		}
		_, err = tx.Exec("DELETE FROM Victim_Record WHERE Hurt_In = ? AND Person_ID = ?", eventID, personID)
	}
	if err != nil {
		rollbackWith(tx, "removing victim", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error removing victim: %v", err)
		return
	}
	color.Green("Victim removed from event")
}
