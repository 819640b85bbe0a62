package console

import (
	"database/sql"
	"fmt"

	"github.com/fatih/color"

	"github.com/hnl-ops/strangerdb/models"
)

// archiveEvent is a soft archive: the schema has no archive column, so the
// outcome is forced to Contained and the reason is appended to the description.
func (c *Console) archiveEvent() {
	color.Cyan("Archive Event")
	eventID, ok := c.promptRequiredID("Event_ID: ")
	if !ok {
		return
	}
	reason := c.prompt("Archive reason: ")

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error archiving event: %v", err)
		return
	}
	_, err = tx.Exec(
		"UPDATE Event SET Outcome = 'Contained', Description = CONCAT(Description, ' [ARCHIVED: ', ?, ']') WHERE Event_ID = ?",
		reason, eventID)
	if err != nil {
		rollbackWith(tx, "archiving event", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error archiving event: %v", err)
		return
	}
	color.Green("Event %d archived", eventID)
}

// archivePerson is a soft delete via Status.
func (c *Console) archivePerson() {
	color.Cyan("Archive Person")
	personID, ok := c.promptRequiredID("Person_ID: ")
	if !ok {
		return
	}

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error archiving person: %v", err)
		return
	}
	_, err = tx.Exec("UPDATE Person SET Status = 'Deceased' WHERE Person_ID = ?", personID)
	if err != nil {
		rollbackWith(tx, "archiving person", err)
		return
	}
	if err := tx.Commit(); err != nil {
		color.Red("Error archiving person: %v", err)
		return
	}
	color.Green("Person %d archived (Status set to Deceased)", personID)
}

// deleteArtifact is the console's only hard delete and requires a literal
// YES confirmation.
func (c *Console) deleteArtifact() {
	color.Cyan("Delete Artifact (DELETE)")
	artifactID, ok := c.promptRequiredID("Artifact_ID to delete: ")
	if !ok {
		return
	}
	if c.prompt("Confirm delete (type YES): ") != "YES" {
		fmt.Fprintln(c.out, "Deletion aborted.")
		return
	}

	var artifact models.Artifact
	err := c.db.QueryRow("SELECT Artifact_ID, Name FROM Artifact WHERE Artifact_ID = ?", artifactID).
		Scan(&artifact.ArtifactID, &artifact.Name)
	if err != nil && err != sql.ErrNoRows {
		color.Red("Error deleting artifact: %v", err)
		return
	}
	fmt.Fprintf(c.out, "Deleting: [%d] %s\n", artifactID, orString(artifact.Name, "N/A"))

	tx, err := c.db.Begin()
	if err != nil {
		color.Red("Error deleting artifact: %v", err)
		return
	}
	res, err := tx.Exec("DELETE FROM Artifact WHERE Artifact_ID = ?", artifactID)
	if err != nil {
		rollbackWith(tx, "deleting artifact", err)
		return
	}
	affected, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		color.Red("Error deleting artifact: %v", err)
		return
	}
	color.Green("Artifact %d deleted. Rows affected: %d", artifactID, affected)
}
