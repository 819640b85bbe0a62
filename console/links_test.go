package console

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkEventEntityWritesAppearanceAndJunction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "10\n7\n1983-11-06 22:00:00\n1983-11-06 22:45:00\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Entity_Appearance").
		WithArgs(7, 10, "1983-11-06 22:00:00", "1983-11-06 22:45:00").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT IGNORE INTO Event_Involves_Entity").
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.linkEventEntity()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLinkEventEntityRollsBackBothOnJunctionFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "10\n7\nstart\nend\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Entity_Appearance").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("INSERT IGNORE INTO Event_Involves_Entity").
		WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	c.linkEventEntity()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkEventEntityKeepsAppearancesByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "10\n7\n\n")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Event_Involves_Entity").
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.unlinkEventEntity()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnlinkEventEntityAlsoDeletesAppearances(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "10\n7\nyes\n")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Event_Involves_Entity").
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM Entity_Appearance").
		WithArgs(10, 7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	c.unlinkEventEntity()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddVictimToEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "4\n10\nSevere lacerations\n")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Victim_Record").
		WithArgs(4, 10, "Severe lacerations").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	c.addVictimToEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveVictimByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "3\n")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Victim_Record WHERE Victim_No = ").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.removeVictimFromEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveVictimByEventAndPerson(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	c := testConsole(db, "\n10\n4\n")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM Victim_Record WHERE Hurt_In = ").
		WithArgs(10, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c.removeVictimFromEvent()

	assert.NoError(t, mock.ExpectationsWereMet())
}
