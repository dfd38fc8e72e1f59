package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/volunteercentral/volunteer-backend/internal/models"
)

func TestAssign_EventNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewAssignmentService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := s.Assign(99, []uint{1})
	require.ErrorIs(t, err, ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_SkipsUnknownProfile(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewAssignmentService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Beach Cleanup"))

	// profile 1 exists, gets a notification and a fresh Pending history
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 10))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "volunteer_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "volunteer_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	// profile 2 does not exist and is skipped silently
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mock.ExpectCommit()

	histories, err := s.Assign(5, []uint{1, 2})
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, uint(1), histories[0].ProfileID)
	require.Equal(t, uint(5), histories[0].EventID)
	require.Equal(t, models.HistoryStatusPending, histories[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_ReassignmentResetsStatus(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewAssignmentService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Beach Cleanup"))

	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(1, 10))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	// a Completed history already exists for (profile 1, event 5)
	mock.ExpectQuery(`SELECT \* FROM "volunteer_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "event_id", "status"}).
			AddRow(7, 1, 5, models.HistoryStatusCompleted))
	mock.ExpectExec(`UPDATE "volunteer_histories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	histories, err := s.Assign(5, []uint{1})
	require.NoError(t, err)
	require.Len(t, histories, 1)
	require.Equal(t, models.HistoryStatusPending, histories[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHistory_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewAssignmentService(db)

	mock.ExpectQuery(`SELECT \* FROM "volunteer_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Get(123)
	require.ErrorIs(t, err, ErrHistoryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
