package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/models"
)

func TestDiffSkills(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		desired  []string
		toDelete []string
		toAdd    []string
	}{
		{
			name:     "replace one",
			existing: []string{"First Aid", "Cooking"},
			desired:  []string{"Cooking", "Driving"},
			toDelete: []string{"First Aid"},
			toAdd:    []string{"Driving"},
		},
		{
			name:     "no change",
			existing: []string{"First Aid"},
			desired:  []string{"First Aid"},
		},
		{
			name:     "clear all",
			existing: []string{"First Aid", "Cooking"},
			desired:  nil,
			toDelete: []string{"First Aid", "Cooking"},
		},
		{
			name:    "from empty",
			desired: []string{"First Aid"},
			toAdd:   []string{"First Aid"},
		},
		{
			name:     "duplicate desired added once",
			existing: []string{"Cooking"},
			desired:  []string{"First Aid", "First Aid", "Cooking"},
			toAdd:    []string{"First Aid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toDelete, toAdd := diffSkills(tt.existing, tt.desired)
			require.Equal(t, tt.toDelete, toDelete)
			require.Equal(t, tt.toAdd, toAdd)
		})
	}
}

func TestEventUpdate_DiffsSkillsAndNotifiesAssignees(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEventService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Beach Cleanup"))
	mock.ExpectExec(`UPDATE "events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// stored {First Aid, Cooking} vs desired {Cooking, Driving}:
	// First Aid is deleted, Driving inserted, Cooking untouched
	mock.ExpectQuery(`SELECT \* FROM "event_skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name"}).
			AddRow(1, 3, "First Aid").
			AddRow(2, 3, "Cooking"))
	mock.ExpectExec(`DELETE FROM "event_skills"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "event_skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	// two assigned profiles, one notification each
	mock.ExpectQuery(`SELECT \* FROM "volunteer_histories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "event_id", "status"}).
			AddRow(10, 1, 3, models.HistoryStatusPending).
			AddRow(11, 2, 3, models.HistoryStatusConfirmed))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(20))
	mock.ExpectQuery(`INSERT INTO "notifications"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	// reload with skills
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Beach Cleanup"))
	mock.ExpectQuery(`SELECT \* FROM "event_skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name"}).
			AddRow(2, 3, "Cooking").
			AddRow(4, 3, "Driving"))

	req := &dto.EventRequest{
		Name:        "Beach Cleanup",
		Description: "Pick up litter",
		Location:    "Galveston, TX",
		Urgency:     "High",
		Date:        "2026-04-18",
		Status:      "Pending",
		Skills:      []string{"Cooking", "Driving"},
	}

	event, err := s.Update(3, req)
	require.NoError(t, err)
	require.Len(t, event.Skills, 2)
	require.Equal(t, "Cooking", event.Skills[0].Name)
	require.Equal(t, "Driving", event.Skills[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventUpdate_BadDate(t *testing.T) {
	db, _ := newMockDB(t)
	s := NewEventService(db)

	req := &dto.EventRequest{Name: "Beach Cleanup", Date: "04/18/2026"}
	_, err := s.Update(3, req)
	require.Error(t, err)
}

func TestEventGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEventService(db)

	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Get(404)
	require.ErrorIs(t, err, ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDelete_Cascades(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewEventService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Food Drive"))
	mock.ExpectExec(`DELETE FROM "event_skills"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "volunteer_histories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "events"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}
