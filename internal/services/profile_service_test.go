package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreate_CreatesOnFirstCall(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProfileService(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectCommit()

	profile, err := s.GetOrCreate(10)
	require.NoError(t, err)
	require.Equal(t, uint(4), profile.ID)
	require.Equal(t, uint(10), profile.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrCreate_ReturnsExisting(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProfileService(db)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT \* FROM "profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name"}).
			AddRow(4, 10, "Jane Doe"))
	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "name"}).
			AddRow(1, 4, "First Aid"))
	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "date"}))

	profile, err := s.GetOrCreate(10)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", profile.FullName)
	require.Len(t, profile.Skills, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddSkills_AdditiveUpsert(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProfileService(db)

	mock.ExpectBegin()
	// "First Aid" already stored, skipped
	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "name"}).
			AddRow(1, 4, "First Aid"))
	// "Driving" is new, inserted
	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	// final listing
	mock.ExpectQuery(`SELECT \* FROM "skills"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "name"}).
			AddRow(2, 4, "Driving").
			AddRow(1, 4, "First Aid"))

	skills, err := s.AddSkills(4, []string{"First Aid", "Driving"})
	require.NoError(t, err)
	require.Len(t, skills, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddAvailabilities_SkipsExistingDate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewProfileService(db)

	existing := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "date"}).
			AddRow(1, 4, existing))
	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`INSERT INTO "availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "availabilities"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "date"}).
			AddRow(1, 4, existing).
			AddRow(2, 4, fresh))

	out, err := s.AddAvailabilities(4, []time.Time{existing, fresh})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
