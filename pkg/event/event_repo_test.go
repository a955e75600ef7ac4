package event

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/eventra/eventra/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *sql.DB

func TestMain(m *testing.M) {
	container, open := test_utils.TestWithDB()
	db = open()
	code := m.Run()
	db.Close()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func testEvent(start time.Time) Event {
	return Event{
		Name:            "Tech Conference",
		Description:     "Annual conference",
		StartTime:       start,
		EndTime:         start.Add(8 * time.Hour),
		Status:          StatusUnderReview,
		EstimatedBudget: 150000,
		ActualBudget:    0,
		MaxGuests:       200,
		CategoryID:      1,
		VenueID:         1,
		ManagerID:       1,
	}
}

func TestEventRepoImpl_CreateAndGet(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewEventRepo(db)
	start := time.Now().Add(72 * time.Hour).Truncate(time.Second).UTC()

	// when
	created, err := repo.Create(ctx, testEvent(start))
	require.NoError(t, err)

	// then
	assert.NotZero(t, created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, StatusUnderReview, fetched.Status)
	assert.True(t, fetched.StartTime.Equal(start))
	assert.Equal(t, float64(150000), fetched.EstimatedBudget)
}

func TestEventRepoImpl_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(db)

	_, err := repo.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepoImpl_Update(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewEventRepo(db)
	start := time.Now().Add(96 * time.Hour).Truncate(time.Second).UTC()
	created, err := repo.Create(ctx, testEvent(start))
	require.NoError(t, err)

	// when
	created.Name = "Renamed Conference"
	created.Status = StatusApproved
	created.MaxGuests = 300
	updated, err := repo.Update(ctx, created)

	// then
	require.NoError(t, err)
	fetched, err := repo.GetByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Conference", fetched.Name)
	assert.Equal(t, StatusApproved, fetched.Status)
	assert.Equal(t, 300, fetched.MaxGuests)
}

func TestEventRepoImpl_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(db)

	missing := testEvent(time.Now().Add(24 * time.Hour))
	missing.ID = 999999
	_, err := repo.Update(ctx, missing)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepoImpl_UpdateBudget(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewEventRepo(db)
	start := time.Now().Add(48 * time.Hour).Truncate(time.Second).UTC()
	created, err := repo.Create(ctx, testEvent(start))
	require.NoError(t, err)

	// when
	updated, err := repo.UpdateBudget(ctx, created.ID, 50000)

	// then
	require.NoError(t, err)
	assert.Equal(t, float64(50000), updated.ActualBudget)
	// a budget update never changes anything else
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Name, updated.Name)
}

func TestEventRepoImpl_ListByStatus(t *testing.T) {
	// given
	ctx := context.Background()
	repo := NewEventRepo(db)
	start := time.Now().Add(120 * time.Hour).Truncate(time.Second).UTC()

	approved := testEvent(start)
	approved.Name = "Approved Gala"
	approved.Status = StatusApproved
	created, err := repo.Create(ctx, approved)
	require.NoError(t, err)

	// when
	events, err := repo.ListByStatus(ctx, StatusApproved)

	// then
	require.NoError(t, err)
	found := false
	for _, e := range events {
		assert.Equal(t, StatusApproved, e.Status)
		if e.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}
