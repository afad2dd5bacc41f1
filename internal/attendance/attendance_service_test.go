package attendance

import (
	"context"
	"database/sql"
	"testing"
	"time"

	attendanceerrors "github.com/Urbancode-IT/INOUT-sub000/internal/attendance/errors"
	"github.com/Urbancode-IT/INOUT-sub000/internal/geofence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var testSites = []geofence.Site{
	{Name: "Pallikaranai", Latitude: 12.94198577, Longitude: 80.21012198, RadiusMeters: 200},
}

type fakeRepo struct {
	events []Event
	state  *PresenceState
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeRepo) Append(ctx context.Context, e *Event) error {
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeRepo) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Event, error) {
	var out []Event
	for _, e := range f.events {
		if e.EmployeeID.String() == employeeID && !e.OccurredAt.Before(from) && e.OccurredAt.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) LastByEmployee(ctx context.Context, employeeID string) (*Event, error) {
	if len(f.events) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	e := f.events[len(f.events)-1]
	return &e, nil
}

func (f *fakeRepo) GetStateForUpdate(ctx context.Context, employeeID string) (*PresenceState, error) {
	if f.state == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.state, nil
}

func (f *fakeRepo) SaveState(ctx context.Context, s *PresenceState) error {
	f.state = s
	return nil
}

type fakeInvalidator struct {
	calls []string
}

func (f *fakeInvalidator) InvalidateSummary(ctx context.Context, employeeID string, day time.Time) error {
	f.calls = append(f.calls, employeeID)
	return nil
}

func newTestService(t *testing.T, repo Repository, inv SummaryInvalidator) (Service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	svc := NewService(db, repo, testSites, nil, inv)
	return svc, mock, func() { db.Close() }
}

func TestService_CheckInThenCheckOut(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	inv := &fakeInvalidator{}
	svc, mock, done := newTestService(t, repo, inv)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.CheckIn(ctx, employeeID, SubmitRequest{
		Location: "12.94198577,80.21012198",
		PhotoRef: "selfie-123.jpg",
	})
	assert.NoError(t, err)
	assert.True(t, inResp.Accepted)
	assert.True(t, inResp.InOffice)
	assert.Equal(t, "Pallikaranai", inResp.OfficeName)
	assert.Equal(t, StateCheckedIn, repo.state.Status)
	assert.Equal(t, []string{employeeID}, inv.calls)

	mock.ExpectBegin()
	mock.ExpectCommit()
	outResp, err := svc.CheckOut(ctx, employeeID, SubmitRequest{
		Location: "12.94198577,80.21012198",
	})
	assert.NoError(t, err)
	assert.True(t, outResp.Accepted)
	assert.Equal(t, StateNone, repo.state.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_Duplicate(t *testing.T) {
	employeeID := uuid.New()
	ctx := context.Background()

	repo := &fakeRepo{state: &PresenceState{EmployeeID: employeeID, Status: StateCheckedIn}}
	svc, mock, done := newTestService(t, repo, nil)
	defer done()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckIn(ctx, employeeID.String(), SubmitRequest{Location: "12.94198577,80.21012198"})
	assert.ErrorIs(t, err, attendanceerrors.ErrDuplicateCheckIn)
	assert.Empty(t, repo.events)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckOut_WithoutOpenCheckIn(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	svc, mock, done := newTestService(t, repo, nil)
	defer done()

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.CheckOut(ctx, employeeID, SubmitRequest{Location: "12.94198577,80.21012198"})
	assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenCheckIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CheckIn_RejectsBadLocation(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	svc, _, done := newTestService(t, repo, nil)
	defer done()

	_, err := svc.CheckIn(ctx, employeeID, SubmitRequest{Location: "somewhere nice"})
	assert.ErrorIs(t, err, geofence.ErrInvalidLocationFormat)

	_, err = svc.CheckIn(ctx, employeeID, SubmitRequest{Location: "95.1,80.2"})
	assert.ErrorIs(t, err, geofence.ErrInvalidLocation)

	assert.Empty(t, repo.events)
}

func TestService_CheckIn_OutsideAllOffices(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	svc, mock, done := newTestService(t, repo, nil)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.CheckIn(ctx, employeeID, SubmitRequest{Location: "13.2000,80.3000"})
	assert.NoError(t, err)
	assert.True(t, resp.Accepted)
	assert.False(t, resp.InOffice)
	assert.Equal(t, geofence.OutsideOffice, resp.OfficeName)
}

func TestService_AppendThenHistoryRoundTrip(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	repo := &fakeRepo{}
	svc, mock, done := newTestService(t, repo, nil)
	defer done()

	mock.ExpectBegin()
	mock.ExpectCommit()
	inResp, err := svc.CheckIn(ctx, employeeID, SubmitRequest{
		Location: "12.94198577,80.21012198",
		PhotoRef: "photos/abc.jpg",
	})
	assert.NoError(t, err)

	history, err := svc.History(ctx, employeeID, HistoryFilterRequest{})
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, inResp.Event.ID, history[0].ID)
	assert.Equal(t, TypeCheckIn, history[0].Type)
	assert.Equal(t, 12.94198577, history[0].Latitude)
	assert.Equal(t, 80.21012198, history[0].Longitude)
	assert.Equal(t, "Pallikaranai", history[0].MatchedOffice)
	assert.True(t, history[0].InOffice)
	assert.Equal(t, "photos/abc.jpg", history[0].PhotoRef)
}

func TestService_Status(t *testing.T) {
	employeeID := uuid.New()
	ctx := context.Background()

	repo := &fakeRepo{}
	svc, _, done := newTestService(t, repo, nil)
	defer done()

	resp, err := svc.Status(ctx, employeeID.String())
	assert.NoError(t, err)
	assert.Equal(t, StateNone, resp.Status)
	assert.Equal(t, TypeCheckIn, resp.NextAction)

	repo.events = append(repo.events, Event{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Type:       TypeCheckIn,
		OccurredAt: time.Now().UTC(),
	})

	resp, err = svc.Status(ctx, employeeID.String())
	assert.NoError(t, err)
	assert.Equal(t, StateCheckedIn, resp.Status)
	assert.Equal(t, TypeCheckOut, resp.NextAction)
}
