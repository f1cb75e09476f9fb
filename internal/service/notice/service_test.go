package notice

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/attendance"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/clock"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/notice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNoticeRepo struct {
	notices map[string]notice.LateNotice
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{notices: make(map[string]notice.LateNotice)}
}

func (f *fakeNoticeRepo) Create(_ context.Context, n notice.LateNotice) (notice.LateNotice, error) {
	n.CreatedAt = time.Now().UTC()
	n.UpdatedAt = n.CreatedAt
	f.notices[n.ID] = n
	return n, nil
}

func (f *fakeNoticeRepo) GetByID(_ context.Context, id string) (notice.LateNotice, error) {
	n, ok := f.notices[id]
	if !ok {
		return notice.LateNotice{}, notice.ErrNoticeNotFound
	}
	return n, nil
}

func (f *fakeNoticeRepo) ExistsForEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, n := range f.notices {
		if n.EmployeeID == employeeID && n.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNoticeRepo) SetJustification(_ context.Context, id string, text string) error {
	n, ok := f.notices[id]
	if !ok {
		return notice.ErrNoticeNotFound
	}
	n.Justified = true
	n.JustificationText = &text
	f.notices[id] = n
	return nil
}

func (f *fakeNoticeRepo) MarkRead(_ context.Context, id string) error {
	n, ok := f.notices[id]
	if !ok {
		return notice.ErrNoticeNotFound
	}
	n.Read = true
	f.notices[id] = n
	return nil
}

func (f *fakeNoticeRepo) ListByEmployee(_ context.Context, employeeID string) ([]notice.LateNotice, error) {
	var out []notice.LateNotice
	for _, n := range f.notices {
		if n.EmployeeID == employeeID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[string]clock.Event
}

func (f *fakeEventRepo) Create(_ context.Context, ev clock.Event) (clock.Event, error) {
	f.events[ev.ID] = ev
	return ev, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (clock.Event, error) {
	ev, ok := f.events[id]
	if !ok {
		return clock.Event{}, clock.ErrEventNotFound
	}
	return ev, nil
}

func (f *fakeEventRepo) ListByEmployeeAndDate(_ context.Context, _ string, _, _ time.Time) ([]clock.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) UpdateTimestamp(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// fakeFactsService returns canned facts per employee|date.
type fakeFactsService struct {
	facts map[string]attendance.DayFactsResponse
}

func factsKey(employeeID, date string) string { return employeeID + "|" + date }

func (f *fakeFactsService) GetResolvedSchedule(_ context.Context, _, _ string) (attendance.ResolvedDayResponse, error) {
	return attendance.ResolvedDayResponse{}, nil
}

func (f *fakeFactsService) GetDayFacts(_ context.Context, employeeID, date string) (attendance.DayFactsResponse, error) {
	return f.facts[factsKey(employeeID, date)], nil
}

func authedContext(t *testing.T, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"role":        role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type ledgerFixture struct {
	notices *fakeNoticeRepo
	events  *fakeEventRepo
	facts   *fakeFactsService
	service notice.LedgerService
}

func newLedgerFixture() *ledgerFixture {
	fx := &ledgerFixture{
		notices: newFakeNoticeRepo(),
		events: &fakeEventRepo{events: map[string]clock.Event{
			"event-1": {
				ID:         "event-1",
				EmployeeID: "emp-1",
				Type:       clock.EventTypeEntry,
				Timestamp:  time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
			},
		}},
		facts: &fakeFactsService{facts: map[string]attendance.DayFactsResponse{
			factsKey("emp-1", "2025-06-02"): {
				IsLate: true,
				Events: []clock.EventResponse{{ID: "event-1"}},
			},
		}},
	}
	fx.service = NewLedgerService(fx.notices, fx.events, fx.facts)
	return fx
}

func raiseRequest() notice.RaiseNoticeRequest {
	return notice.RaiseNoticeRequest{
		EmployeeID:   "emp-1",
		ClockEventID: "event-1",
		Date:         "2025-06-02",
	}
}

func TestRaise_Success(t *testing.T) {
	fx := newLedgerFixture()

	resp, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "sup-1", resp.SupervisorID)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.False(t, resp.Justified)
	assert.False(t, resp.Read)
}

func TestRaise_RequiresAnomaly(t *testing.T) {
	fx := newLedgerFixture()
	fx.facts.facts[factsKey("emp-1", "2025-06-02")] = attendance.DayFactsResponse{}

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	assert.ErrorIs(t, err, notice.ErrNoAnomaly)
}

func TestRaise_EarlyDepartureCountsAsAnomaly(t *testing.T) {
	fx := newLedgerFixture()
	fx.facts.facts[factsKey("emp-1", "2025-06-02")] = attendance.DayFactsResponse{
		IsEarlyDeparture: true,
		Events:           []clock.EventResponse{{ID: "event-1"}},
	}

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	assert.NoError(t, err)
}

func TestRaise_EventMustFallOnNoticeDate(t *testing.T) {
	fx := newLedgerFixture()
	req := raiseRequest()
	req.Date = "2025-06-03"
	fx.facts.facts[factsKey("emp-1", "2025-06-03")] = attendance.DayFactsResponse{
		IsLate: true,
		Events: []clock.EventResponse{{ID: "event-9"}},
	}

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), req)
	assert.ErrorIs(t, err, notice.ErrEventDateMismatch)
}

func TestRaise_OnePerEmployeeDay(t *testing.T) {
	fx := newLedgerFixture()
	ctx := authedContext(t, "sup-1", "SUPERVISOR")

	_, err := fx.service.Raise(ctx, raiseRequest())
	require.NoError(t, err)

	_, err = fx.service.Raise(ctx, raiseRequest())
	assert.ErrorIs(t, err, notice.ErrNoticeExists)
}

func TestRaise_EventMustBelongToEmployee(t *testing.T) {
	fx := newLedgerFixture()
	req := raiseRequest()
	req.EmployeeID = "emp-2"
	fx.facts.facts[factsKey("emp-2", "2025-06-02")] = attendance.DayFactsResponse{IsLate: true}

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), req)
	assert.ErrorIs(t, err, clock.ErrNotEventOwner)
}

func TestRaise_UnknownEvent(t *testing.T) {
	fx := newLedgerFixture()
	req := raiseRequest()
	req.ClockEventID = "missing"

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), req)
	assert.ErrorIs(t, err, clock.ErrEventNotFound)
}

func TestJustify_OwnerOnly(t *testing.T) {
	fx := newLedgerFixture()

	created, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	require.NoError(t, err)

	_, err = fx.service.Justify(authedContext(t, "emp-2", "EMPLOYEE"), notice.JustifyNoticeRequest{
		ID:   created.ID,
		Text: "traffic jam",
	})
	assert.ErrorIs(t, err, notice.ErrNotNoticeOwner)

	resp, err := fx.service.Justify(authedContext(t, "emp-1", "EMPLOYEE"), notice.JustifyNoticeRequest{
		ID:   created.ID,
		Text: "traffic jam",
	})
	require.NoError(t, err)
	assert.True(t, resp.Justified)
	require.NotNil(t, resp.JustificationText)
	assert.Equal(t, "traffic jam", *resp.JustificationText)
}

func TestJustify_OverwritesPreviousText(t *testing.T) {
	fx := newLedgerFixture()

	created, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	require.NoError(t, err)

	empCtx := authedContext(t, "emp-1", "EMPLOYEE")
	_, err = fx.service.Justify(empCtx, notice.JustifyNoticeRequest{ID: created.ID, Text: "first"})
	require.NoError(t, err)

	resp, err := fx.service.Justify(empCtx, notice.JustifyNoticeRequest{ID: created.ID, Text: "second"})
	require.NoError(t, err)
	require.NotNil(t, resp.JustificationText)
	assert.Equal(t, "second", *resp.JustificationText)
}

func TestMarkRead_Idempotent(t *testing.T) {
	fx := newLedgerFixture()

	created, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	require.NoError(t, err)

	ctx := authedContext(t, "sup-1", "SUPERVISOR")
	first, err := fx.service.MarkRead(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, first.Read)

	second, err := fx.service.MarkRead(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, second.Read)
}

func TestMarkRead_UnknownNotice(t *testing.T) {
	fx := newLedgerFixture()

	_, err := fx.service.MarkRead(authedContext(t, "sup-1", "SUPERVISOR"), "missing")
	assert.ErrorIs(t, err, notice.ErrNoticeNotFound)
}

func TestListMyNotices(t *testing.T) {
	fx := newLedgerFixture()

	_, err := fx.service.Raise(authedContext(t, "sup-1", "SUPERVISOR"), raiseRequest())
	require.NoError(t, err)

	mine, err := fx.service.ListMyNotices(authedContext(t, "emp-1", "EMPLOYEE"))
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := fx.service.ListMyNotices(authedContext(t, "emp-2", "EMPLOYEE"))
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
