package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/horariolabs/fichaje-backend-go/internal/domain/employee"
	"github.com/horariolabs/fichaje-backend-go/internal/domain/schedule"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	schedules map[string]schedule.DepartmentSchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.DepartmentSchedule)}
}

func (f *fakeScheduleRepo) Create(_ context.Context, s schedule.DepartmentSchedule) (schedule.DepartmentSchedule, error) {
	for _, existing := range f.schedules {
		if existing.Department == s.Department && existing.Name == s.Name {
			return schedule.DepartmentSchedule{}, &pgconn.PgError{Code: "23505"}
		}
	}
	f.schedules[s.ID] = s
	return s, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (schedule.DepartmentSchedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return schedule.DepartmentSchedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) GetByDepartment(_ context.Context, department string) ([]schedule.DepartmentSchedule, error) {
	var out []schedule.DepartmentSchedule
	for _, s := range f.schedules {
		if s.Department == department {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, req schedule.UpdateScheduleRequest) error {
	s, ok := f.schedules[req.ID]
	if !ok {
		return schedule.ErrScheduleNotFound
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.ToleranceMinutes != nil {
		s.ToleranceMinutes = *req.ToleranceMinutes
	}
	if req.Flexible != nil {
		s.Flexible = *req.Flexible
	}
	f.schedules[req.ID] = s
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.schedules[id]; !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(f.schedules, id)
	return nil
}

func (f *fakeScheduleRepo) PutOverride(_ context.Context, o schedule.DayOverride) (schedule.DayOverride, error) {
	s := f.schedules[o.ScheduleID]
	for i := range s.Overrides {
		if s.Overrides[i].DayOfWeek == o.DayOfWeek {
			o.ID = s.Overrides[i].ID
			s.Overrides[i] = o
			f.schedules[o.ScheduleID] = s
			return o, nil
		}
	}
	s.Overrides = append(s.Overrides, o)
	f.schedules[o.ScheduleID] = s
	return o, nil
}

func (f *fakeScheduleRepo) DeleteOverride(_ context.Context, scheduleID string, dayOfWeek int) error {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return schedule.ErrOverrideNotFound
	}
	for i := range s.Overrides {
		if s.Overrides[i].DayOfWeek == dayOfWeek {
			s.Overrides = append(s.Overrides[:i], s.Overrides[i+1:]...)
			f.schedules[scheduleID] = s
			return nil
		}
	}
	return schedule.ErrOverrideNotFound
}

type fakeShiftRepo struct {
	shifts map[string]schedule.DepartmentShift
}

func newFakeShiftRepo(shifts ...schedule.DepartmentShift) *fakeShiftRepo {
	f := &fakeShiftRepo{shifts: make(map[string]schedule.DepartmentShift)}
	for _, s := range shifts {
		f.shifts[s.ID] = s
	}
	return f
}

func (f *fakeShiftRepo) Create(_ context.Context, s schedule.DepartmentShift) (schedule.DepartmentShift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (schedule.DepartmentShift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return schedule.DepartmentShift{}, schedule.ErrShiftNotFound
	}
	return s, nil
}

func (f *fakeShiftRepo) GetByDepartment(_ context.Context, department string) ([]schedule.DepartmentShift, error) {
	var out []schedule.DepartmentShift
	for _, s := range f.shifts {
		if s.Department == department {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, req schedule.UpdateShiftRequest) error {
	s, ok := f.shifts[req.ID]
	if !ok {
		return schedule.ErrShiftNotFound
	}
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.ActiveWeekdays != nil {
		s.ActiveWeekdays = req.ActiveWeekdays
	}
	f.shifts[req.ID] = s
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return schedule.ErrShiftNotFound
	}
	delete(f.shifts, id)
	return nil
}

type fakeAssignmentRepo struct {
	// keyed by employeeID + date
	assignments map[string]schedule.ShiftAssignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: make(map[string]schedule.ShiftAssignment)}
}

func assignmentKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAssignmentRepo) Upsert(_ context.Context, a schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	key := assignmentKey(a.EmployeeID, a.Date)
	if existing, ok := f.assignments[key]; ok {
		a.ID = existing.ID
	}
	f.assignments[key] = a
	return a, nil
}

func (f *fakeAssignmentRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*schedule.ShiftAssignment, error) {
	a, ok := f.assignments[assignmentKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAssignmentRepo) ListByEmployeeRange(_ context.Context, employeeID string, start, end time.Time) ([]schedule.ShiftAssignment, error) {
	var out []schedule.ShiftAssignment
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID && !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, employeeID string, date time.Time) error {
	key := assignmentKey(employeeID, date)
	if _, ok := f.assignments[key]; !ok {
		return schedule.ErrAssignmentNotFound
	}
	delete(f.assignments, key)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func intPtr(i int) *int { return &i }

func weekdayShift() schedule.DepartmentShift {
	return schedule.DepartmentShift{
		ID:               "shift-1",
		Department:       "engineering",
		Name:             "early",
		EntryTime:        time.Date(0, 1, 1, 7, 0, 0, 0, time.UTC),
		ExitTime:         time.Date(0, 1, 1, 15, 0, 0, 0, time.UTC),
		ToleranceMinutes: 5,
		ActiveWeekdays:   []int{1, 2, 3, 4, 5},
	}
}

func newTestCatalog(scheduleRepo *fakeScheduleRepo, shiftRepo *fakeShiftRepo, assignmentRepo *fakeAssignmentRepo, employeeRepo *fakeEmployeeRepo) schedule.CatalogService {
	return NewCatalogService(scheduleRepo, shiftRepo, assignmentRepo, employeeRepo)
}

func TestCreateSchedule_Validation(t *testing.T) {
	svc := newTestCatalog(newFakeScheduleRepo(), newFakeShiftRepo(), newFakeAssignmentRepo(), newFakeEmployeeRepo())

	_, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		Department: "engineering",
		Name:       "general",
		EntryTime:  "nine",
		ExitTime:   "18:00",
	})
	assert.Error(t, err)
}

func TestCreateSchedule_DuplicateName(t *testing.T) {
	svc := newTestCatalog(newFakeScheduleRepo(), newFakeShiftRepo(), newFakeAssignmentRepo(), newFakeEmployeeRepo())

	req := schedule.CreateScheduleRequest{
		Department:       "engineering",
		Name:             "general",
		EntryTime:        "09:00",
		ExitTime:         "18:00",
		ToleranceMinutes: intPtr(10),
	}
	_, err := svc.CreateSchedule(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateSchedule(context.Background(), req)
	assert.ErrorIs(t, err, schedule.ErrScheduleNameExists)
}

func TestPutOverride_DayOffDropsTimes(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	svc := newTestCatalog(scheduleRepo, newFakeShiftRepo(), newFakeAssignmentRepo(), newFakeEmployeeRepo())

	created, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		Department:       "engineering",
		Name:             "general",
		EntryTime:        "09:00",
		ExitTime:         "18:00",
		ToleranceMinutes: intPtr(10),
	})
	require.NoError(t, err)

	entry := "08:00"
	resp, err := svc.PutOverride(context.Background(), schedule.PutOverrideRequest{
		ScheduleID: created.ID,
		DayOfWeek:  5,
		EntryTime:  &entry,
		DayOff:     true,
	})
	require.NoError(t, err)
	assert.True(t, resp.DayOff)
	assert.Nil(t, resp.EntryTime)

	stored := scheduleRepo.schedules[created.ID]
	require.Len(t, stored.Overrides, 1)
	assert.Nil(t, stored.Overrides[0].EntryTime)
}

func TestPutOverride_ReplacesExisting(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	svc := newTestCatalog(scheduleRepo, newFakeShiftRepo(), newFakeAssignmentRepo(), newFakeEmployeeRepo())

	created, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleRequest{
		Department:       "engineering",
		Name:             "general",
		EntryTime:        "09:00",
		ExitTime:         "18:00",
		ToleranceMinutes: intPtr(10),
	})
	require.NoError(t, err)

	entry := "08:00"
	_, err = svc.PutOverride(context.Background(), schedule.PutOverrideRequest{
		ScheduleID: created.ID, DayOfWeek: 1, EntryTime: &entry,
	})
	require.NoError(t, err)

	later := "10:00"
	_, err = svc.PutOverride(context.Background(), schedule.PutOverrideRequest{
		ScheduleID: created.ID, DayOfWeek: 1, EntryTime: &later,
	})
	require.NoError(t, err)

	stored := scheduleRepo.schedules[created.ID]
	require.Len(t, stored.Overrides, 1)
	require.NotNil(t, stored.Overrides[0].EntryTime)
	assert.Equal(t, 10, stored.Overrides[0].EntryTime.Hour())
}

func TestAssignShift_SkipsInactiveWeekdays(t *testing.T) {
	assignmentRepo := newFakeAssignmentRepo()
	svc := newTestCatalog(
		newFakeScheduleRepo(),
		newFakeShiftRepo(weekdayShift()),
		assignmentRepo,
		newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Department: "engineering"}),
	)

	// Mon 2025-06-02 through Sun 2025-06-08.
	resp, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-1",
		StartDate:  "2025-06-02",
		EndDate:    "2025-06-08",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.AssignedCount)
	assert.Equal(t, []string{"2025-06-07", "2025-06-08"}, resp.SkippedDates)
	assert.Len(t, assignmentRepo.assignments, 5)
}

func TestAssignShift_AllDatesInactive(t *testing.T) {
	svc := newTestCatalog(
		newFakeScheduleRepo(),
		newFakeShiftRepo(weekdayShift()),
		newFakeAssignmentRepo(),
		newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Department: "engineering"}),
	)

	// Saturday and Sunday only.
	resp, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1",
		ShiftID:    "shift-1",
		StartDate:  "2025-06-07",
		EndDate:    "2025-06-08",
	})

	require.NoError(t, err)
	assert.Zero(t, resp.AssignedCount)
	assert.Len(t, resp.SkippedDates, 2)
}

func TestAssignShift_LastWriterWins(t *testing.T) {
	night := weekdayShift()
	night.ID = "shift-2"
	night.Name = "night"
	assignmentRepo := newFakeAssignmentRepo()
	svc := newTestCatalog(
		newFakeScheduleRepo(),
		newFakeShiftRepo(weekdayShift(), night),
		assignmentRepo,
		newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Department: "engineering"}),
	)

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1", ShiftID: "shift-1", StartDate: "2025-06-02", EndDate: "2025-06-02",
	})
	require.NoError(t, err)

	_, err = svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1", ShiftID: "shift-2", StartDate: "2025-06-02", EndDate: "2025-06-02",
	})
	require.NoError(t, err)

	require.Len(t, assignmentRepo.assignments, 1)
	for _, a := range assignmentRepo.assignments {
		assert.Equal(t, "shift-2", a.ShiftID)
	}
}

func TestAssignShift_UnknownShift(t *testing.T) {
	svc := newTestCatalog(newFakeScheduleRepo(), newFakeShiftRepo(), newFakeAssignmentRepo(), newFakeEmployeeRepo())

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1", ShiftID: "missing", StartDate: "2025-06-02", EndDate: "2025-06-02",
	})
	assert.ErrorIs(t, err, schedule.ErrShiftNotFound)
}

func TestAssignShift_RejectsReversedRange(t *testing.T) {
	svc := newTestCatalog(
		newFakeScheduleRepo(),
		newFakeShiftRepo(weekdayShift()),
		newFakeAssignmentRepo(),
		newFakeEmployeeRepo(employee.Employee{ID: "emp-1", Department: "engineering"}),
	)

	_, err := svc.AssignShift(context.Background(), schedule.AssignShiftRequest{
		EmployeeID: "emp-1", ShiftID: "shift-1", StartDate: "2025-06-08", EndDate: "2025-06-02",
	})
	assert.Error(t, err)
}
