package service_test

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/attendance-api/internal/domain"
)

type recKey struct {
	employeeID int64
	date       string
}

// memStore - общее in-memory хранилище для фейковых репозиториев
type memStore struct {
	employees map[int64]*domain.Employee
	nextID    int64
	leaves    map[string]string
	records   map[recKey]domain.AttendanceRecord
	upsertErr error
}

func newMemStore() *memStore {
	return &memStore{
		employees: make(map[int64]*domain.Employee),
		nextID:    1,
		leaves:    make(map[string]string),
		records:   make(map[recKey]domain.AttendanceRecord),
	}
}

type fakeEmployeeRepo struct{ s *memStore }

func (m *fakeEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	result := make([]domain.Employee, 0, len(m.s.employees))
	for _, emp := range m.s.employees {
		result = append(result, *emp)
	}
	slices.SortFunc(result, func(a, b domain.Employee) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return result, nil
}

func (m *fakeEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	for _, e := range m.s.employees {
		if e.Name == emp.Name {
			return domain.ErrDuplicateEmployeeName
		}
	}
	emp.ID = m.s.nextID
	emp.CreatedAt = time.Now()
	m.s.nextID++
	stored := *emp
	m.s.employees[emp.ID] = &stored
	return nil
}

func (m *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.s.employees[id]; ok {
		return emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *fakeEmployeeRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, e := range m.s.employees {
		if e.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *fakeEmployeeRepo) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := m.s.employees[id]; ok {
			count++
		}
	}
	return count, nil
}

func (m *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.s.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	for k := range m.s.records {
		if k.employeeID == id {
			delete(m.s.records, k)
		}
	}
	delete(m.s.employees, id)
	return nil
}

type fakeLeaveRepo struct{ s *memStore }

func (m *fakeLeaveRepo) List(ctx context.Context) ([]domain.OfficeLeave, error) {
	return m.ListBetween(ctx, "0000-00-00", "9999-99-99")
}

func (m *fakeLeaveRepo) ListBetween(ctx context.Context, from, to string) ([]domain.OfficeLeave, error) {
	var result []domain.OfficeLeave
	for date, desc := range m.s.leaves {
		if date >= from && date <= to {
			result = append(result, domain.OfficeLeave{Date: date, Description: desc})
		}
	}
	slices.SortFunc(result, func(a, b domain.OfficeLeave) int { return cmp.Compare(a.Date, b.Date) })
	return result, nil
}

func (m *fakeLeaveRepo) GetByDate(ctx context.Context, date string) (*domain.OfficeLeave, error) {
	if desc, ok := m.s.leaves[date]; ok {
		return &domain.OfficeLeave{Date: date, Description: desc}, nil
	}
	return nil, domain.ErrLeaveNotFound
}

func (m *fakeLeaveRepo) Create(ctx context.Context, leave *domain.OfficeLeave) error {
	if _, ok := m.s.leaves[leave.Date]; ok {
		return domain.ErrDuplicateLeaveDate
	}
	m.s.leaves[leave.Date] = leave.Description
	return nil
}

func (m *fakeLeaveRepo) Delete(ctx context.Context, date string) error {
	if _, ok := m.s.leaves[date]; !ok {
		return domain.ErrLeaveNotFound
	}
	delete(m.s.leaves, date)
	return nil
}

type fakeAttendanceRepo struct{ s *memStore }

func (m *fakeAttendanceRepo) UpsertBatch(ctx context.Context, date string, records []domain.AttendanceRecord) error {
	// ошибка до записи: батч не применяется частично
	if m.s.upsertErr != nil {
		return m.s.upsertErr
	}
	for _, rec := range records {
		rec.Date = date
		m.s.records[recKey{rec.EmployeeID, date}] = rec
	}
	return nil
}

func (m *fakeAttendanceRepo) Get(ctx context.Context, employeeID int64, date string) (*domain.AttendanceRecord, error) {
	if rec, ok := m.s.records[recKey{employeeID, date}]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (m *fakeAttendanceRepo) ListBetween(ctx context.Context, from, to string, employeeID *int64) ([]domain.AttendanceEntry, error) {
	var result []domain.AttendanceEntry
	for k, rec := range m.s.records {
		if k.date < from || k.date > to {
			continue
		}
		if employeeID != nil && k.employeeID != *employeeID {
			continue
		}
		emp, ok := m.s.employees[k.employeeID]
		if !ok {
			continue
		}
		result = append(result, domain.AttendanceEntry{
			EmployeeID:   rec.EmployeeID,
			EmployeeName: emp.Name,
			Date:         k.date,
			Status:       rec.Status,
			InTime:       rec.InTime,
			Notes:        rec.Notes,
		})
	}
	slices.SortFunc(result, func(a, b domain.AttendanceEntry) int {
		return cmp.Or(
			cmp.Compare(a.EmployeeName, b.EmployeeName),
			cmp.Compare(a.EmployeeID, b.EmployeeID),
			cmp.Compare(a.Date, b.Date),
		)
	})
	return result, nil
}

func (m *fakeAttendanceRepo) ListByDate(ctx context.Context, date string) ([]domain.AttendanceEntry, error) {
	return m.ListBetween(ctx, date, date, nil)
}
