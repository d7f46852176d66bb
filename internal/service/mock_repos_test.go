package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"izmena/internal/model"
	"izmena/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByIDForUpdate(_ context.Context, id string) (*model.User, error) {
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock DailyRecordRepository ──

type mockDailyRecordRepo struct {
	records map[string]*model.DailyRecord // "userID:date"
}

func newMockDailyRecordRepo() *mockDailyRecordRepo {
	return &mockDailyRecordRepo{records: make(map[string]*model.DailyRecord)}
}

func recordKey(userID string, date time.Time) string {
	return userID + ":" + date.Format("2006-01-02")
}

func (m *mockDailyRecordRepo) GetByDate(_ context.Context, userID string, date time.Time) (*model.DailyRecord, error) {
	if r, ok := m.records[recordKey(userID, date)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDailyRecordRepo) ListByDateRange(_ context.Context, userID string, start, end time.Time) ([]model.DailyRecord, error) {
	var result []model.DailyRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if r, ok := m.records[recordKey(userID, day)]; ok {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockDailyRecordRepo) Create(_ context.Context, record *model.DailyRecord) error {
	if record.DailyRecordID == "" {
		record.DailyRecordID = "rec-" + recordKey(record.UserID, record.Date)
	}
	m.records[recordKey(record.UserID, record.Date)] = record
	return nil
}

func (m *mockDailyRecordRepo) Update(_ context.Context, record *model.DailyRecord) error {
	m.records[recordKey(record.UserID, record.Date)] = record
	return nil
}

func (m *mockDailyRecordRepo) SumOvertimeInRange(_ context.Context, userID string, start, end time.Time) (int, error) {
	total := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if r, ok := m.records[recordKey(userID, day)]; ok {
			total += r.OvertimeHours
		}
	}
	return total, nil
}

func (m *mockDailyRecordRepo) SumBankedAll(_ context.Context, userID string) (int, error) {
	total := 0
	for _, r := range m.records {
		if r.UserID == userID {
			total += r.BankedHours
		}
	}
	return total, nil
}

// ── Mock ShiftOverrideRepository ──

type mockShiftOverrideRepo struct {
	overrides map[string]*model.ShiftOverride // "userID:date"
}

func newMockShiftOverrideRepo() *mockShiftOverrideRepo {
	return &mockShiftOverrideRepo{overrides: make(map[string]*model.ShiftOverride)}
}

func (m *mockShiftOverrideRepo) GetByDate(_ context.Context, userID string, date time.Time) (*model.ShiftOverride, error) {
	if o, ok := m.overrides[recordKey(userID, date)]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftOverrideRepo) ListByDateRange(_ context.Context, userID string, start, end time.Time) ([]model.ShiftOverride, error) {
	var result []model.ShiftOverride
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if o, ok := m.overrides[recordKey(userID, day)]; ok {
			result = append(result, *o)
		}
	}
	return result, nil
}

func (m *mockShiftOverrideRepo) Upsert(_ context.Context, override *model.ShiftOverride) error {
	key := recordKey(override.UserID, override.Date)
	if existing, ok := m.overrides[key]; ok {
		existing.NewShift = override.NewShift
		existing.Reason = override.Reason
		return nil
	}
	if override.ShiftOverrideID == "" {
		override.ShiftOverrideID = "ov-" + key
	}
	m.overrides[key] = override
	return nil
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves map[string]*model.Leave
	seq    int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*model.Leave)}
}

func (m *mockLeaveRepo) Create(_ context.Context, leave *model.Leave) error {
	if leave.LeaveID == "" {
		m.seq++
		leave.LeaveID = fmt.Sprintf("leave-%d", m.seq)
	}
	m.leaves[leave.LeaveID] = leave
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (*model.Leave, error) {
	if l, ok := m.leaves[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLeaveRepo) ListByUser(_ context.Context, userID string) ([]model.Leave, error) {
	var result []model.Leave
	for _, l := range m.leaves {
		if l.UserID == userID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) ListByUserAndYear(_ context.Context, userID string, year int) ([]model.Leave, error) {
	var result []model.Leave
	for _, l := range m.leaves {
		if l.UserID == userID && l.StartDate.Year() == year {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) Update(_ context.Context, leave *model.Leave) error {
	m.leaves[leave.LeaveID] = leave
	return nil
}

// ── Mock ExtraHoursRepository ──

type mockExtraHoursRepo struct {
	entries map[string]*model.ExtraHours
	seq     int
}

func newMockExtraHoursRepo() *mockExtraHoursRepo {
	return &mockExtraHoursRepo{entries: make(map[string]*model.ExtraHours)}
}

func (m *mockExtraHoursRepo) Create(_ context.Context, entry *model.ExtraHours) error {
	if entry.ExtraHoursID == "" {
		m.seq++
		entry.ExtraHoursID = fmt.Sprintf("eh-%d", m.seq)
	}
	m.entries[entry.ExtraHoursID] = entry
	return nil
}

func (m *mockExtraHoursRepo) GetByID(_ context.Context, id string) (*model.ExtraHours, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExtraHoursRepo) ListByUser(_ context.Context, userID string) ([]model.ExtraHours, error) {
	var result []model.ExtraHours
	for _, e := range m.entries {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockExtraHoursRepo) Update(_ context.Context, entry *model.ExtraHours) error {
	m.entries[entry.ExtraHoursID] = entry
	return nil
}

func (m *mockExtraHoursRepo) SumApprovedByType(_ context.Context, userID, entryType string) (int, error) {
	total := 0
	for _, e := range m.entries {
		if e.UserID == userID && e.Type == entryType && e.Status == model.StatusApproved {
			total += e.Hours
		}
	}
	return total, nil
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	entries []model.AuditLog
}

func newMockAuditLogRepo() *mockAuditLogRepo {
	return &mockAuditLogRepo{}
}

func (m *mockAuditLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditLogRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.AuditLog, error) {
	// Newest first, like the created_at DESC ordering of the real repo.
	var result []model.AuditLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].PerformedBy == userID {
			result = append(result, m.entries[i])
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// failingAuditLogRepo errors on every call, for best-effort audit tests.
type failingAuditLogRepo struct{}

func (failingAuditLogRepo) Create(_ context.Context, _ *model.AuditLog) error {
	return errors.New("audit store unavailable")
}

func (failingAuditLogRepo) ListByUser(_ context.Context, _ string, _ int) ([]model.AuditLog, error) {
	return nil, errors.New("audit store unavailable")
}

// newMockRepository assembles the aggregate over fresh mocks. The db
// field stays nil, so services calling BeginTx cannot use it.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:          newMockUserRepo(),
		DailyRecord:   newMockDailyRecordRepo(),
		ShiftOverride: newMockShiftOverrideRepo(),
		Leave:         newMockLeaveRepo(),
		ExtraHours:    newMockExtraHoursRepo(),
		AuditLog:      newMockAuditLogRepo(),
	}
}
