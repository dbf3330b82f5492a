package services

import (
	"errors"
	"fmt"
	"sync"

	"resto_admin_backend/internal/models"
	"resto_admin_backend/internal/store"
	"resto_admin_backend/pkg/utils"
)

// --- Custom Service Errors for Tables ---
var (
	ErrTableNotFound        = errors.New("table not found")
	ErrTableValidation      = errors.New("table data validation error")
	ErrDuplicateTableNumber = errors.New("a table with this number already exists")
)

// --- Table DTOs ---
type CreateTableRequest struct {
	Number   int                  `json:"number" binding:"required"`
	Capacity int                  `json:"capacity" binding:"required"`
	Location models.TableLocation `json:"location" binding:"required"`
}

type UpdateTableRequest struct {
	Number   *int                  `json:"number"`
	Capacity *int                  `json:"capacity"`
	Location *models.TableLocation `json:"location"`
}

// --- TableService Interface ---
type TableService interface {
	CreateTable(req CreateTableRequest) (*models.Table, error)
	GetTableByID(tableID int64) (*models.Table, error)
	GetTables() []models.Table
	UpdateTable(tableID int64, req UpdateTableRequest) (*models.Table, error)
	DeleteTable(tableID int64) error
	// CycleTableStatus advances a table along the fixed cycle
	// free -> occupied -> reserved -> free.
	CycleTableStatus(tableID int64) (*models.Table, error)
	SeedDefaults()
}

// --- tableService Implementation ---
type tableService struct {
	mu     sync.Mutex
	st     *store.FileStore
	tables []models.Table
	lastID int64
}

// NewTableService loads the tables collection and returns a new TableService.
func NewTableService(st *store.FileStore) TableService {
	s := &tableService{st: st}
	st.Load(store.CollectionTables, &s.tables)
	for _, t := range s.tables {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

func (s *tableService) persist() {
	if err := s.st.Save(store.CollectionTables, s.tables); err != nil {
		utils.LogError(err, "Failed to persist tables collection")
	}
}

func validateTable(t *models.Table) error {
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be a positive integer", ErrTableValidation)
	}
	if !t.Location.Valid() {
		return fmt.Errorf("%w: unknown location %q", ErrTableValidation, t.Location)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrTableValidation, t.Status)
	}
	return nil
}

// numberTaken reports whether another table (excluding excludeID) already
// uses the given number. Caller must hold the lock.
func (s *tableService) numberTaken(number int, excludeID int64) bool {
	for i := range s.tables {
		if s.tables[i].Number == number && s.tables[i].ID != excludeID {
			return true
		}
	}
	return false
}

func (s *tableService) CreateTable(req CreateTableRequest) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := models.Table{
		ID:       nextTimestampID(s.lastID),
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		Status:   models.TableStatusFree,
	}
	if err := validateTable(&table); err != nil {
		return nil, err
	}
	if s.numberTaken(table.Number, table.ID) {
		return nil, fmt.Errorf("%w: number %d", ErrDuplicateTableNumber, table.Number)
	}

	s.lastID = table.ID
	s.tables = append(s.tables, table)
	s.persist()
	return &table, nil
}

func (s *tableService) GetTableByID(tableID int64) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID == tableID {
			table := s.tables[i]
			return &table, nil
		}
	}
	return nil, ErrTableNotFound
}

func (s *tableService) GetTables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *tableService) UpdateTable(tableID int64, req UpdateTableRequest) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.tables {
		if s.tables[i].ID == tableID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrTableNotFound
	}

	session := BeginEdit(s.tables[idx])
	draft := session.Draft()
	if req.Number != nil {
		draft.Number = *req.Number
	}
	if req.Capacity != nil {
		draft.Capacity = *req.Capacity
	}
	if req.Location != nil {
		draft.Location = *req.Location
	}
	if err := validateTable(draft); err != nil {
		session.Discard()
		return nil, err
	}
	if s.numberTaken(draft.Number, tableID) {
		session.Discard()
		return nil, fmt.Errorf("%w: number %d", ErrDuplicateTableNumber, draft.Number)
	}

	s.tables[idx] = session.Commit()
	s.persist()
	table := s.tables[idx]
	return &table, nil
}

func (s *tableService) DeleteTable(tableID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID == tableID {
			s.tables = append(s.tables[:i], s.tables[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrTableNotFound
}

func (s *tableService) CycleTableStatus(tableID int64) (*models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tables {
		if s.tables[i].ID == tableID {
			s.tables[i].Status = s.tables[i].Status.Next()
			s.persist()
			table := s.tables[i]
			return &table, nil
		}
	}
	return nil, ErrTableNotFound
}

// SeedDefaults populates the collection with the first-run floor plan.
// It is a no-op when any tables already exist.
func (s *tableService) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tables) > 0 {
		return
	}
	defaults := []models.Table{
		{Number: 1, Capacity: 4, Location: models.TableLocationIndoor, Status: models.TableStatusFree},
		{Number: 2, Capacity: 2, Location: models.TableLocationIndoor, Status: models.TableStatusFree},
		{Number: 3, Capacity: 6, Location: models.TableLocationPatio, Status: models.TableStatusFree},
		{Number: 4, Capacity: 4, Location: models.TableLocationPatio, Status: models.TableStatusFree},
		{Number: 5, Capacity: 8, Location: models.TableLocationPrivate, Status: models.TableStatusFree},
	}
	for _, table := range defaults {
		table.ID = nextTimestampID(s.lastID)
		s.lastID = table.ID
		s.tables = append(s.tables, table)
	}
	s.persist()
	utils.LogInfo("Seeded default floor plan", map[string]interface{}{"count": len(defaults)})
}
