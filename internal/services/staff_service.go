package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"resto_admin_backend/internal/models"
	"resto_admin_backend/internal/store"
	"resto_admin_backend/pkg/utils"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffValidation = errors.New("staff data validation error")
)

// --- StaffMember DTOs ---
type CreateStaffMemberRequest struct {
	Name   string           `json:"name" binding:"required"`
	Email  string           `json:"email" binding:"required"`
	Phone  string           `json:"phone" binding:"required"`
	Role   models.StaffRole `json:"role" binding:"required"`
	Salary int64            `json:"salary"`
}

type UpdateStaffMemberRequest struct {
	Name   *string             `json:"name"`
	Email  *string             `json:"email"`
	Phone  *string             `json:"phone"`
	Role   *models.StaffRole   `json:"role"`
	Salary *int64              `json:"salary"`
	Status *models.StaffStatus `json:"status"`
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaffMember(req CreateStaffMemberRequest) (*models.StaffMember, error)
	GetStaffMemberByID(staffID int64) (*models.StaffMember, error)
	GetStaffMembers() []models.StaffMember
	UpdateStaffMember(staffID int64, req UpdateStaffMemberRequest) (*models.StaffMember, error)
	DeleteStaffMember(staffID int64) error
	SeedDefaults()
}

// --- staffService Implementation ---
type staffService struct {
	mu     sync.Mutex
	st     *store.FileStore
	staff  []models.StaffMember
	lastID int64
}

// NewStaffService loads the staff collection and returns a new StaffService.
func NewStaffService(st *store.FileStore) StaffService {
	s := &staffService{st: st}
	st.Load(store.CollectionStaff, &s.staff)
	for _, m := range s.staff {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
	return s
}

// persist writes the collection through to the store. Write failures are
// logged, not propagated: the in-memory mutation already succeeded and a
// storage hiccup must not fail the request.
func (s *staffService) persist() {
	if err := s.st.Save(store.CollectionStaff, s.staff); err != nil {
		utils.LogError(err, "Failed to persist staff collection")
	}
}

func validateStaffMember(m *models.StaffMember) error {
	if utils.IsEmpty(m.Name) {
		return fmt.Errorf("%w: name cannot be empty", ErrStaffValidation)
	}
	if !utils.IsValidEmail(m.Email) {
		return fmt.Errorf("%w: invalid email address", ErrStaffValidation)
	}
	if utils.IsEmpty(m.Phone) {
		return fmt.Errorf("%w: phone cannot be empty", ErrStaffValidation)
	}
	if !m.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrStaffValidation, m.Role)
	}
	if m.Salary < 0 {
		return fmt.Errorf("%w: salary cannot be negative", ErrStaffValidation)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrStaffValidation, m.Status)
	}
	return nil
}

func (s *staffService) CreateStaffMember(req CreateStaffMemberRequest) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := models.StaffMember{
		ID:        nextTimestampID(s.lastID),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Salary:    req.Salary,
		Status:    models.StaffStatusActive,
		StartDate: time.Now().Format("2006-01-02"),
	}
	if err := validateStaffMember(&member); err != nil {
		return nil, err
	}

	s.lastID = member.ID
	s.staff = append(s.staff, member)
	s.persist()
	return &member, nil
}

func (s *staffService) GetStaffMemberByID(staffID int64) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == staffID {
			member := s.staff[i]
			return &member, nil
		}
	}
	return nil, ErrStaffNotFound
}

func (s *staffService) GetStaffMembers() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.StaffMember, len(s.staff))
	copy(out, s.staff)
	return out
}

func (s *staffService) UpdateStaffMember(staffID int64, req UpdateStaffMemberRequest) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.staff {
		if s.staff[i].ID == staffID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrStaffNotFound
	}

	session := BeginEdit(s.staff[idx])
	draft := session.Draft()
	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Email != nil {
		draft.Email = *req.Email
	}
	if req.Phone != nil {
		draft.Phone = *req.Phone
	}
	if req.Role != nil {
		draft.Role = *req.Role
	}
	if req.Salary != nil {
		draft.Salary = *req.Salary
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}
	if err := validateStaffMember(draft); err != nil {
		session.Discard()
		return nil, err
	}

	s.staff[idx] = session.Commit()
	s.persist()
	member := s.staff[idx]
	return &member, nil
}

func (s *staffService) DeleteStaffMember(staffID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].ID == staffID {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrStaffNotFound
}

// SeedDefaults populates the collection with the first-run staff roster.
// It is a no-op when any staff already exist.
func (s *staffService) SeedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.staff) > 0 {
		return
	}
	today := time.Now().Format("2006-01-02")
	defaults := []models.StaffMember{
		{
			Name:      "Maria Garcia",
			Email:     "maria@restaurant.com",
			Phone:     "3001234567",
			Role:      models.StaffRoleServer,
			Salary:    1200000,
			Status:    models.StaffStatusActive,
			StartDate: today,
		},
		{
			Name:      "Carlos Rodriguez",
			Email:     "carlos@restaurant.com",
			Phone:     "3007654321",
			Role:      models.StaffRoleCook,
			Salary:    1500000,
			Status:    models.StaffStatusActive,
			StartDate: today,
		},
	}
	for _, member := range defaults {
		member.ID = nextTimestampID(s.lastID)
		s.lastID = member.ID
		s.staff = append(s.staff, member)
	}
	s.persist()
	utils.LogInfo("Seeded default staff roster", map[string]interface{}{"count": len(defaults)})
}
