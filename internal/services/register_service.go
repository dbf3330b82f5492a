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

// --- Custom Service Errors for the Register ---
var (
	ErrRegisterAlreadyOpen = errors.New("the register is already open")
	ErrRegisterNotOpen     = errors.New("the register is not open")
	ErrRegisterValidation  = errors.New("register data validation error")
)

// --- Register DTOs ---
type OpenRegisterRequest struct {
	InitialAmount float64 `json:"initial_amount"`
	Cashier       string  `json:"cashier" binding:"required"`
}

// --- RegisterService Interface ---
// At most one session exists process-wide. Opening while a session is
// already open fails without touching the existing session.
type RegisterService interface {
	Current() *models.RegisterSession
	Open(initialAmount float64, cashier string) (*models.RegisterSession, error)
	Close() (*models.RegisterSession, error)
}

// --- registerService Implementation ---
type registerService struct {
	mu      sync.Mutex
	st      *store.FileStore
	session *models.RegisterSession
}

// NewRegisterService loads the persisted session, if any, and returns a
// new RegisterService.
func NewRegisterService(st *store.FileStore) RegisterService {
	s := &registerService{st: st}
	st.Load(store.CollectionRegister, &s.session)
	return s
}

func (s *registerService) persist() {
	if err := s.st.Save(store.CollectionRegister, s.session); err != nil {
		utils.LogError(err, "Failed to persist register session")
	}
}

// snapshot returns a copy safe to hand out. Caller must hold the lock.
func (s *registerService) snapshot() *models.RegisterSession {
	if s.session == nil {
		return nil
	}
	out := *s.session
	out.Sales = make([]models.RegisterSale, len(s.session.Sales))
	copy(out.Sales, s.session.Sales)
	return &out
}

func (s *registerService) Current() *models.RegisterSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *registerService) Open(initialAmount float64, cashier string) (*models.RegisterSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && s.session.IsOpen {
		return nil, ErrRegisterAlreadyOpen
	}
	if initialAmount < 0 {
		return nil, fmt.Errorf("%w: initial amount cannot be negative", ErrRegisterValidation)
	}
	if utils.IsEmpty(cashier) {
		return nil, fmt.Errorf("%w: cashier name cannot be empty", ErrRegisterValidation)
	}

	s.session = &models.RegisterSession{
		IsOpen:        true,
		InitialAmount: initialAmount,
		Cashier:       cashier,
		OpenedAt:      time.Now(),
		Sales:         []models.RegisterSale{},
	}
	s.persist()
	utils.LogInfo("Register opened", map[string]interface{}{"cashier": cashier, "initial_amount": initialAmount})
	return s.snapshot(), nil
}

func (s *registerService) Close() (*models.RegisterSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || !s.session.IsOpen {
		return nil, ErrRegisterNotOpen
	}

	now := time.Now()
	s.session.IsOpen = false
	s.session.ClosedAt = &now
	s.persist()
	utils.LogInfo("Register closed", map[string]interface{}{"cashier": s.session.Cashier})
	return s.snapshot(), nil
}
