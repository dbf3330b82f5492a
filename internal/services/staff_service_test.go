package services

import (
	"testing"

	"resto_admin_backend/internal/models"
	"resto_admin_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return st
}

func validStaffRequest() CreateStaffMemberRequest {
	return CreateStaffMemberRequest{
		Name:   "Ana Lopez",
		Email:  "ana@restaurant.com",
		Phone:  "3011112222",
		Role:   models.StaffRoleServer,
		Salary: 1000000,
	}
}

func TestCreateStaffMemberAssignsIDAndDefaults(t *testing.T) {
	svc := NewStaffService(newTestStore(t))

	member, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	assert.NotZero(t, member.ID)
	assert.Equal(t, models.StaffStatusActive, member.Status)
	assert.NotEmpty(t, member.StartDate)
}

func TestCreateStaffMemberUniqueIDs(t *testing.T) {
	svc := NewStaffService(newTestStore(t))

	first, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)
	second, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateStaffMemberRejectsInvalidEmail(t *testing.T) {
	svc := NewStaffService(newTestStore(t))

	req := validStaffRequest()
	req.Email = "not-an-email"
	_, err := svc.CreateStaffMember(req)

	assert.ErrorIs(t, err, ErrStaffValidation)
	assert.Empty(t, svc.GetStaffMembers())
}

func TestUpdateStaffMemberAppliesPartialFields(t *testing.T) {
	svc := NewStaffService(newTestStore(t))
	member, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	newName := "Ana Maria Lopez"
	newStatus := models.StaffStatusInactive
	updated, err := svc.UpdateStaffMember(member.ID, UpdateStaffMemberRequest{
		Name:   &newName,
		Status: &newStatus,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, newStatus, updated.Status)
	assert.Equal(t, member.Email, updated.Email)
}

func TestUpdateStaffMemberInvalidRoleLeavesRecordUnchanged(t *testing.T) {
	svc := NewStaffService(newTestStore(t))
	member, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	badRole := models.StaffRole("janitor")
	_, err = svc.UpdateStaffMember(member.ID, UpdateStaffMemberRequest{Role: &badRole})
	assert.ErrorIs(t, err, ErrStaffValidation)

	got, err := svc.GetStaffMemberByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StaffRoleServer, got.Role)
}

func TestUpdateStaffMemberNotFound(t *testing.T) {
	svc := NewStaffService(newTestStore(t))

	name := "Nobody"
	_, err := svc.UpdateStaffMember(12345, UpdateStaffMemberRequest{Name: &name})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestDeleteStaffMember(t *testing.T) {
	svc := NewStaffService(newTestStore(t))
	member, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStaffMember(member.ID))
	assert.Empty(t, svc.GetStaffMembers())

	assert.ErrorIs(t, svc.DeleteStaffMember(member.ID), ErrStaffNotFound)
}

func TestStaffSeedDefaults(t *testing.T) {
	svc := NewStaffService(newTestStore(t))

	svc.SeedDefaults()
	seeded := svc.GetStaffMembers()
	assert.Len(t, seeded, 2)

	// A second call must not duplicate the roster.
	svc.SeedDefaults()
	assert.Len(t, svc.GetStaffMembers(), len(seeded))
}

func TestStaffSeedDefaultsSkippedWhenRecordsExist(t *testing.T) {
	svc := NewStaffService(newTestStore(t))
	_, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	svc.SeedDefaults()
	assert.Len(t, svc.GetStaffMembers(), 1)
}

func TestStaffCollectionSurvivesReload(t *testing.T) {
	st := newTestStore(t)

	svc := NewStaffService(st)
	member, err := svc.CreateStaffMember(validStaffRequest())
	require.NoError(t, err)

	reloaded := NewStaffService(st)
	got, err := reloaded.GetStaffMemberByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.Name, got.Name)
}
