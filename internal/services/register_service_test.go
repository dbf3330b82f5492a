package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRegister(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	session, err := svc.Open(100, "Maria")
	require.NoError(t, err)

	assert.True(t, session.IsOpen)
	assert.Equal(t, 100.0, session.InitialAmount)
	assert.Equal(t, "Maria", session.Cashier)
	assert.False(t, session.OpenedAt.IsZero())
	assert.Nil(t, session.ClosedAt)
}

func TestOpenRegisterTwicePreservesFirstSession(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	first, err := svc.Open(100, "Maria")
	require.NoError(t, err)

	_, err = svc.Open(500, "Carlos")
	assert.ErrorIs(t, err, ErrRegisterAlreadyOpen)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, first.Cashier, current.Cashier)
	assert.Equal(t, first.InitialAmount, current.InitialAmount)
	assert.Equal(t, first.OpenedAt, current.OpenedAt)
}

func TestOpenRegisterValidation(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	_, err := svc.Open(-5, "Maria")
	assert.ErrorIs(t, err, ErrRegisterValidation)

	_, err = svc.Open(100, "   ")
	assert.ErrorIs(t, err, ErrRegisterValidation)

	assert.Nil(t, svc.Current())
}

func TestCloseRegister(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	_, err := svc.Open(100, "Maria")
	require.NoError(t, err)

	closed, err := svc.Close()
	require.NoError(t, err)
	assert.False(t, closed.IsOpen)
	require.NotNil(t, closed.ClosedAt)
}

func TestCloseRegisterWhenNotOpen(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	_, err := svc.Close()
	assert.ErrorIs(t, err, ErrRegisterNotOpen)
}

func TestReopenAfterClose(t *testing.T) {
	svc := NewRegisterService(newTestStore(t))

	_, err := svc.Open(100, "Maria")
	require.NoError(t, err)
	_, err = svc.Close()
	require.NoError(t, err)

	session, err := svc.Open(200, "Carlos")
	require.NoError(t, err)
	assert.True(t, session.IsOpen)
	assert.Equal(t, "Carlos", session.Cashier)
	assert.Nil(t, session.ClosedAt)
}

func TestRegisterSessionSurvivesReload(t *testing.T) {
	st := newTestStore(t)

	svc := NewRegisterService(st)
	_, err := svc.Open(100, "Maria")
	require.NoError(t, err)

	reloaded := NewRegisterService(st)
	current := reloaded.Current()
	require.NotNil(t, current)
	assert.True(t, current.IsOpen)
	assert.Equal(t, "Maria", current.Cashier)
}
