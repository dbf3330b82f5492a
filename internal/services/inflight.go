package services

import (
	"errors"
	"sync/atomic"
)

// ErrRefreshInFlight is returned when a section refresh is triggered while
// the previous one is still waiting on the remote gateway.
var ErrRefreshInFlight = errors.New("a refresh for this section is already in flight")

// inflightGuard serializes remote-backed refreshes for one section: a
// second trigger while one is pending is rejected instead of racing it.
type inflightGuard struct {
	busy atomic.Bool
}

func (g *inflightGuard) acquire() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	return nil
}

func (g *inflightGuard) release() {
	g.busy.Store(false)
}
