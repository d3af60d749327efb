package services

import (
	"time"

	"github.com/lacomanda/comanda/kds"
	"github.com/lacomanda/comanda/lifecycle"
	"github.com/lacomanda/comanda/store"
)

// ClockMonitor pushes the time-derived views once per second: every open
// order's elapsed age and the dashboard metrics. Elapsed time is a pure
// projection over (now, createdAt), so each tick recomputes from scratch
// and can never drift.
type ClockMonitor struct {
	Store    *store.Store
	StopChan chan struct{}
	Interval time.Duration
}

func NewClockMonitor(st *store.Store) *ClockMonitor {
	return &ClockMonitor{
		Store:    st,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ClockMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.tick()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ClockMonitor) Stop() {
	close(cm.StopChan)
}

func (cm *ClockMonitor) tick() {
	now := time.Now()
	orders := lifecycle.Project(cm.Store.Orders(), now)

	for _, o := range orders {
		if o.IsOpen() {
			kds.BroadcastOrderUpdate(o)
		}
	}
	kds.BroadcastDashboardUpdate(lifecycle.Summarize(orders, now))
}
