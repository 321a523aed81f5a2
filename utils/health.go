package utils

import (
	"context"
	"sync"
	"time"
)

// HealthStatus represents the current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot of the database.
type HealthMonitor struct {
	ping    func(ctx context.Context) error
	timeout time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(ping func(ctx context.Context) error, timeout time.Duration) *HealthMonitor {
	return &HealthMonitor{ping: ping, timeout: timeout}
}

// Check pings the database now and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := HealthStatus{
		Mongo:     m.ping(ctx) == nil,
		CheckedAt: time.Now(),
	}
	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Status returns the latest stored snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Start checks on every tick until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
