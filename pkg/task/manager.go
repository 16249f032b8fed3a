package task

import (
	"context"
	"sync"
)

// BackgroundTask represents a long-running background process (worker, janitor, cron).
type BackgroundTask interface {
	Name() string
	Start(ctx context.Context) error
	Stop() error
}

// Manager owns the lifecycle of a set of background tasks. It is assembled and
// injected at startup rather than kept as package state, so tests can run
// isolated managers.
type Manager struct {
	tasks  []BackgroundTask
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewManager creates an empty task manager.
func NewManager() *Manager {
	return &Manager{tasks: make([]BackgroundTask, 0)}
}

// Register adds a background task; must be called before StartAll.
func (m *Manager) Register(task BackgroundTask) {
	if task == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
}

// StartAll starts all registered tasks once. A second call is a no-op.
func (m *Manager) StartAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	for _, t := range m.tasks {
		if err := t.Start(runCtx); err != nil {
			return err
		}
	}
	return nil
}

// StopAll cancels the shared context and stops all tasks in reverse order.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	for i := len(m.tasks) - 1; i >= 0; i-- {
		_ = m.tasks[i].Stop()
	}
}
