package shutdown

import "sync"

// Handler defines a function that handles an unrecoverable customization failure
type Handler func(reason string)

// DefaultHandler panics with a descriptive message
// This will be caught by the recover() in the application's graceful shutdown handler
func DefaultHandler(reason string) {
	panic("DASHBOARD CUSTOMIZATION FAILED: " + reason)
}

// Manager handles termination behavior and the cleanup hooks run before it
type Manager struct {
	handler Handler
	hooks   []func()
	mu      sync.RWMutex
}

// New creates a new termination manager with the default handler
func New() *Manager {
	return &Manager{
		handler: DefaultHandler,
	}
}

// SetHandler updates the termination handler
// This should be called during application startup, before the first load
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// OnTerminate registers a cleanup hook run, in reverse order, before the handler
func (m *Manager) OnTerminate(hook func()) {
	if hook == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// Terminate runs the cleanup hooks and invokes the termination handler
func (m *Manager) Terminate(reason string) {
	m.mu.RLock()
	handler := m.handler
	hooks := append([]func(){}, m.hooks...)
	m.mu.RUnlock()

	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i]()
	}

	handler(reason)
}
