package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sainikartavya76-gif/aidconnect-now/internal/infrastructure/store"
)

// Status is a point-in-time sample of the record store.
type Status struct {
	Store       bool      `json:"store"`
	Volunteers  int       `json:"volunteers"`
	Emergencies int       `json:"emergencies"`
	Tasks       int       `json:"tasks"`
	LastCheck   time.Time `json:"last_check"`
}

// Monitor periodically samples collection sizes and store health for the
// health endpoint.
type Monitor struct {
	store *store.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(st *store.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    st,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Store
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{LastCheck: time.Now()}

	counts, err := m.store.Counts()
	if err != nil {
		m.logger.Warn("store check failed", zap.Error(err))
	} else {
		status.Store = true
		status.Volunteers = counts[store.BucketVolunteers]
		status.Emergencies = counts[store.BucketEmergencies]
		status.Tasks = counts[store.BucketTasks]
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}
