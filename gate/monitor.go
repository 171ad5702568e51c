package gate

import (
	"context"
	"time"
)

// Monitor periodically re-checks every verified user and revokes access from
// those who left a channel.
type Monitor struct {
	gate     *Gate
	interval time.Duration
}

func NewMonitor(gate *Gate, interval time.Duration) *Monitor {
	return &Monitor{
		gate:     gate,
		interval: interval,
	}
}

func (m *Monitor) Interval() time.Duration {
	return m.interval
}

// Run sweeps until ctx is cancelled. The interval is the pause between the end
// of one sweep and the start of the next.
func (m *Monitor) Run(ctx context.Context) {
	log.Info().
		Dur("interval", m.interval).
		Msg("Starting membership monitor")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Membership monitor stopped")
			return
		case <-timer.C:
		}

		if revoked := m.Sweep(ctx); revoked > 0 {
			log.Info().
				Int("revoked", revoked).
				Msg("Revoked access")
		}

		timer.Reset(m.interval)
	}
}

// Sweep checks every currently verified user once and returns how many lost
// access. A cancelled ctx ends the sweep early.
func (m *Monitor) Sweep(ctx context.Context) int {
	revoked := 0
	for _, userID := range m.gate.verified.Snapshot() {
		if ctx.Err() != nil {
			break
		}
		if m.gate.revokeIfDrifted(userID) {
			revoked++
		}
	}
	return revoked
}
