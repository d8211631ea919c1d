package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/factdrill/internal/screen"
	"github.com/abhisek/factdrill/internal/session"
)

// snapshotBridge carries controller snapshots into the Bubble Tea loop.
// Only the latest snapshot is kept, so Publish never blocks the
// controller while it holds its lock.
type snapshotBridge struct {
	ch chan session.Snapshot
}

func newSnapshotBridge() *snapshotBridge {
	return &snapshotBridge{ch: make(chan session.Snapshot, 1)}
}

// Publish is the controller's render callback.
func (b *snapshotBridge) Publish(s session.Snapshot) {
	for {
		select {
		case b.ch <- s:
			return
		default:
		}
		// Drop the stale snapshot and retry.
		select {
		case <-b.ch:
		default:
		}
	}
}

// Wait returns a command that delivers the next snapshot as a
// screen.SnapshotMsg. It yields nil once ctx is done.
func (b *snapshotBridge) Wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-b.ch:
			return screen.SnapshotMsg{Snapshot: s}
		case <-ctx.Done():
			return nil
		}
	}
}
