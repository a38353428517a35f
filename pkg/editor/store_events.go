package editor

import "context"

// notifyUpdateLocked signals that the store has been updated.
// CALLER MUST HOLD s.mu.Lock()
func (s *Store) notifyUpdateLocked() {
	// Close the current channel to broadcast to all waiters
	select {
	case <-s.updateCh:
		// Already closed, do nothing (shouldn't happen if we strictly renew)
	default:
		close(s.updateCh)
		// Immediately create a fresh channel for future waiters
		s.updateCh = make(chan struct{})
	}
}

// WaitForImage blocks until an image has been fit or the context is cancelled.
func (s *Store) WaitForImage(ctx context.Context) (State, error) {
	for {
		s.mu.RLock()
		if s.state.Ready() {
			st := s.state.clone()
			s.mu.RUnlock()
			return st, nil
		}
		// Grab the current channel while holding the lock
		ch := s.updateCh
		s.mu.RUnlock()

		select {
		case <-ch:
			continue
		case <-ctx.Done():
			return State{}, ctx.Err()
		}
	}
}
