package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"scan-kart/internal/model"
)

func (s *Store) writeLoop() {
	defer close(s.stopped)

	for {
		select {
		case <-s.notify:
			s.persist()
		case <-s.done:
			s.persist()
			return
		}
	}
}

// persist writes the latest snapshot if it has not been written yet. Write
// failures are logged and remembered for Flush; the in-memory cart is kept.
func (s *Store) persist() {
	s.mu.Lock()
	if s.version == s.saved {
		s.mu.Unlock()
		return
	}
	version := s.version
	snapshot := model.CloneItems(s.items)
	s.mu.Unlock()

	err := s.write(snapshot)
	if err != nil {
		s.logger.Warn().Err(err).Uint64("version", version).Msg("failed to persist cart")
	} else {
		s.logger.Debug().Int("items", len(snapshot)).Uint64("version", version).Msg("cart persisted")
	}

	s.mu.Lock()
	s.saved = version
	s.lastErr = err
	close(s.flushed)
	s.flushed = make(chan struct{})
	s.mu.Unlock()
}

func (s *Store) write(items []model.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	return s.kv.Set(ctx, StorageKey, string(data))
}

// Flush blocks until every mutation made before the call has been written,
// and returns the error of the most recent write.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.version
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.saved >= target {
			err := s.lastErr
			s.mu.Unlock()
			return err
		}
		flushed := s.flushed
		s.mu.Unlock()

		select {
		case <-flushed:
		case <-s.stopped:
			s.mu.Lock()
			err := s.lastErr
			s.mu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close stops accepting mutations, writes any pending snapshot and stops the
// writer.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)

	select {
	case <-s.stopped:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.lastErr
	case <-ctx.Done():
		return ctx.Err()
	}
}
