// ABOUTME: Journal store owning the in-memory entry list and journal title
// ABOUTME: Single writer; every mutation is mirrored write-behind to a kv.Store

package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harper/moodlog/internal/kv"
	"github.com/harper/moodlog/internal/models"
	"github.com/harper/moodlog/internal/timeutil"
)

// Storage keys, shared with the mobile app so its data can be imported as-is.
const (
	KeyEntries = "journal_data"
	KeyTitle   = "journal_title"
)

// DefaultTitle is used until a title has been saved.
const DefaultTitle = "Günlüğüm"

// MinPrefixLength is the shortest id prefix Resolve accepts.
const MinPrefixLength = 6

const defaultQueueSize = 64

var (
	ErrNotInitialized     = errors.New("journal not initialized")
	ErrAlreadyInitialized = errors.New("journal already initialized")
	ErrClosed             = errors.New("journal closed")
	ErrInvalidMood        = errors.New("invalid mood")
	ErrNotFound           = errors.New("entry not found")
	ErrAmbiguous          = errors.New("ambiguous entry prefix")
)

// Store owns the journal state. Construct one per process with New, call
// Initialize once before any mutation, and Close on shutdown.
type Store struct {
	mu          sync.RWMutex
	entries     []models.Entry
	title       string
	initialized bool
	closed      bool

	kv        kv.Store
	w         *writer
	logger    *zap.Logger
	now       func() time.Time
	formatDay func(time.Time) string
	newID     func() string
	queueSize int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage warnings and write failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for entry dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDateFormatter sets how creation times are rendered into Entry.Date.
func WithDateFormatter(f func(time.Time) string) Option {
	return func(s *Store) { s.formatDay = f }
}

// WithIDGenerator overrides uuid-based entry ids.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithQueueSize sets the write-behind queue capacity.
func WithQueueSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// New creates a journal backed by store and starts its writer goroutine.
// The caller keeps ownership of store and closes it after Close returns.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		title:     DefaultTitle,
		kv:        store,
		logger:    zap.NewNop(),
		now:       time.Now,
		formatDay: timeutil.DateFormatter(timeutil.DefaultLocale),
		newID:     func() string { return uuid.New().String() },
		queueSize: defaultQueueSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.w = newWriter(store, s.logger, s.queueSize)
	return s
}

// Initialize seeds state from durable storage. Missing keys leave the
// defaults in place; unreadable or unparseable blobs are logged and treated
// as missing. It must be called exactly once.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.initialized {
		return ErrAlreadyInitialized
	}

	var (
		g                     errgroup.Group
		entriesBlob, titleVal string
		hasEntries, hasTitle  bool
	)
	g.Go(func() error {
		v, ok, err := s.kv.Get(ctx, KeyEntries)
		if err != nil {
			return fmt.Errorf("read %s: %w", KeyEntries, err)
		}
		entriesBlob, hasEntries = v, ok
		return nil
	})
	g.Go(func() error {
		v, ok, err := s.kv.Get(ctx, KeyTitle)
		if err != nil {
			return fmt.Errorf("read %s: %w", KeyTitle, err)
		}
		titleVal, hasTitle = v, ok
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("journal storage unreadable, starting from defaults", zap.Error(err))
	}

	if hasEntries {
		entries, skipped, err := decodeEntries(entriesBlob)
		switch {
		case err != nil:
			s.logger.Warn("stored entries are corrupted, starting with an empty journal",
				zap.String("key", KeyEntries), zap.Error(err))
		default:
			if skipped > 0 {
				s.logger.Warn("some stored entries were invalid and skipped",
					zap.String("key", KeyEntries), zap.Int("skipped", skipped))
			}
			s.entries = entries
		}
	}
	if hasTitle {
		s.title = titleVal
	}

	s.initialized = true
	s.logger.Debug("journal initialized",
		zap.Int("entries", len(s.entries)),
		zap.String("title", s.title))
	return nil
}

// Initialized reports whether Initialize has completed.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// checkWritable must be called with s.mu held.
func (s *Store) checkWritable() error {
	if s.closed {
		return ErrClosed
	}
	if !s.initialized {
		return ErrNotInitialized
	}
	return nil
}

// persistEntries enqueues the full list. Must be called with s.mu held so
// queue order matches mutation order.
func (s *Store) persistEntries() {
	blob, err := encodeEntries(s.entries)
	if err != nil {
		s.logger.Error("cannot encode entries, skipping write", zap.Error(err))
		return
	}
	s.w.enqueue(writeOp{kind: kv.OpSet, key: KeyEntries, value: blob})
}

// AddEntry prepends a new entry and returns it. Text is stored as given.
func (s *Store) AddEntry(mood models.Mood, text string, isFavorite bool) (models.Entry, error) {
	if !mood.Valid() {
		return models.Entry{}, fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWritable(); err != nil {
		return models.Entry{}, err
	}

	e := models.Entry{
		ID:         s.newID(),
		Mood:       mood,
		Text:       text,
		IsFavorite: isFavorite,
		Date:       s.formatDay(s.now()),
	}
	entries := make([]models.Entry, 0, len(s.entries)+1)
	entries = append(entries, e)
	s.entries = append(entries, s.entries...)

	s.persistEntries()
	return e, nil
}

// EditEntry replaces mood, text and favorite flag of the entry with id,
// keeping its id, date and position. It reports whether the entry existed;
// an unknown id changes nothing and writes nothing.
func (s *Store) EditEntry(id string, mood models.Mood, text string, isFavorite bool) (bool, error) {
	if !mood.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidMood, mood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWritable(); err != nil {
		return false, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.entries[idx].Mood = mood
	s.entries[idx].Text = text
	s.entries[idx].IsFavorite = isFavorite

	s.persistEntries()
	return true, nil
}

// DeleteEntry removes the entry with id and reports whether it existed.
// The list is written back either way.
func (s *Store) DeleteEntry(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWritable(); err != nil {
		return false, err
	}

	kept := make([]models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(kept) != len(s.entries)
	s.entries = kept

	s.persistEntries()
	return removed, nil
}

// DeleteAllEntries empties the journal and removes the entries key from
// durable storage. The title is kept.
func (s *Store) DeleteAllEntries() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWritable(); err != nil {
		return err
	}

	s.entries = nil
	s.w.enqueue(writeOp{kind: kv.OpRemove, key: KeyEntries})
	return nil
}

// UpdateTitle sets the journal title and persists it as a raw string.
func (s *Store) UpdateTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWritable(); err != nil {
		return err
	}

	s.title = title
	s.w.enqueue(writeOp{kind: kv.OpSet, key: KeyTitle, value: title})
	return nil
}

// Title returns the current journal title.
func (s *Store) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Entries returns a copy of all entries, newest first.
func (s *Store) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Query returns entries matching searchText (case-insensitive on text,
// substring on mood) and, when favoritesOnly is set, only favorites.
// Relative order is preserved.
func (s *Store) Query(searchText string, favoritesOnly bool) []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Matches(searchText, favoritesOnly) {
			out = append(out, e)
		}
	}
	return out
}

// Stats returns the total and per-mood entry counts.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ComputeStats(s.entries)
}

// Entry returns the entry with id.
func (s *Store) Entry(id string) (models.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.entries[idx], true
	}
	return models.Entry{}, false
}

// Resolve finds an entry by exact id, falling back to a unique id prefix of
// at least MinPrefixLength characters.
func (s *Store) Resolve(ref string) (models.Entry, error) {
	if e, ok := s.Entry(ref); ok {
		return e, nil
	}
	if len(ref) < MinPrefixLength {
		return models.Entry{}, fmt.Errorf("%w: %s (prefix must be at least %d characters)", ErrNotFound, ref, MinPrefixLength)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Entry
	for _, e := range s.entries {
		if strings.HasPrefix(e.ID, ref) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return models.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Entry{}, fmt.Errorf("%w: %s matches %d entries", ErrAmbiguous, ref, len(matches))
	}
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// FailedWrites returns how many durable writes have failed so far.
func (s *Store) FailedWrites() int64 {
	return s.w.failed.Load()
}

// Flush blocks until every write issued before the call has been applied
// (successfully or not), or ctx is done.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	done := s.w.barrier()
	s.mu.RUnlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting mutations, drains pending writes and stops the
// writer goroutine. It does not close the underlying kv.Store.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.w.stop()
	s.mu.Unlock()

	select {
	case <-s.w.stopped:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain pending writes: %w", ctx.Err())
	}
}
