// Package shopping keeps the per-location shopping lists. State lives in
// memory and is flushed to a local sqlite database shortly after each
// mutation; the backend is never involved.
package shopping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Location is one of the three fixed physical locations.
type Location string

const (
	LocationGalpao     Location = "GALPAO"
	LocationArca       Location = "ARCA"
	LocationEscritorio Location = "ESCRITORIO"
)

// Locations lists all locations in display order.
var Locations = []Location{LocationGalpao, LocationArca, LocationEscritorio}

// Label returns the human-readable name of the location.
func (l Location) Label() string {
	switch l {
	case LocationGalpao:
		return "Galpão"
	case LocationArca:
		return "Arca"
	case LocationEscritorio:
		return "Escritório"
	default:
		return string(l)
	}
}

// ParseLocation resolves a user-supplied location name, case-insensitively
// and ignoring accents in the labels.
func ParseLocation(s string) (Location, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GALPAO", "GALPÃO":
		return LocationGalpao, nil
	case "ARCA":
		return LocationArca, nil
	case "ESCRITORIO", "ESCRITÓRIO":
		return LocationEscritorio, nil
	}
	return "", fmt.Errorf("unknown location '%s' (expected galpao, arca or escritorio)", s)
}

// Item is a shopping list entry.
type Item struct {
	ID        string `gorm:"primaryKey"`
	Location  string `gorm:"index"`
	Name      string
	Qty       string
	Done      bool
	CreatedAt int64 // unix milliseconds
}

// Totals summarizes one location's list.
type Totals struct {
	All  int
	Done int
}

const flushDelay = 200 * time.Millisecond

// Store owns the in-memory lists and the debounced sqlite persistence.
// Writes are last-write-wins; the database is single-writer by
// construction.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger

	mu    sync.Mutex
	lists map[Location][]Item
	timer *time.Timer
	dirty bool
}

// DefaultPath returns the per-user database location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "sevenplus", "shopping.db"), nil
}

// Open loads the lists from the database at path, creating it if needed.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open shopping database: %w", err)
	}
	if err := db.AutoMigrate(&Item{}); err != nil {
		return nil, fmt.Errorf("failed to migrate shopping database: %w", err)
	}

	var items []Item
	if err := db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load shopping lists: %w", err)
	}

	lists := make(map[Location][]Item, len(Locations))
	for _, loc := range Locations {
		lists[loc] = nil
	}
	for _, item := range items {
		loc := Location(item.Location)
		if _, ok := lists[loc]; !ok {
			// row from a removed location; drop it on next flush
			continue
		}
		lists[loc] = append(lists[loc], item)
	}

	return &Store{db: db, log: log, lists: lists}, nil
}

// Items returns the list for loc, newest first.
func (s *Store) Items(loc Location) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.lists[loc]))
	copy(out, s.lists[loc])
	return out
}

// Totals returns per-location item counts.
func (s *Store) Totals() map[Location]Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := make(map[Location]Totals, len(Locations))
	for _, loc := range Locations {
		t := Totals{All: len(s.lists[loc])}
		for _, item := range s.lists[loc] {
			if item.Done {
				t.Done++
			}
		}
		totals[loc] = t
	}
	return totals
}

// Add prepends a new item to loc's list.
func (s *Store) Add(loc Location, name, qty string) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, fmt.Errorf("item name is required")
	}

	item := Item{
		ID:        ulid.Make().String(),
		Location:  string(loc),
		Name:      name,
		Qty:       strings.TrimSpace(qty),
		Done:      false,
		CreatedAt: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	s.lists[loc] = append([]Item{item}, s.lists[loc]...)
	s.scheduleFlush()
	s.mu.Unlock()
	return item, nil
}

// Toggle flips the done flag of an item.
func (s *Store) Toggle(loc Location, id string) error {
	return s.mutate(loc, id, func(item *Item) {
		item.Done = !item.Done
	})
}

// Edit replaces an item's name and quantity.
func (s *Store) Edit(loc Location, id, name, qty string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("item name is required")
	}
	return s.mutate(loc, id, func(item *Item) {
		item.Name = name
		item.Qty = strings.TrimSpace(qty)
	})
}

// Remove deletes an item from loc's list.
func (s *Store) Remove(loc Location, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[loc]
	for i := range list {
		if list[i].ID == id {
			s.lists[loc] = append(list[:i], list[i+1:]...)
			s.scheduleFlush()
			return nil
		}
	}
	return fmt.Errorf("item '%s' not found in %s", id, loc.Label())
}

// ClearDone removes all purchased items from loc and returns how many.
func (s *Store) ClearDone(loc Location) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var kept []Item
	removed := 0
	for _, item := range s.lists[loc] {
		if item.Done {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed > 0 {
		s.lists[loc] = kept
		s.scheduleFlush()
	}
	return removed
}

func (s *Store) mutate(loc Location, id string, fn func(*Item)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.lists[loc]
	for i := range list {
		if list[i].ID == id {
			fn(&list[i])
			s.scheduleFlush()
			return nil
		}
	}
	return fmt.Errorf("item '%s' not found in %s", id, loc.Label())
}

// scheduleFlush arms (or re-arms) the debounce timer. Must be called with
// mu held.
func (s *Store) scheduleFlush() {
	s.dirty = true
	if s.timer == nil {
		s.timer = time.AfterFunc(flushDelay, func() {
			if err := s.Flush(); err != nil {
				s.log.Warn().Err(err).Msg("failed to persist shopping lists")
			}
		})
		return
	}
	s.timer.Reset(flushDelay)
}

// Flush writes the current state to the database.
func (s *Store) Flush() error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	var items []Item
	for _, loc := range Locations {
		items = append(items, s.lists[loc]...)
	}
	s.dirty = false
	s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Item{}).Error; err != nil {
			return fmt.Errorf("failed to clear shopping table: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to write shopping items: %w", err)
		}
		return nil
	})
}

// Close flushes pending writes and stops the debounce timer.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	return s.Flush()
}
