// Package store owns the order collection: the one shared mutable
// resource. Every mutation goes through Commit, which runs the change on
// a private copy, persists the full snapshot and only then publishes the
// new collection. Readers always see a complete snapshot, never an order
// mid-transition.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/lacomanda/comanda/models"
	"github.com/lacomanda/comanda/utils"
)

// ErrNotFound reports an unknown order id.
var ErrNotFound = errors.New("order not found")

// snapshotKey is the fixed key the serialized collection lives under.
const snapshotKey = "orders"

// Snapshot is the single-row persistence model: the whole order
// collection serialized as JSON under a fixed key.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Data      []byte    `gorm:"type:blob;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Store is the versioned collection gateway.
type Store struct {
	mu      sync.RWMutex
	db      *gorm.DB
	orders  []models.Order
	version uint64
}

// Open migrates the snapshot table and loads the collection. A missing
// snapshot falls back to the built-in seed dataset, which is persisted
// right away so the next start finds it.
func Open(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	s := &Store{db: db}

	var snap Snapshot
	err := db.First(&snap, "key = ?", snapshotKey).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		s.orders = SeedOrders(time.Now())
		if err := s.persist(s.orders); err != nil {
			return nil, err
		}
		utils.InfoLogger.Infof("no saved orders, seeded %d orders", len(s.orders))
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(snap.Data, &s.orders); err != nil {
			return nil, err
		}
		utils.InfoLogger.Infof("loaded %d orders from snapshot", len(s.orders))
	}
	return s, nil
}

// Orders returns a deep copy of the collection, newest first ordering
// preserved as stored.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.orders)
}

// Get returns a copy of one order.
func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return models.Order{}, false
}

// Version increases by one per committed mutation.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Commit runs mutate on a copy of the collection. If mutate succeeds the
// result is persisted synchronously and then published; if mutate or the
// write fails nothing changes. This is the only write path.
func (s *Store) Commit(mutate func(orders []models.Order) ([]models.Order, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := mutate(cloneAll(s.orders))
	if err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.orders = next
	s.version++
	return nil
}

// Insert prepends a new order (boards show newest first).
func (s *Store) Insert(order models.Order) error {
	return s.Commit(func(orders []models.Order) ([]models.Order, error) {
		return append([]models.Order{order}, orders...), nil
	})
}

// Update applies fn to the order with the given id and commits. Returns
// the updated order. ErrNotFound if the id is unknown.
func (s *Store) Update(id string, fn func(o models.Order) (models.Order, error)) (models.Order, error) {
	var updated models.Order
	err := s.Commit(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID != id {
				continue
			}
			next, err := fn(orders[i])
			if err != nil {
				return nil, err
			}
			orders[i] = next
			updated = next.Clone()
			return orders, nil
		}
		return nil, ErrNotFound
	})
	return updated, err
}

// Replace swaps an order wholesale (POS resubmitting a table order) or
// inserts it when the id is unknown.
func (s *Store) Replace(order models.Order) error {
	return s.Commit(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID == order.ID {
				orders[i] = order
				return orders, nil
			}
		}
		return append([]models.Order{order}, orders...), nil
	})
}

func (s *Store) persist(orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	snap := Snapshot{Key: snapshotKey, Data: data, UpdatedAt: time.Now()}
	return s.db.Save(&snap).Error
}

func cloneAll(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
