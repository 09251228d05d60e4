package repository

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/nguyendat030805/FinalProjectMobile/entity"

	bolt "go.etcd.io/bbolt"
)

// OrderRepository is the per-user order log. Each user gets a bucket named
// orders_<username> holding one entry per order, keyed by a monotonic
// sequence. Writers are serialized by the store, so concurrent checkouts for
// the same user cannot lose an order the way a single whole-list blob would.
type OrderRepository struct {
	db *bolt.DB
}

func OpenOrderRepository(path string) (*OrderRepository, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	return &OrderRepository{db: db}, nil
}

func (r *OrderRepository) Close() error {
	return r.db.Close()
}

func userBucket(username string) []byte {
	return []byte("orders_" + username)
}

// Save appends one order to the user's log.
func (r *OrderRepository) Save(username string, order *entity.StoredOrder) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(userBucket(username))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		buf, err := json.Marshal(order)
		if err != nil {
			return err
		}
		return b.Put([]byte(fmt.Sprintf("%020d", seq)), buf)
	})
}

// ListByUser returns the user's orders, most recent first. A missing bucket
// means no orders yet; an entry that no longer decodes is logged and skipped.
func (r *OrderRepository) ListByUser(username string) ([]entity.StoredOrder, error) {
	orders := []entity.StoredOrder{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(userBucket(username))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var o entity.StoredOrder
			if err := json.Unmarshal(v, &o); err != nil {
				log.Printf("order log: skipping corrupt entry %s for %s: %v", k, username, err)
				continue
			}
			orders = append(orders, o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus rewrites the status of the first order (most recent first)
// whose orderId matches. It reports whether a match was found; an unknown
// user or order id is (false, nil), not an error.
func (r *OrderRepository) UpdateStatus(username, orderID, status string) (bool, error) {
	found := false
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(userBucket(username))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var o entity.StoredOrder
			if err := json.Unmarshal(v, &o); err != nil {
				continue
			}
			if o.OrderID != orderID {
				continue
			}
			o.Status = status
			buf, err := json.Marshal(&o)
			if err != nil {
				return err
			}
			key := append([]byte(nil), k...)
			if err := b.Put(key, buf); err != nil {
				return err
			}
			found = true
			return nil
		}
		return nil
	})
	return found, err
}
