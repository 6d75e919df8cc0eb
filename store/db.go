package store

import (
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	stateBucket = "widget"
	stateKey    = "state"
)

// ErrAlreadyRunning signals that another process holds the database
// lock.
var ErrAlreadyRunning = errors.New(
	"is the tracker already running? Only one instance can be active at a time",
)

// DB persists the store's serialized snapshot under a fixed key.
type DB interface {
	// LoadState returns the last persisted snapshot, or nil if none
	// has been written yet.
	LoadState() ([]byte, error)
	// SaveState overwrites the persisted snapshot.
	SaveState(data []byte) error
	// Close ends the database connection.
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) LoadState() ([]byte, error) {
	var data []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(stateBucket)).Get([]byte(stateKey))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}

		return nil
	})

	return data, err
}

func (c *Client) SaveState(data []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(stateBucket)).Put([]byte(stateKey), data)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(stateBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
