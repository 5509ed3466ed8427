package store

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/deepsearch-labs/deepsearch/pkg/models"
)

// recordKeyPrefix namespaces record keys within the badger keyspace,
// mirroring the teacher-adjacent nornicdb store's single-byte prefix
// convention (pkg/storage/badger.go's prefixNode).
var recordKeyPrefix = []byte{0x01}

func recordKey(url string) []byte {
	return append(append([]byte{}, recordKeyPrefix...), []byte(url)...)
}

// BadgerStore is an embedded, on-disk RecordSource holding the
// IndexedRecords of a personal browsing-history corpus. It implements
// search.RecordSource.
type BadgerStore struct {
	db     *badger.DB
	mu     sync.RWMutex
	closed bool
}

// Options configures a BadgerStore.
type Options struct {
	// DataDir is the directory BadgerDB stores its files in.
	DataDir string

	// InMemory runs BadgerDB without touching disk, for tests.
	InMemory bool
}

// Open opens (or creates) a BadgerStore at the configured location.
func Open(opts Options) (*BadgerStore, error) {
	badgerOpts := badger.DefaultOptions(opts.DataDir).WithLogger(nil)
	if opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("deepsearch/store: opening badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying BadgerDB handle.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Put upserts a record keyed by its URL.
func (s *BadgerStore) Put(r *models.IndexedRecord) error {
	data, err := encodeRecord(r)
	if err != nil {
		return fmt.Errorf("deepsearch/store: encoding record: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(recordKey(r.URL), data)
	})
}

// PutAll upserts many records in a single transaction, used by
// cmd/deepsearch's index subcommand for a bulk JSON import.
func (s *BadgerStore) PutAll(records []*models.IndexedRecord) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for _, r := range records {
			data, err := encodeRecord(r)
			if err != nil {
				return fmt.Errorf("deepsearch/store: encoding record %q: %w", r.URL, err)
			}
			if err := txn.Set(recordKey(r.URL), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// IterAll implements search.RecordSource: it materializes the full
// corpus into memory, per spec §5's "engine awaits full materialization
// of the filtered set before scoring".
func (s *BadgerStore) IterAll() ([]*models.IndexedRecord, error) {
	var records []*models.IndexedRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = recordKeyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(recordKeyPrefix); it.ValidForPrefix(recordKeyPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				r, decodeErr := decodeRecord(val)
				if decodeErr != nil {
					return decodeErr
				}
				records = append(records, r)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deepsearch/store: reading records: %w", err)
	}
	return records, nil
}

// TotalCount implements search.RecordSource.
func (s *BadgerStore) TotalCount() uint64 {
	var count uint64
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = recordKeyPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(recordKeyPrefix); it.ValidForPrefix(recordKeyPrefix); it.Next() {
			count++
		}
		return nil
	})
	return count
}
