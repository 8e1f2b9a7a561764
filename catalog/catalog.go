// Package catalog stores search frontiers in BadgerDB so an interrupted
// extremal search can resume where it stopped.
//
// Layout:
//
//	frontier/<problem key> NUL <order, uint32 big-endian>  =>  JSON record
//
// A record holds the level statistics, the frontier as graph6 lines, the
// run id of the catalog that wrote it and a timestamp. Keys of one problem
// sort by order, so a prefix scan yields its levels in search order.
//
// A Catalog implements extremal.Checkpoint and is safe for concurrent use.
package catalog

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrBadConfig is returned by Open for an unusable Config.
	ErrBadConfig = errors.New("catalog: bad config")

	// ErrCorruptRecord is returned when a stored record cannot be decoded.
	ErrCorruptRecord = errors.New("catalog: corrupt record")

	// ErrClosed is returned by operations on a closed Catalog.
	ErrClosed = errors.New("catalog: closed")
)

var frontierPrefix = []byte("frontier/")

// Config holds configuration for a Catalog.
type Config struct {
	// Path is the directory for database files. Ignored when InMemory is set.
	Path string

	// InMemory keeps everything in RAM; used by tests and one-off runs.
	InMemory bool

	// SyncWrites makes every level durable before Save returns.
	SyncWrites bool

	// Logger receives BadgerDB's internal messages. nil silences them.
	Logger *slog.Logger
}

// DefaultConfig returns a durable on-disk configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration that never touches disk.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Catalog is a BadgerDB-backed frontier store.
type Catalog struct {
	db    *badger.DB
	runID string
}

// Open opens (creating if needed) the catalog described by cfg.
func Open(cfg Config) (*Catalog, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.Wrap(ErrBadConfig, "path is required unless in-memory")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, errors.Wrapf(err, "catalog: create %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: open badger")
	}
	return &Catalog{db: db, runID: uuid.NewString()}, nil
}

// RunID identifies this open catalog in the records it writes.
func (c *Catalog) RunID() string { return c.runID }

// Close flushes and closes the database.
func (c *Catalog) Close() error {
	if c.db.IsClosed() {
		return nil
	}
	return errors.Wrap(c.db.Close(), "catalog: close")
}

func problemPrefix(key string) []byte {
	p := make([]byte, 0, len(frontierPrefix)+len(key)+1)
	p = append(p, frontierPrefix...)
	p = append(p, key...)
	return append(p, 0)
}

func levelKey(key string, order int) []byte {
	return binary.BigEndian.AppendUint32(problemPrefix(key), uint32(order))
}

func (c *Catalog) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.db.IsClosed() {
		return ErrClosed
	}
	return nil
}
