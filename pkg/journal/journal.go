// Package journal records the input of a host into a bbolt database, so that
// a session can be replayed later.
package journal

import (
	"encoding/binary"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.retk.dev/pkg/layout"
	"src.retk.dev/pkg/rt"
)

const bucketEvents = "events"

// ErrNoEntry is returned by Entry when there is no entry with the given
// sequence number.
var ErrNoEntry = errors.New("no such entry")

// Entry is one recorded input.
type Entry struct {
	Seq uint64
	// Time since the start of the session.
	At time.Duration
	// Either an rt.Event or a Resize.
	Value any
}

// Journal is an open journal database.
type Journal struct {
	db *bolt.DB
}

// Open opens the journal at path, creating it if needed.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketEvents))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db}, nil
}

// Close closes the database.
func (j *Journal) Close() error { return j.db.Close() }

// Record appends v, which must be an rt.Event or a Resize, and returns its
// sequence number. Sequence numbers start at 1.
func (j *Journal) Record(at time.Duration, v any) (uint64, error) {
	var seq uint64
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketEvents))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		data, err := marshalEntry(Entry{seq, at, v})
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), data)
	})
	return seq, err
}

// Entry returns the entry with the given sequence number.
func (j *Journal) Entry(seq uint64) (Entry, error) {
	var e Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketEvents)).Get(marshalSeq(seq))
		if v == nil {
			return ErrNoEntry
		}
		var err error
		e, err = unmarshalEntry(seq, v)
		return err
	})
	return e, err
}

// Iterate calls f with every entry whose sequence number is in [from, upto),
// in order. It stops at the first error returned by f.
func (j *Journal) Iterate(from, upto uint64, f func(Entry) error) error {
	return j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketEvents)).Cursor()
		for k, v := c.Seek(marshalSeq(from)); k != nil && unmarshalSeq(k) < upto; k, v = c.Next() {
			e, err := unmarshalEntry(unmarshalSeq(k), v)
			if err != nil {
				return err
			}
			if err := f(e); err != nil {
				return err
			}
		}
		return nil
	})
}

// Entries returns all entries.
func (j *Journal) Entries() ([]Entry, error) {
	var entries []Entry
	err := j.Iterate(0, ^uint64(0), func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	return entries, err
}

// Len returns the number of entries.
func (j *Journal) Len() (int, error) {
	var n int
	err := j.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketEvents)).Stats().KeyN
		return nil
	})
	return n, err
}

// Replay feeds entries to c the way a host would have, starting at size, and
// returns the size in effect at the end.
//
// Frames are reconstructed from the time of each entry: before an entry is
// processed, c gets one Update per frame interval of c that elapsed since the
// start of the session, plus the one a host runs when it starts, each
// followed by a Render if it laid out the tree again. Recorded AnimTick
// values are skipped since those frames already supply the ticks. A Resize
// is rendered immediately, while a host waits for its next frame; inputs
// arriving within a frame of a resize may hit differently.
func Replay(c *rt.Context, root rt.Node, size layout.Size, entries []Entry) layout.Size {
	interval := c.FrameInterval()
	if interval <= 0 {
		interval = rt.DefaultFrameInterval
	}
	frame := func() {
		if c.Update(root, size) {
			c.Render(root, size)
		}
	}
	frame()
	c.Render(root, size)
	var frames int64
	for _, e := range entries {
		for due := int64(e.At / interval); frames < due; frames++ {
			frame()
		}
		switch v := e.Value.(type) {
		case Resize:
			size = v.Size
			c.Render(root, size)
		case rt.AnimTick:
		case rt.Event:
			c.Process(root, v)
		}
	}
	return size
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
