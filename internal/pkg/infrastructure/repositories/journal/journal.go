// Package journal keeps a local record of harvest runs: the outcome of every
// item and the position to resume an interrupted run from.
package journal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/obis/doi-harvester/internal/pkg/domain"
	bolt "go.etcd.io/bbolt"
)

var (
	outcomesBucket = []byte("outcomes")
	progressBucket = []byte("progress")
)

type Journal struct {
	db *bolt.DB
}

// Open opens, or creates, the journal database at path.
func Open(path string) (*Journal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, CantOpenError{Path: path, Message: err.Error()}
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucketName := range [][]byte{outcomesBucket, progressBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucketName); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create journal buckets: %w", err)
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordOutcome stores the outcome of one item under its run.
func (j *Journal) RecordOutcome(runID uuid.UUID, o domain.HarvestOutcome) error {
	o.RunID = runID.String()
	if o.Time.IsZero() {
		o.Time = time.Now().UTC()
	}

	value, err := json.Marshal(o)
	if err != nil {
		return err
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		run, err := tx.Bucket(outcomesBucket).CreateBucketIfNotExists([]byte(o.RunID))
		if err != nil {
			return err
		}
		return run.Put(indexKey(o.Index), value)
	})
}

// Outcomes returns the outcomes of a run ordered by item index.
func (j *Journal) Outcomes(runID uuid.UUID) ([]domain.HarvestOutcome, error) {
	outcomes := []domain.HarvestOutcome{}

	err := j.db.View(func(tx *bolt.Tx) error {
		run := tx.Bucket(outcomesBucket).Bucket([]byte(runID.String()))
		if run == nil {
			return UnknownRunError{ID: runID}
		}

		return run.ForEach(func(k, v []byte) error {
			var o domain.HarvestOutcome
			if err := json.Unmarshal(v, &o); err != nil {
				return err
			}
			outcomes = append(outcomes, o)
			return nil
		})
	})

	return outcomes, err
}

// SaveProgress remembers the index of the next item to process for key.
func (j *Journal) SaveProgress(key string, index int) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(progressBucket).Put([]byte(key), []byte(strconv.Itoa(index)))
	})
}

// Progress returns the saved index for key, if there is one.
func (j *Journal) Progress(key string) (int, bool, error) {
	index, found := 0, false

	err := j.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(progressBucket).Get([]byte(key))
		if v == nil {
			return nil
		}

		i, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("corrupt progress marker for %s: %w", key, err)
		}

		index, found = i, true
		return nil
	})

	return index, found, err
}

func (j *Journal) ClearProgress(key string) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(progressBucket).Delete([]byte(key))
	})
}

// zero padded so that keys sort in index order
func indexKey(index int) []byte {
	return []byte(fmt.Sprintf("%010d", index))
}
