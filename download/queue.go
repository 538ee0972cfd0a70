package download

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"github.com/episan-cli/episan/client"
	"github.com/episan-cli/episan/filesystem"
	"github.com/episan-cli/episan/log"
	"github.com/episan-cli/episan/source"
	"github.com/episan-cli/episan/where"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// queuedGrab encapsulates a single failed daemon handoff for deferred retry.
type queuedGrab struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Name      string `json:"name"`
	Link      string `json:"link"`
}

// queueLock guards the queue file against concurrent processes.
func queueLock() *flock.Flock {
	return flock.New(where.Queue() + ".lock")
}

// Enqueue persists a failed handoff to a local JSON-log for deferred reconciliation.
func Enqueue(episode *source.Episode) error {
	lock := queueLock()
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	f, err := filesystem.API().OpenFile(where.Queue(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	entry := queuedGrab{
		ID:        uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Name:      episode.String(),
		Link:      episode.Link,
	}

	return json.NewEncoder(f).Encode(entry)
}

// Reconcile initializes an asynchronous background process to retry previously failed handoffs.
func Reconcile() {
	go reconcile()
}

func reconcile() {
	lock := queueLock()
	ok, err := lock.TryLock()
	if err != nil || !ok {
		// Another process is already reconciling.
		return
	}
	defer func() {
		_ = lock.Unlock()
	}()

	entries := pending()
	if len(entries) == 0 {
		return
	}

	var remaining []queuedGrab
	for i, entry := range entries {
		// Apply incremental delay with randomized jitter to manage request throttling.
		backoff := time.Duration((1<<i)*100)*time.Millisecond + time.Duration(rand.Intn(100))*time.Millisecond
		time.Sleep(backoff)

		if _, err := client.Add(entry.Link); err != nil {
			log.Warnf("retry of %s failed: %s", entry.Name, err)
			remaining = append(remaining, entry)
			continue
		}

		log.Infof("reconciled %s", entry.Name)
	}

	// Rewrite the log with whatever is still pending.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, entry := range remaining {
		_ = encoder.Encode(entry)
	}

	if err := filesystem.API().WriteFile(where.Queue(), buf.Bytes(), os.ModePerm); err != nil {
		log.Errorf("failed to rewrite retry queue: %s", err)
	}
}

// pending reads and decodes every queued grab, skipping malformed records.
func pending() []queuedGrab {
	content, err := filesystem.API().ReadFile(where.Queue())
	if err != nil || len(content) == 0 {
		return nil
	}

	var entries []queuedGrab
	decoder := json.NewDecoder(bytes.NewReader(content))
	for decoder.More() {
		var entry queuedGrab
		if err := decoder.Decode(&entry); err != nil {
			break
		}
		entries = append(entries, entry)
	}

	return entries
}
