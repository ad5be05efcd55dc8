package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"
)

// AuditSink persists a batch of marshaled audit events. The outbox sink is
// the production implementation; a nil sink falls back to console output.
type AuditSink interface {
	Persist(ctx context.Context, payloads []json.RawMessage) error
}

// AuditManager aggregates audit events into batches, by size or by timeout,
// and hands them to a worker pool for persistence.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	sink        AuditSink

	inputChan  chan AuditEvent
	batchChan  chan []AuditEvent
	shutdownCh chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, sink AuditSink) *AuditManager {
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		sink:        sink,
		inputChan:   make(chan AuditEvent, workerCount*batchSize*2),
		batchChan:   make(chan []AuditEvent, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			log.Println("WARNING: audit manager shutdown interrupted")
		}
	})
}

// LogEvent enqueues an event. When the pipeline is saturated or the request
// context is gone the event is printed directly rather than dropped.
func (m *AuditManager) LogEvent(ctx context.Context, event AuditEvent) {
	select {
	case m.inputChan <- event:
	case <-ctx.Done():
		m.printBatch(-1, []AuditEvent{event})
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditEvent
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case event, ok := <-m.inputChan:
			if !ok {
				return
			}

			batch = append(batch, event)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditEvent) {
	batchCopy := make([]AuditEvent, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.printBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.persistBatch(ctx, id, batch)
		case <-ctx.Done():
			// drain what is already queued before exiting
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.persistBatch(context.Background(), id, batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) persistBatch(ctx context.Context, workerID int, batch []AuditEvent) {
	if m.sink == nil {
		m.printBatch(workerID, batch)
		return
	}

	payloads := make([]json.RawMessage, 0, len(batch))
	for _, event := range batch {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Printf("ERROR: failed to marshal audit event: %v", err)
			continue
		}
		payloads = append(payloads, payload)
	}

	if err := m.sink.Persist(ctx, payloads); err != nil {
		log.Printf("ERROR: audit sink failed, printing batch: %v", err)
		m.printBatch(workerID, batch)
	}
}

func (m *AuditManager) printBatch(workerID int, batch []AuditEvent) {
	prefix := "DIRECT"
	if workerID >= 0 {
		prefix = fmt.Sprintf("WORKER-%d", workerID)
	}

	fmt.Printf("\n=== AUDIT BATCH (%s) ===\n", prefix)
	for _, event := range batch {
		eventJSON, err := json.MarshalIndent(event, "", "  ")
		if err != nil {
			fmt.Printf("ERROR: %v\n", err)
			continue
		}
		fmt.Println(string(eventJSON))
	}
	fmt.Println("=== END BATCH ===")
}
