package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/maison-aurelle/storefront/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type fakeOutboxRepo struct {
	pending   []*usecase.OutboxEvent
	processed []int64
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.pending = append(f.pending, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	if limit > len(f.pending) {
		limit = len(f.pending)
	}
	batch := f.pending[:limit]
	f.pending = f.pending[limit:]
	for _, ev := range batch {
		ev.Status = usecase.Processing
	}
	return batch, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	f.processed = append(f.processed, id)
	return nil
}

type fakeProducer struct {
	written []*usecase.WriteRawMessageReq
	err     error
}

func (f *fakeProducer) WriteRawMessage(_ context.Context, req *usecase.WriteRawMessageReq) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, req)
	return nil
}

func newEvents(n int) []*usecase.OutboxEvent {
	events := make([]*usecase.OutboxEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, &usecase.OutboxEvent{
			ID:      int64(i + 1),
			OrderID: "order-1",
			Payload: []byte(`{"order_id":"order-1"}`),
			Status:  usecase.Pending,
		})
	}
	return events
}

func TestProcessBatchDrainsPending(t *testing.T) {
	repo := &fakeOutboxRepo{pending: newEvents(25)}
	producer := &fakeProducer{}
	worker := NewOutboxWorker(repo, nopLogger{}, producer, "")

	batches := 0
	for {
		hasMore, err := worker.processBatch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !hasMore {
			break
		}
		batches++
	}

	if batches != 3 {
		t.Errorf("expected 3 non-empty batches for 25 events, got %d", batches)
	}
	if len(producer.written) != 25 {
		t.Errorf("expected 25 messages written, got %d", len(producer.written))
	}
	if len(repo.processed) != 25 {
		t.Errorf("expected 25 events marked processed, got %d", len(repo.processed))
	}
	if len(repo.pending) != 0 {
		t.Errorf("expected empty pending queue, got %d", len(repo.pending))
	}
}

func TestProcessBatchSkipsFailedEvents(t *testing.T) {
	repo := &fakeOutboxRepo{pending: newEvents(2)}
	producer := &fakeProducer{err: errors.New("broker not available")}
	worker := NewOutboxWorker(repo, nopLogger{}, producer, "")

	hasMore, err := worker.processBatch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hasMore {
		t.Error("expected hasMore for a non-empty batch")
	}
	if len(repo.processed) != 0 {
		t.Errorf("failed events must stay unprocessed, got %v", repo.processed)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"refused", errors.New("dial tcp: connection refused"), true},
		{"timeout", errors.New("read: i/o timeout"), true},
		{"broker", errors.New("Broker Not Available"), true},
		{"permanent", errors.New("message too large"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
