package queue

import (
	"context"
	"testing"
	"time"

	"subflix/ddd/domain/entity"
)

func TestMemoryJobQueueFIFO(t *testing.T) {
	q := NewMemoryJobQueue(10)
	ctx := context.Background()

	first := entity.NewProcessingJob("v1", "/in/a.mp4", "/in/a.ar.srt", "/out/a.ar.mp4")
	second := entity.NewProcessingJob("v2", "/in/b.mp4", "/in/b.en.srt", "/out/b.en.mp4")

	if err := q.Enqueue(ctx, first); err != nil {
		t.Fatalf("enqueue first: %v", err)
	}
	if err := q.Enqueue(ctx, second); err != nil {
		t.Fatalf("enqueue second: %v", err)
	}
	if q.Size() != 2 {
		t.Errorf("size = %d, want 2", q.Size())
	}

	got, err := q.Dequeue(ctx)
	if err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	if got.JobUUID != first.JobUUID {
		t.Errorf("dequeued %s, want first job %s", got.JobUUID, first.JobUUID)
	}
	got, err = q.Dequeue(ctx)
	if err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	if got.JobUUID != second.JobUUID {
		t.Errorf("dequeued %s, want second job %s", got.JobUUID, second.JobUUID)
	}
}

func TestMemoryJobQueueFullRejects(t *testing.T) {
	q := NewMemoryJobQueue(1)
	ctx := context.Background()

	if err := q.Enqueue(ctx, entity.NewProcessingJob("v1", "a", "b", "c")); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := q.Enqueue(ctx, entity.NewProcessingJob("v2", "a", "b", "c")); err == nil {
		t.Error("expected error when queue is full")
	}
}

func TestMemoryJobQueueDequeueRespectsContext(t *testing.T) {
	q := NewMemoryJobQueue(1)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := q.Dequeue(ctx); err == nil {
		t.Error("expected context error on empty queue")
	}
}

func TestMemoryJobQueueClose(t *testing.T) {
	q := NewMemoryJobQueue(1)
	if err := q.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := q.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}
	if err := q.Enqueue(context.Background(), entity.NewProcessingJob("v1", "a", "b", "c")); err == nil {
		t.Error("enqueue after close must fail")
	}
	if _, err := q.Dequeue(context.Background()); err == nil {
		t.Error("dequeue after close must fail")
	}
}
