package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/port"
	"subflix/ddd/domain/vo"
	"subflix/ddd/infrastructure/queue"
)

type fakeJobRepo struct {
	mu       sync.Mutex
	statuses []vo.JobStatus
	last     entity.ProcessingJob
}

func (r *fakeJobRepo) Create(ctx context.Context, job *entity.ProcessingJob) error { return nil }
func (r *fakeJobRepo) GetByUUID(ctx context.Context, jobUUID string) (*entity.ProcessingJob, error) {
	return nil, nil
}
func (r *fakeJobRepo) List(ctx context.Context) ([]*entity.ProcessingJob, error) { return nil, nil }
func (r *fakeJobRepo) CountActiveByVideo(ctx context.Context, videoUUID string) (int64, error) {
	return 0, nil
}
func (r *fakeJobRepo) UpdateStatus(ctx context.Context, job *entity.ProcessingJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, job.Status)
	r.last = *job
	return nil
}
func (r *fakeJobRepo) UpdateProgress(ctx context.Context, jobUUID string, progress int) error {
	return nil
}
func (r *fakeJobRepo) DeleteFinished(ctx context.Context) (int64, error) { return 0, nil }

func (r *fakeJobRepo) lastJob() entity.ProcessingJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

type fakeVideoRepo struct {
	mu       sync.Mutex
	statuses map[string]vo.VideoStatus
}

func (r *fakeVideoRepo) Upsert(ctx context.Context, v *entity.VideoFile) (*entity.VideoFile, error) {
	return v, nil
}
func (r *fakeVideoRepo) GetByUUID(ctx context.Context, videoUUID string) (*entity.VideoFile, error) {
	return nil, nil
}
func (r *fakeVideoRepo) List(ctx context.Context, ct vo.ContentType, st vo.VideoStatus) ([]*entity.VideoFile, error) {
	return nil, nil
}
func (r *fakeVideoRepo) ClaimForProcessing(ctx context.Context, videoUUID string) (bool, error) {
	return true, nil
}
func (r *fakeVideoRepo) UpdateStatus(ctx context.Context, videoUUID string, status vo.VideoStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.statuses == nil {
		r.statuses = make(map[string]vo.VideoStatus)
	}
	r.statuses[videoUUID] = status
	return nil
}
func (r *fakeVideoRepo) DeleteAll(ctx context.Context) error { return nil }

func (r *fakeVideoRepo) statusOf(videoUUID string) vo.VideoStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statuses[videoUUID]
}

type fakeExecutor struct {
	err      error
	progress []int
	block    bool // block until ctx cancelled, then return ctx.Err()
	done     chan struct{}
}

func (e *fakeExecutor) Execute(ctx context.Context, job *entity.ProcessingJob, opts port.EmbedOptions) error {
	defer func() {
		if e.done != nil {
			close(e.done)
		}
	}()
	if e.block {
		<-ctx.Done()
		return ctx.Err()
	}
	for _, p := range e.progress {
		if opts.ProgressCb != nil {
			opts.ProgressCb(p)
		}
	}
	return e.err
}

type fakeSink struct {
	mu     sync.Mutex
	values []int
}

func (s *fakeSink) SaveProgress(ctx context.Context, job *entity.ProcessingJob, progress int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, progress)
	return nil
}

type fakeUploader struct {
	called chan string
}

func (u *fakeUploader) UploadOutput(ctx context.Context, outputPath, videoUUID string) error {
	u.called <- videoUUID
	return nil
}

func startWorker(t *testing.T, q queue.JobQueue, jr *fakeJobRepo, vr *fakeVideoRepo, ex port.EmbedExecutor, sink port.ProgressSink, up port.UploadConnector) *EmbedWorker {
	t.Helper()
	w := NewEmbedWorker(q, jr, vr, ex, sink, up, 1)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })
	return w
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestEmbedWorkerSuccess(t *testing.T) {
	q := queue.NewMemoryJobQueue(4)
	jr := &fakeJobRepo{}
	vr := &fakeVideoRepo{}
	ex := &fakeExecutor{progress: []int{10, 55, 99}}
	sink := &fakeSink{}
	up := &fakeUploader{called: make(chan string, 1)}

	startWorker(t, q, jr, vr, ex, sink, up)

	job := entity.NewProcessingJob("video-1", "/in/a.mkv", "/in/a.en.srt", "/out/a.en.mkv")
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return jr.lastJob().Status == vo.JobStatusCompleted
	})

	last := jr.lastJob()
	if last.Progress != 100 {
		t.Errorf("completed job progress = %d, want 100", last.Progress)
	}
	if got := vr.statusOf("video-1"); got != vo.VideoStatusCompleted {
		t.Errorf("video status = %s, want completed", got)
	}

	select {
	case uuid := <-up.called:
		if uuid != "video-1" {
			t.Errorf("uploaded video uuid = %s, want video-1", uuid)
		}
	case <-time.After(2 * time.Second):
		t.Error("uploader was not invoked")
	}
}

func TestEmbedWorkerFailure(t *testing.T) {
	q := queue.NewMemoryJobQueue(4)
	jr := &fakeJobRepo{}
	vr := &fakeVideoRepo{}
	ex := &fakeExecutor{err: errors.New("remux exited with code 1")}
	sink := &fakeSink{}
	up := &fakeUploader{called: make(chan string, 1)}

	startWorker(t, q, jr, vr, ex, sink, up)

	job := entity.NewProcessingJob("video-2", "/in/b.mkv", "/in/b.en.srt", "/out/b.en.mkv")
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return jr.lastJob().Status == vo.JobStatusFailed
	})

	last := jr.lastJob()
	if last.ErrorMessage != "remux exited with code 1" {
		t.Errorf("job error message = %q", last.ErrorMessage)
	}
	if got := vr.statusOf("video-2"); got != vo.VideoStatusFailed {
		t.Errorf("video status = %s, want failed", got)
	}

	select {
	case <-up.called:
		t.Error("uploader must not run for failed jobs")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEmbedWorkerStopFailsInFlightJob(t *testing.T) {
	q := queue.NewMemoryJobQueue(4)
	jr := &fakeJobRepo{}
	vr := &fakeVideoRepo{}
	ex := &fakeExecutor{block: true, done: make(chan struct{})}
	sink := &fakeSink{}

	w := NewEmbedWorker(q, jr, vr, ex, sink, nil, 1)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	job := entity.NewProcessingJob("video-3", "/in/c.mkv", "/in/c.en.srt", "/out/c.en.mkv")
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	// 等任务进入executor再停机
	waitFor(t, 2*time.Second, func() bool {
		return jr.lastJob().Status == vo.JobStatusProcessing
	})

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	<-ex.done

	last := jr.lastJob()
	if last.Status != vo.JobStatusFailed {
		t.Errorf("in-flight job status after stop = %s, want failed", last.Status)
	}
}

func TestEmbedWorkerProgressMonotonic(t *testing.T) {
	q := queue.NewMemoryJobQueue(4)
	jr := &fakeJobRepo{}
	vr := &fakeVideoRepo{}
	ex := &fakeExecutor{progress: []int{30, 10, 60}}
	sink := &fakeSink{}

	startWorker(t, q, jr, vr, ex, sink, nil)

	job := entity.NewProcessingJob("video-4", "/in/d.mkv", "/in/d.en.srt", "/out/d.en.mkv")
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	waitFor(t, 2*time.Second, func() bool {
		return jr.lastJob().Status == vo.JobStatusCompleted
	})

	sink.mu.Lock()
	defer sink.mu.Unlock()
	prev := -1
	for _, v := range sink.values {
		if v < prev {
			t.Fatalf("progress regressed: %v", sink.values)
		}
		prev = v
	}
}
