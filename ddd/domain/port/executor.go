package port

import (
	"context"

	"subflix/ddd/domain/entity"
)

// ProgressCallback is invoked by executors to report percentage progress (0-100).
type ProgressCallback func(progress int)

// EmbedExecutor drives the external remux process for one job: copy all
// existing streams unmodified and add the paired subtitle as a new stream.
// A nil error means the process exited cleanly and a non-empty output file
// exists at job.OutputPath.
type EmbedExecutor interface {
	Execute(ctx context.Context, job *entity.ProcessingJob, opts EmbedOptions) error
}

// EmbedOptions controls executor behaviour.
type EmbedOptions struct {
	ProgressCb ProgressCallback
	RequestID  string
}
