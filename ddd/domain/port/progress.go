package port

import (
	"context"

	"subflix/ddd/domain/entity"
)

// ProgressSink persists or forwards job progress updates.
type ProgressSink interface {
	SaveProgress(ctx context.Context, job *entity.ProcessingJob, progress int) error
}
