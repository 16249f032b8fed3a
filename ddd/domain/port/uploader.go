package port

import "context"

// UploadConnector ships a completed output file to external storage.
// Invocations are fire-and-forget from the worker's perspective: failures are
// reported through the connector's own logging, never through job state.
type UploadConnector interface {
	UploadOutput(ctx context.Context, outputPath, videoUUID string) error
}
