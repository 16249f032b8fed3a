package vo

import "testing"

func TestJobStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to JobStatus
		ok       bool
	}{
		{JobStatusQueued, JobStatusProcessing, true},
		{JobStatusQueued, JobStatusFailed, true},
		{JobStatusQueued, JobStatusCompleted, false},
		{JobStatusProcessing, JobStatusCompleted, true},
		{JobStatusProcessing, JobStatusFailed, true},
		{JobStatusProcessing, JobStatusQueued, false},
		{JobStatusCompleted, JobStatusFailed, false},
		{JobStatusCompleted, JobStatusProcessing, false},
		{JobStatusFailed, JobStatusQueued, false},
		{JobStatusFailed, JobStatusProcessing, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestJobStatusIsActive(t *testing.T) {
	if !JobStatusQueued.IsActive() || !JobStatusProcessing.IsActive() {
		t.Error("queued and processing should be active")
	}
	if JobStatusCompleted.IsActive() || JobStatusFailed.IsActive() {
		t.Error("terminal states should not be active")
	}
}

func TestVideoStatusFailedResetsOnlyToPending(t *testing.T) {
	if !VideoStatusFailed.CanTransitionTo(VideoStatusPending) {
		t.Error("failed video should be resettable to pending")
	}
	if VideoStatusFailed.CanTransitionTo(VideoStatusProcessing) {
		t.Error("failed video must not jump straight to processing")
	}
	if VideoStatusCompleted.CanTransitionTo(VideoStatusPending) {
		t.Error("completed video is terminal")
	}
}

func TestContentTypeIsValid(t *testing.T) {
	if !ContentTypeMovies.IsValid() || !ContentTypeTVShows.IsValid() {
		t.Error("movies and tvshows are valid content types")
	}
	if ContentType("music").IsValid() {
		t.Error("unknown content type should be invalid")
	}
}
