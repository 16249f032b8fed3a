package app

import (
	"context"
	"testing"

	"subflix/ddd/application/cqe"
	"subflix/ddd/domain/entity"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdateSettingsPartial(t *testing.T) {
	settings := entity.DefaultSettings()
	settings.MoviesSourcePath = "/old/movies"
	settings.TVShowsSourcePath = "/old/tv"
	repo := &memSettingsRepo{settings: settings}

	settingsApp := NewSettingsApp(repo)
	got, err := settingsApp.UpdateSettings(context.Background(), &cqe.UpdateSettingsReq{
		MoviesSourcePath: strPtr("  /new/movies  "),
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if got.MoviesSourcePath != "/new/movies" {
		t.Errorf("movies source = %q, want trimmed /new/movies", got.MoviesSourcePath)
	}
	if got.TVShowsSourcePath != "/old/tv" {
		t.Errorf("tv source = %q, must stay untouched", got.TVShowsSourcePath)
	}
}

func TestUpdateSettingsSecretNotEchoed(t *testing.T) {
	repo := &memSettingsRepo{}
	settingsApp := NewSettingsApp(repo)

	got, err := settingsApp.UpdateSettings(context.Background(), &cqe.UpdateSettingsReq{
		UploadEnabled:   boolPtr(true),
		UploadEndpoint:  strPtr("minio.local:9000"),
		UploadAccessKey: strPtr("access"),
		UploadSecretKey: strPtr("topsecret"),
		UploadBucket:    strPtr("subflix"),
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if !got.UploadSecretKeySet {
		t.Error("secret key must be marked as set")
	}

	stored, _ := repo.Get(context.Background())
	if stored.UploadSecretKey != "topsecret" {
		t.Errorf("stored secret = %q", stored.UploadSecretKey)
	}
	if !stored.UploadConfigured() {
		t.Error("upload must be configured after update")
	}
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	settingsApp := NewSettingsApp(&memSettingsRepo{})
	got, err := settingsApp.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got.MoviesSourcePath != "" || got.UploadEnabled {
		t.Errorf("defaults not empty: %+v", got)
	}
}
