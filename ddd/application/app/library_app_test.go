package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"subflix/ddd/application/cqe"
	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/vo"
	"subflix/pkg/errno"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanLibraryPairsAndUpserts(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "film.mkv")
	touch(t, root, "film.en.srt")
	touch(t, root, "plain.mp4")
	touch(t, root, "notes.txt")

	videoRepo := newMemVideoRepo()
	settings := entity.DefaultSettings()
	settings.MoviesSourcePath = root
	settingsRepo := &memSettingsRepo{settings: settings}

	libApp := NewLibraryApp(videoRepo, settingsRepo)
	res, err := libApp.ScanLibrary(context.Background(), &cqe.ScanLibraryReq{ContentType: "movies"})
	if err != nil {
		t.Fatalf("ScanLibrary: %v", err)
	}
	if res.VideosFound != 2 || res.SubtitlesFound != 1 || res.Paired != 1 {
		t.Errorf("scan result = %+v", res)
	}

	list, err := libApp.ListVideoFiles(context.Background(), &cqe.ListVideoFilesReq{})
	if err != nil {
		t.Fatalf("ListVideoFiles: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("catalog size = %d, want 2", list.Total)
	}
	for _, f := range list.VideoFiles {
		switch f.FileName {
		case "film.mkv":
			if !f.HasSubtitle || f.SubtitleLanguage != "en" {
				t.Errorf("film.mkv pairing = %+v", f)
			}
		case "plain.mp4":
			if f.HasSubtitle {
				t.Errorf("plain.mp4 must be unpaired")
			}
		}
	}
}

func TestScanLibraryIdempotent(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "film.mkv")
	touch(t, root, "film.en.srt")

	videoRepo := newMemVideoRepo()
	settings := entity.DefaultSettings()
	settings.MoviesSourcePath = root
	settingsRepo := &memSettingsRepo{settings: settings}
	libApp := NewLibraryApp(videoRepo, settingsRepo)
	ctx := context.Background()
	req := &cqe.ScanLibraryReq{ContentType: "movies"}

	if _, err := libApp.ScanLibrary(ctx, req); err != nil {
		t.Fatal(err)
	}
	first, _ := libApp.ListVideoFiles(ctx, &cqe.ListVideoFilesReq{})

	if _, err := libApp.ScanLibrary(ctx, req); err != nil {
		t.Fatal(err)
	}
	second, _ := libApp.ListVideoFiles(ctx, &cqe.ListVideoFilesReq{})

	if second.Total != first.Total {
		t.Fatalf("rescan changed catalog size: %d -> %d", first.Total, second.Total)
	}
	if second.VideoFiles[0].VideoUUID != first.VideoFiles[0].VideoUUID {
		t.Error("rescan must preserve video uuid")
	}
}

func TestScanLibrarySourceNotConfigured(t *testing.T) {
	libApp := NewLibraryApp(newMemVideoRepo(), &memSettingsRepo{settings: entity.DefaultSettings()})
	_, err := libApp.ScanLibrary(context.Background(), &cqe.ScanLibraryReq{ContentType: "tvshows"})
	if code := bizCode(t, err); code != errno.ErrSourcePathNotConfigured.Code {
		t.Errorf("code = %d, want %d", code, errno.ErrSourcePathNotConfigured.Code)
	}
}

func TestScanLibraryInvalidContentType(t *testing.T) {
	libApp := NewLibraryApp(newMemVideoRepo(), &memSettingsRepo{})
	_, err := libApp.ScanLibrary(context.Background(), &cqe.ScanLibraryReq{ContentType: "music"})
	if code := bizCode(t, err); code != errno.ErrContentTypeInvalid.Code {
		t.Errorf("code = %d, want %d", code, errno.ErrContentTypeInvalid.Code)
	}
}

func TestResetVideoFile(t *testing.T) {
	videoRepo := newMemVideoRepo()
	video := entity.NewVideoFile(vo.ContentTypeMovies, "/library/movies/bad.mkv", "bad.mkv", 64)
	video.Status = vo.VideoStatusFailed
	videoRepo.put(video)

	libApp := NewLibraryApp(videoRepo, &memSettingsRepo{})
	got, err := libApp.ResetVideoFile(context.Background(), &cqe.VideoFileIDReq{VideoUUID: video.VideoUUID})
	if err != nil {
		t.Fatalf("ResetVideoFile: %v", err)
	}
	if got.Status != vo.VideoStatusPending.String() {
		t.Errorf("status = %s, want pending", got.Status)
	}
	stored, _ := videoRepo.GetByUUID(context.Background(), video.VideoUUID)
	if stored.Status != vo.VideoStatusPending {
		t.Errorf("stored status = %s, want pending", stored.Status)
	}
}

func TestResetVideoFileOnlyFailed(t *testing.T) {
	videoRepo := newMemVideoRepo()
	video := entity.NewVideoFile(vo.ContentTypeMovies, "/library/movies/ok.mkv", "ok.mkv", 64)
	videoRepo.put(video)

	libApp := NewLibraryApp(videoRepo, &memSettingsRepo{})
	_, err := libApp.ResetVideoFile(context.Background(), &cqe.VideoFileIDReq{VideoUUID: video.VideoUUID})
	if code := bizCode(t, err); code != errno.ErrVideoNotResettable.Code {
		t.Errorf("code = %d, want %d", code, errno.ErrVideoNotResettable.Code)
	}
}

func TestResetVideoFileNotFound(t *testing.T) {
	libApp := NewLibraryApp(newMemVideoRepo(), &memSettingsRepo{})
	_, err := libApp.ResetVideoFile(context.Background(), &cqe.VideoFileIDReq{VideoUUID: "missing"})
	if code := bizCode(t, err); code != errno.ErrVideoFileNotFound.Code {
		t.Errorf("code = %d, want %d", code, errno.ErrVideoFileNotFound.Code)
	}
}
