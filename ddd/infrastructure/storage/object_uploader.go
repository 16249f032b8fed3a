package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"subflix/ddd/domain/repo"
	"subflix/pkg/logger"
)

// ObjectUploader ships completed outputs to an S3-compatible object store
// (MinIO, or any CDN storage zone speaking the S3 API). Credentials come from
// the runtime settings store, so the connector picks up changes without a
// restart. Upload outcomes never feed back into job state.
type ObjectUploader struct {
	settingsRepo repo.SettingsRepository
}

// NewObjectUploader 创建对象存储上传连接器
func NewObjectUploader(settingsRepo repo.SettingsRepository) *ObjectUploader {
	return &ObjectUploader{settingsRepo: settingsRepo}
}

// UploadOutput uploads one finished output file. Missing or incomplete upload
// settings mean the connector is disabled; that is not an error.
func (u *ObjectUploader) UploadOutput(ctx context.Context, outputPath, videoUUID string) error {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("read upload settings: %w", err)
	}
	if !settings.UploadConfigured() {
		logger.Debugf("upload connector disabled, skipping video_uuid=%s", videoUUID)
		return nil
	}

	client, err := minio.New(settings.UploadEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(settings.UploadAccessKey, settings.UploadSecretKey, ""),
		Secure: settings.UploadUseSSL,
	})
	if err != nil {
		return fmt.Errorf("create object storage client: %w", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat output file: %w", err)
	}

	objectKey := filepath.Base(outputPath)
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(outputPath)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, settings.UploadBucket, objectKey, file, info.Size(), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload output to bucket %s: %w", settings.UploadBucket, err)
	}

	logger.Info("output uploaded", map[string]interface{}{
		"video_uuid": videoUUID,
		"object_key": objectKey,
		"bucket":     settings.UploadBucket,
		"size":       info.Size(),
	})
	return nil
}
