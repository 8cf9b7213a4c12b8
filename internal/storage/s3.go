// internal/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxImageSize caps decoded partner images at 10MB.
const MaxImageSize = 10 * 1024 * 1024

// Allowed image MIME types, keyed to object key extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// S3Config holds S3 client configuration.
type S3Config struct {
	Region string
	Bucket string
	// PublicURL is the base URL objects are served from. Empty means the
	// standard bucket endpoint.
	PublicURL string
}

// S3 stores partner images sent inline as data URLs. Credentials come from
// the default AWS chain (environment, shared config, instance role).
type S3 struct {
	uploader *manager.Uploader
	cfg      S3Config
}

func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	return &S3{
		uploader: manager.NewUploader(client),
		cfg:      cfg,
	}, nil
}

// UploadDataURL decodes a "data:<mime>;base64,<payload>" string, uploads
// the bytes under key plus the type's extension and returns the public URL.
func (s *S3) UploadDataURL(ctx context.Context, key string, dataURL string) (string, error) {
	mimeType, payload, err := splitDataURL(dataURL)
	if err != nil {
		return "", err
	}

	ext, ok := allowedImageTypes[mimeType]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", mimeType)
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decoding image payload: %w", err)
	}
	if len(decoded) > MaxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", MaxImageSize)
	}

	objectKey := key + ext
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}

	url := s.objectURL(objectKey)
	slog.InfoContext(ctx, "stored partner image", "key", objectKey, "bytes", len(decoded))
	return url, nil
}

func (s *S3) objectURL(key string) string {
	if s.cfg.PublicURL != "" {
		return strings.TrimSuffix(s.cfg.PublicURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func splitDataURL(dataURL string) (mimeType, payload string, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", "", fmt.Errorf("not a data URL")
	}
	head, payload, found := strings.Cut(dataURL[len("data:"):], ";base64,")
	if !found {
		return "", "", fmt.Errorf("data URL is not base64 encoded")
	}
	return head, payload, nil
}
