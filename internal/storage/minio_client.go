package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"blogsphere/internal/config"
)

// Storage keeps uploaded post images and hands back a public URL for each.
type Storage interface {
	UploadImage(ctx context.Context, fileName, ext, contentType string, file io.Reader, size int64) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    config.MinIO
}

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// NewMinIOClient connects to the object store and makes sure the image bucket
// exists. A freshly created bucket gets an anonymous read policy so the
// returned URLs can be used directly in <img> tags.
func NewMinIOClient(ctx context.Context, cfg config.MinIO, log logrus.FieldLogger) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, errors.Wrapf(err, "check bucket %q", cfg.BucketName)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, errors.Wrapf(err, "create bucket %q", cfg.BucketName)
		}

		policy := fmt.Sprintf(publicReadPolicy, cfg.BucketName)
		if err := client.SetBucketPolicy(ctx, cfg.BucketName, policy); err != nil {
			return nil, errors.Wrapf(err, "set policy on bucket %q", cfg.BucketName)
		}

		log.WithField("bucket", cfg.BucketName).Info("created image bucket")
	}

	log.WithFields(logrus.Fields{
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.BucketName,
	}).Info("connected to MinIO")

	return &MinIOClient{client: client, cfg: cfg}, nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName, ext, contentType string, file io.Reader, size int64) (string, error) {
	now := time.Now()
	name := objectName(now, uuid.New(), ext)

	_, err := m.client.PutObject(ctx, m.cfg.BucketName, name, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", errors.Wrapf(err, "put object %s", name)
	}

	return objectURL(m.cfg.PublicURL, m.cfg.BucketName, name), nil
}

func objectName(now time.Time, id uuid.UUID, ext string) string {
	return fmt.Sprintf("posts/%d/%02d/%s%s", now.Year(), now.Month(), id.String(), strings.ToLower(ext))
}

func objectURL(publicURL, bucket, object string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(publicURL, "/"), bucket, object)
}
