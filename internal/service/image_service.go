package service

import (
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"blogsphere/internal/storage"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type ImageService interface {
	UploadImage(ctx context.Context, fileName string, file io.ReadSeeker, size int64) (string, error)
}

type imageService struct {
	storage storage.Storage
}

func NewImageService(store storage.Storage) ImageService {
	return &imageService{storage: store}
}

// UploadImage sniffs the file content, rejects anything that is not a
// supported image, and stores it. The declared file name never decides the
// type.
func (i *imageService) UploadImage(ctx context.Context, fileName string, file io.ReadSeeker, size int64) (string, error) {
	if i.storage == nil {
		return "", ErrStorageDisabled
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", errors.Wrap(err, "detect content type")
	}

	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		return "", ErrUnsupportedImage
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "rewind upload")
	}

	return i.storage.UploadImage(ctx, fileName, mtype.Extension(), mtype.String(), file, size)
}
