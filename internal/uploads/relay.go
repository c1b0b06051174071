package uploads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vopial/kyc-backend/internal/config"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// Identity documents only: scans/photos of the ID sides plus a company file.
var allowedContentTypes = map[string]struct{}{
	"image/jpg":       {},
	"image/jpeg":      {},
	"image/png":       {},
	"application/pdf": {},
}

type Uploader interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}

// Document is one file part of a registration submission; Field is the form
// key it arrived under (file, frontSide, backSide).
type Document struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

// Relay fans a submission's documents out to the storage backend. The batch
// is all-or-nothing: a single failed upload fails the whole submission so a
// record is never persisted with a partial attachment set.
type Relay struct {
	uploader    Uploader
	maxFileSize int64
	timeout     time.Duration
}

func NewRelay(uploader Uploader, cfg config.UploadsConfig) *Relay {
	return &Relay{
		uploader:    uploader,
		maxFileSize: cfg.MaxFileSize,
		timeout:     cfg.Timeout,
	}
}

// UploadAll validates and pushes every document concurrently, returning the
// resulting URLs keyed by form field. The first failure cancels the rest.
func (r *Relay) UploadAll(ctx context.Context, documents []Document) (map[string]string, error) {
	for _, doc := range documents {
		if err := r.validate(doc); err != nil {
			return nil, err
		}
	}

	urls := make([]string, len(documents))

	g, ctx := errgroup.WithContext(ctx)
	for i, doc := range documents {
		i, doc := i, doc
		g.Go(func() error {
			uploadCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			url, err := r.uploader.Upload(uploadCtx, doc.FileName, doc.Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", doc.Field, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	byField := make(map[string]string, len(documents))
	for i, doc := range documents {
		byField[doc.Field] = urls[i]
	}

	return byField, nil
}

func (r *Relay) validate(doc Document) error {
	if _, ok := allowedContentTypes[doc.ContentType]; !ok {
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, doc.Field, doc.ContentType)
	}

	if int64(len(doc.Data)) > r.maxFileSize {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, doc.Field, r.maxFileSize)
	}

	return nil
}
