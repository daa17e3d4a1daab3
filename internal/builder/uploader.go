package builder

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FileKind selects the upload endpoint for a file.
type FileKind string

const (
	FileVideo FileKind = "video"
	FilePDF   FileKind = "pdf"
	FileImage FileKind = "image"
)

func (k FileKind) endpoint() string {
	return "/uploads/" + string(k)
}

// UploadRequest is one file to push to the server.
type UploadRequest struct {
	Kind      FileKind
	LocalPath string
}

// uploadClient is the slice of the API client the uploader needs.
type uploadClient interface {
	UploadFile(ctx context.Context, endpoint, localPath string) (string, error)
}

// Uploader pushes course assets to the server, either one at a time or as a
// concurrent batch.
type Uploader struct {
	client uploadClient
}

// NewUploader creates an uploader over the given API client.
func NewUploader(client uploadClient) *Uploader {
	return &Uploader{client: client}
}

// UploadVideo uploads a single video file and returns its stored path.
func (u *Uploader) UploadVideo(ctx context.Context, localPath string) (string, error) {
	return u.client.UploadFile(ctx, FileVideo.endpoint(), localPath)
}

// UploadPDF uploads a single document file and returns its stored path.
func (u *Uploader) UploadPDF(ctx context.Context, localPath string) (string, error) {
	return u.client.UploadFile(ctx, FilePDF.endpoint(), localPath)
}

// UploadImage uploads a single image file and returns its stored path.
func (u *Uploader) UploadImage(ctx context.Context, localPath string) (string, error) {
	return u.client.UploadFile(ctx, FileImage.endpoint(), localPath)
}

// UploadMany uploads a batch concurrently. On the first failure the shared
// context is cancelled, in-flight uploads are abandoned, and the first error
// is returned; the caller must treat the whole batch as failed since files
// uploaded before the cancellation are not rolled back. On success the
// returned paths are ordered like the requests.
func (u *Uploader) UploadMany(ctx context.Context, reqs []UploadRequest) ([]string, error) {
	paths := make([]string, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			path, err := u.client.UploadFile(ctx, req.Kind.endpoint(), req.LocalPath)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
