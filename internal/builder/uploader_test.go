package builder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

type fakeUploadClient struct {
	mu    sync.Mutex
	calls []string
	// failOn marks local paths whose upload fails
	failOn map[string]error
	// blockUntilCancel makes paths wait for context cancellation
	blockUntilCancel map[string]bool
}

func (f *fakeUploadClient) UploadFile(ctx context.Context, endpoint, localPath string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, localPath)
	f.mu.Unlock()

	if f.blockUntilCancel[localPath] {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if err, ok := f.failOn[localPath]; ok {
		return "", err
	}
	return "uploads" + endpoint + "/" + localPath, nil
}

func TestUploadManyPreservesOrder(t *testing.T) {
	client := &fakeUploadClient{}
	uploader := NewUploader(client)

	reqs := []UploadRequest{
		{Kind: FileVideo, LocalPath: "a.mp4"},
		{Kind: FilePDF, LocalPath: "b.pdf"},
		{Kind: FileImage, LocalPath: "c.png"},
	}

	paths, err := uploader.UploadMany(context.Background(), reqs)
	if err != nil {
		t.Fatalf("UploadMany failed: %v", err)
	}
	want := []string{
		"uploads/uploads/video/a.mp4",
		"uploads/uploads/pdf/b.pdf",
		"uploads/uploads/image/c.png",
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d: got %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestUploadManyFailFast(t *testing.T) {
	uploadErr := errors.New("disk full")
	client := &fakeUploadClient{
		failOn:           map[string]error{"b.pdf": uploadErr},
		blockUntilCancel: map[string]bool{"c.png": true},
	}
	uploader := NewUploader(client)

	reqs := []UploadRequest{
		{Kind: FileVideo, LocalPath: "a.mp4"},
		{Kind: FilePDF, LocalPath: "b.pdf"},
		{Kind: FileImage, LocalPath: "c.png"},
	}

	// The blocked upload only finishes when the failing one cancels the
	// shared context, so returning at all proves the fail-fast propagation.
	paths, err := uploader.UploadMany(context.Background(), reqs)
	if !errors.Is(err, uploadErr) {
		t.Fatalf("expected upload error, got %v", err)
	}
	if paths != nil {
		t.Errorf("expected nil paths on failure, got %v", paths)
	}
}

func TestUploadManyEmpty(t *testing.T) {
	uploader := NewUploader(&fakeUploadClient{})

	paths, err := uploader.UploadMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("UploadMany failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestUploadManyLargeBatch(t *testing.T) {
	client := &fakeUploadClient{}
	uploader := NewUploader(client)

	var reqs []UploadRequest
	for i := 0; i < 50; i++ {
		reqs = append(reqs, UploadRequest{Kind: FilePDF, LocalPath: fmt.Sprintf("doc-%02d.pdf", i)})
	}

	paths, err := uploader.UploadMany(context.Background(), reqs)
	if err != nil {
		t.Fatalf("UploadMany failed: %v", err)
	}
	for i, p := range paths {
		want := fmt.Sprintf("uploads/uploads/pdf/doc-%02d.pdf", i)
		if p != want {
			t.Errorf("path %d: got %q, want %q", i, p, want)
		}
	}
}
