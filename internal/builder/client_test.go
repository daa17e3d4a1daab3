package builder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
)

func TestClientCreateCourse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/courses" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("missing bearer token, got %q", got)
		}

		var req dto.CreateCourseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.APIResponse{Data: dto.CourseResponse{
			ID:     7,
			Title:  req.Title,
			Status: models.StatusDraft,
		}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok")

	course, err := client.CreateCourse(context.Background(), &dto.CreateCourseRequest{Title: "Intro to Go"})
	if err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if course.ID != 7 || course.Title != "Intro to Go" || course.Status != models.StatusDraft {
		t.Errorf("unexpected course: %+v", course)
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConflict, "The resource was modified concurrently, reload and retry"),
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.SubmitCourse(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail == nil || apiErr.Detail.Code != dto.ErrorCodeConflict {
		t.Errorf("error detail not decoded: %+v", apiErr.Detail)
	}
}

func TestClientUploadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/uploads/pdf" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "notes.pdf" {
			t.Errorf("unexpected filename %q", header.Filename)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.APIResponse{Data: dto.UploadResponse{URL: "uploads/pdf/abc.pdf"}})
	}))
	defer srv.Close()

	localPath := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(localPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	client := NewClient(srv.URL)
	path, err := client.UploadFile(context.Background(), "/uploads/pdf", localPath)
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}
	if path != "uploads/pdf/abc.pdf" {
		t.Errorf("unexpected stored path %q", path)
	}
}

func TestClientUploadMissingFile(t *testing.T) {
	client := NewClient("http://localhost:0")
	_, err := client.UploadFile(context.Background(), "/uploads/pdf", "/does/not/exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing local file")
	}
}
