package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// allowedExtensions maps each upload kind to the file extensions it accepts.
var allowedExtensions = map[Kind][]string{
	KindVideo: {".mp4", ".webm", ".mov", ".mkv"},
	KindPDF:   {".pdf", ".doc", ".docx", ".ppt", ".pptx"},
	KindImage: {".jpg", ".jpeg", ".png", ".gif", ".webp"},
}

// LocalStorage saves uploaded files to the local filesystem under a per-kind
// subdirectory.
type LocalStorage struct {
	basePath    string // root directory where files are stored
	maxFileSize int64  // per-file size cap in bytes, 0 means unlimited
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string, maxFileSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath:    basePath,
		maxFileSize: maxFileSize,
	}, nil
}

// Save stores an uploaded file and returns its relative path
// (e.g. "uploads/video/<uuid>.mp4").
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, kind Kind) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrUploadFailed
	}

	if ls.maxFileSize > 0 && fileHeader.Size > ls.maxFileSize {
		return "", fmt.Errorf("%w: %d bytes", apperrors.ErrFileTooLarge, fileHeader.Size)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !extensionAllowed(kind, ext) {
		return "", fmt.Errorf("%w: %s for %s upload", apperrors.ErrUnsupportedFormat, ext, kind)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := filepath.Join(ls.basePath, string(kind))
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create kind subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	// Unique filename to prevent collisions
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join("uploads", string(kind), uniqueFilename))
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", relPath).Msg("File saved")
	return relPath, nil
}

// Delete removes a stored file given its relative path as returned by Save.
// Returns nil if the file does not exist.
func (ls *LocalStorage) Delete(filePath string) error {
	if filePath == "" {
		return nil
	}

	rel := strings.TrimPrefix(filePath, "uploads/")
	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	// Refuse anything that escapes the storage root
	if !strings.HasPrefix(filepath.Clean(physicalPath), filepath.Clean(ls.basePath)) {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func extensionAllowed(kind Kind, ext string) bool {
	for _, allowed := range allowedExtensions[kind] {
		if ext == allowed {
			return true
		}
	}
	return false
}
