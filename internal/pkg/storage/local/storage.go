package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"brokerage/internal/entities"
	"brokerage/internal/pkg/config"

	"github.com/google/uuid"
)

// PublicPrefix префикс сохраненных путей, по нему же файлы раздаются по HTTP.
const PublicPrefix = "uploads"

var (
	ErrFileTooLarge       = errors.New("file is too large")
	ErrUnsupportedFile    = errors.New("unsupported file type")
	ErrInvalidStoragePath = errors.New("invalid storage path")
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

type Storage struct {
	dir     string
	maxSize int64
}

func New(cfg *config.Storage) (*Storage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", cfg.UploadDir, err)
	}
	return &Storage{dir: cfg.UploadDir, maxSize: cfg.MaxUploadSize}, nil
}

// Dir каталог с файлами для раздачи статики.
func (s *Storage) Dir() string {
	return s.dir
}

// Save пишет файл под случайным именем и возвращает путь вида uploads/<uuid><ext>.
// Недописанный файл удаляется.
func (s *Storage) Save(ctx context.Context, image entities.Image) (string, error) {
	ext, err := extension(image)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	full := filepath.Join(s.dir, name)

	file, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	written, err := io.Copy(file, io.LimitReader(image.Content, s.maxSize+1))
	closeErr := file.Close()

	switch {
	case err != nil:
		err = fmt.Errorf("write file: %w", err)
	case closeErr != nil:
		err = fmt.Errorf("close file: %w", closeErr)
	case written > s.maxSize:
		err = fmt.Errorf("%w: limit %d bytes", ErrFileTooLarge, s.maxSize)
	case ctx.Err() != nil:
		err = ctx.Err()
	}
	if err != nil {
		_ = os.Remove(full)
		return "", err
	}

	return path.Join(PublicPrefix, name), nil
}

// Remove удаляет ранее сохраненный файл, отсутствие файла не ошибка.
func (s *Storage) Remove(_ context.Context, stored string) error {
	name, ok := strings.CutPrefix(stored, PublicPrefix+"/")
	if !ok || name == "" || name != path.Base(name) {
		return fmt.Errorf("%w: %q", ErrInvalidStoragePath, stored)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func extension(image entities.Image) (string, error) {
	ext := strings.ToLower(filepath.Ext(image.Filename))
	if ext == "" && image.ContentType != "" {
		if exts, _ := mime.ExtensionsByType(image.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, image.Filename)
	}
	return ext, nil
}
