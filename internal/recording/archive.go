package recording

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Archive keeps a copy of every uploaded recording and returns where it went.
type Archive interface {
	Save(ctx context.Context, audio []byte, extension, contentType string) (string, error)
}

func objectName(extension string) string {
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		extension = "bin"
	}
	return fmt.Sprintf("user_recorded_%s.%s", uuid.New().String(), extension)
}

type LocalArchive struct {
	dir string
}

func NewLocalArchive(dir string) (*LocalArchive, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recordings directory: %w", err)
	}
	return &LocalArchive{dir: dir}, nil
}

func (a *LocalArchive) Save(_ context.Context, audio []byte, extension, _ string) (string, error) {
	path := filepath.Join(a.dir, objectName(extension))
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		return "", fmt.Errorf("failed to write recording: %w", err)
	}
	return path, nil
}

// Discard is used when archiving is switched off.
type Discard struct{}

func (Discard) Save(context.Context, []byte, string, string) (string, error) {
	return "", nil
}
