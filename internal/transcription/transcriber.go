package transcription

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupportedMedia = errors.New("unsupported media type")

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// acceptedVideo lists containers that usually carry only an audio track when recorded in a browser.
var acceptedVideo = map[string]bool{
	"video/webm": true,
	"video/mp4":  true,
	"video/ogg":  true,
}

// CheckMedia sniffs the content and rejects anything that is not audio.
func CheckMedia(audio []byte) (*mimetype.MIME, error) {
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrUnsupportedMedia)
	}
	mtype := mimetype.Detect(audio)
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") || acceptedVideo[m.String()] {
			return mtype, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, mtype.String())
}

// TranscribeFile reads a recording from disk. A missing file yields an empty transcript and an error.
func TranscribeFile(ctx context.Context, t Transcriber, path string) (string, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read audio file: %w", err)
	}
	return t.Transcribe(ctx, filepath.Base(path), audio)
}
