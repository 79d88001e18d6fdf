package capture

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/elliotskunk/stumble/internal/stumble"
)

// maxPhotoBytes guards against accidentally inlining huge files into
// an LLM request.
const maxPhotoBytes = 8 << 20

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// FileDevice treats a directory as a camera roll: each capture picks
// the newest image file in the directory and returns it as a data URL.
type FileDevice struct {
	dir string
}

// NewFileDevice watches dir for image files.
func NewFileDevice(dir string) *FileDevice {
	return &FileDevice{dir: dir}
}

func (d *FileDevice) Name() string {
	return fmt.Sprintf("photos in %s", d.dir)
}

// Capture returns the most recently modified image in the watched
// directory, base64-encoded as a data URL.
func (d *FileDevice) Capture() (stumble.Photo, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return "", fmt.Errorf("read photo dir: %w", err)
	}

	var (
		newest    string
		newestMod time.Time
		mime      string
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m, ok := imageMIMETypes[strings.ToLower(filepath.Ext(e.Name()))]
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = e.Name()
			newestMod = info.ModTime()
			mime = m
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no image files in %s", d.dir)
	}

	raw, err := os.ReadFile(filepath.Join(d.dir, newest))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(raw) > maxPhotoBytes {
		return "", fmt.Errorf("photo %s too large (%d bytes)", newest, len(raw))
	}

	return stumble.Photo("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)), nil
}
