package capture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileDevicePicksNewestImage(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name string, mod time.Time) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("fake image "+name), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}

	base := time.Now().Add(-time.Hour)
	writeFile("old.jpg", base)
	writeFile("newest.png", base.Add(10*time.Minute))
	writeFile("notes.txt", base.Add(20*time.Minute))

	photo, err := NewFileDevice(dir).Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if !strings.HasPrefix(string(photo), "data:image/png;base64,") {
		t.Errorf("expected newest.png as a png data URL, got prefix %q", string(photo)[:30])
	}
}

func TestFileDeviceEmptyDir(t *testing.T) {
	if _, err := NewFileDevice(t.TempDir()).Capture(); err == nil {
		t.Error("expected an error for a directory with no images")
	}
}

func TestFileDeviceMissingDir(t *testing.T) {
	if _, err := NewFileDevice(filepath.Join(t.TempDir(), "nope")).Capture(); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestStubDeviceProducesDistinctPhotos(t *testing.T) {
	d := NewStubDevice()

	a, err := d.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	b, err := d.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if a == b {
		t.Error("stub captures should differ")
	}
	if !strings.HasPrefix(string(a), "data:image/jpeg;base64,") {
		t.Errorf("stub photo should be a jpeg data URL, got %q", a)
	}
}
