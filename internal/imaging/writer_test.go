package imaging

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSink_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portrait_sobel.png")

	img := image.NewGray(image.Rect(0, 0, 5, 3))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 17)
	}

	var sink FileSink
	if err := sink.Save(path, img); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	decoded, err := NewImageCache(false).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	gray, ok := decoded.(*image.Gray)
	if !ok {
		t.Fatalf("decoded type: got %T, want *image.Gray", decoded)
	}
	for i := range img.Pix {
		if gray.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d]: got %d, want %d", i, gray.Pix[i], img.Pix[i])
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file, found %d entries", len(entries))
	}
}

func TestFileSink_Save_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	var sink FileSink

	if err := sink.Save(path, image.NewGray(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := sink.Save(path, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	img, err := NewImageCache(false).Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("width: got %d, want 2", img.Bounds().Dx())
	}
}

func TestFileSink_Save_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	var sink FileSink
	if err := sink.Save(path, image.NewGray(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("Save should fail when the directory does not exist")
	}
}

func TestFileSink_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	var sink FileSink
	if err := sink.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	// Second call on an existing directory is a no-op.
	if err := sink.EnsureDir(dir); err != nil {
		t.Fatalf("second EnsureDir failed: %v", err)
	}

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestFileSink_EnsureDir_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var sink FileSink
	if err := sink.EnsureDir(filepath.Join(file, "sub")); err == nil {
		t.Error("EnsureDir should fail below a regular file")
	}
}

func TestFileSink_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	var sink FileSink

	if err := sink.Save(path, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := sink.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists: %v", err)
	}

	// Removing again is not an error.
	if err := sink.Remove(path); err != nil {
		t.Errorf("second Remove failed: %v", err)
	}
}
