package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded images to avoid redundant
// disk reads.
//
// The cache stores decoded image.Image values keyed by their file path. Once an
// image is loaded, subsequent Load() calls for the same path return the cached
// copy without disk I/O.
//
// # Memory Management
//
// Cached images remain in memory until removed via Evict() or Clear(). Batch
// runs evict each image once it has been processed.
//
// # Example Usage
//
//	cache := imaging.NewImageCache(false)
//	img, err := cache.Load("/path/to/image.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	field := imaging.ToIntensity(img)
//	cache.Evict("/path/to/image.png")
type ImageCache struct {
	mu         sync.RWMutex
	images     map[string]image.Image
	autoOrient bool
}

// NewImageCache creates and initializes a new empty image cache.
//
// When autoOrient is true, JPEG images are rotated according to their EXIF
// orientation tag while decoding.
func NewImageCache(autoOrient bool) *ImageCache {
	return &ImageCache{
		images:     make(map[string]image.Image),
		autoOrient: autoOrient,
	}
}

// Load retrieves an image from the cache or decodes it from disk if not cached.
//
// Supported formats are PNG, JPEG, GIF, BMP and TIFF. The image is cached using
// the exact path string provided.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(c.autoOrient))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp",
	// "tiff" or "unknown". Detection is based on file extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// Grayscale is true when the image has a single channel and is used
	// without luminance conversion.
	Grayscale bool `json:"grayscale"`

	// HasAlpha indicates whether the image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image and returns metadata about it.
//
// # Color Depth Detection
//
// Color depth is determined by the Go image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	info := &ImageInfo{
		Width:         img.Bounds().Dx(),
		Height:        img.Bounds().Dy(),
		Format:        format,
		ColorDepth:    "8-bit",
		FileSizeBytes: stat.Size(),
	}

	switch img.(type) {
	case *image.Gray:
		info.Grayscale = true
	case *image.Gray16:
		info.Grayscale = true
		info.ColorDepth = "16-bit"
	case *image.RGBA, *image.NRGBA:
		info.HasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		info.HasAlpha = true
		info.ColorDepth = "16-bit"
	}

	return info, nil
}

// BaseName returns the file name of path without directory or extension,
// e.g. "/in/portrait.png" -> "portrait".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
