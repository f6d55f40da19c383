// Package image turns raster images (the camera test card, chart previews)
// into terminal output: true-color halfblocks everywhere, or kitty, iTerm2
// and sixel graphics through go-termimg.
package image

import (
	"container/list"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"image"
	"sync"
)

// CacheKey identifies one rendered output.
type CacheKey struct {
	Protocol  Protocol
	Cols      int
	Rows      int
	ImageHash [32]byte
}

// String returns a short key for logs.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%dx%d:%x", k.Protocol, k.Cols, k.Rows, k.ImageHash[:8])
}

type cacheEntry struct {
	key      CacheKey
	rendered string
}

// Cache is an LRU of rendered strings bounded by total byte size. Views
// re-render on every frame, so a hit skips resizing and encoding.
type Cache struct {
	mu       sync.Mutex
	items    map[CacheKey]*list.Element
	order    *list.List // front = most recent
	maxBytes int
	used     int
	hits     int
	misses   int
}

// NewCache creates a cache holding at most maxKB kilobytes. Non-positive
// sizes default to 4 MB.
func NewCache(maxKB int) *Cache {
	if maxKB <= 0 {
		maxKB = 4096
	}
	return &Cache{
		items:    make(map[CacheKey]*list.Element),
		order:    list.New(),
		maxBytes: maxKB * 1024,
	}
}

// Get returns the cached string for key and promotes it.
func (c *Cache) Get(key CacheKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		return "", false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*cacheEntry).rendered, true
}

// Put stores rendered under key, evicting least recently used entries until
// it fits. Entries larger than the whole cache are not stored.
func (c *Cache) Put(key CacheKey, rendered string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(rendered) > c.maxBytes {
		return
	}
	if elem, ok := c.items[key]; ok {
		c.remove(elem)
	}
	for c.used+len(rendered) > c.maxBytes && c.order.Len() > 0 {
		c.remove(c.order.Back())
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, rendered: rendered})
	c.used += len(rendered)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *Cache) remove(elem *list.Element) {
	e := c.order.Remove(elem).(*cacheEntry)
	delete(c.items, e.key)
	c.used -= len(e.rendered)
}

// hashImage hashes the dimensions plus every pixel for small images, or a
// 32x32 sample grid for large ones.
func hashImage(img image.Image) [32]byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	hasher := sha256.New()
	var dim [8]byte
	binary.LittleEndian.PutUint32(dim[:4], uint32(w))
	binary.LittleEndian.PutUint32(dim[4:], uint32(h))
	hasher.Write(dim[:])

	var px [4]byte
	write := func(x, y int) {
		r, g, bl, a := img.At(x, y).RGBA()
		px[0], px[1], px[2], px[3] = uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8)
		hasher.Write(px[:])
	}
	if w*h <= 65536 {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				write(x, y)
			}
		}
	} else {
		for sy := range 32 {
			for sx := range 32 {
				write(b.Min.X+sx*w/32, b.Min.Y+sy*h/32)
			}
		}
	}

	var sum [32]byte
	copy(sum[:], hasher.Sum(nil))
	return sum
}
