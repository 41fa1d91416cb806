package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultCacheCapacity = 8

type textureEntry struct {
	texture  *sdl.Texture
	lastUsed uint64
}

// TextureCache is a small LRU cache for rendered textures (chrome text,
// icons, transition snapshots). Evicted textures are destroyed, so callers
// must not hold a texture across frames without re-looking it up.
type TextureCache struct {
	entries  map[string]*textureEntry
	capacity int
	clock    uint64
}

// NewTextureCache creates a cache holding at most capacity textures.
// A capacity of zero or less uses the default.
func NewTextureCache(capacity int) *TextureCache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &TextureCache{
		entries:  make(map[string]*textureEntry, capacity),
		capacity: capacity,
	}
}

// Lookup returns the cached texture for key, or nil.
func (c *TextureCache) Lookup(key string) *sdl.Texture {
	entry, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.clock++
	entry.lastUsed = c.clock
	return entry.texture
}

// Store caches texture under key, destroying any texture previously stored
// there and evicting the least recently used entry when full.
func (c *TextureCache) Store(key string, texture *sdl.Texture) {
	c.clock++

	if entry, ok := c.entries[key]; ok {
		if entry.texture != texture {
			entry.texture.Destroy()
		}
		entry.texture = texture
		entry.lastUsed = c.clock
		return
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = &textureEntry{texture: texture, lastUsed: c.clock}
}

// Invalidate destroys and removes the entry for key, if present.
func (c *TextureCache) Invalidate(key string) {
	if entry, ok := c.entries[key]; ok {
		entry.texture.Destroy()
		delete(c.entries, key)
	}
}

func (c *TextureCache) evictOldest() {
	var oldestKey string
	var oldest uint64
	first := true
	for key, entry := range c.entries {
		if first || entry.lastUsed < oldest {
			oldestKey, oldest = key, entry.lastUsed
			first = false
		}
	}
	if !first {
		c.entries[oldestKey].texture.Destroy()
		delete(c.entries, oldestKey)
	}
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	for key, entry := range c.entries {
		entry.texture.Destroy()
		delete(c.entries, key)
	}
}
