package loader

import "sync"

// Cache 按源标识缓存解析结果的协作者
// 注入式缓存取代进程级全局状态；值按键只写一次且幂等，
// 并发加载同一源最多造成重复解析，不会产生不一致结果
type Cache interface {
	Get(key string) (any, bool)
	Put(key string, value any)
}

// MemoryCache 进程内存缓存（无淘汰：源集合是固定的 35 张内置表）
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]any
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]any)}
}

// Get 读取缓存
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

// Put 写入缓存
func (c *MemoryCache) Put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Len 当前缓存条目数
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// nopCache 不缓存（用于测试或禁用缓存的场景）
type nopCache struct{}

func (nopCache) Get(string) (any, bool) { return nil, false }
func (nopCache) Put(string, any)        {}
