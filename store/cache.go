package store

import (
	"container/list"
	"sync"

	"github.com/Xwdgood/Virtual-GP/model"
)

// LRU cache of parsed user blobs, keyed by email. Sits in front of the MySQL
// store so repeated reads of the same session user skip JSON decoding.
type userCache struct {
	mu       sync.Mutex
	ll       *list.List
	entries  map[string]*list.Element
	capacity int
}

type cacheEntry struct {
	email string
	user  model.UserData
}

func newUserCache(capacity int) *userCache {
	if capacity <= 0 {
		capacity = 256
	}
	return &userCache{
		ll:       list.New(),
		entries:  make(map[string]*list.Element),
		capacity: capacity,
	}
}

func (c *userCache) get(email string) (model.UserData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ele, ok := c.entries[email]
	if !ok {
		return model.UserData{}, false
	}
	c.ll.MoveToFront(ele)
	return ele.Value.(cacheEntry).user, true
}

func (c *userCache) set(email string, user model.UserData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.entries[email]; ok {
		c.ll.MoveToFront(ele)
		ele.Value = cacheEntry{email: email, user: user}
		return
	}
	c.entries[email] = c.ll.PushFront(cacheEntry{email: email, user: user})
	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			delete(c.entries, tail.Value.(cacheEntry).email)
			c.ll.Remove(tail)
		}
	}
}

func (c *userCache) invalidate(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ele, ok := c.entries[email]; ok {
		delete(c.entries, email)
		c.ll.Remove(ele)
	}
}
