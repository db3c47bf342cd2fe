package requestctx

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_PutGetLookup(t *testing.T) {
	s := NewStore()

	_, ok := s.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, "", s.Get("missing"))
	assert.Equal(t, "fallback", s.GetDefault("missing", "fallback"))

	s.Put("key", "value")
	v, ok := s.Lookup("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Equal(t, "value", s.GetDefault("key", "fallback"))
}

func TestNewStoreFromEnviron(t *testing.T) {
	s := NewStoreFromEnviron([]string{
		"GAE_SERVICE=worker",
		"GAE_VERSION=v1",
		"EMPTY=",
		"WITH=an=equals",
		"malformed",
		"=nokey",
	})

	assert.Equal(t, "worker", s.Get("GAE_SERVICE"))
	assert.Equal(t, "", s.Get("EMPTY"))
	assert.Equal(t, "an=equals", s.Get("WITH"))
	_, ok := s.Lookup("malformed")
	assert.False(t, ok)
	_, ok = s.Lookup("")
	assert.False(t, ok)
}

func TestStore_ItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Put("key", "value")

	items := s.Items()
	items["key"] = "mutated"
	assert.Equal(t, "value", s.Get("key"))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Put("key", "value")
	s.Clear()

	_, ok := s.Lookup("key")
	assert.False(t, ok)
}

func TestStore_Context(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	s := NewStore()
	ctx := WithStore(context.Background(), s)
	assert.Same(t, s, FromContext(ctx))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Put("key", "value")
		}()
		go func() {
			defer wg.Done()
			s.Get("key")
			s.Items()
		}()
	}
	wg.Wait()
	assert.Equal(t, "value", s.Get("key"))
}
