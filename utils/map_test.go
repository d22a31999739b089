package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapBasic(t *testing.T) {
	m := Map{}

	// 零值可用，不需要构造函数
	assert.Nil(t, m.Get("a"))
	assert.Equal(t, 0, m.Len())

	m.Set("a", 1)
	m.Set("b", 2)
	assert.Equal(t, 1, m.Get("a"))
	assert.Equal(t, 2, m.Len())

	m.Del("a")
	assert.Nil(t, m.Get("a"))
	assert.Equal(t, 1, m.Len())
}

func TestMapTestAndSet(t *testing.T) {
	m := Map{}

	// 第一次设置返回 nil，重复设置返回旧值且不覆盖
	assert.Nil(t, m.TestAndSet("id", "first"))
	assert.Equal(t, "first", m.TestAndSet("id", "second"))
	assert.Equal(t, "first", m.Get("id"))
}

func TestMapRLockRange(t *testing.T) {
	m := Map{}
	for _, k := range []string{"a", "b", "c"} {
		m.Set(k, k)
	}

	seen := map[interface{}]bool{}
	m.RLockRange(func(k, v interface{}) {
		seen[k] = true
	})
	assert.Len(t, seen, 3)
}

func TestMapConcurrent(t *testing.T) {
	m := Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Set(n, n)
			_ = m.Get(n)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, m.Len())
}
