package utils

import "sync"

// 并发安全容器工具（WebSocket 连接注册表用它保存所有在线连接）
type Map struct {
	sync.RWMutex
	m map[interface{}]interface{}
}

func (m *Map) init() { // 延迟初始化。只有在第一次写入时才创建底层的 map
	if m.m == nil {
		m.m = make(map[interface{}]interface{})
	}
}

func (m *Map) UnsafeGet(key interface{}) interface{} {
	if m.m == nil {
		return nil
	}
	return m.m[key]
}

func (m *Map) Get(key interface{}) interface{} {
	m.RLock()
	defer m.RUnlock()
	return m.UnsafeGet(key)
}

func (m *Map) UnsafeSet(key interface{}, value interface{}) {
	m.init()
	m.m[key] = value
}

func (m *Map) Set(key interface{}, value interface{}) {
	m.Lock()
	defer m.Unlock()
	m.UnsafeSet(key, value)
}

// TestAndSet 检查某个 Key 是否存在，如果不存在则设置新值并返回 nil；
// 如果已存在则返回旧值。防止重复注册连接时非常有用。
func (m *Map) TestAndSet(key interface{}, value interface{}) interface{} {
	m.Lock()
	defer m.Unlock()
	m.init()
	if v, ok := m.m[key]; ok {
		return v
	}
	m.m[key] = value
	return nil
}

func (m *Map) UnsafeDel(key interface{}) {
	m.init()
	delete(m.m, key)
}

func (m *Map) Del(key interface{}) {
	m.Lock()
	defer m.Unlock()
	m.UnsafeDel(key)
}

func (m *Map) UnsafeLen() int {
	if m.m == nil {
		return 0
	}
	return len(m.m)
}

func (m *Map) Len() int {
	m.RLock()
	defer m.RUnlock()
	return m.UnsafeLen()
}

func (m *Map) UnsafeRange(f func(interface{}, interface{})) {
	if m.m == nil {
		return
	}
	for k, v := range m.m {
		f(k, v)
	}
}

// RLockRange 读锁遍历，允许多个读者同时进来
func (m *Map) RLockRange(f func(interface{}, interface{})) {
	m.RLock()
	defer m.RUnlock()
	m.UnsafeRange(f)
}

// LockRange 写锁遍历，f 里要改 map 时用这个
func (m *Map) LockRange(f func(interface{}, interface{})) {
	m.Lock()
	defer m.Unlock()
	m.UnsafeRange(f)
}
