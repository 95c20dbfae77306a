// Package utils
package utils

import "sync"

type keyedLock struct {
	mu      sync.Mutex
	waiters int
}

// KeyedMutex 按key加互斥锁, 不同key之间互不阻塞, 无人持有的锁会被回收
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedLock)}
}

// Lock 获取key对应的锁, 返回的函数用于释放
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	lock, ok := k.locks[key]
	if !ok {
		lock = &keyedLock{}
		k.locks[key] = lock
	}
	lock.waiters++
	k.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()
		k.mu.Lock()
		lock.waiters--
		if lock.waiters == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// Len 当前被持有或等待中的key数量
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
