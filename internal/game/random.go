// Package game
package game

import (
	"math/rand/v2"
	"sync"
)

// Random 游戏使用的随机源, 实现必须并发安全
type Random interface {
	IntN(n int) int
	Float64() float64
}

type lockedRandom struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewRandom 返回使用固定种子的随机源, 相同种子产生相同序列
func NewRandom(seed uint64) Random {
	return &lockedRandom{random: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSystemRandom 返回随机种子的随机源
func NewSystemRandom() Random {
	return NewRandom(rand.Uint64())
}

func (r *lockedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.IntN(n)
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// intBetween 在闭区间[low, high]内均匀取整数
func intBetween(random Random, low, high int) int {
	if high <= low {
		return low
	}
	return low + random.IntN(high-low+1)
}

// shuffle Fisher-Yates 洗牌
func shuffle[T any](random Random, src []T) {
	for i := len(src) - 1; i > 0; i-- {
		j := random.IntN(i + 1)
		src[i], src[j] = src[j], src[i]
	}
}
