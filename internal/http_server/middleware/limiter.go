package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// SlidingWindowLimiter 滑动窗口限流器
type SlidingWindowLimiter struct {
	windowSize     time.Duration
	maxRequests    int
	requestRecords map[string][]time.Time
	mu             sync.Mutex
	stop           chan struct{}
	stopOnce       sync.Once
}

func NewSlidingWindowLimiter(windowSize time.Duration, maxRequests int) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windowSize:     windowSize,
		maxRequests:    maxRequests,
		requestRecords: make(map[string][]time.Time),
		stop:           make(chan struct{}),
	}
}

// Allow 检查是否允许请求, 允许时记录本次请求
func (l *SlidingWindowLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-l.windowSize)
	records := l.requestRecords[key]
	for len(records) > 0 && records[0].Before(windowStart) {
		records = records[1:]
	}

	if len(records) >= l.maxRequests {
		l.requestRecords[key] = records
		return false
	}

	l.requestRecords[key] = append(records, now)
	return true
}

func (l *SlidingWindowLimiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.cleanup()
			case <-l.stop:
				return
			}
		}
	}()
}

// Invoke 停止后台清理
func (l *SlidingWindowLimiter) Invoke(_ context.Context) error {
	l.stopOnce.Do(func() { close(l.stop) })
	return nil
}

func (l *SlidingWindowLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	threshold := time.Now().Add(-l.windowSize)
	for key, records := range l.requestRecords {
		if len(records) == 0 || records[len(records)-1].Before(threshold) {
			delete(l.requestRecords, key)
		}
	}
}

func RateLimitMiddleware(limiter *SlidingWindowLimiter, keyFunc func(c echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(keyFunc(c)) {
				return service.NewErrorResponse(c, &service.ErrRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// CombinedKeyFunc 组合IP和端点生成键
func CombinedKeyFunc(c echo.Context) string {
	return c.RealIP() + "|" + c.Path()
}
