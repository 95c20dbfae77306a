package base

import (
	"context"
	"fmt"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const (
	callbackTimeout       = 10 * time.Second
	loggerShutdownTimeout = 3 * time.Second
)

// Cleaner 按注册的倒序执行关闭回调
type Cleaner struct {
	cleaners       []Callable
	mu             sync.Mutex
	cleaning       bool
	loggerShutdown Callable
	logger         LoggerInterface
	exit           func(code int)
}

func NewCleaner(logger LoggerInterface) *Cleaner {
	return &Cleaner{
		cleaners:       make([]Callable, 0),
		loggerShutdown: logger.ShutdownCallback(),
		logger:         logger,
		exit:           os.Exit,
	}
}

func (c *Cleaner) Add(callable Callable) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cleaning {
		c.logger.Debug("Cleaner is already shutting down, ignoring new cleaner")
		return
	}
	c.cleaners = append(c.cleaners, callable)
	c.logger.DebugF("Adding cleaner #%d (%T)", len(c.cleaners), callable)
}

// runCallbacks 执行全部回调并返回失败的错误
func (c *Cleaner) runCallbacks() []error {
	c.mu.Lock()
	if c.cleaning {
		c.mu.Unlock()
		return nil
	}
	c.cleaning = true
	cleanersCopy := make([]Callable, len(c.cleaners))
	copy(cleanersCopy, c.cleaners)
	c.mu.Unlock()

	c.logger.DebugF("Starting cleanup of %d registered functions", len(cleanersCopy))

	var errs []error
	utils.ReverseForEach(cleanersCopy, func(idx int, callback Callable) {
		c.logger.DebugF("Invoking cleaner #%d (%T)", idx+1, callback)
		timeoutCtx, cancelFunc := context.WithTimeout(context.Background(), callbackTimeout)
		defer cancelFunc()
		if err := callback.Invoke(timeoutCtx); err != nil {
			c.logger.ErrorF("Cleaner #%d (%T) failed: %v", idx+1, callback, err)
			errs = append(errs, err)
		}
	})
	return errs
}

func (c *Cleaner) Clean() {
	errs := c.runCallbacks()
	if len(errs) > 0 {
		c.logger.ErrorF("%d errors occurred during cleanup", len(errs))
	} else {
		c.logger.Debug("All cleaners executed successfully")
	}
	c.logger.Info("Cleanup finished, server offline")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), loggerShutdownTimeout)
	defer cancel()
	if err := c.loggerShutdown.Invoke(shutdownCtx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "LOGGER SHUTDOWN ERROR: %v\n", err)
	}
	c.exit(0)
}

func (c *Cleaner) Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
		c.logger.Info("Received interrupt signal, shutting down")

		c.Clean()
	}()
}
