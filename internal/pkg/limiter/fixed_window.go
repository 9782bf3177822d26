package limiter

import (
	"sync"
	"sync/atomic"
	"time"
)

type LimiterConfig struct {
	Capacity   int           // 單一視窗允許的請求數
	RefillRate time.Duration // 視窗長度
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity:   30,
		RefillRate: time.Minute,
	}
}

/*
會有突刺問題
擋公開端點的暴力嘗試夠用
*/
type FixedWindow struct {
	LimiterConfig
	count     atomic.Int32
	startedAt time.Time
	mu        sync.RWMutex
}

func NewFixedWindow(config *LimiterConfig) *FixedWindow {
	fw := &FixedWindow{
		count:     atomic.Int32{},
		startedAt: time.Now(),
		mu:        sync.RWMutex{},
	}
	if config != nil {
		fw.LimiterConfig = *config
	} else {
		fw.LimiterConfig = GetDefaultLimiterConfig()
	}

	return fw
}

func (w *FixedWindow) Allow() bool {
	current := time.Now()
	w.mu.RLock()
	needReset := current.Sub(w.startedAt) > w.RefillRate
	w.mu.RUnlock()

	if needReset {
		w.mu.Lock()
		if current.Sub(w.startedAt) > w.RefillRate {
			w.reset()
		}
		w.mu.Unlock()
	}

	for {
		c := w.count.Load()
		if c+1 > int32(w.Capacity) {
			return false
		}
		if w.count.CompareAndSwap(c, c+1) {
			return true
		}
	}
}

func (w *FixedWindow) reset() {
	w.count.Store(0)
	w.startedAt = time.Now()
}
