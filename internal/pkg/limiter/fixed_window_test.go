package limiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFixedWindow_Basic(t *testing.T) {
	// 建立一個每個視窗允許5次請求的limiter
	config := LimiterConfig{
		Capacity:   5,
		RefillRate: time.Minute,
	}
	window := NewFixedWindow(&config)

	// 測試初始容量
	for i := 0; i < 5; i++ {
		if !window.Allow() {
			t.Errorf("應該允許第 %d 次請求", i+1)
		}
	}

	// 第6次應該被拒絕
	if window.Allow() {
		t.Error("超過容量限制應該被拒絕")
	}
}

func TestFixedWindow_Reset(t *testing.T) {
	// 視窗過期後計數歸零
	config := LimiterConfig{
		Capacity:   2,
		RefillRate: 100 * time.Millisecond,
	}
	window := NewFixedWindow(&config)

	window.Allow()
	window.Allow()

	if window.Allow() {
		t.Error("視窗內額度用完應該被拒絕")
	}

	// 等待視窗過期
	time.Sleep(150 * time.Millisecond)

	if !window.Allow() {
		t.Error("新視窗應該重新允許請求")
	}
}

func TestFixedWindow_DefaultConfig(t *testing.T) {
	window := NewFixedWindow(nil)

	if window.Capacity != 30 {
		t.Errorf("預設容量應為30，實際為 %d", window.Capacity)
	}
	if window.RefillRate != time.Minute {
		t.Errorf("預設視窗長度應為1分鐘，實際為 %v", window.RefillRate)
	}
}

func TestFixedWindow_Concurrent(t *testing.T) {
	// 併發請求下允許的總數不能超過容量
	config := LimiterConfig{
		Capacity:   100,
		RefillRate: time.Minute,
	}
	window := NewFixedWindow(&config)

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if window.Allow() {
					allowed.Add(1)
				}
			}
		}()
	}
	wg.Wait()

	if allowed.Load() != 100 {
		t.Errorf("允許的請求應剛好等於容量100，實際為 %d", allowed.Load())
	}
}
