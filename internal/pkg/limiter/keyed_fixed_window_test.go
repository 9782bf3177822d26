package limiter

import (
	"testing"
	"time"
)

func TestKeyedFixedWindow_IsolatedBudget(t *testing.T) {
	// 不同key各自一份額度，互不干擾
	config := LimiterConfig{
		Capacity:   1,
		RefillRate: time.Minute,
	}
	window := NewKeyedFixedWindow(&config)

	if !window.Allow("10.0.0.1") {
		t.Error("第一個key的首次請求應該被允許")
	}
	if window.Allow("10.0.0.1") {
		t.Error("同key超過容量應該被拒絕")
	}
	if !window.Allow("10.0.0.2") {
		t.Error("另一個key不應被前一個key的流量拖累")
	}
}

func TestKeyedFixedWindow_SameKeyShareWindow(t *testing.T) {
	config := LimiterConfig{
		Capacity:   3,
		RefillRate: time.Minute,
	}
	window := NewKeyedFixedWindow(&config)

	for i := 0; i < 3; i++ {
		if !window.Allow("10.0.0.1") {
			t.Errorf("應該允許第 %d 次請求", i+1)
		}
	}
	if window.Allow("10.0.0.1") {
		t.Error("同key累計超過容量應該被拒絕")
	}
}

func TestKeyedFixedWindow_NilConfig(t *testing.T) {
	// 未給config時套用預設值
	window := NewKeyedFixedWindow(nil)

	def := GetDefaultLimiterConfig()
	for i := 0; i < def.Capacity; i++ {
		if !window.Allow("10.0.0.1") {
			t.Errorf("應該允許第 %d 次請求", i+1)
		}
	}
	if window.Allow("10.0.0.1") {
		t.Error("超過預設容量應該被拒絕")
	}
}
