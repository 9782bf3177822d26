package limiter

import "sync"

/*
以key分流的固定視窗，每個key各自一份額度
key通常是client IP，單一來源打爆視窗不會吃掉其他人的額度
視窗在key首次出現時建立，之後沿用
*/
type KeyedFixedWindow struct {
	config  LimiterConfig
	windows sync.Map // key -> *FixedWindow
}

func NewKeyedFixedWindow(config *LimiterConfig) *KeyedFixedWindow {
	kw := &KeyedFixedWindow{}
	if config != nil {
		kw.config = *config
	} else {
		kw.config = GetDefaultLimiterConfig()
	}

	return kw
}

func (k *KeyedFixedWindow) Allow(key string) bool {
	w, ok := k.windows.Load(key)
	if !ok {
		w, _ = k.windows.LoadOrStore(key, NewFixedWindow(&k.config))
	}
	return w.(*FixedWindow).Allow()
}
