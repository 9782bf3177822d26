package util

import (
	"fmt"
	"math/rand"
	"time"
)

const orderNumberRandChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber 產生對外訂單編號 ORD-{unixMillis}-{9碼base36大寫}
// 理論上仍可能碰撞，storage層order_number有unique index擋住，由caller重試
func GenerateOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberRandChars[rand.Intn(len(orderNumberRandChars))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
