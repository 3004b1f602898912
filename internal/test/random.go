package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/manafood/internal/domain/model"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits       = "0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomPhone returns a ten digit phone number.
func RandomPhone() string {
	return randomFrom(digits, 10, 10)
}

// RandomOrderDraft builds a plausible order with one to five line items.
func RandomOrderDraft() model.OrderDraft {
	items := make([]model.OrderItem, 1+randomIntn(5))
	var total float64
	for i := range items {
		items[i] = model.OrderItem{
			ID:       RandomASCIIString(3, 8),
			Name:     RandomASCIIString(4, 16),
			Price:    float64(10 + randomIntn(400)),
			Quantity: 1 + randomIntn(4),
		}
		total += items[i].Price * float64(items[i].Quantity)
	}
	return model.OrderDraft{
		RestaurantID:   RandomASCIIString(2, 6),
		RestaurantName: RandomASCIIString(5, 20),
		Items:          items,
		Total:          total,
		CustomerName:   RandomASCIIString(3, 12),
		CustomerPhone:  RandomPhone(),
		Address:        RandomASCIIString(8, 32),
	}
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
