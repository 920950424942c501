package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoller_Range(t *testing.T) {
	r := NewRoller(NewSeed())
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		v := r.Roll()
		if v < MinRun || v > MaxRun {
			t.Fatalf("Roll() = %d, out of range [%d, %d]", v, MinRun, MaxRun)
		}
		seen[v]++
	}
	assert.Len(t, seen, MaxRun-MinRun+1, "every face should come up")
}

func TestNewRoller_Determinism(t *testing.T) {
	a, b := NewRoller(12345), NewRoller(12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Roll(), b.Roll(), "draw %d", i)
	}
}
