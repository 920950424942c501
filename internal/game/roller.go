package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Roller draws the computer's value for a round
type Roller interface {
	// Roll returns an integer in [MinRun, MaxRun]
	Roll() int
}

type pcgRoller struct {
	rng *rand.Rand
}

// NewRoller returns a uniform Roller. The same seed yields the same draws.
func NewRoller(seed uint64) Roller {
	return &pcgRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *pcgRoller) Roll() int {
	return r.rng.IntN(MaxRun-MinRun+1) + MinRun
}

// NewSeed creates a random seed for NewRoller
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// fallback to the clock if crypto fails
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
