package glitch

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Seed hold the primary seed used for random numbers
type Seed struct {
	intSeed int64
}

// Jan 1, 2020 (to make seeds a little smaller)
const epoch2020 = 1577836800

// Init initializes the seed
// `hexSeed` is either the empty string or a hex value.
// On a bad hex value the clock based seed is kept and the error returned.
func Init(hexSeed string) (Seed, error) {
	s := Seed{intSeed: time.Now().UnixNano() - epoch2020*int64(time.Second)}
	if hexSeed != "" {
		err := s.SetSeed(hexSeed)
		return s, err
	}
	return s, nil
}

// GetSeed returns the rand initialization seed
func (s Seed) GetSeed() int64 {
	return s.intSeed
}

// SetSeed sets the seed from a hex string, as printed by String.
func (s *Seed) SetSeed(hexSeed string) error {
	v, err := strconv.ParseInt(hexSeed, 16, 64)
	if err != nil {
		return fmt.Errorf("bad seed %q: %w", hexSeed, err)
	}
	s.intSeed = v
	return nil
}

// Rand returns a new generator started at this seed.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewSource(s.intSeed))
}

func (s Seed) String() string {
	return strconv.FormatInt(s.intSeed, 16)
}
