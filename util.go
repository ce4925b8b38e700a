package glitch

import (
	"math/rand"
	"strings"
)

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	if lslash := strings.LastIndex(fName, "/"); lslash != -1 {
		fName = fName[lslash+1:]
	}
	return fName
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// channel clamps v into a color channel.
func channel(v int) uint8 {
	return uint8(ClampInt(v, 0, 255))
}

// randRange returns a random int in [low, high], both ends inclusive.
func randRange(rng *rand.Rand, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + rng.Intn(high-low+1)
}
