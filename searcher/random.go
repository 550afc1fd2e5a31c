package searcher

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// shared is seeded once per process and safe for concurrent use. Parallel
// rollouts should draw a seed from it and run on their own stream instead.
var shared = newShared()

func newShared() *rand.Rand {
	src := new(rand.LockedSource)
	src.Seed(entropySeed())
	return rand.New(src)
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Warn().Err(err).Msg("failed to read random seed, seeding from the clock")
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// newStream returns an independent generator seeded from the shared one.
func newStream() *rand.Rand {
	return rand.New(rand.NewSource(shared.Uint64()))
}
