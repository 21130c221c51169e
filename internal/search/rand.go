package search

import (
	"crypto/sha256"
	"strconv"

	"lukechampine.com/frand"
)

const (
	rngBufferSize = 1024
	rngRounds     = 12
)

// NewRand - an unseeded generator when seed is empty, otherwise a reproducible
// stream derived from seed and stream so that parallel matches do not share state.
func NewRand(seed string, stream int) *frand.RNG {
	if seed == "" {
		return frand.New()
	}

	key := sha256.Sum256([]byte(seed + "/" + strconv.Itoa(stream)))

	return frand.NewCustom(key[:], rngBufferSize, rngRounds)
}
