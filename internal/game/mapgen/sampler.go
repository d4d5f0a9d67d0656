package mapgen

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Sampler draws integers uniformly from [0, n).
type Sampler interface {
	Intn(n int) int
}

// Source produces raw 64-bit random values. *math/rand.Rand satisfies it.
type Source interface {
	Uint64() uint64
}

// UniformSampler turns a Source into an unbiased Sampler by rejection:
// draws below 2^64 mod n are thrown away so every residue is equally likely.
type UniformSampler struct {
	src Source
}

// NewUniformSampler wraps src.
func NewUniformSampler(src Source) *UniformSampler {
	return &UniformSampler{src: src}
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (s *UniformSampler) Intn(n int) int {
	if n <= 0 {
		panic("mapgen: invalid argument to Intn")
	}
	un := uint64(n)
	threshold := -un % un
	for {
		r := s.src.Uint64()
		if r >= threshold {
			return int(r % un)
		}
	}
}

// frandSource reads 64-bit values from a ChaCha stream.
type frandSource struct {
	rng *frand.RNG
	buf [8]byte
}

func (f *frandSource) Uint64() uint64 {
	f.rng.Read(f.buf[:])
	return binary.LittleEndian.Uint64(f.buf[:])
}

// NewCryptoSource returns a Source seeded from the operating system.
func NewCryptoSource() Source {
	return &frandSource{rng: frand.New()}
}

// NewSeededSource returns a deterministic Source; equal seeds give equal games.
func NewSeededSource(seed int64) Source {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return &frandSource{rng: frand.NewCustom(key, 1024, 12)}
}
