package random

import (
	"math/rand/v2"

	"github.com/pictify-io/blogs/blog/domain"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var _ domain.IDGenerator = (*Generator)(nil)

// Generator builds alphanumeric identifiers, choosing each character uniformly.
// It is not suitable for secrets.
type Generator struct {
	intN func(n int) int
}

// NewGenerator returns a Generator backed by the runtime-seeded global source
func NewGenerator() *Generator {
	return &Generator{intN: rand.IntN}
}

// NewSeededGenerator returns a Generator with a reproducible sequence
func NewSeededGenerator(seed uint64) *Generator {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Generator{intN: r.IntN}
}

func (g *Generator) Generate(length int) string {
	if length <= 0 {
		return ""
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.intN(len(alphabet))]
	}
	return string(b)
}
