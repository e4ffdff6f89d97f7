// seehuhn.de/go/genart - generative art from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sketch

import (
	"fmt"
	"math/rand/v2"
)

// Randomness selects the source of random numbers for a sketcher.
// The zero value is equivalent to [Entropy].
type Randomness struct {
	seed   uint64
	seeded bool
}

// Seeded returns a Randomness which makes a sketcher reproducible: the
// same seed, settings and inputs lead to the same picture.
func Seeded(seed uint64) Randomness {
	return Randomness{seed: seed, seeded: true}
}

// Entropy returns a Randomness which draws fresh, non-deterministic
// random numbers every time.
func Entropy() Randomness {
	return Randomness{}
}

// Seed returns the seed and whether the Randomness is seeded.
func (r Randomness) Seed() (uint64, bool) {
	return r.seed, r.seeded
}

// New returns a random number generator following r.
func (r Randomness) New() *rand.Rand {
	if r.seeded {
		return rand.New(rand.NewPCG(r.seed, r.seed^pcgStream))
	}
	return rand.New(entropySource{})
}

func (r Randomness) String() string {
	if r.seeded {
		return fmt.Sprintf("seed %d", r.seed)
	}
	return "entropy"
}

// entropySource reads from the runtime's randomly seeded generator.
type entropySource struct{}

func (entropySource) Uint64() uint64 {
	return rand.Uint64()
}

const pcgStream = 0x9e3779b97f4a7c15
