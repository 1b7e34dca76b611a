package value_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/terminusdb-labs/numeric-core/numeric/value"
)

func TestCompare_ExactCrossKind(t *testing.T) {
	half := value.RatFromFrac(big.NewInt(1), big.NewInt(2))
	one := value.IntFromInt64(1)
	assert.Equal(t, -1, value.Compare(half, one))
	assert.Equal(t, 1, value.Compare(one, half))
	assert.True(t, value.Less(half, one))
}

func TestCompare_FloatExactNoPrecisionLoss(t *testing.T) {
	// 2^53 + 1 is not representable as float64, but exact/float comparison
	// against a nearby integer must still be correct.
	big53 := new(big.Int).Lsh(big.NewInt(1), 53)
	exact := value.Int(big53)
	asFloat := value.Dbl(float64(1) * math.Pow(2, 53))
	assert.Equal(t, 0, value.Compare(exact, asFloat))

	oneMore := value.Int(new(big.Int).Add(big53, big.NewInt(1)))
	assert.Equal(t, 1, value.Compare(oneMore, asFloat))
}

func TestCompare_NonFiniteFloats(t *testing.T) {
	posInf := value.Dbl(math.Inf(1))
	negInf := value.Dbl(math.Inf(-1))
	nan := value.Dbl(math.NaN())
	finite := value.IntFromInt64(42)

	assert.Equal(t, -1, value.Compare(negInf, finite))
	assert.Equal(t, 1, value.Compare(posInf, finite))
	assert.Equal(t, 1, value.Compare(nan, finite))
	assert.Equal(t, 0, value.Compare(nan, nan), "NaN must compare equal to itself to keep the order total")
}

func TestCompare_BothRational(t *testing.T) {
	oneThird := value.RatFromFrac(big.NewInt(1), big.NewInt(3))
	twoThirds := value.RatFromFrac(big.NewInt(2), big.NewInt(3))
	assert.True(t, value.Less(oneThird, twoThirds))
}
