package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNormalizer(t *testing.T) {
	n := NewDefaultNormalizer()
	tests := map[string]string{
		"acgtac\n":   "ACGTAC",
		"AcGtAc\r\n": "ACGTAC",
		"acg tac\r":  "ACG TAC",
		"acgtac \n":  "ACGTAC",
		" \tacgtac":  "ACGTAC",
		"":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, n.Normalize(in), "%q", in)
	}
}

func TestCompactNormalizer(t *testing.T) {
	n := NewCompactNormalizer()
	assert.Equal(t, "ACGTAC,", n.Normalize(` "acg tac", `))
	assert.Equal(t, "ACGTAC", n.Normalize("'acg\ttac'\r\n"))
}
