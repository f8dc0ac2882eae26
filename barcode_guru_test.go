// barcode_guru_test.go
package barcodeguru

import (
	"context"
	"io"
	"testing"

	"github.com/baditaflorin/go_barcode_guru/internal/adapters/logger"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/normalizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuietGuru(t *testing.T, opts ...Option) *Guru {
	t.Helper()
	lg, err := logger.CreateLogger(io.Discard, false)
	require.NoError(t, err)
	g, err := New(append([]Option{WithLogger(lg)}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestEvaluateWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		barcodes []string
		passed   bool
		statuses map[string]Status
	}{
		{
			name:     "Balanced pool",
			barcodes: []string{"acgtac\n", "catgca\n", "gtcatg\n", "tgacgt\n"},
			passed:   true,
		},
		{
			name:     "Too similar pair",
			barcodes: []string{"AAAAAA", "AAAAAT", "CCCCCC", "GGGGGG"},
			passed:   false,
			statuses: map[string]Status{"Base Matches": StatusFailed, "Nucleotide frequencies": StatusWarning},
		},
		{
			name:     "Length mismatch",
			barcodes: []string{"ACGTAC", "CATGC", "GTCATG", "TGACGT"},
			passed:   false,
			statuses: map[string]Status{"Index lengths": StatusFailed, "Dual Lasers": StatusFailed, "Duplication": StatusOK},
		},
		{
			name:     "Pool of two",
			barcodes: []string{"ACGTAC", "TGCATG"},
			passed:   false,
			statuses: map[string]Status{"Pool size": StatusFailed},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := EvaluateWithDefaults(tc.barcodes)
			assert.Equal(t, tc.passed, report.Passed(), "%+v", report.Verdicts)
			for rule, want := range tc.statuses {
				v, ok := report.Verdict(rule)
				require.True(t, ok, rule)
				assert.Equal(t, want, v.Status, v.String())
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	lg, err := logger.CreateLogger(io.Discard, false)
	require.NoError(t, err)

	_, err = New(WithLogger(lg), WithMinHammingDistance(0))
	assert.Error(t, err)
	_, err = New(WithLogger(lg), WithMinFrequency(-0.5))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	g := newQuietGuru(t, WithStrictAlphabet(true))
	names := g.RuleNames()
	assert.Equal(t, "Alphabet", names[len(names)-1])

	report := g.EvaluateStrings(context.Background(), []string{"ACGN", "TGCA", "CATG", "GTAC"})
	v, ok := report.Verdict("Alphabet")
	require.True(t, ok)
	assert.Equal(t, StatusFailed, v.Status)

	// A distance of 2 passes once the minimum is lowered to 2.
	set := BarcodeSet{"AAAAAA", "AAAATT", "CCCCCC", "GGGGGG"}
	strictDefault := newQuietGuru(t).Evaluate(context.Background(), set)
	bm, _ := strictDefault.Verdict("Base Matches")
	assert.Equal(t, StatusFailed, bm.Status)

	relaxed := newQuietGuru(t, WithMinHammingDistance(2)).Evaluate(context.Background(), set)
	bm, _ = relaxed.Verdict("Base Matches")
	assert.Equal(t, StatusOK, bm.Status)
}

func TestWithRuleConfig(t *testing.T) {
	four := 4
	g := newQuietGuru(t, WithRuleConfig(RuleConfig{MinHammingDistance: &four}))
	report := g.Evaluate(context.Background(), BarcodeSet{"AAAAAA", "AAATTT", "CCCCCC", "GGGGGG"})
	bm, _ := report.Verdict("Base Matches")
	assert.Equal(t, StatusFailed, bm.Status)
}

func TestWithNormalizer(t *testing.T) {
	g := newQuietGuru(t, WithNormalizer(normalizer.NewCompactNormalizer()))
	report := g.EvaluateStrings(context.Background(), []string{`"acg tac"`})
	assert.Equal(t, BarcodeSet{"ACGTAC"}, report.Barcodes)
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	set := BarcodeSet{"ACGTAC", "ACGTAC", "GTCATG", "TGACGT"}
	first := newQuietGuru(t).Evaluate(context.Background(), set)
	second := newQuietGuru(t).Evaluate(context.Background(), set)
	assert.Equal(t, BarcodeSet{"ACGTAC", "ACGTAC", "GTCATG", "TGACGT"}, set)
	assert.Equal(t, first, second)
}

func TestPrimitives(t *testing.T) {
	assert.True(t, UniformLength(nil))
	assert.Equal(t, 5, Similarity("AAAAAA", "AAAAAT"))
	assert.Equal(t, BarcodeSet{"MMKK"}, RecodeLasers(BarcodeSet{"ACGT"}))
	assert.Equal(t, 1, SimilarityMatrixOf(BarcodeSet{"AC", "AG"})[0][1])
	assert.Equal(t, 1.0, FrequencyMatrixOf(BarcodeSet{"AC", "AG"}).Row('A')[0])
}

func TestRuleConfig(t *testing.T) {
	g := newQuietGuru(t, WithMinHammingDistance(4), WithStrictAlphabet(true))
	rc := g.RuleConfig()
	require.NotNil(t, rc.MinHammingDistance)
	assert.Equal(t, 4, *rc.MinHammingDistance)
	assert.Equal(t, DefaultReportSimilarity, *rc.ReportSimilarity)
	assert.Equal(t, DefaultMinFrequency, *rc.MinFrequency)
	assert.True(t, *rc.StrictAlphabet)
}

func TestClose(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	require.NotNil(t, g.ownedLogger)
	report := g.EvaluateStrings(context.Background(), []string{"ACGTAC", "CATGCA", "GTCATG", "TGACGT"})
	assert.True(t, report.Passed())
	assert.NoError(t, g.Close())
	assert.Nil(t, g.ownedLogger)
	assert.NoError(t, g.Close())

	// A caller-supplied logger is not owned.
	quiet := newQuietGuru(t)
	assert.Nil(t, quiet.ownedLogger)
	assert.NoError(t, quiet.Close())
}

func TestBaseMatchVerdictListsPairs(t *testing.T) {
	report := EvaluateWithDefaults([]string{"AAAAAA", "AAAAAT", "CCCCCC", "GGGGGG"})
	bm, ok := report.Verdict("Base Matches")
	require.True(t, ok)
	assert.Equal(t, "FAILED: The following indexes were too similar ( Hamming distance <= 2 ):\n"+
		"\t\tBC1\tBC2\tSimilarity\n"+
		"\t\tAAAAAA\tAAAAAT\t5", bm.String())
}

func TestEvaluateTrimsSurroundingWhitespace(t *testing.T) {
	report := EvaluateWithDefaults([]string{"ACGTAC \n", "\tCATGCA", " GTCATG\r\n", "TGACGT"})
	assert.Equal(t, BarcodeSet{"ACGTAC", "CATGCA", "GTCATG", "TGACGT"}, report.Barcodes)
	lengths, _ := report.Verdict("Index lengths")
	assert.Equal(t, StatusOK, lengths.Status)
}
