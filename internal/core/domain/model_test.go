package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusText(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusWarning, StatusFailed} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var back Status
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}

	assert.Equal(t, StatusWarning, StatusFromName("warning"))
	assert.Equal(t, Status(-1), StatusFromName("maybe"))

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("maybe")))
}

func TestVerdictJSONStatus(t *testing.T) {
	data, err := json.Marshal(Failed("Pool size", "no samples supplied"))
	require.NoError(t, err)

	var back Verdict
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, StatusFailed, back.Status)
	assert.Equal(t, "no samples supplied", back.Detail)
}

func TestVerdictStringWithPairs(t *testing.T) {
	v := Failed("Base Matches", "too similar:")
	assert.Equal(t, "FAILED: too similar:", v.String())

	v.Pairs = []Pair{
		{I: 0, J: 1, First: "AAAAAA", Second: "AAAAAT", Similarity: 5},
		{I: 2, J: 3, First: "CCCCCC", Second: "CCCCCG", Similarity: 5},
	}
	assert.Equal(t, "FAILED: too similar:\n"+
		"\t\tBC1\tBC2\tSimilarity\n"+
		"\t\tAAAAAA\tAAAAAT\t5\n"+
		"\t\tCCCCCC\tCCCCCG\t5", v.String())
}

func TestFormatPairsLabels(t *testing.T) {
	pairs := []Pair{{I: 0, J: 2, First: "AAAAAA", Second: "AAAAAT", Similarity: 5}}

	assert.Equal(t, "\t\tBC1\tBC2\tSimilarity\tSamples\n\t\tAAAAAA\tAAAAAT\t5\tlib1, #3\n",
		FormatPairs(pairs, []string{"lib1", "lib2"}))
}

func TestReportWorst(t *testing.T) {
	assert.Equal(t, StatusOK, Report{}.Worst())

	r := Report{Verdicts: []Verdict{OK("a"), Warning("b", "low")}}
	assert.Equal(t, StatusWarning, r.Worst())
	assert.True(t, r.Passed())

	r.Verdicts = append(r.Verdicts, Failed("c", "bad"))
	assert.Equal(t, StatusFailed, r.Worst())
	assert.False(t, r.Passed())
}
