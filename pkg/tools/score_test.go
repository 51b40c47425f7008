package tools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtavil/salespipe/pkg/domain"
	"github.com/rtavil/salespipe/pkg/tools"
)

func TestScoreLead_Formula(t *testing.T) {
	rec, err := tools.ScoreLead("X", 1000, 5)
	require.NoError(t, err)

	assert.Equal(t, 25.0, rec.Score) // 1000/100 + 5*3
	assert.Equal(t, domain.TierA, rec.Tier)
	assert.Equal(t, "X", rec.CompanyName)
}

func TestScoreLead_TierBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		employees int
		intent    int
		score     float64
		tier      domain.Tier
	}{
		{"exactly A", 0, 4, 12.0, domain.TierA},
		{"just below A", 299, 3, 11.99, domain.TierB},
		{"exactly B", 0, 2, 6.0, domain.TierB},
		{"just below B", 299, 1, 5.99, domain.TierC},
		{"deep C", 25, 0, 0.25, domain.TierC},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := tools.ScoreLead("X", tc.employees, tc.intent)
			require.NoError(t, err)
			assert.Equal(t, tc.score, rec.Score)
			assert.Equal(t, tc.tier, rec.Tier)
		})
	}
}

func TestScoreLead_CoercesStrings(t *testing.T) {
	rec, err := tools.ScoreLead("X", "1000", "5")
	require.NoError(t, err)
	assert.Equal(t, 25.0, rec.Score)
}

func TestScoreLead_CoercesJSONNumbers(t *testing.T) {
	rec, err := tools.ScoreLead("X", float64(120), float64(5))
	require.NoError(t, err)
	assert.Equal(t, 16.2, rec.Score)
	assert.Equal(t, domain.TierA, rec.Tier)
}

func TestScoreLead_InvalidInput(t *testing.T) {
	_, err := tools.ScoreLead("X", "lots", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = tools.ScoreLead("X", 100, []string{"5"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
