package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kpubaq/404tsemey/internal/model"
)

func TestPercentileNorm_Basic(t *testing.T) {
	got := percentileNorm([]float64{30, 10, 20})
	assert.Equal(t, []float64{1.0, 0.0, 0.5}, got)
}

func TestPercentileNorm_Singleton(t *testing.T) {
	assert.Equal(t, []float64{1.0}, percentileNorm([]float64{42}))
}

func TestPercentileNorm_Empty(t *testing.T) {
	assert.Nil(t, percentileNorm(nil))
}

func TestPercentileNorm_TiesKeepFirstAppearanceOrder(t *testing.T) {
	got := percentileNorm([]float64{5, 5, 5})
	// stable sort: earlier index gets the lower rank
	assert.Equal(t, []float64{0.0, 0.5, 1.0}, got)
}

func TestMinMaxNorm_MaxIsOne(t *testing.T) {
	benefits := make(model.BenefitMap)
	for i, p := range model.Catalog {
		benefits[p] = float64(i * 100)
	}
	norm := minMaxNorm(benefits)
	assert.Equal(t, 0.0, norm[model.Catalog[0]])
	assert.Equal(t, 1.0, norm[model.Catalog[len(model.Catalog)-1]])
}

func TestMinMaxNorm_AllEqualIsAllOnes(t *testing.T) {
	benefits := make(model.BenefitMap)
	for _, p := range model.Catalog {
		benefits[p] = 0
	}
	norm := minMaxNorm(benefits)
	for _, p := range model.Catalog {
		assert.Equal(t, 1.0, norm[p])
	}
}

func TestScoreAll_SingleClient(t *testing.T) {
	// N=1: every product's normalized signal is 1.0, so the winner is the
	// product with the highest normalized benefit, i.e. the max raw benefit.
	s := &model.SignalSet{
		ClientCode:        1,
		AvgMonthlyBalance: 2_000_000,
		SpareCash:         1_500_000,
	}
	results := ScoreAll([]*model.SignalSet{s}, DefaultWeights)
	require.Len(t, results, 1)

	cs := results[0]
	for _, p := range model.Catalog {
		assert.Equal(t, 1.0, cs.ProductScores[p].NormSignal, "n=1 norm signal for %s", p)
	}
	// Депозит Сберегательный carries the highest deposit rate on spare cash.
	assert.Equal(t, model.ProductDepositSave, cs.Chosen)
	assert.Len(t, cs.Top4, 4)
}

func TestScoreAll_Deterministic(t *testing.T) {
	signals := []*model.SignalSet{
		{ClientCode: 1, TripsSum: 500_000, TaxiSum: 50_000, AvgMonthlyBalance: 300_000, MonthlySpend: 100_000},
		{ClientCode: 2, SpareCash: 2_000_000, AvgMonthlyBalance: 2_100_000},
		{ClientCode: 3, FXCount: 10, FXAmount: 1_000_000},
	}
	first := ScoreAll(signals, DefaultWeights)
	second := ScoreAll(signals, DefaultWeights)
	for i := range first {
		assert.Equal(t, first[i].Chosen, second[i].Chosen)
		assert.Equal(t, first[i].Top4, second[i].Top4)
		assert.Equal(t, first[i].ProductScores, second[i].ProductScores)
	}
}

func TestScoreAll_TieBreakByCatalogOrder(t *testing.T) {
	// An all-zero client scores every product identically: equal benefits
	// normalize to 1.0 and equal raw signals rank identically per product
	// column. The first catalog entry must win.
	empty := []*model.SignalSet{{ClientCode: 1}}
	results := ScoreAll(empty, DefaultWeights)
	require.Len(t, results, 1)
	assert.Equal(t, model.Catalog[0], results[0].Chosen)
	assert.Equal(t, model.Catalog[:4], results[0].Top4)
}

func TestScoreAll_ScoresWithinUnitInterval(t *testing.T) {
	signals := []*model.SignalSet{
		{ClientCode: 1, TripsSum: 100},
		{ClientCode: 2, SpareCash: 9_000_000, AvgMonthlyBalance: 9_500_000},
		{ClientCode: 3},
	}
	for _, cs := range ScoreAll(signals, DefaultWeights) {
		for p, ps := range cs.ProductScores {
			assert.GreaterOrEqual(t, ps.NormSignal, 0.0, "%s", p)
			assert.LessOrEqual(t, ps.NormSignal, 1.0, "%s", p)
			assert.GreaterOrEqual(t, ps.NormBenefit, 0.0, "%s", p)
			assert.LessOrEqual(t, ps.NormBenefit, 1.0, "%s", p)
			assert.GreaterOrEqual(t, ps.Score, 0.0, "%s", p)
			assert.LessOrEqual(t, ps.Score, 1.0, "%s", p)
		}
	}
}

func TestScoreAll_PercentileExtremes(t *testing.T) {
	signals := []*model.SignalSet{
		{ClientCode: 1, TripsSum: 10_000},
		{ClientCode: 2, TripsSum: 500_000},
		{ClientCode: 3, TripsSum: 100_000},
	}
	results := ScoreAll(signals, DefaultWeights)
	travel := model.ProductTravelCard
	assert.Equal(t, 0.0, results[0].ProductScores[travel].NormSignal)
	assert.Equal(t, 1.0, results[1].ProductScores[travel].NormSignal)
	assert.Equal(t, 0.5, results[2].ProductScores[travel].NormSignal)
}
