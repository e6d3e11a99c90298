package push

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// fakeParaphraser returns a canned response or error.
type fakeParaphraser struct {
	text string
	err  error
}

func (f *fakeParaphraser) Paraphrase(_ context.Context, _, _ string) (string, error) {
	return f.text, f.err
}

func (f *fakeParaphraser) Close() error { return nil }

func travelScores() *model.ClientScores {
	s := &model.SignalSet{
		ClientCode:     5,
		Name:           "Айгерим",
		MonthReference: "06.2025",
		TripsCount:     8,
		TripsSum:       180_000,
		TaxiSum:        40_000,
	}
	return &model.ClientScores{
		ClientCode: 5,
		RawSignals: s,
		ProductScores: map[model.Product]model.ProductScore{
			model.ProductTravelCard: {Benefit: 8_800, Score: 1.0},
		},
		Top4:   []model.Product{model.ProductTravelCard},
		Chosen: model.ProductTravelCard,
	}
}

func TestGenerate_ValidParaphraseWins(t *testing.T) {
	valid := cyr(200)
	g := NewGenerator(&fakeParaphraser{text: valid}, time.Second)

	rec := g.Generate(context.Background(), travelScores())
	assert.Equal(t, valid, rec.Push)
	assert.Equal(t, model.ProductTravelCard, rec.Product)
}

func TestGenerate_InvalidParaphraseFallsBackToTemplate(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"too short", cyr(100)},
		{"has colon", cyr(199) + ":"},
		{"empty response", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(&fakeParaphraser{text: tt.text}, time.Second)
			rec := g.Generate(context.Background(), travelScores())
			assert.Contains(t, rec.Push, "Айгерим")
			assert.Contains(t, rec.Push, "картой для путешествий")
		})
	}
}

func TestGenerate_ParaphraseErrorFallsBackToTemplate(t *testing.T) {
	g := NewGenerator(&fakeParaphraser{err: errors.New("timeout")}, time.Second)
	rec := g.Generate(context.Background(), travelScores())
	require.NotEmpty(t, rec.Push)
	assert.Contains(t, rec.Push, "Открыть")
}

func TestGenerate_NoopAlwaysTemplate(t *testing.T) {
	g := NewGenerator(NewNoopParaphraser(), time.Second)
	rec := g.Generate(context.Background(), travelScores())
	require.NotEmpty(t, rec.Push)
	assert.Contains(t, rec.Push, "Айгерим")
}

func TestGenerate_EmptyClientStillProducesText(t *testing.T) {
	cs := &model.ClientScores{
		ClientCode: 9,
		RawSignals: &model.SignalSet{ClientCode: 9, Name: "Данияр", Top3Cats: []string{"", "", ""}},
		ProductScores: map[model.Product]model.ProductScore{
			model.ProductTravelCard: {},
		},
		Chosen: model.ProductTravelCard,
	}
	g := NewGenerator(NewNoopParaphraser(), time.Second)
	rec := g.Generate(context.Background(), cs)
	require.NotEmpty(t, rec.Push)
}

func TestGenerateAll_PreservesOrder(t *testing.T) {
	scores := make([]*model.ClientScores, 6)
	for i := range scores {
		cs := travelScores()
		cs.ClientCode = i + 1
		cs.RawSignals.ClientCode = i + 1
		scores[i] = cs
	}
	g := NewGenerator(NewNoopParaphraser(), time.Second)
	recs := g.GenerateAll(context.Background(), scores, 3)
	require.Len(t, recs, 6)
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.ClientCode)
	}
}
