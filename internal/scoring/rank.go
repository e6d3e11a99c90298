package scoring

import (
	"sort"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// Weights blends the two normalized components of the final score.
type Weights struct {
	Signal  float64
	Benefit float64
}

// DefaultWeights is the fixed business blend: the cross-client signal rank
// dominates the within-client benefit.
var DefaultWeights = Weights{Signal: 0.7, Benefit: 0.3}

// ScoreAll runs the two-phase ranking over the whole batch. Phase 1
// collects every client's benefits and raw driving signals; phase 2
// percentile-ranks each product's signal across clients, min-max
// normalizes each client's benefits, blends the final score and selects
// the chosen product plus the top 4. The phase split is a hard barrier:
// no client's score is final until all raw signals are collected.
func ScoreAll(signals []*model.SignalSet, w Weights) []*model.ClientScores {
	n := len(signals)

	// Phase 1: per-client benefits and the per-product raw signal columns.
	benefits := make([]model.BenefitMap, n)
	rawByProduct := make(map[model.Product][]float64, len(model.Catalog))
	for _, p := range model.Catalog {
		rawByProduct[p] = make([]float64, n)
	}
	for i, s := range signals {
		benefits[i] = EstimateBenefits(s)
		for _, p := range model.Catalog {
			rawByProduct[p][i] = rawSignal(p, s)
		}
	}

	// Phase 2: normalize and select.
	normByProduct := make(map[model.Product][]float64, len(model.Catalog))
	for _, p := range model.Catalog {
		normByProduct[p] = percentileNorm(rawByProduct[p])
	}

	results := make([]*model.ClientScores, n)
	for i, s := range signals {
		normBenefits := minMaxNorm(benefits[i])

		scores := make(map[model.Product]model.ProductScore, len(model.Catalog))
		for _, p := range model.Catalog {
			ps := model.ProductScore{
				RawSignal:   rawByProduct[p][i],
				NormSignal:  normByProduct[p][i],
				Benefit:     benefits[i][p],
				NormBenefit: normBenefits[p],
			}
			ps.Score = w.Signal*ps.NormSignal + w.Benefit*ps.NormBenefit
			scores[p] = ps
		}

		ranked := append([]model.Product(nil), model.Catalog...)
		sort.SliceStable(ranked, func(a, b int) bool {
			return scores[ranked[a]].Score > scores[ranked[b]].Score
		})

		top4 := ranked
		if len(top4) > 4 {
			top4 = top4[:4]
		}
		results[i] = &model.ClientScores{
			ClientCode:    s.ClientCode,
			RawSignals:    s,
			ProductScores: scores,
			Top4:          top4,
			Chosen:        top4[0],
		}
	}
	return results
}

// percentileNorm maps each value to its rank among the batch, scaled to
// [0, 1]: smallest 0, largest 1. Ties keep first-appearance order. A
// single-element input maps to 1.0.
func percentileNorm(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{1.0}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] < values[order[b]]
	})

	norm := make([]float64, n)
	for rank, idx := range order {
		norm[idx] = float64(rank) / float64(n-1)
	}
	return norm
}

// minMaxNorm rescales one client's benefits to [0, 1]. When all benefits
// are equal every product gets 1.0, avoiding a zero division.
func minMaxNorm(benefits model.BenefitMap) map[model.Product]float64 {
	minB, maxB := benefits[model.Catalog[0]], benefits[model.Catalog[0]]
	for _, p := range model.Catalog {
		b := benefits[p]
		if b < minB {
			minB = b
		}
		if b > maxB {
			maxB = b
		}
	}

	norm := make(map[model.Product]float64, len(model.Catalog))
	for _, p := range model.Catalog {
		if maxB == minB {
			norm[p] = 1.0
		} else {
			norm[p] = (benefits[p] - minB) / (maxB - minB)
		}
	}
	return norm
}
