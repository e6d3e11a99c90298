package model

// ProductScore is the full scoring breakdown for one (client, product) pair.
// Normalized values are always in [0, 1].
type ProductScore struct {
	RawSignal   float64 `json:"raw_signal"`
	NormSignal  float64 `json:"norm_signal"`
	Benefit     float64 `json:"benefit"`
	NormBenefit float64 `json:"norm_benefit"`
	Score       float64 `json:"score"`
}

// ClientScores is the per-client scoring detail persisted as a debug
// artifact and consumed by the push generator.
type ClientScores struct {
	ClientCode    int                      `json:"client_code"`
	RawSignals    *SignalSet               `json:"raw_signals"`
	ProductScores map[Product]ProductScore `json:"product_scores"`
	Top4          []Product                `json:"top4"`
	Chosen        Product                  `json:"chosen"`
}

// Recommendation is the terminal artifact for one client: the chosen
// product and the final push text. Written once, never mutated.
type Recommendation struct {
	ClientCode int
	Product    Product
	Push       string
}
