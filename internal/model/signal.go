package model

// SignalSet holds every derived signal for one client. Built once by the
// feature extractor, never mutated afterwards. Numeric fields default to 0
// and collections to empty when the underlying tables are absent.
type SignalSet struct {
	ClientCode        int                `json:"client_code"`
	Name              string             `json:"name"`
	Status            string             `json:"status"`
	AvgMonthlyBalance float64            `json:"avg_monthly_balance_KZT"`
	MonthlySpend      float64            `json:"monthly_spend"`
	MonthReference    string             `json:"month_reference"` // "MM.YYYY", empty if no transactions
	SpendByCategory   map[string]float64 `json:"spend_by_category"`
	Top3Cats          []string           `json:"top3_cats"` // always length 3, padded with ""
	TripsSum          float64            `json:"trips_sum"`
	TripsCount        int                `json:"trips_count"`
	TaxiSum           float64            `json:"taxi_sum"`
	RestaurantSum     float64            `json:"restaurant_sum"`
	JewelrySum        float64            `json:"jewelry_sum"`
	RemontSum         float64            `json:"remont_sum"`
	MebelSum          float64            `json:"mebel_sum"`
	CashOutSum        float64            `json:"cash_out_sum"`
	FXCount           int                `json:"fx_count"`
	FXAmount          float64            `json:"fx_amount"`
	InvestInCount     int                `json:"invest_in_count"`
	SpareCash         float64            `json:"spare_cash"`
}

// BenefitMap maps each catalog product to its estimated monetary benefit
// for one client. Values are non-negative.
type BenefitMap map[Product]float64
