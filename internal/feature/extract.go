package feature

import (
	"sort"
	"strings"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// travelCats is the fixed category set backing the travel-card signals.
var travelCats = map[string]bool{
	"Путешествия": true,
	"Отели":       true,
	"Такси":       true,
}

// Categories with dedicated signals.
const (
	catTaxi       = "Такси"
	catRestaurant = "Кафе и рестораны"
	catJewelry    = "Ювелирные украшения"
	catRemont     = "Ремонт дома"
	catMebel      = "Мебель"
)

// cashOutDirections matches transfers counted into cash_out_sum,
// compared case-insensitively.
var cashOutDirections = map[string]bool{
	"out":      true,
	"p2p_out":  true,
	"card_out": true,
}

// Extract computes the full signal set for one client. It is a pure
// function of the aggregate and never fails: absent or empty tables
// produce zero values and empty collections.
func Extract(agg *model.ClientAggregate) *model.SignalSet {
	s := &model.SignalSet{
		ClientCode:        agg.Profile.ClientCode,
		Name:              agg.Profile.Name,
		Status:            agg.Profile.Status,
		AvgMonthlyBalance: agg.Profile.AvgMonthlyBalance,
		MonthlySpend:      agg.MonthlySpend,
		SpendByCategory:   make(map[string]float64),
	}

	// Spend by category, preserving first-encountered order for the
	// top-3 tie-break.
	var catOrder []string
	for _, tx := range agg.Transactions {
		if _, seen := s.SpendByCategory[tx.Category]; !seen {
			catOrder = append(catOrder, tx.Category)
		}
		s.SpendByCategory[tx.Category] += tx.Amount

		if travelCats[tx.Category] {
			s.TripsSum += tx.Amount
			s.TripsCount++
		}
	}
	s.MonthReference = latestMonth(agg.Transactions)

	s.TaxiSum = s.SpendByCategory[catTaxi]
	s.RestaurantSum = s.SpendByCategory[catRestaurant]
	s.JewelrySum = s.SpendByCategory[catJewelry]
	s.RemontSum = s.SpendByCategory[catRemont]
	s.MebelSum = s.SpendByCategory[catMebel]
	s.Top3Cats = topCategories(s.SpendByCategory, catOrder, 3)

	for _, tr := range agg.Transfers {
		if cashOutDirections[strings.ToLower(tr.Direction)] {
			s.CashOutSum += abs(tr.Amount)
		}
		if strings.Contains(strings.ToLower(tr.Type), "fx") {
			s.FXCount++
			s.FXAmount += abs(tr.Amount)
		}
		if tr.Type == "invest_in" {
			s.InvestInCount++
		}
	}

	s.SpareCash = s.AvgMonthlyBalance - s.MonthlySpend
	if s.SpareCash < 0 {
		s.SpareCash = 0
	}
	return s
}

// ExtractAll runs Extract over every aggregate, preserving input order.
func ExtractAll(aggs []*model.ClientAggregate) []*model.SignalSet {
	signals := make([]*model.SignalSet, 0, len(aggs))
	for _, agg := range aggs {
		signals = append(signals, Extract(agg))
	}
	return signals
}

// latestMonth formats the month of the most recent parseable transaction
// date as "MM.YYYY"; empty when no transaction carries a valid date.
func latestMonth(txs []model.Transaction) string {
	var latest int64
	found := false
	var ref string
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		if !found || tx.Date.Unix() > latest {
			latest = tx.Date.Unix()
			ref = tx.Date.Format("01.2006")
			found = true
		}
	}
	return ref
}

// topCategories returns the n categories with the largest summed spend,
// ties broken by first-encountered order, padded with "" up to n.
func topCategories(sums map[string]float64, order []string, n int) []string {
	sorted := append([]string(nil), order...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sums[sorted[i]] > sums[sorted[j]]
	})
	top := make([]string, n)
	for i := 0; i < n && i < len(sorted); i++ {
		top[i] = sorted[i]
	}
	return top
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
