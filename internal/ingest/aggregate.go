package ingest

import "github.com/Kpubaq/404tsemey/internal/model"

// BuildAggregates joins each profile with its parsed tables and derives
// monthly_spend (average monthly positive spend over the 3-month window).
// Profiles without any located files are dropped; the missing-files report
// from the loader is the caller's record of those. Output order follows
// the profile table.
func BuildAggregates(profiles []model.ClientProfile, tables map[int]*ClientTables) []*model.ClientAggregate {
	aggs := make([]*model.ClientAggregate, 0, len(profiles))
	for _, p := range profiles {
		ct, ok := tables[p.ClientCode]
		if !ok {
			continue
		}
		var spend float64
		for _, tx := range ct.Transactions {
			if tx.Amount > 0 {
				spend += tx.Amount
			}
		}
		aggs = append(aggs, &model.ClientAggregate{
			Profile:      p,
			Transactions: ct.Transactions,
			Transfers:    ct.Transfers,
			MonthlySpend: spend / 3.0,
		})
	}
	return aggs
}
