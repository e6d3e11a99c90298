package scoring

import "github.com/Kpubaq/404tsemey/internal/model"

// Fixed business rates behind the benefit formulas.
const (
	travelCashbackRate  = 0.04
	premiumBaseRate     = 0.02
	premiumBenefitCap   = 100_000
	premiumMinBalance   = 200_000
	creditCashbackRate  = 0.10
	fxSpreadRate        = 0.001
	cashLoanNeedCutoff  = 500_000
	cashLoanFlatBenefit = 100_000
	depositMultiRate    = 0.1450
	depositSaveRate     = 0.1650
	depositAccumRate    = 0.1550
	investReturnRate    = 0.01
	goldReturnRate      = 0.005
)

const statusStudent = "Студент"

// EstimateBenefits computes the expected monetary benefit of every catalog
// product for one client. All values are non-negative and finite.
func EstimateBenefits(s *model.SignalSet) model.BenefitMap {
	benefits := make(model.BenefitMap, len(model.Catalog))
	for _, p := range model.Catalog {
		benefits[p] = estimateBenefit(p, s)
	}
	return benefits
}

// estimateBenefit dispatches over the closed product catalog. Adding a
// product means adding a case here.
func estimateBenefit(p model.Product, s *model.SignalSet) float64 {
	switch p {
	case model.ProductTravelCard:
		return travelCashbackRate * (s.TripsSum + s.TaxiSum)

	case model.ProductPremiumCard:
		var balanceBonus float64
		switch {
		case s.AvgMonthlyBalance > 6_000_000:
			balanceBonus = 0.02 * s.MonthlySpend
		case s.AvgMonthlyBalance >= 1_000_000:
			balanceBonus = 0.01 * s.MonthlySpend
		}
		benefit := premiumBaseRate*s.MonthlySpend + balanceBonus
		if benefit > premiumBenefitCap {
			benefit = premiumBenefitCap
		}
		if s.Status == statusStudent || s.AvgMonthlyBalance < premiumMinBalance {
			return 0
		}
		return benefit

	case model.ProductCreditCard:
		var top3Spend float64
		for _, cat := range s.Top3Cats {
			if cat != "" {
				top3Spend += s.SpendByCategory[cat]
			}
		}
		return creditCashbackRate * top3Spend

	case model.ProductFXExchange:
		avgTicket := s.FXAmount / float64(max(1, s.FXCount))
		return fxSpreadRate * float64(s.FXCount) * avgTicket

	case model.ProductCashLoan:
		if s.RemontSum+s.MebelSum+s.CashOutSum > cashLoanNeedCutoff {
			return cashLoanFlatBenefit
		}
		return 0

	case model.ProductDepositMulti:
		return s.SpareCash * depositMultiRate / 12

	case model.ProductDepositSave:
		return s.SpareCash * depositSaveRate / 12

	case model.ProductDepositAccum:
		return s.SpareCash * depositAccumRate / 12

	case model.ProductInvestments:
		return s.SpareCash * investReturnRate

	case model.ProductGoldBars:
		return s.SpareCash * goldReturnRate
	}
	return 0
}

// rawSignal returns the product-specific driving signal used for
// cross-client percentile ranking.
func rawSignal(p model.Product, s *model.SignalSet) float64 {
	switch p {
	case model.ProductTravelCard:
		return s.TripsSum + s.TaxiSum
	case model.ProductPremiumCard:
		return s.AvgMonthlyBalance
	case model.ProductCreditCard:
		var sum float64
		for _, cat := range s.Top3Cats {
			sum += s.SpendByCategory[cat]
		}
		return sum
	case model.ProductFXExchange:
		return float64(s.FXCount)
	case model.ProductCashLoan:
		return s.RemontSum + s.MebelSum + s.CashOutSum
	case model.ProductDepositMulti, model.ProductDepositSave, model.ProductDepositAccum,
		model.ProductInvestments, model.ProductGoldBars:
		return s.SpareCash
	}
	return 0
}
