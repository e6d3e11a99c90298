package model

// Product identifies one entry of the fixed product catalog.
type Product string

const (
	ProductTravelCard   Product = "Карта для путешествий"
	ProductPremiumCard  Product = "Премиальная карта"
	ProductCreditCard   Product = "Кредитная карта"
	ProductFXExchange   Product = "Обмен валют"
	ProductCashLoan     Product = "Кредит наличными"
	ProductDepositMulti Product = "Депозит Мультивалютный"
	ProductDepositSave  Product = "Депозит Сберегательный"
	ProductDepositAccum Product = "Депозит Накопительный"
	ProductInvestments  Product = "Инвестиции"
	ProductGoldBars     Product = "Золотые слитки"
)

// Catalog lists all 10 products. The order is significant: ties in the
// final score are broken by catalog position, first listed wins.
var Catalog = []Product{
	ProductTravelCard,
	ProductPremiumCard,
	ProductCreditCard,
	ProductFXExchange,
	ProductCashLoan,
	ProductDepositMulti,
	ProductDepositSave,
	ProductDepositAccum,
	ProductInvestments,
	ProductGoldBars,
}
