package push

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// monthNames maps "MM" to the Russian genitive month name used inside
// push texts.
var monthNames = map[string]string{
	"01": "января", "02": "февраля", "03": "марта", "04": "апреля",
	"05": "мая", "06": "июня", "07": "июля", "08": "августа",
	"09": "сентября", "10": "октября", "11": "ноября", "12": "декабря",
}

// FormatCurrency renders an amount as "1 234 567,89 ₸": integer part
// grouped by thousands with a space, cents appended only when non-zero,
// minus sign ahead of the magnitude.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	amount = math.Abs(amount)
	whole := int64(math.Floor(amount))
	frac := int64(math.Round((amount - float64(whole)) * 100))

	s := groupThousands(whole)
	if frac > 0 {
		s = fmt.Sprintf("%s,%02d", s, frac)
	}
	if neg {
		s = "-" + s
	}
	return s + " ₸"
}

func groupThousands(v int64) string {
	digits := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// monthLabel converts a "MM.YYYY" reference into "января 2025". An
// unknown or empty reference falls back to the current month.
func monthLabel(ref string) string {
	if ref == "" {
		ref = time.Now().Format("01.2006")
	}
	parts := strings.Split(ref, ".")
	if len(parts) == 2 {
		if name, ok := monthNames[parts[0]]; ok {
			return name + " " + parts[1]
		}
	}
	return ref
}

// RenderTemplate produces the deterministic push text for the chosen
// product. This is the guaranteed fallback when paraphrasing is disabled
// or rejected.
func RenderTemplate(product model.Product, s *model.SignalSet, benefit float64) string {
	name := s.Name
	month := monthLabel(s.MonthReference)
	b := math.Round(benefit)

	switch {
	case product == model.ProductTravelCard:
		tripsSum := FormatCurrency(s.TripsSum + s.TaxiSum)
		return fmt.Sprintf("%s, в %s у вас %d поездок/такси на %s. С картой для путешествий вернулись бы ≈%s. Открыть",
			name, month, s.TripsCount, tripsSum, FormatCurrency(b))

	case product == model.ProductPremiumCard:
		return fmt.Sprintf("%s, у вас средний остаток %s и траты в ресторанах %s. Премиальная карта даст до 4%% на рестораны и бесплатные снятия. Оформить",
			name, FormatCurrency(s.AvgMonthlyBalance), FormatCurrency(s.RestaurantSum))

	case product == model.ProductCreditCard:
		c1, c2, c3 := orDefault(s.Top3Cats, 0), orDefault(s.Top3Cats, 1), orDefault(s.Top3Cats, 2)
		return fmt.Sprintf("%s, ваши топ-категории: %s, %s, %s. Кредитная карта даёт до 10%% в любимых категориях и рассрочку 3–24 мес. Оформить карту",
			name, c1, c2, c3)

	case product == model.ProductFXExchange:
		return fmt.Sprintf("%s, вы часто проводите валютные операции. В приложении выгодный обмен 24/7 и авто-покупка по целевому курсу. Настроить обмен", name)

	case product == model.ProductCashLoan:
		return fmt.Sprintf("%s, если нужны деньги на большие покупки — есть выгодные предложения по наличному кредиту. Оформить", name)

	case strings.HasPrefix(string(product), "Депозит"):
		return fmt.Sprintf("%s, у вас свободные средства %s. Депозит даст стабильный доход, можно выбрать срок и валюту. Посмотреть",
			name, FormatCurrency(s.SpareCash))

	case product == model.ProductInvestments:
		return fmt.Sprintf("%s, у вас доступно %s для инвестиций. Диверсифицируйте портфель и начните с малого. Настроить",
			name, FormatCurrency(s.SpareCash))

	case product == model.ProductGoldBars:
		return fmt.Sprintf("%s, в запасе %s. Покупка золотых слитков — способ диверсификации. Посмотреть",
			name, FormatCurrency(s.SpareCash))
	}
	return fmt.Sprintf("%s, у нас есть предложение по %s. Посмотреть", name, product)
}

func orDefault(cats []string, i int) string {
	if i < len(cats) && cats[i] != "" {
		return cats[i]
	}
	return "разное"
}
