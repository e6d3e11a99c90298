package report

import (
	"strings"
	"unicode"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// actionVerbs are the call-to-action words a good push ends with.
var actionVerbs = []string{"Открыть", "Оформить", "Настроить", "Посмотреть"}

// EvaluationSummary aggregates the heuristic quality score over one run.
// Informational only, never gates selection.
type EvaluationSummary struct {
	RunID              string  `json:"run_id"`
	AveragePushQuality float64 `json:"average_push_quality"`
	ClientsEvaluated   int     `json:"clients_evaluated"`
}

// EvaluationRow is the per-client quality breakdown.
type EvaluationRow struct {
	ClientCode int
	Product    model.Product
	PushPoints int
}

// ScorePushQuality assigns a 0-20 heuristic score to one push text:
// name mention, digit presence, length band, exclamation and caps
// discipline, an action verb, and currency-format markers.
func ScorePushQuality(text, name string) int {
	pts := 0
	if name != "" && strings.Contains(text, name) {
		pts += 2
	}
	if strings.ContainsFunc(text, unicode.IsDigit) {
		pts++
	}
	if n := len([]rune(text)); n >= 180 && n <= 220 {
		pts += 2
	}
	if strings.Count(text, "!") <= 1 && !hasUpperLetter(text) {
		pts++
	}
	for _, verb := range actionVerbs {
		if strings.Contains(text, verb) {
			pts += 2
			break
		}
	}
	if strings.Contains(text, "₸") && strings.Contains(text, ",") {
		pts += 2
	}
	if pts*2 > 20 {
		return 20
	}
	return pts * 2
}

// Evaluate scores every generated push against its client's signals.
func Evaluate(recs []model.Recommendation, scores []*model.ClientScores) (*EvaluationSummary, []EvaluationRow) {
	nameByClient := make(map[int]string, len(scores))
	for _, cs := range scores {
		if cs.RawSignals != nil {
			nameByClient[cs.ClientCode] = cs.RawSignals.Name
		}
	}

	rows := make([]EvaluationRow, 0, len(recs))
	total := 0
	for _, rec := range recs {
		pts := ScorePushQuality(rec.Push, nameByClient[rec.ClientCode])
		rows = append(rows, EvaluationRow{
			ClientCode: rec.ClientCode,
			Product:    rec.Product,
			PushPoints: pts,
		})
		total += pts
	}

	summary := &EvaluationSummary{ClientsEvaluated: len(rows)}
	if len(rows) > 0 {
		summary.AveragePushQuality = float64(total) / float64(len(rows))
	}
	return summary, rows
}

func hasUpperLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) && unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
