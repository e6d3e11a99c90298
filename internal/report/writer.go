package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// WriteResults writes the final results table, one row per client in
// ascending client_code order.
func WriteResults(path string, recs []model.Recommendation) error {
	ordered := append([]model.Recommendation(nil), recs...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ClientCode < ordered[j].ClientCode
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"client_code", "product", "push_notification"}); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}
	for _, r := range ordered {
		row := []string{strconv.Itoa(r.ClientCode), string(r.Product), r.Push}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write results row: %w", err)
		}
	}
	return w.Error()
}

func writeEvaluationCSV(path string, rows []EvaluationRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create evaluation file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"client_code", "product", "push_points"}); err != nil {
		return fmt.Errorf("write evaluation header: %w", err)
	}
	for _, r := range rows {
		row := []string{strconv.Itoa(r.ClientCode), string(r.Product), strconv.Itoa(r.PushPoints)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write evaluation row: %w", err)
		}
	}
	return w.Error()
}
