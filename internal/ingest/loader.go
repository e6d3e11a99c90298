package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Kpubaq/404tsemey/internal/model"
)

// ClientTables holds the parsed transaction and transfer tables for one
// client. FilesFound counts how many of the two expected extracts were
// present on disk.
type ClientTables struct {
	Transactions []model.Transaction
	Transfers    []model.Transfer
	FilesFound   int
}

// Loader reads per-client CSV extracts from a flat data directory.
type Loader struct {
	DataDir string
}

// NewLoader creates a Loader rooted at dataDir.
func NewLoader(dataDir string) *Loader {
	return &Loader{DataDir: dataDir}
}

// LoadProfiles reads the profile table (clients.csv). Rows with an
// unparseable client code are skipped with a warning.
func (l *Loader) LoadProfiles() ([]model.ClientProfile, error) {
	rows, header, err := readCSV(filepath.Join(l.DataDir, "clients.csv"))
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	codeIdx := columnIndex(header, "client_code")
	nameIdx := columnIndex(header, "name")
	statusIdx := columnIndex(header, "status")
	balIdx := columnIndex(header, "avg_monthly_balance_KZT")
	if balIdx < 0 {
		balIdx = columnIndex(header, "avg_monthly_balance")
	}
	if codeIdx < 0 {
		return nil, fmt.Errorf("load profiles: missing client_code column")
	}

	profiles := make([]model.ClientProfile, 0, len(rows))
	for _, row := range rows {
		code, err := strconv.Atoi(strings.TrimSpace(field(row, codeIdx)))
		if err != nil {
			log.Warn().Str("client_code", field(row, codeIdx)).Msg("skipping profile row with bad client code")
			continue
		}
		profiles = append(profiles, model.ClientProfile{
			ClientCode:        code,
			Name:              field(row, nameIdx),
			Status:            field(row, statusIdx),
			AvgMonthlyBalance: ParseAmount(field(row, balIdx)),
		})
	}
	return profiles, nil
}

// LoadClientTables locates and parses each client's transaction and
// transfer extracts. Missing files become empty tables and are surfaced
// in the returned missing-files report; clients with no files at all get
// no ClientTables entry.
func (l *Loader) LoadClientTables(profiles []model.ClientProfile) (map[int]*ClientTables, map[int][]string) {
	tables := make(map[int]*ClientTables, len(profiles))
	missing := make(map[int][]string)

	for _, p := range profiles {
		ct := &ClientTables{}

		txPath := filepath.Join(l.DataDir, fmt.Sprintf("client_%d_transactions_3m.csv", p.ClientCode))
		if txs, err := l.loadTransactions(txPath); err != nil {
			if os.IsNotExist(err) {
				missing[p.ClientCode] = append(missing[p.ClientCode], txPath)
			} else {
				log.Warn().Err(err).Str("path", txPath).Msg("failed to read transactions, treating as empty")
				ct.FilesFound++
			}
		} else {
			ct.Transactions = txs
			ct.FilesFound++
		}

		trPath := filepath.Join(l.DataDir, fmt.Sprintf("client_%d_transfers_3m.csv", p.ClientCode))
		if trs, err := l.loadTransfers(trPath); err != nil {
			if os.IsNotExist(err) {
				missing[p.ClientCode] = append(missing[p.ClientCode], trPath)
			} else {
				log.Warn().Err(err).Str("path", trPath).Msg("failed to read transfers, treating as empty")
				ct.FilesFound++
			}
		} else {
			ct.Transfers = trs
			ct.FilesFound++
		}

		if ct.FilesFound > 0 {
			tables[p.ClientCode] = ct
		}
	}
	return tables, missing
}

func (l *Loader) loadTransactions(path string) ([]model.Transaction, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	dateIdx := columnIndex(header, "date")
	catIdx := columnIndex(header, "category")
	amtIdx := columnIndex(header, "amount")

	txs := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, model.Transaction{
			Date:     ParseDate(field(row, dateIdx)),
			Category: field(row, catIdx),
			Amount:   ParseAmount(field(row, amtIdx)),
		})
	}
	return txs, nil
}

func (l *Loader) loadTransfers(path string) ([]model.Transfer, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	dateIdx := columnIndex(header, "date")
	typeIdx := columnIndex(header, "type")
	dirIdx := columnIndex(header, "direction")
	amtIdx := columnIndex(header, "amount")

	trs := make([]model.Transfer, 0, len(rows))
	for _, row := range rows {
		trs = append(trs, model.Transfer{
			Date:      ParseDate(field(row, dateIdx)),
			Type:      field(row, typeIdx),
			Direction: field(row, dirIdx),
			Amount:    ParseAmount(field(row, amtIdx)),
		})
	}
	return trs, nil
}

// readCSV reads the whole file and returns the data rows and the header.
func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[1:], records[0], nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
