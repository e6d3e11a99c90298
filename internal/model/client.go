package model

import "time"

// ClientProfile holds the static attributes of one bank client,
// loaded once from the profile table.
type ClientProfile struct {
	ClientCode        int
	Name              string
	Status            string
	AvgMonthlyBalance float64
}

// Transaction represents a single card transaction over the 3-month window.
type Transaction struct {
	Date     time.Time
	Category string
	Amount   float64
}

// Transfer represents a single account transfer over the 3-month window.
// Amount may be negative depending on direction.
type Transfer struct {
	Date      time.Time
	Type      string
	Direction string
	Amount    float64
}

// ClientAggregate joins a profile with its parsed transaction and transfer
// tables. Either table may be empty. Read-only after construction.
type ClientAggregate struct {
	Profile      ClientProfile
	Transactions []Transaction
	Transfers    []Transfer
	MonthlySpend float64
}
