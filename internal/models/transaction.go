package models

import "time"

// TransactionType represents the direction of money movement.
type TransactionType string

const (
	TransactionTypeIn  TransactionType = "in"
	TransactionTypeOut TransactionType = "out"
)

// Categories is the fixed label set offered to callers. The graph ontology
// seeds a Category node for each so projection lookups always resolve.
var Categories = []string{
	"Groceries", "Food", "Transportation", "Entertainment",
	"Utilities", "Salary", "Investment", "Other",
}

// IsKnownCategory reports whether name is one of the fixed category labels.
func IsKnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Transaction represents a ledger record. The column layout mirrors the
// legacy transactions table and is the durable on-disk contract, so the
// names and types here must not change.
type Transaction struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"column:name" json:"name"`
	Amount          float64         `gorm:"column:amount;type:real" json:"amount"`
	Brand           string          `gorm:"column:brand" json:"brand"`
	Category        string          `gorm:"column:category" json:"category"`
	TransactionTime time.Time       `gorm:"column:transaction_time" json:"transaction_time"`
	Type            TransactionType `gorm:"column:type" json:"type"`
}

// TableName pins the legacy table name.
func (Transaction) TableName() string { return "transactions" }
