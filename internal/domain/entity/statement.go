package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lados do lançamento de extrato.
const (
	StatementDebit  = "D"
	StatementCredit = "C"
)

// StatementRecord linha crua da tabela "BankStatements".
type StatementRecord struct {
	Bank        string
	Branch      string
	Account     string
	Date        string
	Document    string
	Description string
	Amount      string
	DebitCredit string
	Company     string
	CostCenter  string
}

// StatementLine lançamento de extrato bancário normalizado.
type StatementLine struct {
	Bank        string
	Branch      string
	Account     string
	Date        time.Time
	Document    string
	Description string
	Amount      decimal.Decimal
	DebitCredit string // "D" ou "C"
	Company     string
	CostCenter  string
}
