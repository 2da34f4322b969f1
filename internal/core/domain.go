package core

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

const (
	Bank       AccountType = "bank"
	CreditCard AccountType = "credit_card"
	Loan       AccountType = "loan"
)

type (
	// TransactionKind says whether money came in or went out.
	TransactionKind string

	// Frequency is the repetition interval of a recurring rule.
	Frequency string

	// AccountType classifies a tracked account.
	AccountType string

	// Transaction is a realized ledger entry. Immutable once created.
	Transaction struct {
		ID          string          `json:"id"`
		Kind        TransactionKind `json:"type"`
		Amount      Money           `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Date        Date            `json:"date"`
		AccountName string          `json:"account_name,omitempty"`
		// RecurringID links back to the rule that produced this entry.
		RecurringID string `json:"recurring_id,omitempty"`
	}

	// RecurringRule emits one transaction per due occurrence. NextDue is
	// rolled forward by one frequency step each time the rule is processed.
	RecurringRule struct {
		ID          string          `json:"id"`
		Kind        TransactionKind `json:"type"`
		Amount      Money           `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
		Frequency   Frequency       `json:"frequency"`
		NextDue     Date            `json:"next_due_date"`
		AccountName string          `json:"account_name,omitempty"`
		// LastProcessed guards against realizing a rule twice on one day.
		LastProcessed *Date `json:"last_processed_date,omitempty"`
	}

	// Account is a tracked balance. The map key in State is its unique name.
	Account struct {
		Type    AccountType `json:"type"`
		Balance Money       `json:"balance"`
		// Limit is only meaningful for credit cards.
		Limit *Money `json:"limit,omitempty"`
		// Principal is only meaningful for loans.
		Principal *Money `json:"principal,omitempty"`
	}

	// Goal is a savings target with a monotonically growing current amount.
	Goal struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Target   Money  `json:"target"`
		Current  Money  `json:"current"`
		Deadline *Date  `json:"deadline,omitempty"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrUnknownKind        = errors.New("unknown transaction type")
	ErrUnknownFrequency   = errors.New("unknown frequency")
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyName          = errors.New("empty name")
)

// NewID returns a fresh opaque identifier for transactions, rules and goals.
func NewID() string {
	return uuid.NewString()
}

// ParseTransactionKind validates a user-supplied kind string.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", ErrUnknownKind
	}
}

// ParseFrequency validates a user-supplied frequency string.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	case Yearly:
		return Yearly, nil
	default:
		return "", ErrUnknownFrequency
	}
}

// ParseAccountType validates a user-supplied account type string.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case Bank:
		return Bank, nil
	case CreditCard:
		return CreditCard, nil
	case Loan:
		return Loan, nil
	default:
		return "", ErrUnknownAccountType
	}
}

func (k TransactionKind) Valid() bool {
	return k == Income || k == Expense
}

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

func (a AccountType) Valid() bool {
	switch a {
	case Bank, CreditCard, Loan:
		return true
	}
	return false
}

func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrUnknownKind
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (r RecurringRule) Validate() error {
	if !r.Kind.Valid() {
		return ErrUnknownKind
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if !r.Frequency.Valid() {
		return ErrUnknownFrequency
	}
	if r.NextDue.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if err := g.Target.Validate(); err != nil {
		return err
	}
	if g.Current.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// Progress returns the goal's completion ratio as a percentage. A target of
// zero or less counts as complete.
func (g Goal) Progress() float64 {
	if !g.Target.IsPositive() {
		return 100
	}
	return g.Current.Float64() / g.Target.Float64() * 100
}
