package ledger

import (
	"fmt"

	"financio/internal/core"
)

// ApplyToAccount applies a transaction's balance effect to the named
// account: income adds, expense subtracts. It only mutates the balance;
// persisting is the caller's job, and callers must only apply effects for
// transactions already committed to the log so every effect lands exactly
// once.
func ApplyToAccount(state *core.State, name string, kind core.TransactionKind, amount core.Money) error {
	acc, ok := state.Accounts[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, name)
	}
	switch kind {
	case core.Income:
		acc.Balance = acc.Balance.Add(amount)
	case core.Expense:
		acc.Balance = acc.Balance.Sub(amount)
	default:
		return core.ErrUnknownKind
	}
	return nil
}
