package core

// State is the whole persisted ledger document. Field names and shapes match
// the on-disk JSON format exactly; see internal/storage for (de)serialization.
type State struct {
	// Income is the user's periodic income, consumed by budget status.
	Income       Money               `json:"income"`
	Transactions []Transaction       `json:"transactions"`
	Recurring    []RecurringRule     `json:"recurring_transactions"`
	Accounts     map[string]*Account `json:"accounts"`
	Budget       map[string]Money    `json:"budget"`
	Goals        []Goal              `json:"goals"`
	// Badges is an ordered set of earned badge labels.
	Badges []string `json:"badges"`
}

// NewState returns an empty ledger with all collections initialized, the
// shape a fresh install starts from when no document exists yet.
func NewState() *State {
	return &State{
		Transactions: []Transaction{},
		Recurring:    []RecurringRule{},
		Accounts:     map[string]*Account{},
		Budget:       map[string]Money{},
		Goals:        []Goal{},
		Badges:       []string{},
	}
}

// Normalize fills in nil collections on a freshly decoded State so callers
// never have to nil-check maps before writing.
func (s *State) Normalize() {
	if s.Transactions == nil {
		s.Transactions = []Transaction{}
	}
	if s.Recurring == nil {
		s.Recurring = []RecurringRule{}
	}
	if s.Accounts == nil {
		s.Accounts = map[string]*Account{}
	}
	if s.Budget == nil {
		s.Budget = map[string]Money{}
	}
	if s.Goals == nil {
		s.Goals = []Goal{}
	}
	if s.Badges == nil {
		s.Badges = []string{}
	}
}

// HasBadge reports whether the badge label was already earned.
func (s *State) HasBadge(label string) bool {
	for _, b := range s.Badges {
		if b == label {
			return true
		}
	}
	return false
}

// GoalByID returns a pointer into the Goals slice, or nil if absent.
func (s *State) GoalByID(id string) *Goal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}
