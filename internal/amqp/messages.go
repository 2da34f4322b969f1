package amqp

import (
	"encoding/json"
	"time"
)

// Event kinds carried by ledger change messages.
const (
	EventTransactionLogged EventKind = "transaction_logged"
	EventRuleProcessed     EventKind = "rule_processed"
	EventGoalAchieved      EventKind = "goal_achieved"
)

type EventKind string

// LedgerEventMessage notifies external consumers (dashboards, GUIs) that
// the ledger changed. It carries identifiers only; consumers read the
// ledger document for details.
type LedgerEventMessage struct {
	Kind          EventKind `json:"kind"`
	TransactionID string    `json:"transaction_id,omitempty"`
	RuleID        string    `json:"rule_id,omitempty"`
	GoalName      string    `json:"goal_name,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionLoggedMessage builds the event for a freshly logged
// transaction.
func NewTransactionLoggedMessage(transactionID string) *LedgerEventMessage {
	return &LedgerEventMessage{
		Kind:          EventTransactionLogged,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

// NewRuleProcessedMessage builds the event for a realized recurring rule.
func NewRuleProcessedMessage(ruleID, transactionID string) *LedgerEventMessage {
	return &LedgerEventMessage{
		Kind:          EventRuleProcessed,
		RuleID:        ruleID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

// NewGoalAchievedMessage builds the event for a goal completion badge.
func NewGoalAchievedMessage(goalName string) *LedgerEventMessage {
	return &LedgerEventMessage{
		Kind:      EventGoalAchieved,
		GoalName:  goalName,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes.
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
