package amqp

import (
	"testing"
	"time"
)

func TestNewTransactionLoggedMessage(t *testing.T) {
	msg := NewTransactionLoggedMessage("tx-123")

	if msg.Kind != EventTransactionLogged {
		t.Errorf("Kind = %v, want %v", msg.Kind, EventTransactionLogged)
	}
	if msg.TransactionID != "tx-123" {
		t.Errorf("TransactionID = %v, want tx-123", msg.TransactionID)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestNewRuleProcessedMessage(t *testing.T) {
	msg := NewRuleProcessedMessage("rule-1", "tx-2")

	if msg.Kind != EventRuleProcessed {
		t.Errorf("Kind = %v, want %v", msg.Kind, EventRuleProcessed)
	}
	if msg.RuleID != "rule-1" || msg.TransactionID != "tx-2" {
		t.Errorf("IDs = %v/%v, want rule-1/tx-2", msg.RuleID, msg.TransactionID)
	}
}

func TestNewGoalAchievedMessage(t *testing.T) {
	msg := NewGoalAchievedMessage("Vacation")

	if msg.Kind != EventGoalAchieved {
		t.Errorf("Kind = %v, want %v", msg.Kind, EventGoalAchieved)
	}
	if msg.GoalName != "Vacation" {
		t.Errorf("GoalName = %v, want Vacation", msg.GoalName)
	}
}

func TestLedgerEventMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &LedgerEventMessage{
		Kind:          EventRuleProcessed,
		RuleID:        "rule-1",
		TransactionID: "tx-2",
		Timestamp:     timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := LedgerEventMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("LedgerEventMessageFromJSON() error = %v", err)
	}

	if parsed.Kind != msg.Kind {
		t.Errorf("Parsed Kind = %v, want %v", parsed.Kind, msg.Kind)
	}
	if parsed.RuleID != msg.RuleID {
		t.Errorf("Parsed RuleID = %v, want %v", parsed.RuleID, msg.RuleID)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestLedgerEventMessage_InvalidJSON(t *testing.T) {
	if _, err := LedgerEventMessageFromJSON([]byte(`{"kind": 7}`)); err == nil {
		t.Error("LedgerEventMessageFromJSON() should fail with invalid JSON")
	}
}
