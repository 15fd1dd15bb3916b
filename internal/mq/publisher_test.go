package mq

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

func TestMessage_LeadCreated(t *testing.T) {
	leadID := uuid.New()
	msg := &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeLeadCreated,
		Payload:   LeadCreatedPayload{LeadID: leadID, Kind: domain.LeadKindQuote},
		Timestamp: time.Now(),
	}

	// Прогоняем через JSON, как это делает брокер:
	// payload на стороне потребителя — map, не структура.
	body, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var received Message
	if err := json.Unmarshal(body, &received); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := received.Payload.(map[string]any); !ok {
		t.Fatalf("expected map payload after transport, got %T", received.Payload)
	}

	p, err := received.LeadCreated()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.LeadID != leadID {
		t.Errorf("expected lead_id %s, got %s", leadID, p.LeadID)
	}
	if p.Kind != domain.LeadKindQuote {
		t.Errorf("expected kind quote, got %s", p.Kind)
	}
}

func TestMessage_LeadCreated_WrongType(t *testing.T) {
	msg := &Message{Type: "other.event"}
	if _, err := msg.LeadCreated(); err == nil {
		t.Error("expected error for wrong message type")
	}
}

func TestMessage_LeadCreated_EmptyLeadID(t *testing.T) {
	msg := &Message{
		Type:    MessageTypeLeadCreated,
		Payload: map[string]any{"kind": "quote"},
	}
	if _, err := msg.LeadCreated(); err == nil {
		t.Error("expected error for empty lead_id")
	}
}
