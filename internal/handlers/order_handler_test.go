package handlers

import (
	"encoding/json"
	"testing"
)

func TestStatusOnlyPayload(t *testing.T) {
	payload := map[string]json.RawMessage{
		"status": json.RawMessage(`"completed"`),
	}

	status, ok := statusOnlyPayload(payload)
	if !ok {
		t.Fatal("expected status-only payload to be accepted")
	}
	if status != "completed" {
		t.Errorf("expected status 'completed', got %q", status)
	}
}

func TestStatusOnlyPayloadRejectsExtraFields(t *testing.T) {
	payload := map[string]json.RawMessage{
		"status": json.RawMessage(`"completed"`),
		"price":  json.RawMessage(`999`),
	}

	if _, ok := statusOnlyPayload(payload); ok {
		t.Fatal("expected payload with extra fields to be rejected")
	}
}

func TestStatusOnlyPayloadRejectsMissingStatus(t *testing.T) {
	payload := map[string]json.RawMessage{
		"title": json.RawMessage(`"New title"`),
	}

	if _, ok := statusOnlyPayload(payload); ok {
		t.Fatal("expected payload without status to be rejected")
	}
}

func TestStatusOnlyPayloadRejectsNonStringStatus(t *testing.T) {
	payload := map[string]json.RawMessage{
		"status": json.RawMessage(`42`),
	}

	if _, ok := statusOnlyPayload(payload); ok {
		t.Fatal("expected non-string status to be rejected")
	}
}
