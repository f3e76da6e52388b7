package services

import (
	"testing"

	"coderrBack/internal/models"
)

func TestCanTransition(t *testing.T) {
	if !canTransition(models.OrderStatusInProgress, models.OrderStatusCompleted) {
		t.Fatal("expected in_progress -> completed to be allowed")
	}
	if !canTransition(models.OrderStatusInProgress, models.OrderStatusCancelled) {
		t.Fatal("expected in_progress -> cancelled to be allowed")
	}
	if canTransition(models.OrderStatusInProgress, models.OrderStatusInProgress) {
		t.Fatal("unexpected in_progress -> in_progress allowed")
	}
	if canTransition(models.OrderStatusCompleted, models.OrderStatusInProgress) {
		t.Fatal("completed must be terminal")
	}
	if canTransition(models.OrderStatusCancelled, models.OrderStatusCompleted) {
		t.Fatal("cancelled must be terminal")
	}
}

func TestIsKnownOrderStatus(t *testing.T) {
	for _, status := range []string{models.OrderStatusInProgress, models.OrderStatusCompleted, models.OrderStatusCancelled} {
		if !isKnownOrderStatus(status) {
			t.Errorf("expected %q to be a known status", status)
		}
	}
	if isKnownOrderStatus("finished") {
		t.Error("unexpected status accepted")
	}
	if isKnownOrderStatus("") {
		t.Error("empty status accepted")
	}
}
