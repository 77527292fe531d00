package telemetry

import (
	"context"
	"strings"
	"testing"
)

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "dungeon.generate")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span should not record")
	}
	if span.SpanContext().IsValid() {
		t.Error("noop span should have an invalid span context")
	}
}

func TestHostnameNeverEmpty(t *testing.T) {
	if strings.TrimSpace(hostname()) == "" {
		t.Error("hostname should fall back to a non-empty value")
	}
}
