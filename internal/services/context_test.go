package services_test

import (
	"context"
	"testing"

	"warden/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStudent(ctx, "John Doe")
	ctx = services.WithStage(ctx, "proximity")
	ctx = services.WithRequestID(ctx, "req-123")

	if name, ok := services.StudentFromContext(ctx); !ok || name != "John Doe" {
		t.Fatalf("unexpected student: %v %v", name, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "proximity" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
}

func TestStageBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
}
