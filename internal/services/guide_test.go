package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/senxilab/senxi-backend/internal/catalog"
	"github.com/senxilab/senxi-backend/internal/guide"
	"github.com/senxilab/senxi-backend/internal/services"
)

func newGuideService(t *testing.T) services.GuideService {
	t.Helper()
	engine := guide.New(catalog.New())
	return services.NewGuideService(engine, newFakeStore(), newTestLogger(t))
}

func TestGuideSessionFlow(t *testing.T) {
	svc := newGuideService(t)
	ctx := context.Background()

	sessionID, welcome, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sessionID == "" || welcome.Type != "welcome" {
		t.Fatalf("session=%q welcome=%+v", sessionID, welcome)
	}

	reply, err := svc.Answer(ctx, sessionID, "35平米", 1)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if reply.Step != 2 {
		t.Fatalf("step = %d, want 2", reply.Step)
	}

	// State persists between turns.
	reply, err = svc.Answer(ctx, sessionID, "上海", 2)
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if reply.Step != 3 {
		t.Fatalf("step = %d, want 3", reply.Step)
	}
}

func TestGuideAnswerUnknownSession(t *testing.T) {
	svc := newGuideService(t)
	if _, err := svc.Answer(context.Background(), "missing-session", "30", 1); !errors.Is(err, services.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestGuideReset(t *testing.T) {
	svc := newGuideService(t)
	ctx := context.Background()

	sessionID, _, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Answer(ctx, sessionID, "35", 1); err != nil {
		t.Fatalf("answer: %v", err)
	}

	welcome, err := svc.Reset(ctx, sessionID)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if welcome.Type != "welcome" {
		t.Fatalf("reset reply = %+v", welcome)
	}

	// After reset the dialogue starts from the area question again.
	reply, err := svc.Answer(ctx, sessionID, "50", 1)
	if err != nil {
		t.Fatalf("answer after reset: %v", err)
	}
	if reply.Step != 2 {
		t.Fatalf("step = %d, want 2", reply.Step)
	}

	if _, err := svc.Reset(ctx, "missing-session"); !errors.Is(err, services.ErrSessionNotFound) {
		t.Fatalf("reset unknown session err = %v, want ErrSessionNotFound", err)
	}
}
