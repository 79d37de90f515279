package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/senxilab/senxi-backend/internal/guide"
	"github.com/senxilab/senxi-backend/internal/logger"
)

var ErrSessionNotFound = errors.New("会话不存在或已过期")

const sessionTTL = 30 * time.Minute

// GuideService runs the multi-turn consultation, persisting the dialogue
// state between turns so it survives across requests and instances.
type GuideService interface {
	Start(ctx context.Context) (string, guide.Reply, error)
	Answer(ctx context.Context, sessionID, input string, step int) (guide.Reply, error)
	Reset(ctx context.Context, sessionID string) (guide.Reply, error)
}

type guideService struct {
	engine *guide.Engine
	store  TTLStore
	log    *logger.Logger
}

func NewGuideService(engine *guide.Engine, store TTLStore, baseLog *logger.Logger) GuideService {
	return &guideService{
		engine: engine,
		store:  store,
		log:    baseLog.With("service", "GuideService"),
	}
}

// Start creates a session and returns its id alongside the greeting.
func (gs *guideService) Start(ctx context.Context) (string, guide.Reply, error) {
	sessionID := uuid.NewString()
	if err := gs.saveState(ctx, sessionID, guide.NewState()); err != nil {
		return "", guide.Reply{}, err
	}
	gs.log.Debug("Guide session started", "session_id", sessionID)
	return sessionID, gs.engine.Welcome(), nil
}

// Answer processes one turn. Each successful turn re-saves the state and
// refreshes the session TTL.
func (gs *guideService) Answer(ctx context.Context, sessionID, input string, step int) (guide.Reply, error) {
	state, err := gs.loadState(ctx, sessionID)
	if err != nil {
		return guide.Reply{}, err
	}
	reply := gs.engine.Process(state, input, step)
	if err := gs.saveState(ctx, sessionID, state); err != nil {
		return guide.Reply{}, err
	}
	return reply, nil
}

// Reset discards the collected answers and starts the same session over.
func (gs *guideService) Reset(ctx context.Context, sessionID string) (guide.Reply, error) {
	if _, err := gs.loadState(ctx, sessionID); err != nil {
		return guide.Reply{}, err
	}
	if err := gs.saveState(ctx, sessionID, guide.NewState()); err != nil {
		return guide.Reply{}, err
	}
	return gs.engine.Welcome(), nil
}

func (gs *guideService) loadState(ctx context.Context, sessionID string) (*guide.State, error) {
	raw, err := gs.store.Get(ctx, sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var state guide.State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (gs *guideService) saveState(ctx context.Context, sessionID string, state *guide.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return gs.store.Set(ctx, sessionID, string(raw), sessionTTL)
}
