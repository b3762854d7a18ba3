package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"oddsdesk/internal/models"
)

type subscribeRequest struct {
	Type string `json:"type"`
}

// ConsensusStreamOptions tune the reconnect loop. Zero values get sane
// defaults.
type ConsensusStreamOptions struct {
	URL        string
	BackoffMin time.Duration
	BackoffMax time.Duration
	Logger     *zap.Logger
}

// ConsensusStream consumes the realtime consensus tick channel. It is a
// narrow visual-delta feed: ticks only carry new consensus display values,
// never full records, so consumers must not run ranking on them.
type ConsensusStream struct {
	opts ConsensusStreamOptions
}

func NewConsensusStream(opts ConsensusStreamOptions) *ConsensusStream {
	if opts.BackoffMin == 0 {
		opts.BackoffMin = 1 * time.Second
	}
	if opts.BackoffMax == 0 {
		opts.BackoffMax = 30 * time.Second
	}
	return &ConsensusStream{opts: opts}
}

// Run connects, subscribes, and delivers ticks until ctx is cancelled,
// reconnecting with jittered backoff on any error.
func (s *ConsensusStream) Run(ctx context.Context, onTick func(models.ConsensusTick)) error {
	if s == nil {
		return fmt.Errorf("stream is nil")
	}
	if s.opts.URL == "" {
		return fmt.Errorf("consensus stream url is empty")
	}
	backoff := s.opts.BackoffMin
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.connectAndConsume(ctx, onTick)
		if err == nil || errors.Is(err, context.Canceled) {
			return err
		}
		if s.opts.Logger != nil {
			s.opts.Logger.Warn("consensus stream disconnected", zap.Error(err))
		}
		if err := sleepWithJitter(ctx, backoff); err != nil {
			return err
		}
		backoff = nextBackoff(backoff, s.opts.BackoffMax)
	}
}

func (s *ConsensusStream) connectAndConsume(ctx context.Context, onTick func(models.ConsensusTick)) error {
	conn, _, err := websocket.Dial(ctx, s.opts.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "reconnect")

	payload, err := json.Marshal(subscribeRequest{Type: "consensus"})
	if err != nil {
		return err
	}
	if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
		return err
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Info("consensus stream connected")
	}

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}
		var tick models.ConsensusTick
		if err := json.Unmarshal(data, &tick); err != nil {
			if s.opts.Logger != nil {
				s.opts.Logger.Warn("consensus tick decode failed", zap.Error(err))
			}
			continue
		}
		if tick.SignalID == "" {
			continue
		}
		onTick(tick)
	}
}

func sleepWithJitter(ctx context.Context, d time.Duration) error {
	jitter := time.Duration(rand.Int63n(int64(d)/2 + 1))
	timer := time.NewTimer(d + jitter)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func nextBackoff(cur, max time.Duration) time.Duration {
	next := cur * 2
	if next > max {
		return max
	}
	return next
}
