package channel

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
	dErrors "gatecheck/pkg/domain-errors"
)

// DefaultDebounceWindow is how long a decoded code is ignored after it was
// just submitted. A badge held in front of a camera decodes on every frame;
// one presentation must become one submission.
const DefaultDebounceWindow = 3 * time.Second

// Frame is one captured camera frame, opaque to this package.
type Frame []byte

// Device is the camera hardware abstraction. Acquire must be paired with
// Release exactly once per successful acquisition; Frames delivers captured
// frames until the device is released or fails.
type Device interface {
	Acquire(ctx context.Context) error
	Frames() <-chan Frame
	Release() error
}

// Decoder turns a frame into a candidate code string. Reports false when the
// frame contains nothing decodable. Symbology is the decoder's business.
type Decoder interface {
	Decode(frame Frame) (string, bool)
}

// Camera runs the decode loop for one camera station. It owns the device
// lifecycle: whatever ends the loop, the device is released.
type Camera struct {
	device     Device
	decoder    Decoder
	submitter  Submitter
	sessionID  id.SessionID
	operatorID id.OperatorID
	debounce   time.Duration
	logger     *slog.Logger
	onOutcome  func(*models.Outcome)
	clock      func() time.Time

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

type CameraOption func(*Camera)

func WithDebounceWindow(d time.Duration) CameraOption {
	return func(c *Camera) { c.debounce = d }
}

// WithOutcomeHandler installs the callback invoked after every submission,
// from the decode loop goroutine.
func WithOutcomeHandler(fn func(*models.Outcome)) CameraOption {
	return func(c *Camera) { c.onOutcome = fn }
}

func withClock(clock func() time.Time) CameraOption {
	return func(c *Camera) { c.clock = clock }
}

func NewCamera(
	device Device,
	decoder Decoder,
	submitter Submitter,
	sessionID id.SessionID,
	operatorID id.OperatorID,
	logger *slog.Logger,
	opts ...CameraOption,
) *Camera {
	c := &Camera{
		device:     device,
		decoder:    decoder,
		submitter:  submitter,
		sessionID:  sessionID,
		operatorID: operatorID,
		debounce:   DefaultDebounceWindow,
		logger:     logger,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run acquires the device and processes frames until the context is
// cancelled, Stop is called, or the device closes its frame stream. The
// device is released on every exit path. At most one Run may be active per
// adapter; a second concurrent call fails without touching the device.
func (c *Camera) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "camera adapter is already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.running = true
	c.mu.Unlock()

	defer func() {
		cancel()
		c.mu.Lock()
		c.running = false
		c.cancel = nil
		c.done = nil
		c.mu.Unlock()
		close(done)
	}()

	if err := c.device.Acquire(ctx); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "camera acquisition failed")
	}
	defer func() {
		if err := c.device.Release(); err != nil {
			c.logger.Error("camera release failed", "error", err)
		}
	}()

	c.loop(ctx)
	return nil
}

func (c *Camera) loop(ctx context.Context) {
	var (
		lastCode string
		lastAt   time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-c.device.Frames():
			if !ok {
				return
			}
			code, ok := c.decoder.Decode(frame)
			if !ok {
				continue
			}

			now := c.clock()
			if code == lastCode && now.Sub(lastAt) < c.debounce {
				continue
			}
			lastCode, lastAt = code, now

			outcome, err := c.submitter.RecordAttendance(ctx, code, c.sessionID, id.ChannelCamera, c.operatorID)
			if err != nil {
				c.logger.ErrorContext(ctx, "camera submission failed", "error", err)
				continue
			}
			if c.onOutcome != nil {
				c.onOutcome(outcome)
			}
		}
	}
}

// Stop ends the decode loop and waits for Run to return, device released.
// Safe to call repeatedly and when the camera never started.
func (c *Camera) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
