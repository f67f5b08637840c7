package channel

import (
	"context"
	"sync"

	"gatecheck/internal/checkin/models"
	id "gatecheck/pkg/domain"
)

// DefaultScannerBuffer bounds how much a wedge-mode scanner may accumulate
// before the input is treated as garbage. Comfortably above any legitimate
// code, far below a cat on the keyboard.
const DefaultScannerBuffer = 256

// Scanner assembles keystrokes from a keyboard-wedge barcode scanner into
// submissions. Hardware scanners type the decoded payload as individual key
// events and finish with a carriage return; nothing is submitted until that
// terminator arrives, so a half-delivered code can never fire.
type Scanner struct {
	submitter  Submitter
	sessionID  id.SessionID
	operatorID id.OperatorID
	maxBuffer  int

	mu  sync.Mutex
	buf []rune
}

type ScannerOption func(*Scanner)

func WithScannerBuffer(n int) ScannerOption {
	return func(s *Scanner) { s.maxBuffer = n }
}

func NewScanner(submitter Submitter, sessionID id.SessionID, operatorID id.OperatorID, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		submitter:  submitter,
		sessionID:  sessionID,
		operatorID: operatorID,
		maxBuffer:  DefaultScannerBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Press feeds one keystroke into the assembler. The outcome is non-nil only
// on the keystroke that completes a submission.
func (s *Scanner) Press(ctx context.Context, r rune) (*models.Outcome, error) {
	s.mu.Lock()

	if r != '\r' && r != '\n' {
		// Past the bound, further keystrokes are dropped. What is kept is
		// already oversized, which is exactly what the submission should say.
		if len(s.buf) < s.maxBuffer {
			s.buf = append(s.buf, r)
		}
		s.mu.Unlock()
		return nil, nil
	}

	// Terminator. A bare CR with nothing buffered (or the LF half of a CRLF
	// pair) is noise, not an empty scan.
	if len(s.buf) == 0 {
		s.mu.Unlock()
		return nil, nil
	}

	payload := string(s.buf)
	s.buf = s.buf[:0]
	s.mu.Unlock()

	return s.submitter.RecordAttendance(ctx, payload, s.sessionID, id.ChannelScanner, s.operatorID)
}

// Type feeds a whole string of keystrokes and returns the outcomes of every
// submission they completed. Convenience for tests and replay tooling.
func (s *Scanner) Type(ctx context.Context, keys string) ([]*models.Outcome, error) {
	var outcomes []*models.Outcome
	for _, r := range keys {
		outcome, err := s.Press(ctx, r)
		if err != nil {
			return outcomes, err
		}
		if outcome != nil {
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes, nil
}
