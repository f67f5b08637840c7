package domain

import dErrors "gatecheck/pkg/domain-errors"

// Channel is a domain value naming the input path a candidate code arrived on.
// Invariant: the value must be one of the supported channels. It is carried
// downstream purely for audit attribution.
//
// Usage: construct via ParseChannel at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Channel string

// Supported input channels.
const (
	ChannelScanner Channel = "scanner"
	ChannelCamera  Channel = "camera"
	ChannelManual  Channel = "manual"
)

// validChannels is the single source of truth for valid channels.
var validChannels = map[Channel]bool{
	ChannelScanner: true,
	ChannelCamera:  true,
	ChannelManual:  true,
}

// ParseChannel constructs a Channel from external input.
func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if !validChannels[c] {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown channel: "+s)
	}
	return c, nil
}

// IsValid reports whether the channel is one of the supported values.
func (c Channel) IsValid() bool { return validChannels[c] }

func (c Channel) String() string { return string(c) }
