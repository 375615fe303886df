package csi

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains []string
	}{
		{
			name:     "reset timeout",
			err:      &ResetTimeoutError{Attempts: 10},
			sentinel: ErrResetTimeout,
			contains: []string{"reset timeout", "10 polls"},
		},
		{
			name:     "channel",
			err:      &ChannelError{Channel: 4},
			sentinel: ErrInvalidChannel,
			contains: []string{"channel 4", "0-3"},
		},
		{
			name:     "index",
			err:      &IndexError{Table: "PHY S control", Index: 12, Max: 11},
			sentinel: ErrInvalidIndex,
			contains: []string{"PHY S control", "index 12", "0-11"},
		},
		{
			name:     "format",
			err:      &FormatError{Op: "configure dma", Channel: 1, Format: 0x99},
			sentinel: ErrInvalidFormat,
			contains: []string{"configure dma", "0x99", "channel 1"},
		},
		{
			name:     "lane count",
			err:      &LaneCountError{Lanes: 5},
			sentinel: ErrInvalidLaneCount,
			contains: []string{"lane count 5", "1-4"},
		},
		{
			name:     "control",
			err:      &ControlError{ID: 42},
			sentinel: ErrUnknownControl,
			contains: []string{"unknown control id 42"},
		},
		{
			name:     "instance",
			err:      &InstanceError{Instance: 1, Magic: 0x4353},
			sentinel: ErrInstanceMismatch,
			contains: []string{"0x4353", "instance 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(errMsg, want) {
					t.Errorf("error message should contain %q, got: %s", want, errMsg)
				}
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
		})
	}
}
