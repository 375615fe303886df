package csi

import (
	"errors"
	"fmt"
)

// Error kinds. Every structured error below unwraps to one of these, so
// callers can test with errors.Is.
var (
	ErrResetTimeout     = errors.New("reset timeout")
	ErrInvalidChannel   = errors.New("invalid channel")
	ErrInvalidIndex     = errors.New("invalid index")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidLaneCount = errors.New("invalid lane count")
	ErrUnknownControl   = errors.New("unknown control id")
	ErrInstanceMismatch = errors.New("instance mismatch")
)

// ResetTimeoutError indicates that the software reset bit never cleared.
type ResetTimeoutError struct {
	Attempts int
}

func (e *ResetTimeoutError) Error() string {
	return fmt.Sprintf("reset timeout: software reset still asserted after %d polls", e.Attempts)
}

func (e *ResetTimeoutError) Unwrap() error { return ErrResetTimeout }

// ChannelError indicates a virtual channel outside 0..3.
type ChannelError struct {
	Channel uint32
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("invalid channel %d: valid range is 0-%d", e.Channel, VCMax-1)
}

func (e *ChannelError) Unwrap() error { return ErrInvalidChannel }

// IndexError indicates an index outside a fixed-size hardware table.
type IndexError struct {
	// Table names the indexed table
	Table string

	Index uint32
	Max   uint32
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid %s index %d: valid range is 0-%d", e.Table, e.Index, e.Max)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// FormatError indicates a data format the requested path cannot carry.
type FormatError struct {
	// Op is the configuration step that rejected the format
	Op string

	Channel uint32
	Format  uint32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: invalid data format 0x%02X on channel %d", e.Op, e.Format, e.Channel)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// LaneCountError indicates a lane count outside 1..4.
type LaneCountError struct {
	Lanes int
}

func (e *LaneCountError) Error() string {
	return fmt.Sprintf("invalid lane count %d: must be 1-4", e.Lanes)
}

func (e *LaneCountError) Unwrap() error { return ErrInvalidLaneCount }

// ControlError indicates a control id SetControl does not know. It is not
// fatal: nothing was written.
type ControlError struct {
	ID ControlID
}

func (e *ControlError) Error() string {
	return fmt.Sprintf("unknown control id %d", e.ID)
}

func (e *ControlError) Unwrap() error { return ErrUnknownControl }

// InstanceError indicates a tune table that belongs to another instance.
type InstanceError struct {
	Instance uint32
	Magic    uint16
}

func (e *InstanceError) Error() string {
	return fmt.Sprintf("tune table magic 0x%04X does not belong to instance %d", e.Magic, e.Instance)
}

func (e *InstanceError) Unwrap() error { return ErrInstanceMismatch }
