// Package scanner models the ticket-scanning capability behind an
// interface so a real QR decoder can replace the shipped simulation
// without touching the ticketing module.
package scanner

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one scan attempt. A valid scan confirms one
// ticket; an invalid result means the scanner could not read anything
// (including when the camera is unavailable) and is not an error.
type Result struct {
	EventID   string    `json:"event_id"`
	Valid     bool      `json:"valid"`
	ScannedAt time.Time `json:"scanned_at"`
}

// TicketScanner is the scan capability used by the ticketing module.
type TicketScanner interface {
	RequestScan(ctx context.Context, eventID string) (Result, error)
}

// Simulated is a TicketScanner without a real decoder: every scan with an
// available camera reads as valid. When the camera permission is denied the
// scanner silently degrades - scans come back invalid, never an error.
type Simulated struct {
	cameraAvailable bool
	log             *zap.Logger
}

// NewSimulated creates the simulated scanner
func NewSimulated(cameraAvailable bool, log *zap.Logger) *Simulated {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulated{
		cameraAvailable: cameraAvailable,
		log:             log.Named("scanner"),
	}
}

// RequestScan implements TicketScanner
func (s *Simulated) RequestScan(ctx context.Context, eventID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !s.cameraAvailable {
		s.log.Debug("Camera unavailable, scan skipped", zap.String("event_id", eventID))
		return Result{EventID: eventID, Valid: false, ScannedAt: time.Now()}, nil
	}
	return Result{EventID: eventID, Valid: true, ScannedAt: time.Now()}, nil
}
