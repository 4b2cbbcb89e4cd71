// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// StandardObserver records timed operations for all components
type StandardObserver struct {
	level  ObservabilityLevel
	logger zerolog.Logger
	seq    atomic.Uint64
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, logger zerolog.Logger) *StandardObserver {
	return &StandardObserver{
		level:  level,
		logger: logger.With().Str("component", "observer").Logger(),
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, subject string) func(success bool, metadata map[string]interface{}) {
	if o == nil || o.level == ObservabilityOff {
		return func(bool, map[string]interface{}) {}
	}

	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		o.LogOperation(StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			Subject:    subject,
			DurationUs: time.Since(start).Microseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = o.seq.Add(1)

	// Only log operations in debug mode
	if o.level != ObservabilityDebug {
		return
	}

	event := o.logger.Debug().
		Str("op_component", data.Component).
		Str("operation", data.Operation).
		Uint64("request_id", data.RequestID).
		Int64("duration_us", data.DurationUs).
		Bool("success", data.Success)
	if data.Subject != "" {
		event = event.Str("subject", data.Subject)
	}
	if data.Error != "" {
		event = event.Str("error", data.Error)
	}
	if len(data.Metadata) > 0 {
		event = event.Fields(data.Metadata)
	}
	event.Msg("operation completed")
}

// Operations returns how many operations have been recorded
func (o *StandardObserver) Operations() uint64 {
	if o == nil {
		return 0
	}
	return o.seq.Load()
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  uint64                 `json:"request_id"`
	Subject    string                 `json:"subject,omitempty"`
	DurationUs int64                  `json:"duration_us,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
