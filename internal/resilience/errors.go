// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"syscall"

	"github.com/aws/smithy-go"
)

// ErrorType represents different types of errors for handling strategies
type ErrorType int

const (
	ErrorTypeUnknown            ErrorType = iota
	ErrorTypeTransient                    // Temporary network issues
	ErrorTypePermanent                    // Invalid credentials, permissions
	ErrorTypeTimeout                      // Request timeouts
	ErrorTypeRateLimit                    // Throttling
	ErrorTypeServiceUnavailable           // Service downtime
	ErrorTypeInvalidInput                 // Bad input data
	ErrorTypeResourceNotFound             // Missing file, bucket or key
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeUnknown:
		return "Unknown"
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	case ErrorTypeTimeout:
		return "Timeout"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeServiceUnavailable:
		return "ServiceUnavailable"
	case ErrorTypeInvalidInput:
		return "InvalidInput"
	case ErrorTypeResourceNotFound:
		return "ResourceNotFound"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// ClassifiedError wraps an error with type information
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Original == nil {
		return e.Type.String()
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// IsRetryable returns whether this error should be retried
func (e *ClassifiedError) IsRetryable() bool {
	return e.Retryable
}

// ClassifyError categorizes an error for appropriate handling
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, context.Canceled):
		return newClassified(err, ErrorTypePermanent, "Cancelled", false)
	case isTimeoutError(err):
		return newClassified(err, ErrorTypeTimeout, "Timeout error", true)
	case errors.Is(err, fs.ErrNotExist):
		return newClassified(err, ErrorTypeResourceNotFound, "Resource not found", false)
	case errors.Is(err, fs.ErrPermission):
		return newClassified(err, ErrorTypePermanent, "Permission denied", false)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(err, apiErr)
	}

	if isNetworkError(err) {
		return newClassified(err, ErrorTypeTransient, "Network error", true)
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "throttl") || strings.Contains(errStr, "rate limit"):
		return newClassified(err, ErrorTypeRateLimit, "Rate limit exceeded", true)
	case strings.Contains(errStr, "service unavailable") || strings.Contains(errStr, "internal server error"):
		return newClassified(err, ErrorTypeServiceUnavailable, "Service unavailable", true)
	case strings.Contains(errStr, "access denied") || strings.Contains(errStr, "forbidden"):
		return newClassified(err, ErrorTypePermanent, "Authorization error", false)
	case strings.Contains(errStr, "not found") || strings.Contains(errStr, "does not exist"):
		return newClassified(err, ErrorTypeResourceNotFound, "Resource not found", false)
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "malformed"):
		return newClassified(err, ErrorTypeInvalidInput, "Invalid input", false)
	}

	return newClassified(err, ErrorTypeUnknown, "Unknown error", false)
}

// classifyAPIError maps S3 and other AWS service error codes
func classifyAPIError(err error, apiErr smithy.APIError) *ClassifiedError {
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return newClassified(err, ErrorTypeResourceNotFound, "Resource not found", false)
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch", "ExpiredToken":
		return newClassified(err, ErrorTypePermanent, "Authorization error", false)
	case "SlowDown", "Throttling", "ThrottlingException", "RequestLimitExceeded":
		return newClassified(err, ErrorTypeRateLimit, "Rate limit exceeded", true)
	case "InternalError", "ServiceUnavailable":
		return newClassified(err, ErrorTypeServiceUnavailable, "Service unavailable", true)
	case "RequestTimeout":
		return newClassified(err, ErrorTypeTimeout, "Timeout error", true)
	}
	if apiErr.ErrorFault() == smithy.FaultServer {
		return newClassified(err, ErrorTypeServiceUnavailable, "Service unavailable", true)
	}
	return newClassified(err, ErrorTypePermanent, "Service error", false)
}

func newClassified(err error, t ErrorType, prefix string, retryable bool) *ClassifiedError {
	return &ClassifiedError{
		Original:  err,
		Type:      t,
		Message:   fmt.Sprintf("%s: %v", prefix, err),
		Retryable: retryable,
	}
}

// isNetworkError checks if an error is network-related
func isNetworkError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

// isTimeoutError checks if an error is timeout-related
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}

// NewTransientError creates a new transient error
func NewTransientError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{
		Original:  cause,
		Type:      ErrorTypeTransient,
		Message:   message,
		Retryable: true,
	}
}

// NewPermanentError creates a new permanent error
func NewPermanentError(message string, cause error) *ClassifiedError {
	return &ClassifiedError{
		Original:  cause,
		Type:      ErrorTypePermanent,
		Message:   message,
		Retryable: false,
	}
}
