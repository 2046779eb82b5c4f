package util

import (
	"errors"
	"fmt"
)

// ErrorKind classifies workflow failures for the handler boundary.
type ErrorKind string

const (
	KindContext           ErrorKind = "CONTEXT"
	KindConfig            ErrorKind = "CONFIG"
	KindDuplicateTicket   ErrorKind = "DUPLICATE_TICKET"
	KindWrongChannel      ErrorKind = "WRONG_CHANNEL"
	KindPermission        ErrorKind = "PERMISSION"
	KindDeliveryForbidden ErrorKind = "DELIVERY_FORBIDDEN"
	KindValidation        ErrorKind = "VALIDATION_FAILED"
	KindInternal          ErrorKind = "INTERNAL_ERROR"
)

// WorkflowError standardizes application errors. UserMessage is safe to show
// to the invoking actor; Message is for logs.
type WorkflowError struct {
	Kind        ErrorKind
	Message     string
	UserMessage string
	Details     map[string]any
	Err         error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// NewWorkflowError constructs a WorkflowError.
func NewWorkflowError(kind ErrorKind, message, userMessage string, details map[string]any) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: message, UserMessage: userMessage, Details: details}
}

func NewContextError(userMessage string) error {
	return NewWorkflowError(KindContext, "unusable invocation context", userMessage, nil)
}

func NewConfigError(resource, userMessage string) error {
	return NewWorkflowError(KindConfig, fmt.Sprintf("configured %s does not resolve", resource), userMessage, map[string]any{"resource": resource})
}

func NewDuplicateTicketError(channelID, userMessage string) error {
	return NewWorkflowError(KindDuplicateTicket, "open ticket already exists", userMessage, map[string]any{"channel_id": channelID})
}

func NewWrongChannelError(channelID, userMessage string) error {
	return NewWorkflowError(KindWrongChannel, "action attempted outside its designated channel", userMessage, map[string]any{"channel_id": channelID})
}

func NewPermissionError(userMessage string) error {
	return NewWorkflowError(KindPermission, "actor lacks the privileged role", userMessage, nil)
}

func NewDeliveryForbiddenError(userMessage string, err error) error {
	return &WorkflowError{
		Kind:        KindDeliveryForbidden,
		Message:     "outbound delivery rejected by platform permissions",
		UserMessage: userMessage,
		Err:         err,
	}
}

func NewValidationError(message, userMessage string, details map[string]any) error {
	return NewWorkflowError(KindValidation, message, userMessage, details)
}

func NewInternalError(err error) error {
	return &WorkflowError{
		Kind:        KindInternal,
		Message:     "internal error",
		UserMessage: "Something went wrong. Please try again.",
		Err:         err,
	}
}

// ToWorkflowError converts generic errors to WorkflowError. Unknown errors
// become KindInternal so the actor still gets a response.
func ToWorkflowError(err error) *WorkflowError {
	if err == nil {
		return nil
	}
	var workflowErr *WorkflowError
	if errors.As(err, &workflowErr) {
		return workflowErr
	}
	if we, ok := NewInternalError(err).(*WorkflowError); ok {
		return we
	}
	return &WorkflowError{
		Kind:        KindInternal,
		Message:     "internal error",
		UserMessage: "Something went wrong. Please try again.",
		Err:         err,
	}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	if we := ToWorkflowError(err); we != nil {
		return we.Kind
	}
	return KindInternal
}
