package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgCharacterNotFound   = "character not found"
	ErrMsgItemNotFound        = "item not found"
	ErrMsgParticipantNotFound = "participant not found"
	ErrMsgQuestNotEligible    = "quest is not eligible for completion processing"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrUserNotFound        = errors.New(ErrMsgUserNotFound)
	ErrCharacterNotFound   = errors.New(ErrMsgCharacterNotFound)
	ErrItemNotFound        = errors.New(ErrMsgItemNotFound)
	ErrParticipantNotFound = errors.New(ErrMsgParticipantNotFound)
	ErrQuestNotEligible    = errors.New(ErrMsgQuestNotEligible)
)
