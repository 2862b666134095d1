package core

// # Error Codes Reference
//
// User-facing messages carry a code so users can quote it when asking for
// help.
//
// # Load Errors (LOAD001-LOAD099)
//
// Fatal for the session. The page shows the message and no filter controls
// until a corrected file is in place and the session is reloaded.
//
//	LOAD001 - No data file: no stock workbook in the stock folder
//	          Action: Copy today's stock workbook (.xlsx) into the folder
//	          Matches: ErrNoDataFileFound
//
//	LOAD002 - Unreadable file: the workbook could not be parsed
//	          Action: Re-save the file as an Excel workbook (.xlsx)
//	          Matches: ErrParse
//
//	LOAD003 - Wrong columns: required header missing
//	          Action: Add the missing columns to the first row of the first sheet
//	          Matches: ErrSchemaMismatch
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid quantity: requested quantity below 1 or not a number
//	         Matches: ErrInvalidQuantity
//
//	REQ002 - Request timeout
//	         Patterns: "context deadline exceeded", "timeout"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check the server log for the technical error.

import (
	"errors"
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorKinds maps sentinel errors to user messages. Checked with errors.Is
// before the string patterns below.
var errorKinds = []struct {
	target error
	msg    UserMessage
}{
	{
		target: ErrNoDataFileFound,
		msg: UserMessage{
			Message: "No Excel stock file found in the stock folder",
			Action:  "Copy today's stock workbook (.xlsx) into the folder and reload",
			Code:    "LOAD001",
		},
	},
	{
		target: ErrParse,
		msg: UserMessage{
			Message: "The stock file could not be read",
			Action:  "Re-save the file as an Excel workbook (.xlsx) and reload",
			Code:    "LOAD002",
		},
	},
	{
		target: ErrSchemaMismatch,
		msg: UserMessage{
			Message: "The stock file is missing required columns",
			Action:  "The first row of the first sheet must contain: " + strings.Join(RequiredColumns(PipeFieldSpecs), ", "),
			Code:    "LOAD003",
		},
	},
	{
		target: ErrInvalidQuantity,
		msg: UserMessage{
			Message: "Quantity must be a whole number of at least 1",
			Action:  "Enter the number of pipes you need",
			Code:    "REQ001",
		},
	},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns catches errors that do not wrap one of our sentinels.
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins.
var errorPatterns = []errorPattern{
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Returns the zero UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return k.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
