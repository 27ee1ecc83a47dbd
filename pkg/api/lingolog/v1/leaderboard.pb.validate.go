// Code generated by protoc-gen-validate. DO NOT EDIT.
// source: lingolog/v1/leaderboard.proto

package lingologv1

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"google.golang.org/protobuf/types/known/anypb"
)

// ensure the imports are used
var (
	_ = bytes.MinRead
	_ = errors.New("")
	_ = fmt.Print
	_ = utf8.UTFMax
	_ = (*regexp.Regexp)(nil)
	_ = (*strings.Reader)(nil)
	_ = net.IPv4len
	_ = time.Duration(0)
	_ = (*url.URL)(nil)
	_ = (*mail.Address)(nil)
	_ = anypb.Any{}
	_ = sort.Sort
)

// Validate checks the field values on GetLeaderboardRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *GetLeaderboardRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on GetLeaderboardRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// GetLeaderboardRequestMultiError, or nil if none found.
func (m *GetLeaderboardRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *GetLeaderboardRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for ContestId

	// no validation rules for LanguageCode

	// no validation rules for ActivityId

	// no validation rules for PageSize

	// no validation rules for PageToken

	if len(errors) > 0 {
		return GetLeaderboardRequestMultiError(errors)
	}

	return nil
}

// GetLeaderboardRequestMultiError is an error wrapping multiple validation
// errors returned by GetLeaderboardRequest.ValidateAll() if the designated
// constraints aren't met.
type GetLeaderboardRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m GetLeaderboardRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m GetLeaderboardRequestMultiError) AllErrors() []error { return m }

// GetLeaderboardRequestValidationError is the validation error returned by
// GetLeaderboardRequest.Validate if the designated constraints aren't met.
type GetLeaderboardRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e GetLeaderboardRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e GetLeaderboardRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e GetLeaderboardRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e GetLeaderboardRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e GetLeaderboardRequestValidationError) ErrorName() string {
	return "GetLeaderboardRequestValidationError"
}

// Error satisfies the builtin error interface
func (e GetLeaderboardRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sGetLeaderboardRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = GetLeaderboardRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = GetLeaderboardRequestValidationError{}

// Validate checks the field values on LeaderboardEntry with the rules defined
// in the proto definition for this message. If any rules are violated, the
// first error encountered is returned, or nil if there are no violations.
func (m *LeaderboardEntry) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on LeaderboardEntry with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// LeaderboardEntryMultiError, or nil if none found.
func (m *LeaderboardEntry) ValidateAll() error {
	return m.validate(true)
}

func (m *LeaderboardEntry) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for Rank

	// no validation rules for UserId

	// no validation rules for UserDisplayName

	// no validation rules for Score

	// no validation rules for IsTie

	if len(errors) > 0 {
		return LeaderboardEntryMultiError(errors)
	}

	return nil
}

// LeaderboardEntryMultiError is an error wrapping multiple validation errors
// returned by LeaderboardEntry.ValidateAll() if the designated constraints
// aren't met.
type LeaderboardEntryMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m LeaderboardEntryMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m LeaderboardEntryMultiError) AllErrors() []error { return m }

// LeaderboardEntryValidationError is the validation error returned by
// LeaderboardEntry.Validate if the designated constraints aren't met.
type LeaderboardEntryValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e LeaderboardEntryValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e LeaderboardEntryValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e LeaderboardEntryValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e LeaderboardEntryValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e LeaderboardEntryValidationError) ErrorName() string { return "LeaderboardEntryValidationError" }

// Error satisfies the builtin error interface
func (e LeaderboardEntryValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sLeaderboardEntry.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = LeaderboardEntryValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = LeaderboardEntryValidationError{}

// Validate checks the field values on GetLeaderboardResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *GetLeaderboardResponse) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on GetLeaderboardResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// GetLeaderboardResponseMultiError, or nil if none found.
func (m *GetLeaderboardResponse) ValidateAll() error {
	return m.validate(true)
}

func (m *GetLeaderboardResponse) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	for idx, item := range m.GetEntries() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, GetLeaderboardResponseValidationError{
						field:  fmt.Sprintf("Entries[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, GetLeaderboardResponseValidationError{
						field:  fmt.Sprintf("Entries[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return GetLeaderboardResponseValidationError{
					field:  fmt.Sprintf("Entries[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	// no validation rules for TotalSize

	// no validation rules for NextPageToken

	if len(errors) > 0 {
		return GetLeaderboardResponseMultiError(errors)
	}

	return nil
}

// GetLeaderboardResponseMultiError is an error wrapping multiple validation
// errors returned by GetLeaderboardResponse.ValidateAll() if the designated
// constraints aren't met.
type GetLeaderboardResponseMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m GetLeaderboardResponseMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m GetLeaderboardResponseMultiError) AllErrors() []error { return m }

// GetLeaderboardResponseValidationError is the validation error returned by
// GetLeaderboardResponse.Validate if the designated constraints aren't met.
type GetLeaderboardResponseValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e GetLeaderboardResponseValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e GetLeaderboardResponseValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e GetLeaderboardResponseValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e GetLeaderboardResponseValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e GetLeaderboardResponseValidationError) ErrorName() string {
	return "GetLeaderboardResponseValidationError"
}

// Error satisfies the builtin error interface
func (e GetLeaderboardResponseValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sGetLeaderboardResponse.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = GetLeaderboardResponseValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = GetLeaderboardResponseValidationError{}
