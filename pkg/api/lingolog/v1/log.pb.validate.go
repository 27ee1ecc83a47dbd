// Code generated by protoc-gen-validate. DO NOT EDIT.
// source: lingolog/v1/log.proto

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

// Validate checks the field values on Log with the rules defined in the proto
// definition for this message. If any rules are violated, the first error
// encountered is returned, or nil if there are no violations.
func (m *Log) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on Log with the rules defined in the
// proto definition for this message. If any rules are violated, the result is
// a list of violation errors wrapped in LogMultiError, or nil if none found.
func (m *Log) ValidateAll() error {
	return m.validate(true)
}

func (m *Log) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for Id

	// no validation rules for UserId

	// no validation rules for LanguageCode

	// no validation rules for ActivityId

	// no validation rules for UnitName

	// no validation rules for Score

	// no validation rules for Description

	if all {
		switch v := interface{}(m.GetCreatedAt()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, LogValidationError{
					field:  "CreatedAt",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, LogValidationError{
					field:  "CreatedAt",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetCreatedAt()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return LogValidationError{
				field:  "CreatedAt",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if all {
		switch v := interface{}(m.GetUpdatedAt()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, LogValidationError{
					field:  "UpdatedAt",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, LogValidationError{
					field:  "UpdatedAt",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetUpdatedAt()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return LogValidationError{
				field:  "UpdatedAt",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if m.Amount != nil {
		// no validation rules for Amount
	}

	if m.UnitId != nil {
		// no validation rules for UnitId
	}

	if m.DurationSeconds != nil {
		// no validation rules for DurationSeconds
	}

	if len(errors) > 0 {
		return LogMultiError(errors)
	}

	return nil
}

// LogMultiError is an error wrapping multiple validation errors returned by
// Log.ValidateAll() if the designated constraints aren't met.
type LogMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m LogMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m LogMultiError) AllErrors() []error { return m }

// LogValidationError is the validation error returned by Log.Validate if the
// designated constraints aren't met.
type LogValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e LogValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e LogValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e LogValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e LogValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e LogValidationError) ErrorName() string { return "LogValidationError" }

// Error satisfies the builtin error interface
func (e LogValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sLog.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = LogValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = LogValidationError{}

// Validate checks the field values on CreateLogRequest with the rules defined
// in the proto definition for this message. If any rules are violated, the
// first error encountered is returned, or nil if there are no violations.
func (m *CreateLogRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on CreateLogRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// CreateLogRequestMultiError, or nil if none found.
func (m *CreateLogRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *CreateLogRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if utf8.RuneCountInString(m.GetLanguageCode()) != 3 {
		err := CreateLogRequestValidationError{
			field:  "LanguageCode",
			reason: "value length must be 3 runes",
		}
		if !all {
			return err
		}
		errors = append(errors, err)

	}

	if m.GetActivityId() <= 0 {
		err := CreateLogRequestValidationError{
			field:  "ActivityId",
			reason: "value must be greater than 0",
		}
		if !all {
			return err
		}
		errors = append(errors, err)
	}

	// no validation rules for Description

	// no validation rules for TrackingMode

	if m.Amount != nil {
		// no validation rules for Amount
	}

	if m.UnitId != nil {
		// no validation rules for UnitId
	}

	if m.DurationMinutes != nil {
		// no validation rules for DurationMinutes
	}

	if len(errors) > 0 {
		return CreateLogRequestMultiError(errors)
	}

	return nil
}

// CreateLogRequestMultiError is an error wrapping multiple validation errors
// returned by CreateLogRequest.ValidateAll() if the designated constraints
// aren't met.
type CreateLogRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m CreateLogRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m CreateLogRequestMultiError) AllErrors() []error { return m }

// CreateLogRequestValidationError is the validation error returned by
// CreateLogRequest.Validate if the designated constraints aren't met.
type CreateLogRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e CreateLogRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e CreateLogRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e CreateLogRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e CreateLogRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e CreateLogRequestValidationError) ErrorName() string { return "CreateLogRequestValidationError" }

// Error satisfies the builtin error interface
func (e CreateLogRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sCreateLogRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = CreateLogRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = CreateLogRequestValidationError{}

// Validate checks the field values on ListLogsRequest with the rules defined
// in the proto definition for this message. If any rules are violated, the
// first error encountered is returned, or nil if there are no violations.
func (m *ListLogsRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ListLogsRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ListLogsRequestMultiError, or nil if none found.
func (m *ListLogsRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *ListLogsRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if all {
		switch v := interface{}(m.GetPagination()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ListLogsRequestValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ListLogsRequestValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetPagination()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ListLogsRequestValidationError{
				field:  "Pagination",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	// no validation rules for Filter

	// no validation rules for OrderBy

	if len(errors) > 0 {
		return ListLogsRequestMultiError(errors)
	}

	return nil
}

// ListLogsRequestMultiError is an error wrapping multiple validation errors
// returned by ListLogsRequest.ValidateAll() if the designated constraints
// aren't met.
type ListLogsRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ListLogsRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ListLogsRequestMultiError) AllErrors() []error { return m }

// ListLogsRequestValidationError is the validation error returned by
// ListLogsRequest.Validate if the designated constraints aren't met.
type ListLogsRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ListLogsRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ListLogsRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ListLogsRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ListLogsRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ListLogsRequestValidationError) ErrorName() string { return "ListLogsRequestValidationError" }

// Error satisfies the builtin error interface
func (e ListLogsRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sListLogsRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ListLogsRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ListLogsRequestValidationError{}

// Validate checks the field values on ListLogsResponse with the rules defined
// in the proto definition for this message. If any rules are violated, the
// first error encountered is returned, or nil if there are no violations.
func (m *ListLogsResponse) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ListLogsResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ListLogsResponseMultiError, or nil if none found.
func (m *ListLogsResponse) ValidateAll() error {
	return m.validate(true)
}

func (m *ListLogsResponse) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if all {
		switch v := interface{}(m.GetPagination()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ListLogsResponseValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ListLogsResponseValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetPagination()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ListLogsResponseValidationError{
				field:  "Pagination",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	for idx, item := range m.GetLogs() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ListLogsResponseValidationError{
						field:  fmt.Sprintf("Logs[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ListLogsResponseValidationError{
						field:  fmt.Sprintf("Logs[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ListLogsResponseValidationError{
					field:  fmt.Sprintf("Logs[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if len(errors) > 0 {
		return ListLogsResponseMultiError(errors)
	}

	return nil
}

// ListLogsResponseMultiError is an error wrapping multiple validation errors
// returned by ListLogsResponse.ValidateAll() if the designated constraints
// aren't met.
type ListLogsResponseMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ListLogsResponseMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ListLogsResponseMultiError) AllErrors() []error { return m }

// ListLogsResponseValidationError is the validation error returned by
// ListLogsResponse.Validate if the designated constraints aren't met.
type ListLogsResponseValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ListLogsResponseValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ListLogsResponseValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ListLogsResponseValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ListLogsResponseValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ListLogsResponseValidationError) ErrorName() string { return "ListLogsResponseValidationError" }

// Error satisfies the builtin error interface
func (e ListLogsResponseValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sListLogsResponse.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ListLogsResponseValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ListLogsResponseValidationError{}

// Validate checks the field values on UpdateLogRegistrationsRequest with the
// rules defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *UpdateLogRegistrationsRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on UpdateLogRegistrationsRequest with
// the rules defined in the proto definition for this message. If any rules
// are violated, the result is a list of violation errors wrapped in
// UpdateLogRegistrationsRequestMultiError, or nil if none found.
func (m *UpdateLogRegistrationsRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *UpdateLogRegistrationsRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for LogId

	// no validation rules for TrackingMode

	if len(errors) > 0 {
		return UpdateLogRegistrationsRequestMultiError(errors)
	}

	return nil
}

// UpdateLogRegistrationsRequestMultiError is an error wrapping multiple
// validation errors returned by UpdateLogRegistrationsRequest.ValidateAll()
// if the designated constraints aren't met.
type UpdateLogRegistrationsRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m UpdateLogRegistrationsRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m UpdateLogRegistrationsRequestMultiError) AllErrors() []error { return m }

// UpdateLogRegistrationsRequestValidationError is the validation error
// returned by UpdateLogRegistrationsRequest.Validate if the designated
// constraints aren't met.
type UpdateLogRegistrationsRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e UpdateLogRegistrationsRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e UpdateLogRegistrationsRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e UpdateLogRegistrationsRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e UpdateLogRegistrationsRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e UpdateLogRegistrationsRequestValidationError) ErrorName() string {
	return "UpdateLogRegistrationsRequestValidationError"
}

// Error satisfies the builtin error interface
func (e UpdateLogRegistrationsRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sUpdateLogRegistrationsRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = UpdateLogRegistrationsRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = UpdateLogRegistrationsRequestValidationError{}

// Validate checks the field values on GetConfigurationOptionsRequest with the
// rules defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *GetConfigurationOptionsRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on GetConfigurationOptionsRequest with
// the rules defined in the proto definition for this message. If any rules
// are violated, the result is a list of violation errors wrapped in
// GetConfigurationOptionsRequestMultiError, or nil if none found.
func (m *GetConfigurationOptionsRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *GetConfigurationOptionsRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for TrackingMode

	// no validation rules for LanguageCode

	if m.ActivityId != nil {
		// no validation rules for ActivityId
	}

	if len(errors) > 0 {
		return GetConfigurationOptionsRequestMultiError(errors)
	}

	return nil
}

// GetConfigurationOptionsRequestMultiError is an error wrapping multiple
// validation errors returned by GetConfigurationOptionsRequest.ValidateAll()
// if the designated constraints aren't met.
type GetConfigurationOptionsRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m GetConfigurationOptionsRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m GetConfigurationOptionsRequestMultiError) AllErrors() []error { return m }

// GetConfigurationOptionsRequestValidationError is the validation error
// returned by GetConfigurationOptionsRequest.Validate if the designated
// constraints aren't met.
type GetConfigurationOptionsRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e GetConfigurationOptionsRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e GetConfigurationOptionsRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e GetConfigurationOptionsRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e GetConfigurationOptionsRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e GetConfigurationOptionsRequestValidationError) ErrorName() string {
	return "GetConfigurationOptionsRequestValidationError"
}

// Error satisfies the builtin error interface
func (e GetConfigurationOptionsRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sGetConfigurationOptionsRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = GetConfigurationOptionsRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = GetConfigurationOptionsRequestValidationError{}

// Validate checks the field values on ConfigurationOptionsResponse with the
// rules defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *ConfigurationOptionsResponse) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ConfigurationOptionsResponse with the
// rules defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ConfigurationOptionsResponseMultiError, or nil if none found.
func (m *ConfigurationOptionsResponse) ValidateAll() error {
	return m.validate(true)
}

func (m *ConfigurationOptionsResponse) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	for idx, item := range m.GetLanguages() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Languages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Languages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ConfigurationOptionsResponseValidationError{
					field:  fmt.Sprintf("Languages[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	for idx, item := range m.GetActivities() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Activities[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Activities[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ConfigurationOptionsResponseValidationError{
					field:  fmt.Sprintf("Activities[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	for idx, item := range m.GetUnits() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Units[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Units[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ConfigurationOptionsResponseValidationError{
					field:  fmt.Sprintf("Units[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	for idx, item := range m.GetTags() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Tags[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ConfigurationOptionsResponseValidationError{
						field:  fmt.Sprintf("Tags[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ConfigurationOptionsResponseValidationError{
					field:  fmt.Sprintf("Tags[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if len(errors) > 0 {
		return ConfigurationOptionsResponseMultiError(errors)
	}

	return nil
}

// ConfigurationOptionsResponseMultiError is an error wrapping multiple
// validation errors returned by ConfigurationOptionsResponse.ValidateAll() if
// the designated constraints aren't met.
type ConfigurationOptionsResponseMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ConfigurationOptionsResponseMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ConfigurationOptionsResponseMultiError) AllErrors() []error { return m }

// ConfigurationOptionsResponseValidationError is the validation error returned
// by ConfigurationOptionsResponse.Validate if the designated constraints
// aren't met.
type ConfigurationOptionsResponseValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ConfigurationOptionsResponseValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ConfigurationOptionsResponseValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ConfigurationOptionsResponseValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ConfigurationOptionsResponseValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ConfigurationOptionsResponseValidationError) ErrorName() string {
	return "ConfigurationOptionsResponseValidationError"
}

// Error satisfies the builtin error interface
func (e ConfigurationOptionsResponseValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sConfigurationOptionsResponse.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ConfigurationOptionsResponseValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ConfigurationOptionsResponseValidationError{}
