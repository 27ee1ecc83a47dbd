// Code generated by protoc-gen-validate. DO NOT EDIT.
// source: lingolog/v1/contest.proto

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

// Validate checks the field values on Contest with the rules defined in the
// proto definition for this message. If any rules are violated, the first
// error encountered is returned, or nil if there are no violations.
func (m *Contest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on Contest with the rules defined in the
// proto definition for this message. If any rules are violated, the result is
// a list of violation errors wrapped in ContestMultiError, or nil if none found.
func (m *Contest) ValidateAll() error {
	return m.validate(true)
}

func (m *Contest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for Id

	// no validation rules for Title

	// no validation rules for Description

	if all {
		switch v := interface{}(m.GetContestStart()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "ContestStart",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "ContestStart",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetContestStart()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ContestValidationError{
				field:  "ContestStart",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if all {
		switch v := interface{}(m.GetContestEnd()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "ContestEnd",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "ContestEnd",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetContestEnd()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ContestValidationError{
				field:  "ContestEnd",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if all {
		switch v := interface{}(m.GetRegistrationEnd()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "RegistrationEnd",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ContestValidationError{
					field:  "RegistrationEnd",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetRegistrationEnd()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ContestValidationError{
				field:  "RegistrationEnd",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	// no validation rules for Official

	// no validation rules for Private

	for idx, item := range m.GetAllowedActivities() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ContestValidationError{
						field:  fmt.Sprintf("AllowedActivities[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ContestValidationError{
						field:  fmt.Sprintf("AllowedActivities[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ContestValidationError{
					field:  fmt.Sprintf("AllowedActivities[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	for idx, item := range m.GetAllowedLanguages() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ContestValidationError{
						field:  fmt.Sprintf("AllowedLanguages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ContestValidationError{
						field:  fmt.Sprintf("AllowedLanguages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ContestValidationError{
					field:  fmt.Sprintf("AllowedLanguages[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if len(errors) > 0 {
		return ContestMultiError(errors)
	}

	return nil
}

// ContestMultiError is an error wrapping multiple validation errors returned
// by Contest.ValidateAll() if the designated constraints aren't met.
type ContestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ContestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ContestMultiError) AllErrors() []error { return m }

// ContestValidationError is the validation error returned by Contest.Validate
// if the designated constraints aren't met.
type ContestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ContestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ContestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ContestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ContestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ContestValidationError) ErrorName() string { return "ContestValidationError" }

// Error satisfies the builtin error interface
func (e ContestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sContest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ContestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ContestValidationError{}

// Validate checks the field values on CreateContestRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *CreateContestRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on CreateContestRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// CreateContestRequestMultiError, or nil if none found.
func (m *CreateContestRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *CreateContestRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if all {
		switch v := interface{}(m.GetContest()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, CreateContestRequestValidationError{
					field:  "Contest",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, CreateContestRequestValidationError{
					field:  "Contest",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetContest()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return CreateContestRequestValidationError{
				field:  "Contest",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if len(errors) > 0 {
		return CreateContestRequestMultiError(errors)
	}

	return nil
}

// CreateContestRequestMultiError is an error wrapping multiple validation
// errors returned by CreateContestRequest.ValidateAll() if the designated
// constraints aren't met.
type CreateContestRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m CreateContestRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m CreateContestRequestMultiError) AllErrors() []error { return m }

// CreateContestRequestValidationError is the validation error returned by
// CreateContestRequest.Validate if the designated constraints aren't met.
type CreateContestRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e CreateContestRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e CreateContestRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e CreateContestRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e CreateContestRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e CreateContestRequestValidationError) ErrorName() string {
	return "CreateContestRequestValidationError"
}

// Error satisfies the builtin error interface
func (e CreateContestRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sCreateContestRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = CreateContestRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = CreateContestRequestValidationError{}

// Validate checks the field values on ListContestsRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *ListContestsRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ListContestsRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ListContestsRequestMultiError, or nil if none found.
func (m *ListContestsRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *ListContestsRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if all {
		switch v := interface{}(m.GetPagination()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ListContestsRequestValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ListContestsRequestValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetPagination()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ListContestsRequestValidationError{
				field:  "Pagination",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	// no validation rules for OfficialOnly

	// no validation rules for IncludePrivate

	if len(errors) > 0 {
		return ListContestsRequestMultiError(errors)
	}

	return nil
}

// ListContestsRequestMultiError is an error wrapping multiple validation
// errors returned by ListContestsRequest.ValidateAll() if the designated
// constraints aren't met.
type ListContestsRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ListContestsRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ListContestsRequestMultiError) AllErrors() []error { return m }

// ListContestsRequestValidationError is the validation error returned by
// ListContestsRequest.Validate if the designated constraints aren't met.
type ListContestsRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ListContestsRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ListContestsRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ListContestsRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ListContestsRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ListContestsRequestValidationError) ErrorName() string {
	return "ListContestsRequestValidationError"
}

// Error satisfies the builtin error interface
func (e ListContestsRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sListContestsRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ListContestsRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ListContestsRequestValidationError{}

// Validate checks the field values on ListContestsResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *ListContestsResponse) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ListContestsResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ListContestsResponseMultiError, or nil if none found.
func (m *ListContestsResponse) ValidateAll() error {
	return m.validate(true)
}

func (m *ListContestsResponse) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if all {
		switch v := interface{}(m.GetPagination()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ListContestsResponseValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ListContestsResponseValidationError{
					field:  "Pagination",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetPagination()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ListContestsResponseValidationError{
				field:  "Pagination",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	for idx, item := range m.GetContests() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ListContestsResponseValidationError{
						field:  fmt.Sprintf("Contests[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ListContestsResponseValidationError{
						field:  fmt.Sprintf("Contests[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ListContestsResponseValidationError{
					field:  fmt.Sprintf("Contests[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if len(errors) > 0 {
		return ListContestsResponseMultiError(errors)
	}

	return nil
}

// ListContestsResponseMultiError is an error wrapping multiple validation
// errors returned by ListContestsResponse.ValidateAll() if the designated
// constraints aren't met.
type ListContestsResponseMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ListContestsResponseMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ListContestsResponseMultiError) AllErrors() []error { return m }

// ListContestsResponseValidationError is the validation error returned by
// ListContestsResponse.Validate if the designated constraints aren't met.
type ListContestsResponseValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ListContestsResponseValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ListContestsResponseValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ListContestsResponseValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ListContestsResponseValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ListContestsResponseValidationError) ErrorName() string {
	return "ListContestsResponseValidationError"
}

// Error satisfies the builtin error interface
func (e ListContestsResponseValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sListContestsResponse.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ListContestsResponseValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ListContestsResponseValidationError{}

// Validate checks the field values on RegisterRequest with the rules defined
// in the proto definition for this message. If any rules are violated, the
// first error encountered is returned, or nil if there are no violations.
func (m *RegisterRequest) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on RegisterRequest with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// RegisterRequestMultiError, or nil if none found.
func (m *RegisterRequest) ValidateAll() error {
	return m.validate(true)
}

func (m *RegisterRequest) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	if utf8.RuneCountInString(m.GetContestId()) < 1 {
		err := RegisterRequestValidationError{
			field:  "ContestId",
			reason: "value length must be at least 1 runes",
		}
		if !all {
			return err
		}
		errors = append(errors, err)
	}

	if l := len(m.GetLanguageCodes()); l < 1 || l > 3 {
		err := RegisterRequestValidationError{
			field:  "LanguageCodes",
			reason: "value must contain between 1 and 3 items, inclusive",
		}
		if !all {
			return err
		}
		errors = append(errors, err)
	}

	// no validation rules for DisplayName

	if len(errors) > 0 {
		return RegisterRequestMultiError(errors)
	}

	return nil
}

// RegisterRequestMultiError is an error wrapping multiple validation errors
// returned by RegisterRequest.ValidateAll() if the designated constraints
// aren't met.
type RegisterRequestMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m RegisterRequestMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m RegisterRequestMultiError) AllErrors() []error { return m }

// RegisterRequestValidationError is the validation error returned by
// RegisterRequest.Validate if the designated constraints aren't met.
type RegisterRequestValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e RegisterRequestValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e RegisterRequestValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e RegisterRequestValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e RegisterRequestValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e RegisterRequestValidationError) ErrorName() string { return "RegisterRequestValidationError" }

// Error satisfies the builtin error interface
func (e RegisterRequestValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sRegisterRequest.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = RegisterRequestValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = RegisterRequestValidationError{}

// Validate checks the field values on ContestRegistration with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *ContestRegistration) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ContestRegistration with the rules
// defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ContestRegistrationMultiError, or nil if none found.
func (m *ContestRegistration) ValidateAll() error {
	return m.validate(true)
}

func (m *ContestRegistration) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	// no validation rules for Id

	// no validation rules for ContestId

	// no validation rules for UserId

	// no validation rules for UserDisplayName

	for idx, item := range m.GetLanguages() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ContestRegistrationValidationError{
						field:  fmt.Sprintf("Languages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ContestRegistrationValidationError{
						field:  fmt.Sprintf("Languages[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ContestRegistrationValidationError{
					field:  fmt.Sprintf("Languages[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if all {
		switch v := interface{}(m.GetContest()).(type) {
		case interface{ ValidateAll() error }:
			if err := v.ValidateAll(); err != nil {
				errors = append(errors, ContestRegistrationValidationError{
					field:  "Contest",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		case interface{ Validate() error }:
			if err := v.Validate(); err != nil {
				errors = append(errors, ContestRegistrationValidationError{
					field:  "Contest",
					reason: "embedded message failed validation",
					cause:  err,
				})
			}
		}
	} else if v, ok := interface{}(m.GetContest()).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return ContestRegistrationValidationError{
				field:  "Contest",
				reason: "embedded message failed validation",
				cause:  err,
			}
		}
	}

	if len(errors) > 0 {
		return ContestRegistrationMultiError(errors)
	}

	return nil
}

// ContestRegistrationMultiError is an error wrapping multiple validation
// errors returned by ContestRegistration.ValidateAll() if the designated
// constraints aren't met.
type ContestRegistrationMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ContestRegistrationMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ContestRegistrationMultiError) AllErrors() []error { return m }

// ContestRegistrationValidationError is the validation error returned by
// ContestRegistration.Validate if the designated constraints aren't met.
type ContestRegistrationValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ContestRegistrationValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ContestRegistrationValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ContestRegistrationValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ContestRegistrationValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ContestRegistrationValidationError) ErrorName() string {
	return "ContestRegistrationValidationError"
}

// Error satisfies the builtin error interface
func (e ContestRegistrationValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sContestRegistration.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ContestRegistrationValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ContestRegistrationValidationError{}

// Validate checks the field values on ListRegistrationsResponse with the rules
// defined in the proto definition for this message. If any rules are
// violated, the first error encountered is returned, or nil if there are no violations.
func (m *ListRegistrationsResponse) Validate() error {
	return m.validate(false)
}

// ValidateAll checks the field values on ListRegistrationsResponse with the
// rules defined in the proto definition for this message. If any rules are
// violated, the result is a list of violation errors wrapped in
// ListRegistrationsResponseMultiError, or nil if none found.
func (m *ListRegistrationsResponse) ValidateAll() error {
	return m.validate(true)
}

func (m *ListRegistrationsResponse) validate(all bool) error {
	if m == nil {
		return nil
	}

	var errors []error

	for idx, item := range m.GetRegistrations() {
		_, _ = idx, item

		if all {
			switch v := interface{}(item).(type) {
			case interface{ ValidateAll() error }:
				if err := v.ValidateAll(); err != nil {
					errors = append(errors, ListRegistrationsResponseValidationError{
						field:  fmt.Sprintf("Registrations[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			case interface{ Validate() error }:
				if err := v.Validate(); err != nil {
					errors = append(errors, ListRegistrationsResponseValidationError{
						field:  fmt.Sprintf("Registrations[%v]", idx),
						reason: "embedded message failed validation",
						cause:  err,
					})
				}
			}
		} else if v, ok := interface{}(item).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return ListRegistrationsResponseValidationError{
					field:  fmt.Sprintf("Registrations[%v]", idx),
					reason: "embedded message failed validation",
					cause:  err,
				}
			}
		}

	}

	if len(errors) > 0 {
		return ListRegistrationsResponseMultiError(errors)
	}

	return nil
}

// ListRegistrationsResponseMultiError is an error wrapping multiple validation
// errors returned by ListRegistrationsResponse.ValidateAll() if the
// designated constraints aren't met.
type ListRegistrationsResponseMultiError []error

// Error returns a concatenation of all the error messages it wraps.
func (m ListRegistrationsResponseMultiError) Error() string {
	var msgs []string
	for _, err := range m {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// AllErrors returns a list of validation violation errors.
func (m ListRegistrationsResponseMultiError) AllErrors() []error { return m }

// ListRegistrationsResponseValidationError is the validation error returned by
// ListRegistrationsResponse.Validate if the designated constraints aren't met.
type ListRegistrationsResponseValidationError struct {
	field  string
	reason string
	cause  error
	key    bool
}

// Field function returns field value.
func (e ListRegistrationsResponseValidationError) Field() string { return e.field }

// Reason function returns reason value.
func (e ListRegistrationsResponseValidationError) Reason() string { return e.reason }

// Cause function returns cause value.
func (e ListRegistrationsResponseValidationError) Cause() error { return e.cause }

// Key function returns key value.
func (e ListRegistrationsResponseValidationError) Key() bool { return e.key }

// ErrorName returns error name.
func (e ListRegistrationsResponseValidationError) ErrorName() string {
	return "ListRegistrationsResponseValidationError"
}

// Error satisfies the builtin error interface
func (e ListRegistrationsResponseValidationError) Error() string {
	cause := ""
	if e.cause != nil {
		cause = fmt.Sprintf(" | caused by: %v", e.cause)
	}

	key := ""
	if e.key {
		key = "key for "
	}

	return fmt.Sprintf(
		"invalid %sListRegistrationsResponse.%s: %s%s",
		key,
		e.field,
		e.reason,
		cause)
}

var _ error = ListRegistrationsResponseValidationError{}

var _ interface {
	Field() string
	Reason() string
	Key() bool
	Cause() error
	ErrorName() string
} = ListRegistrationsResponseValidationError{}
