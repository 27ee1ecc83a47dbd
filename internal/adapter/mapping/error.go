package mapping

import (
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lingolog/lingolog/internal/entity"
)

func errorCode(err error) codes.Code {
	var ineligible *entity.IneligibleContestError
	switch {
	case errors.As(err, &ineligible),
		errors.Is(err, entity.ErrUnknownLanguage),
		errors.Is(err, entity.ErrUnknownActivity),
		errors.Is(err, entity.ErrInvalidTrackingMode),
		errors.Is(err, entity.ErrInvalidRegistrationLanguages),
		errors.Is(err, entity.ErrUnitActivityMismatch),
		errors.Is(err, entity.ErrNoScoreableAmount),
		errors.Is(err, entity.ErrInvalidContestDates),
		errors.Is(err, entity.ErrInvalidContestTitle):
		return codes.InvalidArgument
	case errors.Is(err, entity.ErrLogNotFound),
		errors.Is(err, entity.ErrContestNotFound),
		errors.Is(err, entity.ErrRegistrationNotFound),
		errors.Is(err, entity.ErrUnitNotFound):
		return codes.NotFound
	case errors.Is(err, entity.ErrDuplicateRegistration):
		return codes.AlreadyExists
	case errors.Is(err, entity.ErrRegistrationClosed),
		errors.Is(err, entity.ErrLanguageNotAllowed):
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// ToConnectError maps domain errors onto Connect status codes for the
// Connect-served APIs.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	return connect.NewError(connect.Code(errorCode(err)), err)
}

// ToPbError is the gRPC-status equivalent of ToConnectError, used by the
// services served over plain gRPC and the HTTP gateway.
func ToPbError(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(errorCode(err), err.Error())
}
