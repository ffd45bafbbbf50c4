package apperror

import "net/http"

// Error kinds exposed to clients in the error envelope. Each maps
// one-to-one with a constructor below.
const (
	KindValidation        = "VALIDATION_ERROR"
	KindNotFound          = "NOT_FOUND"
	KindUnauthorized      = "UNAUTHORIZED"
	KindForbidden         = "FORBIDDEN"
	KindConflict          = "CONFLICT"
	KindIllegalTransition = "ILLEGAL_TRANSITION"
	KindProjectNotOpen    = "PROJECT_NOT_OPEN"
	KindSelfBid           = "SELF_BID"
	KindDuplicateBid      = "DUPLICATE_BID"
	KindBidNotPending     = "BID_NOT_PENDING"
	KindNotOwner          = "NOT_OWNER"
	KindParticipant       = "PARTICIPANT_ERROR"
	KindInternal          = "INTERNAL"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, KindConflict, message, nil)
}

// IllegalTransition signals a project status change the state table does
// not allow from the current status.
func IllegalTransition(message string) *AppError {
	return New(http.StatusConflict, KindIllegalTransition, message, nil)
}

func ProjectNotOpen(message string) *AppError {
	return New(http.StatusConflict, KindProjectNotOpen, message, nil)
}

func SelfBid(message string) *AppError {
	return New(http.StatusForbidden, KindSelfBid, message, nil)
}

func DuplicateBid(message string) *AppError {
	return New(http.StatusConflict, KindDuplicateBid, message, nil)
}

func BidNotPending(message string) *AppError {
	return New(http.StatusConflict, KindBidNotPending, message, nil)
}

func NotOwner(message string) *AppError {
	return New(http.StatusForbidden, KindNotOwner, message, nil)
}

func Participant(message string) *AppError {
	return New(http.StatusForbidden, KindParticipant, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
