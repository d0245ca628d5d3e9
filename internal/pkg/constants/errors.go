package constants

import "net/http"

// CodedError is an error carrying the HTTP status code it should be
// rendered with. The api error handler unwraps to the first CodedError
// in the chain.
type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func NewBadRequest(message string) *CodedError {
	return &CodedError{code: http.StatusBadRequest, message: message}
}

func NewUnauthorized(message string) *CodedError {
	return &CodedError{code: http.StatusUnauthorized, message: message}
}

func NewInternal(message string) *CodedError {
	return &CodedError{code: http.StatusInternalServerError, message: message}
}

func (e *CodedError) Error() string { return e.message }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "NOT_FOUND")
	ErrUnauthorized      = NewUnauthorized("UNAUTHORIZED")
	ErrMissingAuthCookie = NewUnauthorized("MISSING_AUTH_COOKIE")

	ErrPartyIDNotFound          = NewBadRequest("PARTY_ID_DOES_NOT_EXISTS")
	ErrLocationNotFound         = NewBadRequest("LOCATION_NOT_FOUND")
	ErrCPOExists                = NewBadRequest("CPO_EXISTS")
	ErrCPONotFound              = NewBadRequest("CPO_NOT_FOUND")
	ErrInvalidFacilities        = NewBadRequest("INVALID_FACILITIES")
	ErrInvalidParkingTypes      = NewBadRequest("INVALID_PARKING_TYPES")
	ErrInvalidParkingRestricts  = NewBadRequest("INVALID_PARKING_RESTRICTIONS")
	ErrInvalidCapabilities      = NewBadRequest("INVALID_CAPABILITIES")
	ErrInvalidPaymentTypes      = NewBadRequest("INVALID_PAYMENT_TYPES")
	ErrEVSEWithoutConnector     = NewBadRequest("EVSE_MUST_HAVE_ATLEAST_ONE_CONNECTOR")
	ErrInvalidCredentials       = NewUnauthorized("INVALID_CREDENTIALS")
	ErrCSVCannotBeProcessed     = NewInternal("CSV_CANNOT_BE_PROCESSED")
	ErrInvalidCSVFormat         = NewBadRequest("INVALID_CSV_FORMAT")
	ErrInvalidRefreshToken      = NewUnauthorized("INVALID_REFRESH_TOKEN")
	ErrInvalidAccessToken       = NewUnauthorized("INVALID_ACCESS_TOKEN")
	ErrInvalidBasicToken        = NewUnauthorized("INVALID_BASIC_TOKEN")
	ErrInvalidCPOToken          = NewUnauthorized("INVALID_CPO_TOKEN")
	ErrPartyIDGenerationFailure = NewInternal("PARTY_ID_GENERATION_FAILED")
)
