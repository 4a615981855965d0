package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"dive":     "is invalid",
	"role":     "must be one of doctor, patient or pharmacy",
	"gt":       "must be greater than %s",
	"len":      "must be %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientUsernameAlreadyExists         = "username already exists"
	ErrClientInvalidRole                   = "invalid role, must be doctor, patient, or pharmacy"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientProfileNotFound               = "%s profile not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientPrescriptionNotFound          = "prescription not found"
	ErrClientConsentRequestNotFound        = "consent request not found"
	ErrClientMedicinesRequired             = "medicines are required"
	ErrClientInvalidConsentStatus          = "invalid status"
	ErrClientPrescriptionNotPending        = "prescription has already been dispensed or cancelled"
	ErrClientConsentAlreadyResponded       = "consent request has already been responded to"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevFailedToHashPassword      = "failed to hash the given password"
	ErrDevInvalidCredentials        = "username not found or password mismatch"
	ErrDevUsernameAlreadyExists     = "username already taken"
	ErrDevInvalidRoleType           = "role is not one of the recognized role types"
	ErrDevRoleTypeDoesntMatch       = "authenticated role does not match the required role"
	ErrDevAuthTokenMissing          = "authorization token or session cookie missing"
	ErrDevAuthTokenInvalidOrExpired = "session token is invalid or already expired"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthSigningMethod         = "unexpected signing method on session token"
	ErrDevSessionNotFound           = "session not found in store"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded while processing the request"
	ErrDevProfileNotFound           = "no %s profile row for the authenticated user"
	ErrDevPatientNotExists          = "patient profile with the given id does not exist"
	ErrDevPrescriptionNotExists     = "prescription with the given id does not exist"
	ErrDevConsentRequestNotExists   = "consent request with the given id does not exist"
	ErrDevConsentWrongPatient       = "responding patient is not the consent request target"
	ErrDevStateTransitionRejected   = "attempted transition out of a non-pending state"

	ErrDevDBFailedToFindDocument    = "failed to find document in database"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in database"
	ErrDevDBFailedToIterateCursor   = "failed to iterate database cursor"
	ErrDevDBNotObjectID             = "given id is not a valid object id"
	ErrDevDBTransactionFailed       = "database transaction failed"
	ErrDevRedisStoreSession         = "failed to store session in redis"
	ErrDevRedisGetNoData            = "failed to get data from redis with key: %s"
	ErrDevRedisDelete               = "failed to delete data from redis"
	ErrDevExchangeUnreachable       = "health-id exchange wrapper unreachable"
	ErrDevMinioPresignFailed        = "failed to generate presigned url for object"
	ErrDevEventPublishFailed        = "failed to publish domain event"
)
