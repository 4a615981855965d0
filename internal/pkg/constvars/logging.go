package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingUserIDKey         = "user_id"
	LoggingRoleKey           = "role"
	LoggingPrescriptionIDKey = "prescription_id"
	LoggingConsentIDKey      = "consent_request_id"
	LoggingExchangeRefKey    = "exchange_ref"
	LoggingEventKey          = "event"
)
