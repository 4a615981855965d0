package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	UserCreatedSuccess = "user created successfully"
	LoginSuccess       = "successfully login"
	LogoutSuccess      = "successfully logout"
	UserGetSuccess     = "get user successfully"

	// Profile messages
	ProfileGetSuccess = "get profile successfully"

	// Prescription messages
	PrescriptionCreatedSuccess   = "prescription created successfully"
	PrescriptionListSuccess      = "get prescriptions successfully"
	PrescriptionDispensedSuccess = "prescription dispensed successfully"

	// Consent messages
	ConsentRequestCreatedSuccess = "consent request created successfully"
	ConsentRequestListSuccess    = "get consent requests successfully"
	ConsentStatusUpdatedSuccess  = "consent status updated"

	// Appointment messages
	AppointmentListSuccess = "get appointments successfully"

	// Health record messages
	HealthRecordListSuccess = "get health records successfully"

	// Exchange messages
	ExchangePatientFoundSuccess   = "patient found"
	ExchangeVerifySuccess         = "prescription verification completed"
	ExchangeHealthIDCreateSuccess = "health ID enrollment started"

	// Chatbot messages
	ChatbotReplySuccess          = "chatbot reply generated"
	ChatbotPatientSummarySuccess = "patient summary generated"
)
