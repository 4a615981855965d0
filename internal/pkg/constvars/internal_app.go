package constvars

type ContextKey string

const (
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	RoleDoctor   = "doctor"
	RolePatient  = "patient"
	RolePharmacy = "pharmacy"
)

const (
	PrescriptionStatusPending   = "pending"
	PrescriptionStatusDispensed = "dispensed"
	PrescriptionStatusCancelled = "cancelled"
)

const (
	ConsentStatusPending  = "pending"
	ConsentStatusApproved = "approved"
	ConsentStatusRejected = "rejected"
)

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	MongoCollectionUsers           = "users"
	MongoCollectionDoctors         = "doctors"
	MongoCollectionPatients        = "patients"
	MongoCollectionPharmacies      = "pharmacies"
	MongoCollectionPrescriptions   = "prescriptions"
	MongoCollectionAppointments    = "appointments"
	MongoCollectionConsentRequests = "consent_requests"
	MongoCollectionHealthRecords   = "health_records"
)

const (
	DefaultDiagnosis      = "General consultation"
	DefaultInstructions   = "Take as directed"
	DefaultSpecialization = "General Medicine"
	DefaultHospital       = "General Hospital"
	DefaultPharmacyAddr   = "Unknown Address"
)

// Default data scopes attached to an exchange consent request when the
// caller does not name any.
var DefaultConsentDataTypes = []string{"Prescription", "DiagnosticReport"}

const (
	EventPrescriptionCreated   = "prescription.created"
	EventPrescriptionDispensed = "prescription.dispensed"
	EventConsentRequested      = "consent.requested"
	EventConsentResponded      = "consent.responded"
)
