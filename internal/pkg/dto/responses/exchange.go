package responses

// ExchangePatientSummary is the demographic summary returned by a
// patient lookup on the health-ID exchange.
type ExchangePatientSummary struct {
	HealthID    string `json:"healthId"`
	Name        string `json:"name"`
	Gender      string `json:"gender,omitempty"`
	YearOfBirth string `json:"yearOfBirth,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Address     string `json:"address,omitempty"`
	Mock        bool   `json:"mock,omitempty"`
}

// ExchangeHealthIDCreation is the outcome of a health-ID enrollment
// request. A live wrapper answers with an OTP transaction to complete
// out of band; the mock fallback issues the ID immediately.
type ExchangeHealthIDCreation struct {
	HealthID string `json:"healthId,omitempty"`
	TxnID    string `json:"txnId"`
	Mobile   string `json:"mobile"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Mock     bool   `json:"mock,omitempty"`
}

type ExchangeForwardResult struct {
	ReferenceID string `json:"referenceId"`
	Status      string `json:"status"`
	Mock        bool   `json:"mock,omitempty"`
}

type ExchangeConsentResult struct {
	ConsentID string `json:"consentId"`
	Status    string `json:"status"`
	Mock      bool   `json:"mock,omitempty"`
}

type ExchangeVerification struct {
	PrescriptionRef string `json:"prescriptionRef"`
	Verified        bool   `json:"verified"`
	VerifiedAt      string `json:"verifiedAt"`
	Mock            bool   `json:"mock,omitempty"`
}
