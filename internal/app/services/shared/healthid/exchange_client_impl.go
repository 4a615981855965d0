package healthid

import (
	"bytes"
	"context"
	"fmt"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/contracts"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/dto/responses"
	"heallink-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type exchangeClient struct {
	BaseUrl          string
	ConsentManagerID string
	HTTPClient       *http.Client
	Log              *zap.Logger
}

// NewExchangeClient builds the wrapper-backed exchange client. Calls
// are bounded by the configured timeout; when the wrapper cannot be
// reached or answers outside 2xx, each method returns a deterministic
// mock payload together with ErrExchangeUnreachable so the caller can
// record the degradation without failing its own operation.
func NewExchangeClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ExchangeClient {
	return &exchangeClient{
		BaseUrl:          internalConfig.Exchange.WrapperBaseUrl,
		ConsentManagerID: internalConfig.Exchange.ConsentManagerID,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Exchange.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

// CreateHealthID starts health-ID enrollment for a mobile number. A
// reachable wrapper answers with an OTP transaction; the mock fallback
// derives a stable ID from the mobile number so repeated attempts
// agree.
func (c *exchangeClient) CreateHealthID(ctx context.Context, mobile, aadhaar string) (*responses.ExchangeHealthIDCreation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.CreateHealthID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := map[string]interface{}{
		"mobile":  mobile,
		"aadhaar": aadhaar,
	}

	result := new(responses.ExchangeHealthIDCreation)
	err := c.post(ctx, "/v1/registration/aadhaar/generateOtp", payload, result)
	if err != nil {
		c.Log.Warn("exchangeClient.CreateHealthID degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		digits := mobile
		if len(digits) > 10 {
			digits = digits[len(digits)-10:]
		}
		return &responses.ExchangeHealthIDCreation{
			HealthID: "91-" + digits,
			TxnID:    "MOCK-TXN-" + shortRef(mobile),
			Mobile:   mobile,
			Status:   "created",
			Mock:     true,
		}, exceptions.ErrExchangeUnreachable(err)
	}
	result.Mobile = mobile
	if result.Status == "" {
		result.Status = "otp_sent"
	}
	return result, nil
}

func (c *exchangeClient) ForwardPrescription(ctx context.Context, prescription *models.Prescription, patientHealthID string) (*responses.ExchangeForwardResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.ForwardPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prescription_id", prescription.ID),
	)

	payload := map[string]interface{}{
		"prescriptionId":  prescription.ID,
		"patientHealthId": patientHealthID,
		"medicines":       prescription.Medicines,
		"diagnosis":       prescription.Diagnosis,
	}

	result := new(responses.ExchangeForwardResult)
	err := c.post(ctx, "/v1/prescriptions", payload, result)
	if err != nil {
		c.Log.Warn("exchangeClient.ForwardPrescription degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return mockForwardResult(prescription.ID, "forwarded"), exceptions.ErrExchangeUnreachable(err)
	}
	return result, nil
}

func (c *exchangeClient) ForwardDispensation(ctx context.Context, prescription *models.Prescription, patientHealthID string) (*responses.ExchangeForwardResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.ForwardDispensation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prescription_id", prescription.ID),
	)

	payload := map[string]interface{}{
		"prescriptionId":     prescription.ID,
		"patientHealthId":    patientHealthID,
		"pharmacyId":         prescription.PharmacyID,
		"dispensedMedicines": prescription.DispensedMedicines,
	}

	result := new(responses.ExchangeForwardResult)
	err := c.post(ctx, "/v1/dispensations", payload, result)
	if err != nil {
		c.Log.Warn("exchangeClient.ForwardDispensation degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return mockForwardResult(prescription.ID, "dispensation-recorded"), exceptions.ErrExchangeUnreachable(err)
	}
	return result, nil
}

func (c *exchangeClient) LookupPatient(ctx context.Context, healthID string) (*responses.ExchangePatientSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.LookupPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("health_id", healthID),
	)

	result := new(responses.ExchangePatientSummary)
	err := c.get(ctx, "/v1/patients/"+healthID, result)
	if err != nil {
		c.Log.Warn("exchangeClient.LookupPatient degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.ExchangePatientSummary{
			HealthID: healthID,
			Name:     "Exchange Patient " + shortRef(healthID),
			Mock:     true,
		}, exceptions.ErrExchangeUnreachable(err)
	}
	return result, nil
}

func (c *exchangeClient) RequestConsent(ctx context.Context, consent *models.ConsentRequest, patientHealthID string) (*responses.ExchangeConsentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.RequestConsent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("consent_id", consent.ID),
	)

	payload := map[string]interface{}{
		"consentId":       consent.ID,
		"patientHealthId": patientHealthID,
		"purpose":         consent.Purpose,
		"dataTypes":       consent.DataTypes,
	}

	result := new(responses.ExchangeConsentResult)
	err := c.post(ctx, "/v1/consents", payload, result)
	if err != nil {
		c.Log.Warn("exchangeClient.RequestConsent degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.ExchangeConsentResult{
			ConsentID: "MOCK-CONSENT-" + shortRef(consent.ID),
			Status:    constvars.ConsentStatusPending,
			Mock:      true,
		}, exceptions.ErrExchangeUnreachable(err)
	}
	return result, nil
}

func (c *exchangeClient) VerifyPrescription(ctx context.Context, prescriptionRef, patientHealthID string) (*responses.ExchangeVerification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("exchangeClient.VerifyPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("prescription_ref", prescriptionRef),
	)

	payload := map[string]interface{}{
		"prescriptionRef": prescriptionRef,
		"patientHealthId": patientHealthID,
	}

	result := new(responses.ExchangeVerification)
	err := c.post(ctx, "/v1/prescriptions/verify", payload, result)
	if err != nil {
		c.Log.Warn("exchangeClient.VerifyPrescription degraded to mock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &responses.ExchangeVerification{
			PrescriptionRef: prescriptionRef,
			Verified:        true,
			VerifiedAt:      time.Now().UTC().Format(time.RFC3339),
			Mock:            true,
		}, exceptions.ErrExchangeUnreachable(err)
	}
	return result, nil
}

func (c *exchangeClient) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderConsentManagerID, c.ConsentManagerID)

	return c.do(req, out)
}

func (c *exchangeClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderConsentManagerID, c.ConsentManagerID)

	return c.do(req, out)
}

func (c *exchangeClient) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		return fmt.Errorf("exchange wrapper responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func mockForwardResult(prescriptionID, status string) *responses.ExchangeForwardResult {
	return &responses.ExchangeForwardResult{
		ReferenceID: "MOCK-RX-" + shortRef(prescriptionID),
		Status:      status,
		Mock:        true,
	}
}

// shortRef keeps mock references stable for a given source ID.
func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
