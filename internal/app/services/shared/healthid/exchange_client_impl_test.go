package healthid

import (
	"context"
	"heallink-service/internal/app/config"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestExchangeClient(baseUrl string) *exchangeClient {
	internalConfig := &config.InternalConfig{
		Exchange: config.Exchange{
			WrapperBaseUrl:          baseUrl,
			RequestTimeoutInSeconds: 2,
			ConsentManagerID:        "cm-test",
		},
	}
	return NewExchangeClient(internalConfig, zap.NewNop()).(*exchangeClient)
}

func TestExchangeClient_CreateHealthID(t *testing.T) {
	t.Run("reachable wrapper starts an OTP transaction", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/registration/aadhaar/generateOtp", r.URL.Path)
			assert.Equal(t, "cm-test", r.Header.Get(constvars.HeaderConsentManagerID))

			var payload map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "919800000000", payload["mobile"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"txnId": "TXN-1",
			})
		}))
		defer server.Close()

		client := newTestExchangeClient(server.URL)
		creation, err := client.CreateHealthID(context.Background(), "919800000000", "123456789012")

		assert.NoError(t, err)
		assert.Equal(t, "TXN-1", creation.TxnID)
		assert.Equal(t, "otp_sent", creation.Status)
		assert.Equal(t, "919800000000", creation.Mobile)
		assert.False(t, creation.Mock)
	})

	t.Run("unreachable wrapper issues a mock ID from the mobile number", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")
		creation, err := client.CreateHealthID(context.Background(), "919800000000", "")

		assert.Error(t, err)
		assert.NotNil(t, creation)
		assert.True(t, creation.Mock)
		assert.Equal(t, "91-9800000000", creation.HealthID)
		assert.Equal(t, "created", creation.Status)
		assert.True(t, strings.HasPrefix(creation.TxnID, "MOCK-TXN-"))
	})

	t.Run("a second degraded attempt issues the same ID", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")
		first, _ := client.CreateHealthID(context.Background(), "919800000000", "")
		second, _ := client.CreateHealthID(context.Background(), "919800000000", "")

		assert.Equal(t, first.HealthID, second.HealthID)
		assert.Equal(t, first.TxnID, second.TxnID)
	})
}

func TestExchangeClient_ForwardPrescription(t *testing.T) {
	t.Run("reachable wrapper returns the real reference", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/prescriptions", r.URL.Path)
			assert.Equal(t, "cm-test", r.Header.Get(constvars.HeaderConsentManagerID))

			var payload map[string]interface{}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "rx-1", payload["prescriptionId"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"referenceId": "EX-REF-1",
				"status":      "accepted",
			})
		}))
		defer server.Close()

		client := newTestExchangeClient(server.URL)
		result, err := client.ForwardPrescription(context.Background(), &models.Prescription{ID: "rx-1"}, "ab-12")

		assert.NoError(t, err)
		assert.Equal(t, "EX-REF-1", result.ReferenceID)
		assert.False(t, result.Mock)
	})

	t.Run("unreachable wrapper degrades to a mock reference", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")
		result, err := client.ForwardPrescription(context.Background(), &models.Prescription{ID: "rx-12345678"}, "ab-12")

		assert.Error(t, err)
		assert.NotNil(t, result)
		assert.True(t, result.Mock)
		assert.True(t, strings.HasPrefix(result.ReferenceID, "MOCK-RX-"))
	})

	t.Run("non-2xx answer also degrades", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := newTestExchangeClient(server.URL)
		result, err := client.ForwardPrescription(context.Background(), &models.Prescription{ID: "rx-1"}, "ab-12")

		assert.Error(t, err)
		assert.True(t, result.Mock)
	})
}

func TestExchangeClient_LookupPatient(t *testing.T) {
	t.Run("reachable wrapper answers with the real summary", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/patients/ab-12", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"healthId": "ab-12",
				"name":     "Asha Rao",
			})
		}))
		defer server.Close()

		client := newTestExchangeClient(server.URL)
		summary, err := client.LookupPatient(context.Background(), "ab-12")

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", summary.Name)
	})

	t.Run("mock summary is deterministic for a health ID", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")

		first, err := client.LookupPatient(context.Background(), "ab-12-3456-7890")
		assert.Error(t, err)
		second, err := client.LookupPatient(context.Background(), "ab-12-3456-7890")
		assert.Error(t, err)

		assert.Equal(t, first.Name, second.Name)
		assert.True(t, first.Mock)
	})
}

func TestExchangeClient_VerifyPrescription(t *testing.T) {
	t.Run("degraded verification reports verified mock", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")

		verification, err := client.VerifyPrescription(context.Background(), "EX-REF-1", "ab-12")

		assert.Error(t, err)
		assert.True(t, verification.Verified)
		assert.True(t, verification.Mock)
		assert.NotEmpty(t, verification.VerifiedAt)
	})
}

func TestExchangeClient_RequestConsent(t *testing.T) {
	t.Run("degraded consent registration stays pending", func(t *testing.T) {
		client := newTestExchangeClient("http://127.0.0.1:1")

		result, err := client.RequestConsent(context.Background(), &models.ConsentRequest{ID: "consent-1", Purpose: "care"}, "ab-12")

		assert.Error(t, err)
		assert.True(t, result.Mock)
		assert.Equal(t, constvars.ConsentStatusPending, result.Status)
		assert.True(t, strings.HasPrefix(result.ConsentID, "MOCK-CONSENT-"))
	})
}
