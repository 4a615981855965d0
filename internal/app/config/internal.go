package config

type InternalConfig struct {
	App      App
	JWT      JWT
	Exchange Exchange
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	EndpointPrefix                 string
	Timezone                       string
	MaxRequests                    int
	ShutdownTimeout                int
	LoginSessionExpiredTimeInHours int
	RabbitMQEventQueue             string
	SecureCookies                  bool
	CredentialAttemptsPerMinute    int
	CredentialBlockTimeInMinutes   int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

// Exchange configures the health-ID exchange wrapper client.
type Exchange struct {
	WrapperBaseUrl          string
	RequestTimeoutInSeconds int
	ConsentManagerID        string
}
