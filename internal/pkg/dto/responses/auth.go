package responses

type Account struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	HealthID  string `json:"healthId,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

type RegisterUser struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}

type LoginUser struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}
