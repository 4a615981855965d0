package requests

// ProfileFields carries the optional role-specific profile data sent at
// registration. Missing fields fall back to generated defaults.
type ProfileFields struct {
	Name             string `json:"name"`
	Specialization   string `json:"specialization"`
	Hospital         string `json:"hospital"`
	LicenseNumber    string `json:"licenseNumber"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	DateOfBirth      string `json:"dateOfBirth"`
	BloodGroup       string `json:"bloodGroup"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	InsuranceInfo    string `json:"insuranceInfo"`
}

type RegisterUser struct {
	Username    string         `json:"username" validate:"required,min=3,max=30"`
	Password    string         `json:"password" validate:"required,min=8"`
	Role        string         `json:"role" validate:"required,role"`
	HealthID    string         `json:"healthId"`
	Email       string         `json:"email"`
	ProfileData *ProfileFields `json:"profileData"`
}

type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
