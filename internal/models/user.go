package models

// Roles reported by the remote API. The display default is citizen when the
// server omits a role.
const (
	RoleCitizen   = "CITIZEN"
	RoleTenant    = "TENANT"
	RolePGTenant  = "PG_TENANT"
	RoleOfficer   = "OFFICER"
	RoleFlatOwner = "FLAT_OWNER"
	RolePGOwner   = "PG_OWNER"
	RoleAdmin     = "ADMIN"
)

// Onboarding status flags as the server reports them.
const (
	OnboardingNotStarted = "not_started"
	OnboardingKYCPending = "kyc_pending"
	OnboardingCompleted  = "completed"

	KYCStatusPending   = "pending"
	KYCStatusSubmitted = "submitted"
	KYCStatusVerified  = "verified"
)

type UserSummary struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Role              string `json:"role"`
	OnboardingStatus  string `json:"onboardingStatus,omitempty"`
	KYCStatus         string `json:"kycStatus,omitempty"`
	AgreementAccepted bool   `json:"agreementAccepted"`
	AssignedProperty  string `json:"assignedProperty,omitempty"`
	EmergencyContact  string `json:"emergencyContact,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

type ProfileUpdate struct {
	Name             string `json:"name,omitempty"`
	Phone            string `json:"phone,omitempty"`
	EmergencyContact string `json:"emergencyContact,omitempty"`
}
