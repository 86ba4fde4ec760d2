package models

// OnboardingContext is the property/room/financial snapshot plus the user
// status flags returned by GET /tenant/onboarding.
type OnboardingContext struct {
	PropertyName     string  `json:"propertyName"`
	PropertyAddress  string  `json:"propertyAddress"`
	RoomNumber       string  `json:"roomNumber"`
	SharingType      string  `json:"sharingType"`
	MonthlyRent      float64 `json:"monthlyRent"`
	SecurityDeposit  float64 `json:"securityDeposit"`
	NoticePeriodDays int     `json:"noticePeriodDays"`
	MoveInDate       string  `json:"moveInDate"`

	OnboardingStatus string `json:"onboardingStatus"`
	KYCStatus        string `json:"kycStatus"`
}

// ConsentFlags are the four agreement checkboxes. All must be true before
// the accept call is attempted.
type ConsentFlags struct {
	AgreeTerms      bool `json:"agreeTerms"`
	AgreeRentPolicy bool `json:"agreeRentPolicy"`
	AgreeDataUse    bool `json:"agreeDataUse"`
	ConfirmAccuracy bool `json:"confirmAccuracy"`
}

// All reports whether every flag is checked.
func (c ConsentFlags) All() bool {
	return c.AgreeTerms && c.AgreeRentPolicy && c.AgreeDataUse && c.ConfirmAccuracy
}

// KYCForm carries the identity fields of the eKYC step. Files travel
// separately as multipart parts.
type KYCForm struct {
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PermanentAddress string `json:"permanentAddress"`
	IDType           string `json:"idType"`
	IDNumber         string `json:"idNumber"`
	Occupation       string `json:"occupation"`
	CompanyName      string `json:"companyName"`
}
