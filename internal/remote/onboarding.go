package remote

import (
	"context"
	"net/http"

	"societyWeb/internal/models"
)

func (c *Client) OnboardingContext(ctx context.Context, token string) (models.OnboardingContext, error) {
	var oc models.OnboardingContext
	if err := c.do(ctx, http.MethodGet, "/tenant/onboarding", token, nil, &oc); err != nil {
		return models.OnboardingContext{}, err
	}
	return oc, nil
}

// SubmitKYC sends the eKYC form and its document uploads as multipart form
// data. Validation happens in the onboarding package before this is called.
func (c *Client) SubmitKYC(ctx context.Context, token string, form models.KYCForm, files []MultipartFile) error {
	fields := map[string]string{
		"fullName":         form.FullName,
		"dateOfBirth":      form.DateOfBirth,
		"gender":           form.Gender,
		"phone":            form.Phone,
		"email":            form.Email,
		"permanentAddress": form.PermanentAddress,
		"idType":           form.IDType,
		"idNumber":         form.IDNumber,
	}
	if form.Occupation != "" {
		fields["occupation"] = form.Occupation
	}
	if form.CompanyName != "" {
		fields["companyName"] = form.CompanyName
	}

	var resp struct {
		Success bool `json:"success"`
	}
	return c.doMultipart(ctx, "/tenant/ekyc", token, fields, files, &resp)
}

// AgreementPreview returns the agreement document as raw HTML text.
func (c *Client) AgreementPreview(ctx context.Context, token string) (string, error) {
	return c.doText(ctx, "/tenant/agreement/preview", token)
}

func (c *Client) AcceptAgreement(ctx context.Context, token, otp string, consents models.ConsentFlags) error {
	body := struct {
		OTP          string              `json:"otp"`
		ConsentFlags models.ConsentFlags `json:"consentFlags"`
	}{OTP: otp, ConsentFlags: consents}

	var resp struct {
		Success bool `json:"success"`
	}
	return c.do(ctx, http.MethodPost, "/tenant/agreement/accept", token, body, &resp)
}
