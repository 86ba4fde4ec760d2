package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"societyWeb/internal/models"
	"societyWeb/internal/onboarding"
	"societyWeb/internal/remote"
)

const (
	maxKYCUploadBytes = 5 << 20
	maxKYCFormBytes   = 20 << 20
)

// kycFileFields are the accepted upload slots of the eKYC step.
var kycFileFields = []string{"idFront", "idBack", "selfie"}

type OnboardingHandler struct {
	Wizard *onboarding.Wizard
}

// State returns the wizard snapshot. A completed flow reports only the
// redirect target; the wizard screens must not be re-entered.
func (h *OnboardingHandler) State(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)
	st, err := h.Wizard.State(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	if st.Completed {
		writeJSON(w, http.StatusOK, map[string]interface{}{"completed": true, "redirect": "/dashboard"})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// SubmitKYC parses the multipart eKYC form and forwards it. Uploads are
// optional; each slot takes at most one file of up to 5 MB.
func (h *OnboardingHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)

	if err := r.ParseMultipartForm(maxKYCFormBytes); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := models.KYCForm{
		FullName:         r.FormValue("fullName"),
		DateOfBirth:      r.FormValue("dateOfBirth"),
		Gender:           r.FormValue("gender"),
		Phone:            r.FormValue("phone"),
		Email:            r.FormValue("email"),
		PermanentAddress: r.FormValue("permanentAddress"),
		IDType:           r.FormValue("idType"),
		IDNumber:         r.FormValue("idNumber"),
		Occupation:       r.FormValue("occupation"),
		CompanyName:      r.FormValue("companyName"),
	}

	var files []remote.MultipartFile
	for _, field := range kycFileFields {
		f, fh, err := r.FormFile(field)
		if err != nil {
			if err == http.ErrMissingFile {
				continue
			}
			http.Error(w, "Invalid file upload", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, maxKYCUploadBytes+1))
		f.Close()
		if err != nil {
			http.Error(w, "Could not read uploaded file", http.StatusBadRequest)
			return
		}
		if len(data) > maxKYCUploadBytes {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Each document must be 5 MB or smaller."})
			return
		}
		files = append(files, remote.MultipartFile{
			Field:       field,
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	st, err := h.Wizard.SubmitKYC(r.Context(), rec.Token, form, files)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// AgreementPreview proxies the rendered agreement document.
func (h *OnboardingHandler) AgreementPreview(w http.ResponseWriter, r *http.Request) {
	rec, _, _ := currentSession(r)
	doc, err := h.Wizard.AgreementPreview(r.Context(), rec.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Printf("write agreement preview: %v", err)
	}
}

func (h *OnboardingHandler) AcceptAgreement(w http.ResponseWriter, r *http.Request) {
	rec, sid, _ := currentSession(r)

	var req struct {
		OTP          string              `json:"otp"`
		ConsentFlags models.ConsentFlags `json:"consentFlags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Wizard.AcceptAgreement(r.Context(), rec.Token, sid, req.OTP, req.ConsentFlags)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
