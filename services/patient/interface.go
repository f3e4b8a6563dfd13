package patient

import (
	"time"

	"careplus/models"
)

// UploadedDocument describes an identification file staged on local disk by
// the upload handler, ready for blob storage.
type UploadedDocument struct {
	LocalPath   string
	FileName    string
	Size        int64
	ContentType string
}

// RegisterPatientInput carries the full intake form. IdentificationDocument
// is optional; when present it is validated and uploaded before the profile
// is persisted.
type RegisterPatientInput struct {
	UserID                 string
	Name                   string
	Email                  string
	Phone                  string
	BirthDate              time.Time
	Gender                 string
	Address                string
	Occupation             string
	EmergencyContactName   string
	EmergencyContactNumber string
	PrimaryPhysician       string
	InsuranceProvider      string
	InsurancePolicyNumber  string
	Allergies              string
	CurrentMedication      string
	FamilyMedicalHistory   string
	PastMedicalHistory     string
	IdentificationType     string
	IdentificationNumber   string
	IdentificationDocument *UploadedDocument
	TreatmentConsent       bool
	DisclosureConsent      bool
	PrivacyConsent         bool
}

// PatientService manages patient intake profiles.
type PatientService interface {
	RegisterPatient(input RegisterPatientInput) (*models.Patient, error)
	GetPatientByUser(userID string) (*models.Patient, error)
}
