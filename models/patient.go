package models

import "time"

// Patient is the intake profile created during registration.
type Patient struct {
	ID                        string    `bson:"id" json:"id"`
	UserID                    string    `bson:"user_id" json:"userId"`
	Name                      string    `bson:"name" json:"name"`
	Email                     string    `bson:"email" json:"email"`
	Phone                     string    `bson:"phone" json:"phone"`
	BirthDate                 time.Time `bson:"birth_date" json:"birthDate"`
	Gender                    string    `bson:"gender" json:"gender"`
	Address                   string    `bson:"address" json:"address"`
	Occupation                string    `bson:"occupation" json:"occupation"`
	EmergencyContactName      string    `bson:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactNumber    string    `bson:"emergency_contact_number" json:"emergencyContactNumber"`
	PrimaryPhysician          string    `bson:"primary_physician" json:"primaryPhysician"`
	InsuranceProvider         string    `bson:"insurance_provider" json:"insuranceProvider"`
	InsurancePolicyNumber     string    `bson:"insurance_policy_number" json:"insurancePolicyNumber"`
	Allergies                 string    `bson:"allergies,omitempty" json:"allergies,omitempty"`
	CurrentMedication         string    `bson:"current_medication,omitempty" json:"currentMedication,omitempty"`
	FamilyMedicalHistory      string    `bson:"family_medical_history,omitempty" json:"familyMedicalHistory,omitempty"`
	PastMedicalHistory        string    `bson:"past_medical_history,omitempty" json:"pastMedicalHistory,omitempty"`
	IdentificationType        string    `bson:"identification_type,omitempty" json:"identificationType,omitempty"`
	IdentificationNumber      string    `bson:"identification_number,omitempty" json:"identificationNumber,omitempty"`
	IdentificationDocumentID  string    `bson:"identification_document_id,omitempty" json:"identificationDocumentId,omitempty"`
	IdentificationDocumentURL string    `bson:"identification_document_url,omitempty" json:"identificationDocumentUrl,omitempty"`
	TreatmentConsent          bool      `bson:"treatment_consent" json:"treatmentConsent"`
	DisclosureConsent         bool      `bson:"disclosure_consent" json:"disclosureConsent"`
	PrivacyConsent            bool      `bson:"privacy_consent" json:"privacyConsent"`
	CreatedAt                 time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt                 time.Time `bson:"updated_at" json:"updatedAt"`
}
