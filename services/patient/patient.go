package patient

import (
	"context"
	"fmt"
	"time"

	patientRepo "careplus/database/repository/patient"
	"careplus/models"
	"careplus/services/storage"
	"careplus/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identificationFolder = "identification/documents"

// DefaultPatientService is the production implementation of PatientService.
type DefaultPatientService struct {
	Repo       patientRepo.PatientRepository
	StorageSvc storage.StorageService
}

// RegisterPatient validates and uploads the identification document when one
// is provided, then persists the intake profile.
func (s *DefaultPatientService) RegisterPatient(input RegisterPatientInput) (*models.Patient, error) {
	var documentID, documentURL string

	if input.IdentificationDocument != nil {
		if err := validateDocument(input.IdentificationDocument); err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		publicID, url, err := s.StorageSvc.UploadFile(ctx, input.IdentificationDocument.LocalPath, identificationFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload identification document: %w", err)
		}
		documentID = publicID
		documentURL = url

		utils.GetLogger().Info("Identification document uploaded",
			zap.String("userID", input.UserID),
			zap.String("publicID", publicID))
	}

	newPatient := &models.Patient{
		ID:                        uuid.New().String(),
		UserID:                    input.UserID,
		Name:                      input.Name,
		Email:                     input.Email,
		Phone:                     input.Phone,
		BirthDate:                 input.BirthDate,
		Gender:                    input.Gender,
		Address:                   input.Address,
		Occupation:                input.Occupation,
		EmergencyContactName:      input.EmergencyContactName,
		EmergencyContactNumber:    input.EmergencyContactNumber,
		PrimaryPhysician:          input.PrimaryPhysician,
		InsuranceProvider:         input.InsuranceProvider,
		InsurancePolicyNumber:     input.InsurancePolicyNumber,
		Allergies:                 input.Allergies,
		CurrentMedication:         input.CurrentMedication,
		FamilyMedicalHistory:      input.FamilyMedicalHistory,
		PastMedicalHistory:        input.PastMedicalHistory,
		IdentificationType:        input.IdentificationType,
		IdentificationNumber:      input.IdentificationNumber,
		IdentificationDocumentID:  documentID,
		IdentificationDocumentURL: documentURL,
		TreatmentConsent:          input.TreatmentConsent,
		DisclosureConsent:         input.DisclosureConsent,
		PrivacyConsent:            input.PrivacyConsent,
	}

	if err := s.Repo.Create(newPatient); err != nil {
		return nil, fmt.Errorf("failed to register patient: %w", err)
	}
	return newPatient, nil
}

// GetPatientByUser retrieves the patient profile for a directory user.
func (s *DefaultPatientService) GetPatientByUser(userID string) (*models.Patient, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return p, nil
}
