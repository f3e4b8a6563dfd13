package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	patientRepo "careplus/database/repository/patient"
	"careplus/services/patient"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PatientHandler serves the intake form and patient lookups.
type PatientHandler struct {
	Svc    patient.PatientService
	Logger *zap.Logger
}

// NewPatientHandler creates a new PatientHandler instance.
func NewPatientHandler(svc patient.PatientService, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{Svc: svc, Logger: logger}
}

type registerPatientForm struct {
	UserID                 string    `form:"userId" binding:"required"`
	Name                   string    `form:"name" binding:"required,min=2,max=50"`
	Email                  string    `form:"email" binding:"required,email"`
	Phone                  string    `form:"phone" binding:"required,e164"`
	BirthDate              time.Time `form:"birthDate" binding:"required" time_format:"2006-01-02"`
	Gender                 string    `form:"gender" binding:"required,oneof=male female other"`
	Address                string    `form:"address" binding:"required,min=5,max=500"`
	Occupation             string    `form:"occupation" binding:"required,min=2,max=500"`
	EmergencyContactName   string    `form:"emergencyContactName" binding:"required,min=2,max=50"`
	EmergencyContactNumber string    `form:"emergencyContactNumber" binding:"required,e164"`
	PrimaryPhysician       string    `form:"primaryPhysician" binding:"required,min=2"`
	InsuranceProvider      string    `form:"insuranceProvider" binding:"required,min=2,max=50"`
	InsurancePolicyNumber  string    `form:"insurancePolicyNumber" binding:"required,min=2,max=50"`
	Allergies              string    `form:"allergies"`
	CurrentMedication      string    `form:"currentMedication"`
	FamilyMedicalHistory   string    `form:"familyMedicalHistory"`
	PastMedicalHistory     string    `form:"pastMedicalHistory"`
	IdentificationType     string    `form:"identificationType"`
	IdentificationNumber   string    `form:"identificationNumber"`
	TreatmentConsent       bool      `form:"treatmentConsent" binding:"required"`
	DisclosureConsent      bool      `form:"disclosureConsent" binding:"required"`
	PrivacyConsent         bool      `form:"privacyConsent" binding:"required"`
}

// RegisterPatientHandler ingests the multipart intake form, staging the
// identification document on disk before handing it to the service.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	var form registerPatientForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	input := patient.RegisterPatientInput{
		UserID:                 form.UserID,
		Name:                   form.Name,
		Email:                  form.Email,
		Phone:                  form.Phone,
		BirthDate:              form.BirthDate,
		Gender:                 form.Gender,
		Address:                form.Address,
		Occupation:             form.Occupation,
		EmergencyContactName:   form.EmergencyContactName,
		EmergencyContactNumber: form.EmergencyContactNumber,
		PrimaryPhysician:       form.PrimaryPhysician,
		InsuranceProvider:      form.InsuranceProvider,
		InsurancePolicyNumber:  form.InsurancePolicyNumber,
		Allergies:              form.Allergies,
		CurrentMedication:      form.CurrentMedication,
		FamilyMedicalHistory:   form.FamilyMedicalHistory,
		PastMedicalHistory:     form.PastMedicalHistory,
		IdentificationType:     form.IdentificationType,
		IdentificationNumber:   form.IdentificationNumber,
		TreatmentConsent:       form.TreatmentConsent,
		DisclosureConsent:      form.DisclosureConsent,
		PrivacyConsent:         form.PrivacyConsent,
	}

	if file, err := c.FormFile("identificationDocument"); err == nil {
		tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			h.Logger.Error("Failed to stage uploaded document", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process uploaded document"})
			return
		}
		defer os.Remove(tmpPath)

		input.IdentificationDocument = &patient.UploadedDocument{
			LocalPath:   tmpPath,
			FileName:    file.Filename,
			Size:        file.Size,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	created, err := h.Svc.RegisterPatient(input)
	if err != nil {
		if errors.Is(err, patient.ErrFileTooLarge) || errors.Is(err, patient.ErrFileEmpty) || errors.Is(err, patient.ErrFileTypeInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Patient registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register patient"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

// GetPatientHandler looks up the patient record belonging to a user.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	record, err := h.Svc.GetPatientByUser(c.Param("userId"))
	if err != nil {
		if errors.Is(err, patientRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		h.Logger.Error("Failed to fetch patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch patient"})
		return
	}
	c.JSON(http.StatusOK, record)
}
