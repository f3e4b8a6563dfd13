package patientRepo

import (
	"errors"

	"careplus/models"
)

// ErrNotFound is returned when no patient matches the given lookup.
var ErrNotFound = errors.New("patient not found")

// PatientRepository defines data-access methods for patient profiles.
type PatientRepository interface {
	Create(patient *models.Patient) error
	GetByID(id string) (*models.Patient, error)
	// GetByUserID returns the patient profile registered for a directory
	// user, or ErrNotFound if registration has not happened yet.
	GetByUserID(userID string) (*models.Patient, error)
}
