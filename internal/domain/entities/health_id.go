package entities

import "time"

// HealthID represents a verified national health identity record. The
// national id string itself is treated as an opaque lookup key.
type HealthID struct {
	ID                string    `json:"id" db:"id"`
	PatientName       string    `json:"patient_name" db:"patient_name"`
	DateOfBirth       time.Time `json:"date_of_birth" db:"date_of_birth"`
	NationalID        string    `json:"national_id" db:"national_id"`
	BloodGroup        string    `json:"blood_group,omitempty" db:"blood_group"`
	Gender            string    `json:"gender,omitempty" db:"gender"`
	MedicalConditions string    `json:"medical_conditions,omitempty" db:"medical_conditions"`
	EmergencyContact  string    `json:"emergency_contact,omitempty" db:"emergency_contact"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Age returns the patient's age in whole years at the given time
func (h *HealthID) Age(now time.Time) int {
	years := now.Year() - h.DateOfBirth.Year()
	if now.YearDay() < h.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// Profile derives the scorer input from the identity record
func (h *HealthID) Profile(now time.Time) PatientProfile {
	return PatientProfile{
		Age:               h.Age(now),
		MedicalConditions: h.MedicalConditions,
	}
}
