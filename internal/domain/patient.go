package domain

import (
	"time"
)

type Patient struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	DOB             time.Time `json:"dob"`
	Gender          string    `json:"gender"`
	Address         string    `json:"address"`
	InsuranceNumber string    `json:"insurance_number,omitempty"`
	InsuranceTerm   string    `json:"insurance_term,omitempty"`
	NotePMH         string    `json:"note_pmh,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreatePatientDTO struct {
	DOB             string `json:"dob" binding:"required"`
	Gender          string `json:"gender" binding:"required,oneof=male female other"`
	Address         string `json:"address" binding:"required"`
	InsuranceNumber string `json:"insurance_number"`
	InsuranceTerm   string `json:"insurance_term"`
	NotePMH         string `json:"note_pmh"`
}

type UpdatePatientDTO struct {
	Address         *string `json:"address"`
	InsuranceNumber *string `json:"insurance_number"`
	InsuranceTerm   *string `json:"insurance_term"`
	NotePMH         *string `json:"note_pmh"`
}
