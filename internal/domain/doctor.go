package domain

import (
	"time"
)

type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "active"
	DoctorStatusInactive DoctorStatus = "inactive"
)

type Doctor struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	SpecialtyID int64        `json:"specialty_id"`
	Price       float64      `json:"price"`
	Room        string       `json:"room"`
	Status      DoctorStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	FullName      string `json:"full_name,omitempty"`
	SpecialtyName string `json:"specialty_name,omitempty"`
}

type CreateDoctorDTO struct {
	UserID      int64   `json:"user_id" binding:"required"`
	SpecialtyID int64   `json:"specialty_id" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Room        string  `json:"room" binding:"required"`
}

type UpdateDoctorDTO struct {
	SpecialtyID *int64        `json:"specialty_id"`
	Price       *float64      `json:"price" binding:"omitempty,gt=0"`
	Room        *string       `json:"room"`
	Status      *DoctorStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

type DoctorFilter struct {
	SpecialtyID *int64        `json:"specialty_id"`
	Status      *DoctorStatus `json:"status"`
	Limit       int           `json:"limit"`
	Offset      int           `json:"offset"`
}
