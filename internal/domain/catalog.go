package domain

import (
	"time"
)

type Specialty struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateSpecialtyDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateSpecialtyDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateServiceDTO struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

type UpdateServiceDTO struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
}
