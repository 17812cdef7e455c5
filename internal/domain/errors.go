package domain

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("объект не найден")
	ErrInvalidState     = errors.New("операция недопустима в текущем статусе")
	ErrDuplicateShift   = errors.New("смена на эту дату уже зарегистрирована")
	ErrSlotUnavailable  = errors.New("слот уже занят")
	ErrInvalidRequest   = errors.New("некорректный запрос")
	ErrAlreadyCompleted = errors.New("приём уже завершён")
)
