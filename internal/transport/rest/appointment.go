package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Создание записи на приём
// @Description Записывает пациента либо на слот врача, либо на услугу
// @Tags Записи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Слот врача или услуга"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Некорректная форма запроса"
// @Failure 409 {object} errorResponseBody "Слот уже занят"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	var input domain.CreateAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Appointment.Create(c.Request.Context(), patient.ID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Список записей
// @Description Пациент видит свои записи, врач свои, администратор все
// @Tags Записи
// @Security BearerAuth
// @Produce json
// @Param status query string false "Фильтр по статусу"
// @Param start_date query string false "Начало периода (YYYY-MM-DD)"
// @Param end_date query string false "Конец периода (YYYY-MM-DD)"
// @Param limit query int false "Ограничение выборки"
// @Param offset query int false "Смещение выборки"
// @Success 200 {object} paginatedResponse
// @Router /appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	filter := domain.AppointmentFilter{
		Limit:  limit,
		Offset: offset,
	}

	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	switch role {
	case domain.UserRolePatient:
		patient, ok := h.currentPatient(c)
		if !ok {
			return
		}
		filter.PatientID = &patient.ID
	case domain.UserRoleDoctor:
		doctor, ok := h.currentDoctor(c)
		if !ok {
			return
		}
		filter.DoctorID = &doctor.ID
	case domain.UserRoleAdmin:
		if patientStr := c.Query("patient_id"); patientStr != "" {
			patientID, err := strconv.ParseInt(patientStr, 10, 64)
			if err != nil {
				badRequestResponse(c, "некорректный ID пациента")
				return
			}
			filter.PatientID = &patientID
		}
		if doctorStr := c.Query("doctor_id"); doctorStr != "" {
			doctorID, err := strconv.ParseInt(doctorStr, 10, 64)
			if err != nil {
				badRequestResponse(c, "некорректный ID врача")
				return
			}
			filter.DoctorID = &doctorID
		}
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.AppointmentStatus(statusStr)
		filter.Status = &status
	}

	if startStr := c.Query("start_date"); startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			badRequestResponse(c, "некорректная дата начала периода")
			return
		}
		filter.StartDate = &parsed
	}

	if endStr := c.Query("end_date"); endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			badRequestResponse(c, "некорректная дата конца периода")
			return
		}
		end := parsed.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, appointments, total, filter.Limit, filter.Offset)
}

// @Summary Получение записи по ID
// @Tags Записи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Appointment
// @Failure 404 {object} errorResponseBody
// @Router /appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	appointment, ok := h.appointmentForViewer(c, id)
	if !ok {
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Подтверждение записи
// @Description Врач подтверждает ожидающую запись
// @Tags Записи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Недопустимый переход статуса"
// @Router /appointments/{id}/confirm [put]
func (h *Handler) confirmAppointment(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Appointment.Confirm(c.Request.Context(), doctor.ID, id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "запись подтверждена")
}

// @Summary Начало осмотра
// @Description Врач переводит подтверждённую запись в статус осмотра
// @Tags Записи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Недопустимый переход статуса"
// @Router /appointments/{id}/examine [put]
func (h *Handler) startExamination(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Appointment.StartExamination(c.Request.Context(), doctor.ID, id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "осмотр начат")
}

// @Summary Отмена записи
// @Description Пациент отменяет свою запись, слот освобождается
// @Tags Записи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Запись уже завершена или отменена"
// @Router /appointments/{id} [delete]
func (h *Handler) cancelAppointment(c *gin.Context) {
	patient, ok := h.currentPatient(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Appointment.Cancel(c.Request.Context(), patient.ID, id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "запись отменена")
}

// appointmentForViewer загружает запись и проверяет, что текущий
// пользователь имеет к ней отношение; при ошибке ответ уже записан.
func (h *Handler) appointmentForViewer(c *gin.Context, id int64) (*domain.Appointment, bool) {
	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return nil, false
	}

	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return nil, false
	}

	switch role {
	case domain.UserRolePatient:
		patient, ok := h.currentPatient(c)
		if !ok {
			return nil, false
		}
		if appointment.PatientID != patient.ID {
			domainErrorResponse(c, domain.ErrNotFound)
			return nil, false
		}
	case domain.UserRoleDoctor:
		doctor, ok := h.currentDoctor(c)
		if !ok {
			return nil, false
		}
		if appointment.DoctorID == nil || *appointment.DoctorID != doctor.ID {
			domainErrorResponse(c, domain.ErrNotFound)
			return nil, false
		}
	}

	return appointment, true
}

// currentPatient возвращает анкету пациента текущего пользователя;
// при ошибке ответ уже записан.
func (h *Handler) currentPatient(c *gin.Context) (*domain.Patient, bool) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return nil, false
	}

	patient, err := h.services.Patient.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		forbiddenResponse(c, "анкета пациента не заполнена")
		return nil, false
	}

	return patient, true
}
