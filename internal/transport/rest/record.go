package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Завершение осмотра
// @Description Создаёт медкарту и переводит запись в статус completed
// @Tags Медкарты
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CompleteExaminationDTO true "Результаты осмотра"
// @Success 201 {object} domain.Record
// @Failure 404 {object} errorResponseBody "Запись не найдена или принадлежит другому врачу"
// @Failure 409 {object} errorResponseBody "Приём уже завершён или не подтверждён"
// @Router /records [post]
func (h *Handler) completeExamination(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	var input domain.CompleteExaminationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	record, err := h.services.Record.CompleteExamination(c.Request.Context(), doctor.ID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, record)
}

// @Summary Список медкарт
// @Description Пациент видит свои медкарты, врач свои, администратор все
// @Tags Медкарты
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Ограничение выборки"
// @Param offset query int false "Смещение выборки"
// @Success 200 {object} paginatedResponse
// @Router /records [get]
func (h *Handler) getRecords(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	filter := domain.RecordFilter{
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
	}

	records, total, err := h.services.Record.List(c.Request.Context(), filter)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, records, total, filter.Limit, filter.Offset)
}

// @Summary Получение медкарты по ID
// @Tags Медкарты
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID медкарты"
// @Success 200 {object} domain.Record
// @Failure 404 {object} errorResponseBody
// @Router /records/{id} [get]
func (h *Handler) getRecordByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	record, err := h.services.Record.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	if !h.recordVisible(c, record) {
		return
	}

	successResponse(c, http.StatusOK, record)
}

// @Summary Медкарта записи на приём
// @Tags Медкарты
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} domain.Record
// @Failure 404 {object} errorResponseBody
// @Router /appointments/{id}/record [get]
func (h *Handler) getAppointmentRecord(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if _, ok := h.appointmentForViewer(c, id); !ok {
		return
	}

	record, err := h.services.Record.GetByAppointmentID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, record)
}

// recordVisible проверяет доступ пользователя к медкарте;
// чужая медкарта неотличима от несуществующей.
func (h *Handler) recordVisible(c *gin.Context, record *domain.Record) bool {
	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return false
	}

	switch role {
	case domain.UserRolePatient:
		patient, ok := h.currentPatient(c)
		if !ok {
			return false
		}
		if record.PatientID != patient.ID {
			domainErrorResponse(c, domain.ErrNotFound)
			return false
		}
	case domain.UserRoleDoctor:
		doctor, ok := h.currentDoctor(c)
		if !ok {
			return false
		}
		if record.DoctorID != doctor.ID {
			domainErrorResponse(c, domain.ErrNotFound)
			return false
		}
	}

	return true
}
