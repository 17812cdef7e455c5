package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Список врачей
// @Tags Врачи
// @Produce json
// @Param specialty_id query int false "Фильтр по специальности"
// @Param status query string false "Фильтр по статусу" Enums(active, inactive)
// @Param limit query int false "Ограничение выборки"
// @Param offset query int false "Смещение выборки"
// @Success 200 {object} paginatedResponse
// @Router /doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	filter := domain.DoctorFilter{
		Limit:  limit,
		Offset: offset,
	}

	if specialtyStr := c.Query("specialty_id"); specialtyStr != "" {
		specialtyID, err := strconv.ParseInt(specialtyStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID специальности")
			return
		}
		filter.SpecialtyID = &specialtyID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.DoctorStatus(statusStr)
		filter.Status = &status
	}

	doctors, total, err := h.services.Doctor.List(c.Request.Context(), filter)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	paginatedSuccessResponse(c, doctors, total, filter.Limit, filter.Offset)
}

// @Summary Профиль текущего врача
// @Tags Врачи
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Doctor
// @Failure 404 {object} errorResponseBody
// @Router /doctors/me [get]
func (h *Handler) getMyDoctorProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	doctor, err := h.services.Doctor.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Получение врача по ID
// @Tags Врачи
// @Produce json
// @Param id path int true "ID врача"
// @Success 200 {object} domain.Doctor
// @Failure 404 {object} errorResponseBody
// @Router /doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctor)
}

// @Summary Слоты врача
// @Description Возвращает слоты врача за период, по умолчанию на неделю вперёд
// @Tags Врачи
// @Produce json
// @Param id path int true "ID врача"
// @Param from query string false "Начало периода (YYYY-MM-DD)"
// @Param to query string false "Конец периода (YYYY-MM-DD)"
// @Success 200 {array} domain.Slot
// @Failure 404 {object} errorResponseBody
// @Router /doctors/{id}/slots [get]
func (h *Handler) getDoctorSlots(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	from := time.Now()
	to := from.AddDate(0, 0, 7)

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			badRequestResponse(c, "некорректная дата начала периода")
			return
		}
		from = parsed
	}

	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			badRequestResponse(c, "некорректная дата конца периода")
			return
		}
		// Верхняя граница включает весь день.
		to = parsed.AddDate(0, 0, 1)
	}

	slots, err := h.services.Schedule.ListSlots(c.Request.Context(), id, from, to)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}

// @Summary Расписания врача
// @Tags Врачи
// @Produce json
// @Param id path int true "ID врача"
// @Success 200 {array} domain.Schedule
// @Failure 404 {object} errorResponseBody
// @Router /doctors/{id}/schedules [get]
func (h *Handler) getDoctorSchedules(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	schedules, err := h.services.Schedule.ListByDoctor(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, schedules)
}

// @Summary Создание профиля врача
// @Tags Врачи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Данные врача"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Router /doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var input domain.CreateDoctorDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Doctor.Create(c.Request.Context(), input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление профиля врача
// @Tags Врачи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID врача"
// @Param input body domain.UpdateDoctorDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /doctors/{id} [put]
func (h *Handler) updateDoctor(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateDoctorDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Doctor.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "профиль врача обновлён")
}
