package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Регистрация смены
// @Description Создаёт смену текущего врача и нарезает её на слоты
// @Tags Расписания
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateScheduleDTO true "Дата и смена"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Некорректная дата или смена"
// @Failure 409 {object} errorResponseBody "Смена уже зарегистрирована"
// @Router /schedules [post]
func (h *Handler) registerShift(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	var input domain.CreateScheduleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Schedule.RegisterShift(c.Request.Context(), doctor.ID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Расписания текущего врача
// @Tags Расписания
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Schedule
// @Router /schedules [get]
func (h *Handler) getMySchedules(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	schedules, err := h.services.Schedule.ListByDoctor(c.Request.Context(), doctor.ID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, schedules)
}

// @Summary Получение расписания по ID
// @Tags Расписания
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID расписания"
// @Success 200 {object} domain.Schedule
// @Failure 404 {object} errorResponseBody
// @Router /schedules/{id} [get]
func (h *Handler) getScheduleByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	schedule, err := h.services.Schedule.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, schedule)
}

// @Summary Отмена смены
// @Description Удаляет смену со слотами и отменяет зависимые записи
// @Tags Расписания
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID расписания"
// @Success 200 {object} successResponseBody "Число отменённых записей"
// @Failure 404 {object} errorResponseBody
// @Router /schedules/{id} [delete]
func (h *Handler) cancelShift(c *gin.Context) {
	doctor, ok := h.currentDoctor(c)
	if !ok {
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	cancelled, err := h.services.Schedule.CancelShift(c.Request.Context(), doctor.ID, id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"cancelled_appointments": cancelled,
	})
}

// currentDoctor возвращает профиль врача текущего пользователя;
// при ошибке ответ уже записан.
func (h *Handler) currentDoctor(c *gin.Context) (*domain.Doctor, bool) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return nil, false
	}

	doctor, err := h.services.Doctor.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		forbiddenResponse(c, "профиль врача не найден")
		return nil, false
	}

	return doctor, true
}
