package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Создание анкеты пациента
// @Description Заполняет анкету пациента для текущего пользователя
// @Tags Пациенты
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreatePatientDTO true "Данные анкеты"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Router /patients [post]
func (h *Handler) createPatient(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	var input domain.CreatePatientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Patient.Create(c.Request.Context(), userID, input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Анкета текущего пациента
// @Tags Пациенты
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Patient
// @Failure 404 {object} errorResponseBody
// @Router /patients/me [get]
func (h *Handler) getMyPatientProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	patient, err := h.services.Patient.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Получение пациента по ID
// @Tags Пациенты
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID пациента"
// @Success 200 {object} domain.Patient
// @Failure 404 {object} errorResponseBody
// @Router /patients/{id} [get]
func (h *Handler) getPatientByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	role, _ := getUserRole(c)
	if role == domain.UserRolePatient {
		userID, err := getUserID(c)
		if err != nil {
			unauthorizedResponse(c, err.Error())
			return
		}
		own, err := h.services.Patient.GetByUserID(c.Request.Context(), userID)
		if err != nil || own.ID != id {
			forbiddenResponse(c, "доступ запрещен")
			return
		}
	}

	patient, err := h.services.Patient.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patient)
}

// @Summary Обновление анкеты пациента
// @Tags Пациенты
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID пациента"
// @Param input body domain.UpdatePatientDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /patients/{id} [put]
func (h *Handler) updatePatient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	role, _ := getUserRole(c)
	if role == domain.UserRolePatient {
		userID, err := getUserID(c)
		if err != nil {
			unauthorizedResponse(c, err.Error())
			return
		}
		own, err := h.services.Patient.GetByUserID(c.Request.Context(), userID)
		if err != nil || own.ID != id {
			forbiddenResponse(c, "доступ запрещен")
			return
		}
	}

	var input domain.UpdatePatientDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Patient.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "анкета обновлена")
}
