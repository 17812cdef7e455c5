package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic/internal/domain"
)

// @Summary Список специальностей
// @Tags Справочники
// @Produce json
// @Success 200 {array} domain.Specialty
// @Router /specialties [get]
func (h *Handler) getSpecialties(c *gin.Context) {
	specialties, err := h.services.Catalog.ListSpecialties(c.Request.Context())
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, specialties)
}

// @Summary Получение специальности по ID
// @Tags Справочники
// @Produce json
// @Param id path int true "ID специальности"
// @Success 200 {object} domain.Specialty
// @Failure 404 {object} errorResponseBody
// @Router /specialties/{id} [get]
func (h *Handler) getSpecialtyByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	specialty, err := h.services.Catalog.GetSpecialtyByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, specialty)
}

// @Summary Создание специальности
// @Tags Справочники
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateSpecialtyDTO true "Данные специальности"
// @Success 201 {object} successResponseBody
// @Router /specialties [post]
func (h *Handler) createSpecialty(c *gin.Context) {
	var input domain.CreateSpecialtyDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Catalog.CreateSpecialty(c.Request.Context(), input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление специальности
// @Tags Справочники
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID специальности"
// @Param input body domain.UpdateSpecialtyDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /specialties/{id} [put]
func (h *Handler) updateSpecialty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateSpecialtyDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Catalog.UpdateSpecialty(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "специальность обновлена")
}

// @Summary Удаление специальности
// @Tags Справочники
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID специальности"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /specialties/{id} [delete]
func (h *Handler) deleteSpecialty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Catalog.DeleteSpecialty(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "специальность удалена")
}

// @Summary Список услуг
// @Tags Справочники
// @Produce json
// @Success 200 {array} domain.Service
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	services, err := h.services.Catalog.ListServices(c.Request.Context())
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, services)
}

// @Summary Получение услуги по ID
// @Tags Справочники
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} domain.Service
// @Failure 404 {object} errorResponseBody
// @Router /services/{id} [get]
func (h *Handler) getServiceByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	service, err := h.services.Catalog.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, service)
}

// @Summary Создание услуги
// @Tags Справочники
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateServiceDTO true "Данные услуги"
// @Success 201 {object} successResponseBody
// @Router /services [post]
func (h *Handler) createService(c *gin.Context) {
	var input domain.CreateServiceDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Catalog.CreateService(c.Request.Context(), input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление услуги
// @Tags Справочники
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID услуги"
// @Param input body domain.UpdateServiceDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /services/{id} [put]
func (h *Handler) updateService(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Catalog.UpdateService(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "услуга обновлена")
}

// @Summary Удаление услуги
// @Tags Справочники
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /services/{id} [delete]
func (h *Handler) deleteService(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Catalog.DeleteService(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "услуга удалена")
}
