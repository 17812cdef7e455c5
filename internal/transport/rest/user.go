package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

// @Summary Текущий пользователь
// @Tags Пользователи
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} errorResponseBody
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Получение пользователя по ID
// @Tags Пользователи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} domain.User
// @Failure 404 {object} errorResponseBody
// @Router /users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), id)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Создание пользователя
// @Tags Пользователи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateUserDTO true "Данные пользователя"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	var input domain.CreateUserDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.User.Create(c.Request.Context(), input)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление пользователя
// @Tags Пользователи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param input body domain.UpdateUserDTO true "Изменяемые поля"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /users/{id} [put]
func (h *Handler) updateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	role, _ := getUserRole(c)
	if userID != id && role != domain.UserRoleAdmin {
		forbiddenResponse(c, "доступ запрещен")
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.User.Update(c.Request.Context(), id, input); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "пользователь обновлён")
}

// @Summary Смена пароля
// @Tags Пользователи
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param input body domain.PasswordUpdateDTO true "Старый и новый пароли"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody
// @Router /users/{id}/password [put]
func (h *Handler) updatePassword(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c, err.Error())
		return
	}

	if userID != id {
		forbiddenResponse(c, "доступ запрещен")
		return
	}

	var input domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.User.UpdatePassword(c.Request.Context(), id, input); err != nil {
		errorResponse(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	messageResponse(c, http.StatusOK, "пароль обновлён")
}

// @Summary Удаление пользователя
// @Tags Пользователи
// @Security BearerAuth
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} messageResponseType
// @Failure 404 {object} errorResponseBody
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.User.Delete(c.Request.Context(), id); err != nil {
		domainErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "пользователь деактивирован")
}

// @Summary Список пользователей
// @Tags Пользователи
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Ограничение выборки"
// @Param offset query int false "Смещение выборки"
// @Success 200 {array} domain.User
// @Router /users [get]
func (h *Handler) getUsers(c *gin.Context) {
	limit, offset := parseLimitOffset(c)

	users, err := h.services.User.List(c.Request.Context(), limit, offset)
	if err != nil {
		domainErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, users)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func parseLimitOffset(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		offset = 0
	}
	return limit, offset
}
