package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic/internal/domain"
)

// Стабильные коды ошибок API; клиенты ветвятся по ним, а не по тексту.
const (
	codeNotFound         = "NOT_FOUND"
	codeInvalidState     = "INVALID_STATE"
	codeDuplicateShift   = "DUPLICATE_SHIFT"
	codeSlotUnavailable  = "SLOT_UNAVAILABLE"
	codeInvalidRequest   = "INVALID_REQUEST"
	codeAlreadyCompleted = "ALREADY_COMPLETED"
	codeSystemError      = "SYSTEM_ERROR"
	codeUnauthorized     = "UNAUTHORIZED"
	codeForbidden        = "FORBIDDEN"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type messageResponseType struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type paginatedResponse struct {
	Data       interface{} `json:"data"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// domainErrorResponse переводит доменную ошибку в HTTP-статус и стабильный код.
func domainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		errorResponse(c, http.StatusConflict, codeInvalidState, err.Error())
	case errors.Is(err, domain.ErrDuplicateShift):
		errorResponse(c, http.StatusConflict, codeDuplicateShift, err.Error())
	case errors.Is(err, domain.ErrSlotUnavailable):
		errorResponse(c, http.StatusConflict, codeSlotUnavailable, err.Error())
	case errors.Is(err, domain.ErrAlreadyCompleted):
		errorResponse(c, http.StatusConflict, codeAlreadyCompleted, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		errorResponse(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
	default:
		errorResponse(c, http.StatusInternalServerError, codeSystemError, "внутренняя ошибка сервера")
	}
}

func messageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageResponseType{
		Status:  "success",
		Message: message,
	})
}

func paginatedSuccessResponse(c *gin.Context, data interface{}, totalCount, limit, offset int) {
	c.JSON(http.StatusOK, paginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, codeInvalidRequest, message)
}

func unauthorizedResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnauthorized, codeUnauthorized, message)
}

func forbiddenResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusForbidden, codeForbidden, message)
}
