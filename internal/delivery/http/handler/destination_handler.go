package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/besttime-service/internal/pkg/utils"
	"github.com/besttime-service/internal/pkg/validator"
	"github.com/besttime-service/internal/usecase"
	"github.com/besttime-service/internal/usecase/dto"
)

// DestinationHandler - обработчик для списка направлений
// и административного добавления курируемых записей
type DestinationHandler struct {
	destinationUC *usecase.DestinationUseCase
	logger        *zap.Logger
}

// NewDestinationHandler - создание нового DestinationHandler
func NewDestinationHandler(destinationUC *usecase.DestinationUseCase, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinationUC: destinationUC,
		logger:        logger,
	}
}

// List godoc
// @Summary Список известных направлений
// @Description Возвращает страницу направлений с краткими сводками. Объединяет встроенный справочник и курируемые записи БД.
// @Tags Destinations
// @Accept json
// @Produce json
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.Response{data=dto.DestinationListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/best-time/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	var req dto.ListDestinationsRequest
	req.Limit = c.QueryInt("limit", 20)
	req.Offset = c.QueryInt("offset", 0)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.destinationUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, "Destinations retrieved successfully", result)
}

// Create godoc
// @Summary Добавление курируемого направления
// @Description Административная операция: сохраняет готовую рекомендацию в PostgreSQL. Запись используется при промахе встроенного справочника.
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Данные направления"
// @Success 200 {object} utils.Response{data=dto.CreateDestinationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/best-time/locations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.destinationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, "Destination created successfully", result)
}
