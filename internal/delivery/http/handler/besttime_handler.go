package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/besttime-service/internal/pkg/utils"
	"github.com/besttime-service/internal/pkg/validator"
	"github.com/besttime-service/internal/usecase"
	"github.com/besttime-service/internal/usecase/dto"
)

// BestTimeHandler - обработчик запросов рекомендаций
type BestTimeHandler struct {
	bestTimeUC *usecase.BestTimeUseCase
	logger     *zap.Logger
}

// NewBestTimeHandler - создание нового BestTimeHandler
func NewBestTimeHandler(bestTimeUC *usecase.BestTimeUseCase, logger *zap.Logger) *BestTimeHandler {
	return &BestTimeHandler{
		bestTimeUC: bestTimeUC,
		logger:     logger,
	}
}

// GetByCity godoc
// @Summary Лучшее время для поездки по имени города
// @Description Возвращает рекомендацию по лучшему времени для посещения города: лучшие и нежелательные месяцы, сводки по погоде, загруженности и ценам, советы и предупреждения.
// @Tags BestTime
// @Accept json
// @Produce json
// @Param city path string true "Название города"
// @Param country query string false "Страна (уточнение для неоднозначных имён)"
// @Success 200 {object} utils.Response{data=dto.BestTimeResponse}
// @Failure 404 {object} utils.Response
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/best-time/city/{city} [get]
func (h *BestTimeHandler) GetByCity(c *fiber.Ctx) error {
	var req dto.CityRequest
	req.City = c.Params("city")
	req.Country = c.Query("country")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bestTimeUC.GetByCity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if result == nil {
		return utils.SendNotFound(c, "No best time data found for this city")
	}

	return utils.SendSuccess(c, "Best time data retrieved successfully", result)
}

// GetByCoordinates godoc
// @Summary Лучшее время для поездки по координатам
// @Description Ищет эталонную локацию в радиусе поиска; при отсутствии - подбирает географический аналог по похожести климатических факторов (с пониженной уверенностью).
// @Tags BestTime
// @Accept json
// @Produce json
// @Param lat query number true "Широта (-90..90)"
// @Param lon query number true "Долгота (-180..180)"
// @Param radius query number false "Радиус поиска в км (1-500)" default(100)
// @Success 200 {object} utils.Response{data=dto.BestTimeResponse}
// @Failure 404 {object} utils.Response
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/best-time/coordinates [get]
func (h *BestTimeHandler) GetByCoordinates(c *fiber.Ctx) error {
	var req dto.CoordinatesRequest
	req.Lat = c.QueryFloat("lat")
	req.Lon = c.QueryFloat("lon")
	req.RadiusKm = c.QueryFloat("radius")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bestTimeUC.GetByCoordinates(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if result == nil {
		return utils.SendNotFound(c, "No best time data found for these coordinates")
	}

	return utils.SendSuccess(c, "Best time data retrieved successfully", result)
}

// Search godoc
// @Summary Лучшее время для поездки по текстовому запросу
// @Description Разбирает запрос вида "City" или "City, Country"; незнакомые имена разрешаются через геокодер с подбором географического аналога.
// @Tags BestTime
// @Accept json
// @Produce json
// @Param q query string true "Поисковый запрос (минимум 2 символа)"
// @Success 200 {object} utils.Response{data=dto.BestTimeResponse}
// @Failure 404 {object} utils.Response
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/best-time/search [get]
func (h *BestTimeHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	req.Query = c.Query("q")

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bestTimeUC.GetBySearch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if result == nil {
		return utils.SendNotFound(c, "No best time data found for this query")
	}

	return utils.SendSuccess(c, "Best time data retrieved successfully", result)
}
