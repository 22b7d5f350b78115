package list_promotions

import (
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
)

type Handler struct {
	service PromotionService
	logger  Logger
}

func NewHandler(service PromotionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/promotions
// Возвращает только действующие акции, отсортированные по сроку окончания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /promotions - Failed to list promotions: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /promotions - Promotions retrieved successfully: count=%d", len(result.Promotions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
