package manage_promotions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/service/promotions"
	"github.com/m04kA/SMC-BarberService/internal/service/promotions/models"
)

const (
	msgInvalidBody        = "некорректное тело запроса"
	msgInvalidPromotion   = "некорректные данные акции"
	msgInvalidPromotionID = "некорректный ID акции"
	msgPromotionNotFound  = "акция не найдена"
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

// HandleCreate POST /api/v1/promotions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, promotions.ErrInvalidInput) {
			h.logger.Warn("POST /promotions - Invalid promotion data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPromotion)
			return
		}
		h.logger.Error("POST /promotions - Failed to create promotion: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /promotions - Promotion created successfully: promotion_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/promotions/{promotionId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	// Извлекаем promotionId из URL
	vars := mux.Vars(r)
	promotionIDStr := vars["promotionId"]

	promotionID, err := strconv.ParseInt(promotionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	if err := h.service.Delete(r.Context(), promotionID); err != nil {
		if errors.Is(err, promotions.ErrPromotionNotFound) {
			h.logger.Warn("DELETE /promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgPromotionNotFound)
			return
		}
		h.logger.Error("DELETE /promotions/{id} - Failed to delete promotion: promotion_id=%d, error=%v",
			promotionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /promotions/{id} - Promotion deleted successfully: promotion_id=%d", promotionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
