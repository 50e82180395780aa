package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roothaven/RootsBot_Go/internal/domain"
	"github.com/roothaven/RootsBot_Go/internal/logger"
	"github.com/roothaven/RootsBot_Go/internal/quest"
)

// QuestHandler exposes the reward engine's entry points over HTTP
type QuestHandler struct {
	questService quest.Service
}

func NewQuestHandler(questService quest.Service) *QuestHandler {
	return &QuestHandler{questService: questService}
}

// ProcessCompletion runs the immediate completion path for one quest
func (h *QuestHandler) ProcessCompletion(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithSweepID(r.Context(), logger.GenerateSweepID())
	log := logger.FromContext(ctx)

	questID := chi.URLParam(r, "questID")
	if questID == "" {
		respondError(w, http.StatusBadRequest, "quest id is required")
		return
	}

	report, err := h.questService.ProcessQuestCompletion(ctx, questID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrQuestNotFound):
			respondError(w, http.StatusNotFound, domain.ErrMsgQuestNotFound)
		case errors.Is(err, domain.ErrQuestNotEligible):
			respondError(w, http.StatusConflict, domain.ErrMsgQuestNotEligible)
		default:
			log.Error("Failed to process quest completion", "quest_id", questID, "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to process quest completion")
		}
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RewardStatus dumps every participant's reward classification
func (h *QuestHandler) RewardStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	questID := chi.URLParam(r, "questID")
	if questID == "" {
		respondError(w, http.StatusBadRequest, "quest id is required")
		return
	}

	report, err := h.questService.ValidateQuestRewardStatus(ctx, questID)
	if err != nil {
		if errors.Is(err, domain.ErrQuestNotFound) {
			respondError(w, http.StatusNotFound, domain.ErrMsgQuestNotFound)
			return
		}
		log.Error("Failed to validate quest reward status", "quest_id", questID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to validate quest reward status")
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RunReconciliation triggers the monthly reconciliation sweep on demand
func (h *QuestHandler) RunReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithSweepID(r.Context(), logger.GenerateSweepID())
	log := logger.FromContext(ctx)

	report, err := h.questService.RunMonthlyReconciliation(ctx)
	if err != nil {
		log.Error("Reconciliation sweep failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Reconciliation sweep failed")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
