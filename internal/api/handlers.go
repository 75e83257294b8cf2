package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sprout-app/sprout/internal/domain"
)

// ─── Garden ─────────────────────────────────────────────────────────────────

// handleGarden returns the current seed/fruit balances.
// GET /api/garden
func (s *Server) handleGarden(w http.ResponseWriter, r *http.Request) {
	g, err := s.economy.Balance(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

// ─── Challenges ─────────────────────────────────────────────────────────────

// handleListChallenges returns all challenges, refreshed against the live
// ledger so statuses and current spending are up to date.
// GET /api/challenges
func (s *Server) handleListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := s.engine.RefreshAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if challenges == nil {
		challenges = []domain.Challenge{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"challenges": challenges,
	})
}

type createChallengeRequest struct {
	CategoryID    string `json:"category_id"`
	Duration      string `json:"duration"`
	SpendingLimit int64  `json:"spending_limit"`
	TargetFruits  int    `json:"target_fruits"`
}

// handleCreateChallenge plants a new challenge and debits its seed cost.
// POST /api/challenges
func (s *Server) handleCreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req createChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := s.factory.Create(r.Context(), req.CategoryID, domain.Duration(req.Duration), req.SpendingLimit, req.TargetFruits)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// handleConfirmChallenge finalizes a finished challenge.
// POST /api/challenges/{id}/confirm
func (s *Server) handleConfirmChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.confirmer.Confirm(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleDeleteChallenge removes a challenge. Pass-through to the store;
// no seed refund.
// DELETE /api/challenges/{id}
func (s *Server) handleDeleteChallenge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := s.challenges.Get(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.challenges.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Transactions ───────────────────────────────────────────────────────────

type recordTransactionRequest struct {
	CategoryID string `json:"category_id"`
	Kind       string `json:"kind"`
	Amount     int64  `json:"amount"`
	Date       string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Memo       string `json:"memo,omitempty"`
}

// handleRecordTransaction records a transaction (expenses earn seeds).
// POST /api/transactions
func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx := domain.Transaction{
		CategoryID: req.CategoryID,
		Kind:       domain.TransactionKind(req.Kind),
		Amount:     req.Amount,
		Memo:       req.Memo,
	}
	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		tx.Date = date
	}

	recorded, err := s.ledger.Record(r.Context(), tx)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recorded)
}

// handleListTransactions returns transactions, optionally filtered.
// GET /api/transactions?category=food
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.ledger.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txs,
	})
}

// ─── Categories ─────────────────────────────────────────────────────────────

// handleListCategories returns all categories.
// GET /api/categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.categories.ListCategories(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": cats,
	})
}

// handleUpsertCategory creates or renames a category.
// PUT /api/categories
func (s *Server) handleUpsertCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if c.ID == "" || c.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name are required")
		return
	}
	if err := s.categories.Upsert(r.Context(), c); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
