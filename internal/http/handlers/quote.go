package handlers

import (
	"net/http"

	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/service/pricing"
)

// QuoteHandler prices prospective deliveries without creating orders.
type QuoteHandler struct {
	usecase quoteUsecase
	logger  logx.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(logger logx.Logger, uc quoteUsecase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, logger: logger}
}

// Quote handles POST /quotes.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sc, ok := scope(h.logger, w, r)
	if !ok {
		return
	}
	var req quoteRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	q, err := h.usecase.Quote(r.Context(), sc.TenantID, pricing.Request{
		Origin:      req.Origin,
		Destination: req.Destination,
		Express:     req.Express,
		Heavy:       req.Heavy,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(q))
}
