package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit records interview feedback for a candidate. When the directory
// rejects the write the entry is kept for the session and durable is false.
//
// @Summary      Submit feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        role  path      string               true  "Route role"
// @Param        id    path      int                  true  "Candidate id"
// @Param        body  body      domain.FeedbackForm  true  "Feedback form"
// @Success      201   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /{role}/candidate/{id}/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrCandidateNotFound
	}

	var form domain.FeedbackForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	entry, err := h.service.Submit(c.Request().Context(), sess, id, form)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, feedbackResponse{Entry: *entry, Durable: !entry.Local})
}
