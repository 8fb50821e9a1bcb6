package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
	"github.com/interviewdesk/dashboard/internal/core/service"
)

type CandidateHandler struct {
	service ports.CandidateService
}

func NewCandidateHandler(service ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{service: service}
}

// List returns the candidate-management table.
//
// @Summary      List candidates
// @Tags         candidates
// @Produce      json
// @Param        role   path      string  true   "Route role (admin, ta_member, panelist)"
// @Param        q      query     string  false  "Name filter"
// @Param        sort   query     string  false  "id, name, status or role; prefix with - for descending"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Rows per page (max 100)"
// @Success      200    {object}  ports.TablePage
// @Failure      400    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Router       /{role}/candidate [get]
func (h *CandidateHandler) List(c echo.Context) error {
	q, err := bindTableQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	candidates, err := h.service.ListCandidates(c.Request().Context(), domain.RoleSetTrack)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service.ApplyTable(candidates, q))
}

// Detail returns one candidate with schedule and, when the caller may submit
// feedback, the feedback timeline.
//
// @Summary      Candidate detail
// @Tags         candidates
// @Produce      json
// @Param        role  path      string  true  "Route role"
// @Param        id    path      string  true  "Candidate id"
// @Success      200   {object}  candidateDetailResponse
// @Failure      404   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /{role}/candidate/{id} [get]
func (h *CandidateHandler) Detail(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetCandidateDetail(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, candidateDetailResponse{
		Candidate:         detail.User,
		Schedule:          detail.Schedule,
		CanSubmitFeedback: sess.Identity.Role.CanSubmitFeedback(),
		Feedback:          detail.Feedback,
	})
}

func bindTableQuery(c echo.Context) (ports.TableQuery, error) {
	var params tableQueryParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return ports.TableQuery{}, err
	}
	if err := c.Validate(&params); err != nil {
		return ports.TableQuery{}, err
	}
	return ports.TableQuery{
		Search: params.Search,
		Sort:   params.Sort,
		Page:   params.Page,
		Limit:  params.Limit,
	}, nil
}
