package handler

import (
	"github.com/interviewdesk/dashboard/internal/core/domain"
	"github.com/interviewdesk/dashboard/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin ta_member panelist"`
}

type roleOption struct {
	Value domain.Role `json:"value"`
	Label string      `json:"label"`
}

type loginDefaults struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

type loginViewResponse struct {
	Roles    []roleOption   `json:"roles"`
	Defaults loginDefaults  `json:"defaults"`
	Notice   *domain.Notice `json:"notice,omitempty"`
}

type identityResponse struct {
	Username          string               `json:"username"`
	Role              domain.Role          `json:"role"`
	Label             string               `json:"label"`
	CanSubmitFeedback bool                 `json:"canSubmitFeedback"`
	CanManageRoles    bool                 `json:"canManageRoles"`
	Menu              []domain.MenuSection `json:"menu"`
}

type loginResponse struct {
	Token    string           `json:"token"`
	Identity identityResponse `json:"identity"`
	Notice   domain.Notice    `json:"notice"`
	Redirect string           `json:"redirect"`
}

type tableQueryParams struct {
	Search string `query:"q"`
	Sort   string `query:"sort"  validate:"omitempty,oneof=id -id name -name status -status role -role"`
	Page   int    `query:"page"  validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1"`
}

type candidateDetailResponse struct {
	Candidate         domain.User            `json:"candidate"`
	Schedule          []domain.ScheduleItem  `json:"schedule"`
	CanSubmitFeedback bool                   `json:"canSubmitFeedback"`
	Feedback          []domain.FeedbackEntry `json:"feedback"`
}

type feedbackResponse struct {
	Entry   domain.FeedbackEntry `json:"entry"`
	Durable bool                 `json:"durable"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type noticeResponse struct {
	Notice domain.Notice `json:"notice"`
}

type roleTableResponse struct {
	Roles []roleOption    `json:"roles"`
	Table ports.TablePage `json:"table"`
}

func newIdentityResponse(id domain.Identity) identityResponse {
	return identityResponse{
		Username:          id.Username,
		Role:              id.Role,
		Label:             id.Role.Label(),
		CanSubmitFeedback: id.Role.CanSubmitFeedback(),
		CanManageRoles:    id.Role.CanManageRoles(),
		Menu:              id.Role.Menu(),
	}
}

func roleOptions() []roleOption {
	roles := domain.Roles()
	out := make([]roleOption, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleOption{Value: r, Label: r.Label()})
	}
	return out
}
