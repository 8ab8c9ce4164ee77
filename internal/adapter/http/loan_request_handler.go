package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loan-request-service/internal/domain/request"
	uc "loan-request-service/internal/usecase/request"
	"loan-request-service/pkg/pagination"
)

type LoanRequestHandler struct{ uc *uc.Usecase }

func NewLoanRequestHandler(u *uc.Usecase) *LoanRequestHandler { return &LoanRequestHandler{uc: u} }

// Register mounts the loan request routes on g. submitMW wraps only the submission route.
func (h *LoanRequestHandler) Register(g *echo.Group, submitMW ...echo.MiddlewareFunc) {
	g.POST("/loan-requests", h.Submit, submitMW...)
	g.GET("/loan-requests/review", h.ListForReview)
	g.PUT("/loan-requests/:id/state", h.UpdateState)
	g.GET("/loan-requests/:id/reviews", h.History)
	g.POST("/capacity", h.EvaluateCapacity)
}

type submitReq struct {
	Email          string              `json:"email"`
	Identification string              `json:"identification" validate:"required,identification"`
	Amount         decimal.Decimal     `json:"amount"         validate:"dec2"`
	Term           int                 `json:"term"`
	LoanTypeID     uint64              `json:"loan_type_id"   validate:"required,gt=0"`
	Income         decimal.NullDecimal `json:"income"         validate:"omitempty,gte=0,dec2"`
}

func (r submitReq) toInput() uc.SubmitInput {
	return uc.SubmitInput{
		Email:          r.Email,
		Identification: r.Identification,
		Amount:         r.Amount,
		Term:           r.Term,
		LoanTypeID:     r.LoanTypeID,
		Income:         r.Income,
	}
}

type capacityReq struct {
	submitReq
	RequestID uint64 `json:"request_id"`
}

type updateStateReq struct {
	Identification string `json:"identification" validate:"required,identification"`
	State          string `json:"state"          validate:"required,target_state"`
}

type reviewPage struct {
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Items []uc.ReviewItemDTO `json:"items"`
}

func authHeader(c echo.Context) string { return c.Request().Header.Get(echo.HeaderAuthorization) }

// bindAndValidate writes the 400 itself; ok=false means the response is already sent.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *LoanRequestHandler) Submit(c echo.Context) error {
	var req submitReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), req.toInput(), authHeader(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanRequestHandler) ListForReview(c echo.Context) error {
	in := uc.ListInput{
		Filter:         c.QueryParam("filter"),
		Identification: c.QueryParam("identification"),
	}
	if err := echo.QueryParamsBinder(c).
		Int("page", &in.Page).
		Int("size", &in.Size).
		BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "page and size must be integers"})
	}
	if in.Identification == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "identification", Message: "is required"}},
		})
	}

	items, err := h.uc.ListForManualReview(c.Request().Context(), in, authHeader(c))
	if err != nil {
		return writeError(c, err)
	}
	// echo back the clamped paging the store actually used
	p := pagination.New(in.Page, in.Size)
	return c.JSON(http.StatusOK, reviewPage{Page: p.Page, Size: p.Size, Items: items})
}

func (h *LoanRequestHandler) UpdateState(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan request id"})
	}
	var req updateStateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateState(c.Request().Context(), uc.UpdateStateInput{
		RequestID:      id,
		State:          request.State(req.State),
		Identification: req.Identification,
	}, authHeader(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanRequestHandler) History(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan request id"})
	}
	trail, err := h.uc.History(c.Request().Context(), id, c.QueryParam("identification"), authHeader(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, trail)
}

func (h *LoanRequestHandler) EvaluateCapacity(c echo.Context) error {
	var req capacityReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.EvaluateCapacity(c.Request().Context(), uc.CapacityInput{
		SubmitInput: req.toInput(),
		RequestID:   req.RequestID,
	}, authHeader(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
