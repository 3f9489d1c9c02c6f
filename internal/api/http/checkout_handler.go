package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/printer"
	"tool-rental-backend/internal/service"
	"tool-rental-backend/internal/utils"
)

// maxRentalDays bounds rental_days at the HTTP edge; keep it equal to the max
// tag on checkoutRequest.RentalDays. Charge days are counted one calendar
// date at a time.
const maxRentalDays = 36500

var errInvalidRequest = errors.New("invalid request")

// CheckoutHandler serves the tool catalog and checkout over HTTP
type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
	toolSvc     service.ToolService
	validate    *validator.Validate
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutSvc service.CheckoutService, toolSvc service.ToolService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc: checkoutSvc,
		toolSvc:     toolSvc,
		validate:    newValidator(),
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkoutRequest is the transport shape of a checkout. Range rules on days
// and discount belong to the checkout service; only the shape and the
// rental_days ceiling are checked here.
type checkoutRequest struct {
	ToolCode        string `json:"tool_code" validate:"max=64"`
	RentalDays      *int   `json:"rental_days" validate:"required,max=36500"`
	DiscountPercent int    `json:"discount_percent"`
	CheckoutDate    string `json:"checkout_date" validate:"required,datetime=2006-01-02|datetime=01/02/06"`
}

type toolResponse struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	DailyCharge   string `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

type agreementResponse struct {
	ID                string `json:"id"`
	ToolCode          string `json:"tool_code"`
	ToolType          string `json:"tool_type"`
	ToolBrand         string `json:"tool_brand"`
	RentalDays        int    `json:"rental_days"`
	CheckoutDate      string `json:"checkout_date"`
	DueDate           string `json:"due_date"`
	ChargeDays        int    `json:"charge_days"`
	DailyRentalCharge string `json:"daily_rental_charge"`
	PreDiscountCharge string `json:"pre_discount_charge"`
	DiscountPercent   int    `json:"discount_percent"`
	DiscountAmount    string `json:"discount_amount"`
	FinalCharge       string `json:"final_charge"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleListTools handles GET /api/v1/tools
func (h *CheckoutHandler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	tools := h.toolSvc.ListTools(r.Context())
	resp := make([]toolResponse, 0, len(tools))
	for _, t := range tools {
		resp = append(resp, mapTool(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGetTool handles GET /api/v1/tools/{code}
func (h *CheckoutHandler) HandleGetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.toolSvc.GetTool(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToolCode) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		logger.Error("Failed to get tool", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, mapTool(*tool))
}

// HandleCheckout handles POST /api/v1/checkout
func (h *CheckoutHandler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	rentalReq, err := h.toRentalRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	agreement, err := h.checkoutSvc.Checkout(r.Context(), rentalReq)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapAgreement(agreement))
}

// HandlePrintCheckout handles GET /api/v1/checkout/print and returns the
// agreement as text
func (h *CheckoutHandler) HandlePrintCheckout(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := checkoutRequest{ToolCode: q.Get("tool"), CheckoutDate: q.Get("date")}

	if raw := q.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: days must be an integer", errInvalidRequest))
			return
		}
		req.RentalDays = &days
	}
	if raw := q.Get("discount"); raw != "" {
		discount, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("%w: discount must be an integer", errInvalidRequest))
			return
		}
		req.DiscountPercent = discount
	}

	rentalReq, err := h.toRentalRequest(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	agreement, err := h.checkoutSvc.Checkout(r.Context(), rentalReq)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := printer.WriteAgreement(w, agreement); err != nil {
		logger.Error("Failed to write agreement", "error", err, "agreement_id", agreement.ID)
	}
}

// HandleHealth handles GET /healthz
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterCheckoutRoutes registers the catalog and checkout endpoints. A nil
// metricsHandler leaves /metrics unregistered.
func RegisterCheckoutRoutes(router *mux.Router, h *CheckoutHandler, metricsHandler http.Handler) {
	router.HandleFunc("/healthz", HandleHealth).Methods("GET")
	router.HandleFunc("/api/v1/tools", h.HandleListTools).Methods("GET")
	router.HandleFunc("/api/v1/tools/{code}", h.HandleGetTool).Methods("GET")
	router.HandleFunc("/api/v1/checkout", h.HandleCheckout).Methods("POST")
	router.HandleFunc("/api/v1/checkout/print", h.HandlePrintCheckout).Methods("GET")
	if metricsHandler != nil {
		router.Handle("/metrics", metricsHandler).Methods("GET")
	}
}

// toRentalRequest checks the request shape and converts it for the checkout
// service.
func (h *CheckoutHandler) toRentalRequest(req checkoutRequest) (domain.RentalRequest, error) {
	if err := h.validate.Struct(req); err != nil {
		return domain.RentalRequest{}, describeValidation(err)
	}
	checkoutDate, err := utils.ParseDate(req.CheckoutDate)
	if err != nil {
		return domain.RentalRequest{}, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	return domain.RentalRequest{
		ToolCode:        req.ToolCode,
		RentalDays:      *req.RentalDays,
		DiscountPercent: req.DiscountPercent,
		CheckoutDate:    checkoutDate,
	}, nil
}

// describeValidation turns the first validator failure into a client message.
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", errInvalidRequest, err)
	}
	fe := fieldErrs[0]
	switch {
	case fe.Tag() == "required":
		return fmt.Errorf("%w: %s is required", errInvalidRequest, fe.Field())
	case fe.Tag() == "max":
		return fmt.Errorf("%w: %s must be at most %s", errInvalidRequest, fe.Field(), fe.Param())
	case strings.HasPrefix(fe.Tag(), "datetime"):
		return fmt.Errorf("%w: %s must be YYYY-MM-DD or MM/DD/YY", errInvalidRequest, fe.Field())
	}
	return fmt.Errorf("%w: %s is invalid", errInvalidRequest, fe.Field())
}

func mapTool(t domain.Tool) toolResponse {
	return toolResponse{
		Code:          t.Code,
		Type:          t.Type,
		Brand:         t.Brand,
		DailyCharge:   t.DailyCharge.StringFixed(2),
		WeekdayCharge: t.WeekdayCharge,
		WeekendCharge: t.WeekendCharge,
		HolidayCharge: t.HolidayCharge,
	}
}

func mapAgreement(a *domain.RentalAgreement) agreementResponse {
	return agreementResponse{
		ID:                a.ID,
		ToolCode:          a.ToolCode,
		ToolType:          a.ToolType,
		ToolBrand:         a.ToolBrand,
		RentalDays:        a.RentalDays,
		CheckoutDate:      a.CheckoutDate.Format(time.DateOnly),
		DueDate:           a.DueDate.Format(time.DateOnly),
		ChargeDays:        a.ChargeDays,
		DailyRentalCharge: a.DailyRentalCharge.StringFixed(2),
		PreDiscountCharge: a.PreDiscountCharge.StringFixed(2),
		DiscountPercent:   a.DiscountPercent,
		DiscountAmount:    a.DiscountAmount.StringFixed(2),
		FinalCharge:       a.FinalCharge.StringFixed(2),
	}
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	if domain.IsValidationError(err) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Error("Checkout failed", "error", err)
	writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: errorCode(err)})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidToolCode):
		return "INVALID_TOOL_CODE"
	case errors.Is(err, domain.ErrInvalidRentalDays):
		return "INVALID_RENTAL_DAYS"
	case errors.Is(err, domain.ErrInvalidDiscountPercent):
		return "INVALID_DISCOUNT_PERCENT"
	case errors.Is(err, domain.ErrInvalidDateRange):
		return "INVALID_DATE_RANGE"
	case errors.Is(err, errInvalidRequest):
		return "INVALID_REQUEST"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}
