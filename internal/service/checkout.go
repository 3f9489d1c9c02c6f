package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/pricing"
	"tool-rental-backend/internal/repository"
)

const (
	OutcomeSuccess                = "success"
	OutcomeInvalidToolCode        = "invalid_tool_code"
	OutcomeInvalidRentalDays      = "invalid_rental_days"
	OutcomeInvalidDiscountPercent = "invalid_discount_percent"
	OutcomeError                  = "error"
)

type checkoutService struct {
	catalog  repository.ToolCatalog
	calc     *pricing.Calculator
	recorder CheckoutRecorder
	newID    func() string
}

// NewCheckoutService returns the checkout pipeline over catalog. recorder may
// be nil.
func NewCheckoutService(catalog repository.ToolCatalog, calc *pricing.Calculator, recorder CheckoutRecorder) CheckoutService {
	return &checkoutService{
		catalog:  catalog,
		calc:     calc,
		recorder: recorder,
		newID:    uuid.NewString,
	}
}

// Checkout validates req and builds its rental agreement. Validation stops at
// the first failure, checked in this order: tool code, rental days, discount
// percent.
func (s *checkoutService) Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error) {
	logger.EnterMethod("checkoutService.Checkout",
		"tool_code", req.ToolCode,
		"rental_days", req.RentalDays,
		"discount_percent", req.DiscountPercent,
		"checkout_date", req.CheckoutDate.Format("2006-01-02"),
	)

	agreement, err := s.checkout(req)
	if err != nil {
		s.observe(req.ToolCode, outcomeOf(err))
		logger.ExitMethodWithError("checkoutService.Checkout", err, domain.IsValidationError(err), "tool_code", req.ToolCode)
		return nil, err
	}

	s.observe(req.ToolCode, OutcomeSuccess)
	logger.InfoContext(ctx, "Rental agreement created",
		"agreement_id", agreement.ID,
		"tool_code", agreement.ToolCode,
		"charge_days", agreement.ChargeDays,
		"final_charge", agreement.FinalCharge.StringFixed(2),
	)
	logger.ExitMethod("checkoutService.Checkout", "agreement_id", agreement.ID)
	return agreement, nil
}

func (s *checkoutService) checkout(req domain.RentalRequest) (*domain.RentalAgreement, error) {
	tool, ok := s.catalog.Lookup(req.ToolCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToolCode, req.ToolCode)
	}
	if req.RentalDays < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidRentalDays, req.RentalDays)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidDiscountPercent, req.DiscountPercent)
	}

	checkoutDate := pricing.DateOnly(req.CheckoutDate)
	chargeDays, err := s.calc.ChargeDays(tool, req.RentalDays, checkoutDate)
	if err != nil {
		return nil, err
	}

	preDiscount := pricing.PreDiscountCharge(tool.DailyCharge, chargeDays)
	discount := pricing.DiscountAmount(preDiscount, req.DiscountPercent)

	return &domain.RentalAgreement{
		ID:                s.newID(),
		ToolCode:          tool.Code,
		ToolType:          tool.Type,
		ToolBrand:         tool.Brand,
		RentalDays:        req.RentalDays,
		CheckoutDate:      checkoutDate,
		DueDate:           pricing.DueDate(checkoutDate, req.RentalDays),
		ChargeDays:        chargeDays,
		DailyRentalCharge: tool.DailyCharge,
		PreDiscountCharge: preDiscount,
		DiscountPercent:   req.DiscountPercent,
		DiscountAmount:    discount,
		FinalCharge:       pricing.FinalCharge(preDiscount, discount),
	}, nil
}

func (s *checkoutService) observe(toolCode, outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveCheckout(toolCode, outcome)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidToolCode):
		return OutcomeInvalidToolCode
	case errors.Is(err, domain.ErrInvalidRentalDays):
		return OutcomeInvalidRentalDays
	case errors.Is(err, domain.ErrInvalidDiscountPercent):
		return OutcomeInvalidDiscountPercent
	}
	return OutcomeError
}
