package dto

import (
	"fmt"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateDocument checks the enum-valued header fields of a replacement
// document before it is applied. Cost fields are deliberately not rejected
// here: the editing surface clamps them, and the valuation engine is total
// over whatever the document contains.
func ValidateDocument(request *domain.InboundRequest) error {
	checks := []struct {
		field string
		value string
		rule  string
	}{
		{"status", string(request.Status), "required,oneof=REQUEST QUOTED SUPPLIER_CONFIRMED CONFIRMED INVOICE PROCESSING COMPLETED"},
		{"customerType", string(request.CustomerType), "omitempty,oneof=AGENCY GROUP COMPANY CORPORATE"},
		{"pricingMode", string(request.PricingMode), "omitempty,oneof=ITEMIZED LUMPSUM"},
	}
	for _, check := range checks {
		if err := validate.Var(check.value, check.rule); err != nil {
			return fmt.Errorf("%w: invalid %s %q", apperrors.ErrValidation, check.field, check.value)
		}
	}

	if err := validate.Var(request.PaxCount, "gte=0"); err != nil {
		return fmt.Errorf("%w: paxCount must be non-negative", apperrors.ErrValidation)
	}

	for _, row := range request.Itinerary {
		if err := validate.Var(string(row.CostUnit), "required,oneof=PER_PERSON PER_GROUP"); err != nil {
			return fmt.Errorf("%w: invalid costUnit %q on itinerary day %d", apperrors.ErrValidation, row.CostUnit, row.Day)
		}
	}

	return nil
}
