package usecase

import (
	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/domain/model"
)

// ValidateDraft guards the store against drafts that could not have come from a
// decoded request. Prices, quantities and totals are taken as submitted.
func ValidateDraft(draft model.OrderDraft) error {
	if draft.Items == nil {
		return domainErrors.NewValidationError(domainErrors.Violation{Field: "items", Message: "field required"})
	}
	return nil
}
