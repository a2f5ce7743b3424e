package queries

import (
	"context"

	"opspro/internal/core/domain/services"
	"opspro/internal/core/ports"
)

// GetAvailablePartnersQueryHandler lists partners assignable to a new order.
// Unlike the other read handlers it goes through the repositories and the
// AvailabilityTracker so the answer always matches what the assignment
// command would decide. The dropdown and the assignment check must never
// disagree about who is assignable.
type GetAvailablePartnersQueryHandler struct {
	partnerRepo ports.PartnerRepository
	orderRepo   ports.OrderRepository
	tracker     services.AvailabilityTracker
}

// NewGetAvailablePartnersQueryHandler creates a handler for assignable-partner queries.
func NewGetAvailablePartnersQueryHandler(
	partnerRepo ports.PartnerRepository,
	orderRepo ports.OrderRepository,
) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{
		partnerRepo: partnerRepo,
		orderRepo:   orderRepo,
		tracker:     services.NewAvailabilityTracker(),
	}
}

// Handle derives the assignable subset of the roster.
func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]PartnerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners, err := h.partnerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	activeOrders, err := h.orderRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	assignable, err := h.tracker.Assignable(partners, activeOrders)
	if err != nil {
		return nil, err
	}

	responses := make([]PartnerResponse, 0, len(assignable))
	for _, p := range assignable {
		responses = append(responses, PartnerResponse{
			ID:          p.ID().Int64(),
			Username:    p.Username(),
			Name:        p.Name(),
			PhoneNumber: p.PhoneNumber(),
			IsAvailable: p.IsAvailable(),
			ETA:         p.ETA(),
			UpdatedAt:   p.UpdatedAt(),
		})
	}

	return responses, nil
}
