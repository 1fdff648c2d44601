package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/marketplace/invoicing/internal/db"
	"github.com/marketplace/invoicing/internal/types/business"
)

// DBListingSource reads listing snapshots from the listings table.
type DBListingSource struct {
	queries db.Querier
}

// NewDBListingSource creates a listing source backed by queries.
func NewDBListingSource(queries db.Querier) *DBListingSource {
	return &DBListingSource{queries: queries}
}

// GetListingSnapshot copies the listing's title and price as they are right now.
func (s *DBListingSource) GetListingSnapshot(ctx context.Context, listingID uuid.UUID) (*business.ListingSnapshot, error) {
	listing, err := s.queries.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: "listing", ID: listingID}
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &business.ListingSnapshot{
		ID:       listing.ID,
		OwnerID:  listing.UserID,
		Category: listing.Category,
		Title:    listing.Title,
		Price:    listing.Price,
	}, nil
}
