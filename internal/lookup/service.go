// Package lookup aggregates the per-provider reputation lookups for a
// phone number into one combined record.
package lookup

import (
	"context"

	directorytransport "whocallsme_backend/internal/directory/transport"
	"whocallsme_backend/internal/lookup/transport"
	reputationtransport "whocallsme_backend/internal/reputation/transport"
	"whocallsme_backend/platform/logger"
	"whocallsme_backend/platform/phone"

	"golang.org/x/sync/errgroup"
)

// DirectoryProvider is the region-specific directory lookup. It fails
// soft: a nil listing covers both "no data" and "unreachable".
type DirectoryProvider interface {
	Lookup(ctx context.Context, local string) *directorytransport.Listing
}

// ReputationProvider is the always-queried reputation lookup, also
// soft-failing.
type ReputationProvider interface {
	Lookup(ctx context.Context, full string) *reputationtransport.Result
}

// Service fans a normalized number out to the applicable providers and
// assembles the combined record.
type Service struct {
	directory  DirectoryProvider
	reputation ReputationProvider
	log        *logger.Logger
}

// NewService creates the aggregation service.
func NewService(directory DirectoryProvider, reputation ReputationProvider, log *logger.Logger) *Service {
	return &Service{
		directory:  directory,
		reputation: reputation,
		log:        log,
	}
}

// Lookup normalizes the raw input, queries the applicable providers
// concurrently, and assembles the combined record. It waits for every
// dispatched provider; completion order does not affect the result.
// Provider faults are contained at the task boundary, so the method
// itself never fails.
func (s *Service) Lookup(ctx context.Context, raw string) *transport.Result {
	num := phone.Normalize(raw)

	var (
		listing    *directorytransport.Listing
		reputation *reputationtransport.Result
	)

	// At most two tasks: one per applicable provider. Each writes only
	// its own slot; Wait orders those writes before assembly.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)

	g.Go(func() error {
		defer s.containFault("reputation")
		reputation = s.reputation.Lookup(gctx, num.Full)
		return nil
	})

	if num.RegionMatch {
		g.Go(func() error {
			defer s.containFault("directory")
			listing = s.directory.Lookup(gctx, num.Local)
			return nil
		})
	}

	_ = g.Wait()

	result := &transport.Result{
		DisplayNumber: phone.Display(num),
		FullNumber:    num.Full,
		Region:        phone.Region(num.Full),
		Directory:     listing,
		Reputation:    reputation,
	}

	if listing != nil {
		postID := listing.PostID
		result.PostID = &postID
	}

	return result
}

// containFault keeps a panicking provider task from sinking the whole
// aggregate; the slot it was filling simply stays nil.
func (s *Service) containFault(provider string) {
	if r := recover(); r != nil {
		s.log.Error("provider panic contained", "provider", provider, "panic", r)
	}
}
