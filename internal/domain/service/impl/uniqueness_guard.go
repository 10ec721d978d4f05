// Package impl implements the service contracts over the repository layer.
package impl

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealmart/mealmart-go/internal/domain/entity"
	"github.com/mealmart/mealmart-go/internal/domain/repository"
	"github.com/mealmart/mealmart-go/internal/domain/service"
	"github.com/mealmart/mealmart-go/internal/observability"
)

// uniquenessGuard implements service.UniquenessGuard over an account
// repository. The pre-check is advisory; the partial unique indexes remain
// the authority under concurrent claims.
type uniquenessGuard[T entity.Credentialed] struct {
	repo    repository.AccountRepository[T]
	fields  []service.UniqueField[T]
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewUniquenessGuard creates a guard over the given unique field set.
func NewUniquenessGuard[T entity.Credentialed](
	repo repository.AccountRepository[T],
	fields []service.UniqueField[T],
	metrics *observability.Metrics,
	logger *zap.Logger,
) service.UniquenessGuard[T] {
	return &uniquenessGuard[T]{
		repo:    repo,
		fields:  fields,
		metrics: metrics,
		logger:  logger,
	}
}

func (g *uniquenessGuard[T]) EnsureAvailable(ctx context.Context, acct T, excludeID string) error {
	var zero T
	for _, field := range g.fields {
		value := field.Value(acct)
		if value == "" {
			continue
		}

		// Existence comes first: a free slot must short-circuit before any
		// flag is read off the holder.
		existing, err := g.repo.GetConflicting(ctx, field.Name, value, excludeID)
		if err != nil {
			return err
		}
		if existing == zero {
			continue
		}

		if field.Verified(existing) {
			g.metrics.RegistrationConflicts.WithLabelValues(field.Name).Inc()
			return service.ErrIdentifierTaken.WithMessagef("%s is already taken", field.Name)
		}

		// The holder never proved the identifier is theirs. Reclaim the slot
		// for the new claimant.
		holderID := existing.GetAccount().ID
		if err := g.repo.Reclaim(ctx, holderID); err != nil {
			return err
		}
		g.metrics.UniquenessReclaims.WithLabelValues(field.Name).Inc()
		g.logger.Info("reclaimed unverified identifier",
			zap.String("field", field.Name),
			zap.String("holder_id", holderID))
	}
	return nil
}
