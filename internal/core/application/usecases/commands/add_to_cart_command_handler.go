package commands

import (
	"context"

	"caisse/internal/core/domain/model/product"
	"caisse/internal/pkg/errs"
)

// AddToCartCommandHandler handles the business logic for adding a product to
// the open cart. Resolves the product against the static catalog and mutates
// the session aggregate inside a transaction.
type AddToCartCommandHandler struct {
	uowFactory SessionUoWFactory
	catalog    product.Catalog
}

// NewAddToCartCommandHandler creates a handler for cart additions.
// Requires a SessionUoWFactory for transactional persistence and the product catalog.
func NewAddToCartCommandHandler(uowFactory SessionUoWFactory, catalog product.Catalog) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add-to-cart command.
// Returns errs.ObjectNotFoundError when the product id is not in the catalog.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, ok := h.catalog.Find(cmd.ProductID())
	if !ok {
		return errs.NewObjectNotFoundError("product", cmd.ProductID())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = session.AddToCart(p); err != nil {
		return err
	}

	if err = sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
