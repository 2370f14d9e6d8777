package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
	"github.com/Tahancr42/parastore-frontend/internal/notify"
)

// Confirmer asks the user for a yes/no answer before a destructive action.
// Modeled as a plain call returning a bool so it composes with the rest of
// the pipeline; the CLI reads stdin, tests stub it.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// OrderCreator turns the server-side cart into an order at checkout.
type OrderCreator interface {
	CreateOrderFromCart(ctx context.Context, userID string) (*domain.Order, error)
}

// Operations is the facade between the UI and the remote cart. Every
// operation checks its preconditions before touching the network, converts
// all failures into a notification plus a false return, and on success
// schedules exactly one full reload of the store. No operation patches the
// store's items directly.
type Operations struct {
	remote   RemoteCart
	orders   OrderCreator
	store    *Store
	identity IdentitySource
	notify   notify.Notifier
	confirm  Confirmer
	log      *slog.Logger
}

func NewOperations(remote RemoteCart, orders OrderCreator, store *Store, identity IdentitySource, notifier notify.Notifier, confirm Confirmer) *Operations {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Operations{
		remote:   remote,
		orders:   orders,
		store:    store,
		identity: identity,
		notify:   notifier,
		confirm:  confirm,
		log:      slog.Default(),
	}
}

// AddToCart adds quantity units of productID to the current user's cart.
func (o *Operations) AddToCart(ctx context.Context, productID int64, quantity int) bool {
	id := o.identity.Current()
	if id == nil {
		o.notify.Error("Veuillez vous connecter pour ajouter des produits au panier")
		return false
	}
	if quantity < 1 {
		o.notify.Error("Quantité invalide")
		return false
	}

	if _, err := o.remote.AddItem(ctx, id.UserID, productID, quantity); err != nil {
		o.log.Error("add to cart failed", "productId", productID, "error", err)
		o.notify.Error("Erreur lors de l'ajout au panier")
		return false
	}

	if quantity > 1 {
		o.notify.Success(fmt.Sprintf("%d produits ajoutés au panier !", quantity))
	} else {
		o.notify.Success("Produit ajouté au panier !")
	}
	o.store.Reload(ctx)
	return true
}

// UpdateQuantity sets the quantity of one line item. Quantities below 1 are
// rejected here: deleting a line goes through RemoveItem, never through this
// path, so callers cannot silently delete via an update.
func (o *Operations) UpdateQuantity(ctx context.Context, itemID int64, newQuantity int) bool {
	id := o.identity.Current()
	if id == nil {
		o.notify.Error("Utilisateur non connecté")
		return false
	}
	if newQuantity < 1 {
		o.notify.Error("Quantité invalide")
		return false
	}

	if _, err := o.remote.SetQuantity(ctx, itemID, id.UserID, newQuantity); err != nil {
		o.log.Error("update quantity failed", "itemId", itemID, "error", err)
		o.notify.Error("Erreur lors de la mise à jour de la quantité")
		return false
	}

	o.notify.Success("Quantité mise à jour")
	o.store.Reload(ctx)
	return true
}

// RemoveItem deletes one line item from the cart.
func (o *Operations) RemoveItem(ctx context.Context, itemID int64) bool {
	id := o.identity.Current()
	if id == nil {
		o.notify.Error("Utilisateur non connecté")
		return false
	}

	if err := o.remote.RemoveItem(ctx, itemID, id.UserID); err != nil {
		o.log.Error("remove item failed", "itemId", itemID, "error", err)
		o.notify.Error("Erreur lors de la suppression du produit")
		return false
	}

	o.notify.Success("Produit retiré du panier")
	o.store.Reload(ctx)
	return true
}

// ClearCart empties the cart. With confirm true the user is asked first and
// a cancel returns false without any network call or notification. With
// confirm false (the checkout path) it proceeds silently: checkout owns its
// own success messaging.
func (o *Operations) ClearCart(ctx context.Context, confirm bool) bool {
	id := o.identity.Current()
	if id == nil {
		o.notify.Error("Utilisateur non connecté")
		return false
	}
	if confirm && !o.confirm.Confirm("Êtes-vous sûr de vouloir vider le panier ?") {
		return false
	}

	if err := o.remote.Clear(ctx, id.UserID); err != nil {
		o.log.Error("clear cart failed", "error", err)
		o.notify.Error("Erreur lors du vidage du panier")
		return false
	}

	if confirm {
		o.notify.Success("Panier vidé")
	}
	o.store.Reload(ctx)
	return true
}

// Checkout creates an order from the current cart, then clears the cart
// without asking for confirmation. The cleared cart triggers the usual
// reload, so the store ends up empty through the same authoritative path.
func (o *Operations) Checkout(ctx context.Context) (*domain.Order, bool) {
	id := o.identity.Current()
	if id == nil {
		o.notify.Error("Utilisateur non connecté")
		return nil, false
	}
	if o.store.TotalItems() == 0 {
		o.notify.Error("Votre panier est vide")
		return nil, false
	}

	order, err := o.orders.CreateOrderFromCart(ctx, id.UserID)
	if err != nil {
		o.log.Error("checkout failed", "error", err)
		o.notify.Error("Erreur lors de la création de la commande")
		return nil, false
	}

	o.ClearCart(ctx, false)
	o.notify.Success(fmt.Sprintf("Commande n°%d créée avec succès !", order.ID))
	return order, true
}
