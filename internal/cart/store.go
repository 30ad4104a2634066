package cart

import (
	"context"
	"sync"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/log"
	"github.com/basketeer/basketeer/internal/session"
)

// Store owns the cart. It exists only while the session is authenticated:
// the store loads the cart on the authenticated transition and drops it on
// the anonymous one. Every mutation replaces local state with the backend's
// authoritative post-mutation snapshot; no client-side math survives the
// round trip.
//
// Mutations are independent calls. Two racing mutations are not serialized;
// the last response to resolve wins.
type Store struct {
	client  *api.Client
	session *session.Store
	logger  *log.Logger

	mu   sync.Mutex
	cart *api.Cart // nil means absent
}

// NewStore creates a cart store bound to the given session. It subscribes
// to session transitions to keep the "cart exists iff authenticated"
// invariant.
func NewStore(client *api.Client, sess *session.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	s := &Store{
		client:  client,
		session: sess,
		logger:  logger,
	}

	sess.Subscribe(func(state session.State) {
		switch state {
		case session.StateAuthenticated:
			if err := s.Load(context.Background()); err != nil {
				s.logger.WithError(err).Warn("initial cart load failed")
			}
		case session.StateAnonymous:
			s.drop()
		}
	})

	return s
}

// Load fetches the cart and replaces local state wholesale
func (s *Store) Load(ctx context.Context) error {
	if err := s.requireAuth(); err != nil {
		return err
	}

	cart, err := s.client.Cart(ctx)
	if err != nil {
		return err
	}

	s.replace(cart)
	return nil
}

// AddItem adds a product to the cart. The server decides the merge policy
// when the product is already present; on failure local state is untouched.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if quantity < 1 {
		return errors.New(errors.ErrCodeCartQuantity, "quantity must be at least 1")
	}

	cart, err := s.client.AddToCart(ctx, productID, quantity)
	if err != nil {
		return err
	}

	s.replace(cart)
	return nil
}

// UpdateItemQuantity sets a line's quantity. Zero or negative quantities
// are rejected before any network call; removal is RemoveItem, not a zero
// quantity.
func (s *Store) UpdateItemQuantity(ctx context.Context, productID string, quantity int) error {
	if err := s.requireAuth(); err != nil {
		return err
	}
	if quantity < 1 {
		return errors.New(errors.ErrCodeCartQuantity, "quantity must be at least 1")
	}

	cart, err := s.client.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return err
	}

	s.replace(cart)
	return nil
}

// RemoveItem deletes a line, then re-synchronizes with an explicit full
// reload. Promotional recalculation can change lines the client never sees,
// so removal never trusts local bookkeeping.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	if err := s.requireAuth(); err != nil {
		return err
	}

	if err := s.client.RemoveCartItem(ctx, productID); err != nil {
		return err
	}

	return s.Load(ctx)
}

// Clear empties the cart. On success the cart becomes absent.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.requireAuth(); err != nil {
		return err
	}

	if err := s.client.ClearCart(ctx); err != nil {
		return err
	}

	s.drop()
	return nil
}

// Loaded reports whether a cart is present
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart != nil
}

// Items returns a copy of the cart lines, empty when the cart is absent
func (s *Store) Items() []api.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	return append([]api.CartItem(nil), s.cart.Items...)
}

// ItemCount is the sum of line quantities; 0 when the cart is absent
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	count := 0
	for _, item := range s.cart.Items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of quantity times unit price; 0 when the cart is absent
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	total := 0.0
	for _, item := range s.cart.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

func (s *Store) requireAuth() error {
	if s.session.IsAuthenticated() {
		return nil
	}
	return errors.New(errors.ErrCodeSessionAnonymous, "not logged in")
}

func (s *Store) replace(cart *api.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

func (s *Store) drop() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}
