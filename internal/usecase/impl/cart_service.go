package impl

import (
	"context"
	"log/slog"
	"time"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/errors"
	"perfumeria/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	cartRepo  repository.CartRepository
	publisher service.CartEventPublisher
	logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(cartRepo repository.CartRepository, publisher service.CartEventPublisher, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo:  cartRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// Create allocates a new empty cart and persists it so the id is valid on
// any instance immediately.
func (s *cartService) Create(ctx context.Context) (*usecase.CartView, error) {
	cart := entity.NewCart(uuid.New())
	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	return view(cart), nil
}

// Get retrieves the cart; a cart that was never saved is empty.
func (s *cartService) Get(ctx context.Context, cartID uuid.UUID) (*usecase.CartView, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	return view(cart), nil
}

// AddItem merges qty units of the product into the cart. Products without a
// derivable identifier leave the cart untouched.
func (s *cartService) AddItem(ctx context.Context, cartID uuid.UUID, product *entity.Product, qty int) (*usecase.CartView, error) {
	if product.Key() == "" {
		s.logger.Debug("add ignored: product has no identifier", slog.String("cart_id", cartID.String()))

		return s.Get(ctx, cartID)
	}

	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.Add(product, qty)
	})
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (s *cartService) SetQuantity(ctx context.Context, cartID uuid.UUID, itemID string, qty int) (*usecase.CartView, error) {
	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.SetQty(itemID, qty)
	})
}

// Increment raises a line's quantity by step, clamped to stock.
func (s *cartService) Increment(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*usecase.CartView, error) {
	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.Inc(itemID, step)
	})
}

// Decrement lowers a line's quantity by step; reaching zero removes the line.
func (s *cartService) Decrement(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*usecase.CartView, error) {
	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.Dec(itemID, step)
	})
}

// RemoveItem deletes a line unconditionally.
func (s *cartService) RemoveItem(ctx context.Context, cartID uuid.UUID, itemID string) (*usecase.CartView, error) {
	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.Remove(itemID)
	})
}

// Clear empties the whole cart.
func (s *cartService) Clear(ctx context.Context, cartID uuid.UUID) (*usecase.CartView, error) {
	return s.mutate(ctx, cartID, func(cart *entity.Cart) {
		cart.Clear()
	})
}

// mutate is the shared load-modify-save path: every mutation writes the full
// item list back and broadcasts the change to other instances.
func (s *cartService) mutate(ctx context.Context, cartID uuid.UUID, apply func(*entity.Cart)) (*usecase.CartView, error) {
	cart, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	apply(cart)

	if err := s.persist(ctx, cart); err != nil {
		return nil, err
	}

	return view(cart), nil
}

func (s *cartService) load(ctx context.Context, cartID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewCart(cartID), nil
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (s *cartService) persist(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	change := &service.CartChange{
		CartID:    cart.ID.String(),
		Items:     cart.Items,
		WrittenAt: cart.UpdatedAt,
	}
	if err := s.publisher.PublishCartChange(ctx, change); err != nil {
		// The write already landed; a lost notification only delays other
		// instances until their next load.
		s.logger.Warn("failed to publish cart change",
			slog.String("cart_id", cart.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

func view(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		ID:     cart.ID,
		Items:  cart.Items,
		Totals: cart.Totals(),
	}
}
