package impl

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"perfumeria/internal/domain/entity"
	domainerrors "perfumeria/internal/domain/errors"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/errors"
	"perfumeria/internal/pricing"
	"perfumeria/internal/usecase"

	"github.com/google/uuid"
)

const minCustomerNameLen = 3

type orderService struct {
	cartRepo repository.CartRepository
	catalog  usecase.CatalogUsecase
	qrcode   service.QRCodeService
}

// NewOrderService creates a new order service instance
func NewOrderService(cartRepo repository.CartRepository, catalog usecase.CatalogUsecase, qrcode service.QRCodeService) usecase.OrderUsecase {
	return &orderService{
		cartRepo: cartRepo,
		catalog:  catalog,
		qrcode:   qrcode,
	}
}

// Preview validates the customer, loads the cart and composes the WhatsApp
// order message and deep link.
func (s *orderService) Preview(ctx context.Context, cartID uuid.UUID, customer usecase.Customer) (*usecase.OrderPreview, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)

	if len([]rune(customer.Name)) < minCustomerNameLen {
		return nil, domainerrors.ErrCustomerNameInvalid
	}
	if _, err := mail.ParseAddress(customer.Email); err != nil {
		return nil, domainerrors.ErrCustomerEmailInvalid
	}

	cart, err := s.cartRepo.Load(ctx, cartID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartEmpty
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	site, err := s.catalog.Site(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch public site")
	}
	number := site.WhatsAppNumber()
	if number == "" {
		return nil, domainerrors.ErrNoWhatsAppNumber
	}

	message := buildWhatsAppMessage(customer, cart)

	return &usecase.OrderPreview{
		Recipient:   number,
		Message:     message,
		WhatsAppURL: "https://wa.me/" + number + "?text=" + url.QueryEscape(message),
		Totals:      cart.Totals(),
	}, nil
}

// QR renders the deep link of Preview as a PNG QR code.
func (s *orderService) QR(ctx context.Context, cartID uuid.UUID, customer usecase.Customer) ([]byte, error) {
	preview, err := s.Preview(ctx, cartID, customer)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateLinkQR(preview.WhatsAppURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// buildWhatsAppMessage composes the itemized order text opened in the chat.
// The wording is Spanish because that is the storefront's audience.
func buildWhatsAppMessage(customer usecase.Customer, cart *entity.Cart) string {
	totals := cart.Totals()

	lines := []string{
		"*Nuevo pedido*",
		"",
		fmt.Sprintf("Cliente: *%s*", customer.Name),
		fmt.Sprintf("Correo: %s", customer.Email),
		"",
		"*Productos*",
		"--------------------------------------------------",
	}

	for i := range cart.Items {
		it := &cart.Items[i]
		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = "Producto"
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}

		lines = append(lines,
			fmt.Sprintf("%d) %s", i+1, name),
			fmt.Sprintf("   • Cantidad: %d", qty),
			fmt.Sprintf("   • Precio: %s c/u", pricing.MoneyMXN(it.FinalPrice())),
			fmt.Sprintf("   • Importe: *%s*", pricing.MoneyMXN(it.LineTotal())),
			"",
		)
	}

	lines = append(lines,
		"--------------------------------------------------",
		fmt.Sprintf("Subtotal: %s", pricing.MoneyMXN(totals.Subtotal)),
		fmt.Sprintf("Descuento: -%s", pricing.MoneyMXN(totals.Savings)),
		fmt.Sprintf("*Total: %s*", pricing.MoneyMXN(totals.Total)),
		"",
		"¿Me confirmas disponibilidad y forma de pago?",
	)

	return strings.Join(lines, "\n")
}
