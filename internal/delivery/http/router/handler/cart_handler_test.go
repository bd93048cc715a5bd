package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"perfumeria/internal/delivery/http/validator"
	"perfumeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCartUsecase overrides only the methods a test reaches; everything else
// panics through the embedded nil interface.
type stubCartUsecase struct {
	usecase.CartUsecase

	setQuantity func(ctx context.Context, cartID uuid.UUID, itemID string, qty int) (*usecase.CartView, error)
}

func (s *stubCartUsecase) SetQuantity(ctx context.Context, cartID uuid.UUID, itemID string, qty int) (*usecase.CartView, error) {
	return s.setQuantity(ctx, cartID, itemID, qty)
}

func newCartContext(t *testing.T, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := []string{"id"}
	values := []string{uuid.New().String()}
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

func TestCartHandler_AddItem_MissingProductFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(nil, slog.Default())
	c, rec := newCartContext(t, `{"qty":2}`)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCartHandler_SetQuantity_NegativeQtyFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(nil, slog.Default())
	c, rec := newCartContext(t, `{"qty":-1}`, "itemID", "1")

	require.NoError(t, h.SetQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCartHandler_SetQuantity_ZeroQtyReachesUsecase(t *testing.T) {
	t.Parallel()

	called := false
	uc := &stubCartUsecase{
		setQuantity: func(_ context.Context, _ uuid.UUID, itemID string, qty int) (*usecase.CartView, error) {
			called = true
			assert.Equal(t, "1", itemID)
			assert.Equal(t, 0, qty)

			return &usecase.CartView{}, nil
		},
	}

	h := NewCartHandler(uc, slog.Default())
	c, rec := newCartContext(t, `{"qty":0}`, "itemID", "1")

	require.NoError(t, h.SetQuantity(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Increment_NegativeStepFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewCartHandler(nil, slog.Default())
	c, rec := newCartContext(t, `{"step":-2}`, "itemID", "1")

	require.NoError(t, h.Increment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestOrderHandler_Preview_ShortNameFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(nil, slog.Default())
	c, rec := newCartContext(t, `{"name":"Al","email":"al@example.com"}`)

	require.NoError(t, h.Preview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestOrderHandler_QR_BadEmailFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(nil, slog.Default())
	c, rec := newCartContext(t, `{"name":"Maria Lopez","email":"not-an-email"}`)

	require.NoError(t, h.QR(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
