package http

import (
	"net/http"
	"time"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/application/usecases/queries"
	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	TableID  string `json:"table_id"`
	WaiterID string `json:"waiter_id"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid table_id"})
	}
	waiterID, err := kernel.UUIDFromString(req.WaiterID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid waiter_id"})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, tableID, waiterID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// OpenOrder handles POST /api/v1/orders/:orderID/open. Adding the first item
// opens an order implicitly; this route opens one without items.
func (s *Server) OpenOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewOpenOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.OpenOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type addOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// AddOrderItem handles POST /api/v1/orders/:orderID/items.
func (s *Server) AddOrderItem(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	var req addOrderItemRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid menu_item_id"})
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(orderID, itemID, menuItemID, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.AddOrderItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: itemID.String()})
}

type changeItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ChangeItemQuantity handles PATCH /api/v1/orders/:orderID/items/:itemID.
func (s *Server) ChangeItemQuantity(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}
	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return s.writeError(c, err)
	}

	var req changeItemQuantityRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewChangeItemQuantityCommand(orderID, itemID, req.Quantity)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.ChangeItemQuantity.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderID/items/:itemID.
func (s *Server) RemoveOrderItem(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}
	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.RemoveOrderItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type recordPaymentRequest struct {
	Tender      string `json:"tender"`
	AmountMinor int64  `json:"amount_minor"`
}

// RecordPayment handles POST /api/v1/orders/:orderID/payments.
func (s *Server) RecordPayment(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	var req recordPaymentRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	tender, err := payment.TenderFromString(req.Tender)
	if err != nil {
		return s.writeError(c, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, orderID, tender, kernel.NewMoney(req.AmountMinor))
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deps.RecordPayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: paymentID.String()})
}

type finalizeOrderResponse struct {
	ChangeMinor int64  `json:"change_minor"`
	Receipt     string `json:"receipt"`
	Printed     bool   `json:"printed"`
}

// FinalizeOrder handles POST /api/v1/orders/:orderID/finalize.
func (s *Server) FinalizeOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewFinalizeOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.deps.FinalizeOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, finalizeOrderResponse{
		ChangeMinor: result.ChangeMinor,
		Receipt:     result.Receipt,
		Printed:     result.Printed,
	})
}

// GetReceipt handles GET /api/v1/orders/:orderID/receipt.
func (s *Server) GetReceipt(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetReceiptQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	receipt, err := s.deps.GetReceipt.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.String(http.StatusOK, receipt)
}

type orderItemResponse struct {
	ID             string `json:"id"`
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
	LineTotalMinor int64  `json:"line_total_minor"`
}

type orderPaymentResponse struct {
	ID          string    `json:"id"`
	Tender      string    `json:"tender"`
	AmountMinor int64     `json:"amount_minor"`
	PaidAt      time.Time `json:"paid_at"`
}

type orderResponse struct {
	ID             string                 `json:"id"`
	TableNumber    int                    `json:"table_number"`
	WaiterName     string                 `json:"waiter_name"`
	Status         string                 `json:"status"`
	Items          []orderItemResponse    `json:"items"`
	Payments       []orderPaymentResponse `json:"payments"`
	SubtotalMinor  int64                  `json:"subtotal_minor"`
	TaxMinor       int64                  `json:"tax_minor"`
	TotalMinor     int64                  `json:"total_minor"`
	PaidMinor      int64                  `json:"paid_minor"`
	RemainingMinor int64                  `json:"remaining_minor"`
	CreatedAt      time.Time              `json:"created_at"`
	FinalizedAt    *time.Time             `json:"finalized_at,omitempty"`
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	return s.readQuery(c, func() error {
		result, handleErr := s.deps.GetOrder.Handle(c.Request().Context(), query)
		if handleErr != nil {
			return s.writeError(c, handleErr)
		}
		return c.JSON(http.StatusOK, toOrderResponse(result))
	})
}

func toOrderResponse(result queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderItemResponse{
			ID:             item.ID.String(),
			MenuItemID:     item.MenuItemID.String(),
			Name:           item.Name,
			UnitPriceMinor: item.UnitPriceMinor,
			Quantity:       item.Quantity,
			LineTotalMinor: item.LineTotalMinor,
		}
	}

	payments := make([]orderPaymentResponse, len(result.Payments))
	for i, p := range result.Payments {
		payments[i] = orderPaymentResponse{
			ID:          p.ID.String(),
			Tender:      p.Tender,
			AmountMinor: p.AmountMinor,
			PaidAt:      p.PaidAt,
		}
	}

	return orderResponse{
		ID:             result.ID.String(),
		TableNumber:    result.TableNumber,
		WaiterName:     result.WaiterName,
		Status:         result.Status,
		Items:          items,
		Payments:       payments,
		SubtotalMinor:  result.SubtotalMinor,
		TaxMinor:       result.TaxMinor,
		TotalMinor:     result.TotalMinor,
		PaidMinor:      result.PaidMinor,
		RemainingMinor: result.RemainingMinor,
		CreatedAt:      result.CreatedAt,
		FinalizedAt:    result.FinalizedAt,
	}
}

type activeOrderResponse struct {
	ID          string    `json:"id"`
	TableNumber int       `json:"table_number"`
	WaiterName  string    `json:"waiter_name"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	TotalMinor  int64     `json:"total_minor"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	return s.readQuery(c, func() error {
		results, err := s.deps.GetActiveOrders.Handle(c.Request().Context(), query)
		if err != nil {
			return s.writeError(c, err)
		}

		response := make([]activeOrderResponse, len(results))
		for i, result := range results {
			response[i] = activeOrderResponse{
				ID:          result.ID.String(),
				TableNumber: result.TableNumber,
				WaiterName:  result.WaiterName,
				Status:      result.Status,
				ItemCount:   result.ItemCount,
				TotalMinor:  result.TotalMinor,
				CreatedAt:   result.CreatedAt,
			}
		}
		return c.JSON(http.StatusOK, response)
	})
}

type menuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceMinor int64  `json:"price_minor"`
	Available  bool   `json:"available"`
}

// GetMenu handles GET /api/v1/menu. Unavailable items are included only when
// the include_unavailable query flag is set.
func (s *Server) GetMenu(c echo.Context) error {
	includeUnavailable := c.QueryParam("include_unavailable") == "true"
	query := queries.NewGetMenuQuery(includeUnavailable)

	return s.readQuery(c, func() error {
		results, err := s.deps.GetMenu.Handle(c.Request().Context(), query)
		if err != nil {
			return s.writeError(c, err)
		}

		response := make([]menuItemResponse, len(results))
		for i, result := range results {
			response[i] = menuItemResponse{
				ID:         result.ID.String(),
				Name:       result.Name,
				Category:   result.Category,
				PriceMinor: result.PriceMinor,
				Available:  result.Available,
			}
		}
		return c.JSON(http.StatusOK, response)
	})
}

type clearOrderHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

// ClearOrderHistory handles DELETE /api/v1/orders/history. Only admins may
// purge closed orders.
func (s *Server) ClearOrderHistory(c echo.Context) error {
	if !currentSession(c).IsAdmin() {
		return s.writeError(c, adminRequired())
	}

	cmd := commands.NewClearOrderHistoryCommand()

	deleted, err := s.deps.ClearOrderHistory.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, clearOrderHistoryResponse{Deleted: deleted})
}
