package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/orders のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderItemRequest struct {
	MenuItemID int64       `json:"menuItemId"`
	Quantity   int64       `json:"quantity"`
	Price      model.Price `json:"price"`
}

type OrderCreateRequest struct {
	TableNumber  string             `json:"tableNumber"`
	CustomerName string             `json:"customerName"`
	Status       string             `json:"status"` // 受け取るが採用しない（サーバー側で初期化）
	Type         string             `json:"type"`
	Items        []OrderItemRequest `json:"items"`
}

type OrderCreateResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type OrderAdvanceResponse struct {
	Message string            `json:"message"`
	Status  model.OrderStatus `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/orders")

	g.POST("", h.create)
	g.GET("", h.list)
	g.POST("/:id/advance", h.advance)
	g.DELETE("/:id", h.delete)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.SubmitOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.SubmitOrderItemInput{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      it.Price,
		})
	}

	out, err := h.uc.Submit(c.Request().Context(), usecase.SubmitOrderInput{
		TableNumber:  req.TableNumber,
		CustomerName: req.CustomerName,
		Type:         req.Type,
		Items:        items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, OrderCreateResponse{
		Message: "Order submitted successfully",
		OrderID: out.OrderID,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) advance(c echo.Context) error {
	out, err := h.uc.Advance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, OrderAdvanceResponse{
		Message: "Order status updated successfully",
		Status:  out.Status,
	})
}

func (h *OrderHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "Order deleted successfully"})
}
