package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service.
// Authentication itself happens upstream; these carry the verified result.
const (
	headerUserID     = "X-User-Id"
	headerUserRole   = "X-User-Role"
	headerUserStatus = "X-User-Status"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler       commands.AddCartItemCommandHandler
	updateCartItemHandler    commands.UpdateCartItemCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	transitionOrderHandler   commands.TransitionOrderCommandHandler
	assignRiderHandler       commands.AssignRiderCommandHandler
	updateDeliveryHandler    commands.UpdateDeliveryCommandHandler
	createReviewHandler      commands.CreateReviewCommandHandler
	rateRiderHandler         commands.RateRiderCommandHandler
	reviewApplicationHandler commands.ReviewSellerApplicationCommandHandler

	// Query handlers
	getCartHandler          queries.GetCartQueryHandler
	getSellerOrdersHandler  queries.GetSellerOrdersQueryHandler
	getRiderEarningsHandler queries.GetRiderEarningsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	createReviewHandler commands.CreateReviewCommandHandler,
	rateRiderHandler commands.RateRiderCommandHandler,
	reviewApplicationHandler commands.ReviewSellerApplicationCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getSellerOrdersHandler queries.GetSellerOrdersQueryHandler,
	getRiderEarningsHandler queries.GetRiderEarningsQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:       addCartItemHandler,
		updateCartItemHandler:    updateCartItemHandler,
		checkoutHandler:          checkoutHandler,
		transitionOrderHandler:   transitionOrderHandler,
		assignRiderHandler:       assignRiderHandler,
		updateDeliveryHandler:    updateDeliveryHandler,
		createReviewHandler:      createReviewHandler,
		rateRiderHandler:         rateRiderHandler,
		reviewApplicationHandler: reviewApplicationHandler,
		getCartHandler:           getCartHandler,
		getSellerOrdersHandler:   getSellerOrdersHandler,
		getRiderEarningsHandler:  getRiderEarningsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/cart", s.GetCart)
	v1.POST("/cart/items", s.AddCartItem)
	v1.PATCH("/cart/items/:productId", s.UpdateCartItem)
	v1.POST("/checkout", s.Checkout)
	v1.POST("/orders/:orderId/status", s.TransitionOrder)
	v1.POST("/orders/:orderId/rider", s.AssignRider)
	v1.POST("/orders/:orderId/rider-rating", s.RateRider)
	v1.POST("/deliveries/:deliveryId/status", s.UpdateDelivery)
	v1.POST("/reviews", s.CreateReview)
	v1.GET("/riders/:riderId/earnings", s.GetRiderEarnings)
	v1.GET("/sellers/:sellerId/orders", s.GetSellerOrders)
	v1.POST("/seller-applications/:applicationId/review", s.ReviewSellerApplication)
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// domainError maps application and domain errors to HTTP statuses. Conflict
// covers every recoverable business rule violation; the message carries the
// entity identifiers baked into the typed errors.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrUnauthorized):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrProductUnavailable),
		errors.Is(err, product.ErrUnknownReservation),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, delivery.ErrRiderUnavailable),
		errors.Is(err, delivery.ErrAlreadyAssigned),
		errors.Is(err, delivery.ErrEarningAlreadyRecorded),
		errors.Is(err, review.ErrDuplicateReview),
		errors.Is(err, review.ErrOrderNotDelivered),
		errors.Is(err, seller.ErrApplicationAlreadySettled),
		errors.Is(err, commands.ErrRiderAlreadyRated),
		errors.Is(err, commands.ErrCartIsEmpty):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "internal error")
	}
}

// actorFromHeaders builds the acting user from the gateway identity headers.
// The account status travels with the identity claims so that a suspended
// account with a live session still fails the domain's mutation gates.
func actorFromHeaders(ctx echo.Context) (user.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return user.Actor{}, errors.New("missing or invalid " + headerUserID + " header")
	}

	role, err := user.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return user.Actor{}, errors.New("missing or invalid " + headerUserRole + " header")
	}

	status, err := user.StatusFromString(ctx.Request().Header.Get(headerUserStatus))
	if err != nil {
		return user.Actor{}, errors.New("missing or invalid " + headerUserStatus + " header")
	}

	return user.NewActor(id, role, status)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CartItem is one line of the cart snapshot.
type CartItem struct {
	ProductID   string `json:"product_id"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"price_cents"`
	Purchasable bool   `json:"purchasable"`
}

// Cart is the response body for GET /api/v1/cart.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalCents int64      `json:"total_cents"`
}

// GetCart handles GET /api/v1/cart - returns the calling customer's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetCartQuery(actor.ID())
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	snapshot, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := Cart{
		Items:      make([]CartItem, len(snapshot.Items)),
		TotalCents: snapshot.TotalCents,
	}
	for i, item := range snapshot.Items {
		response.Items[i] = CartItem{
			ProductID:   item.ProductID.String(),
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
			Purchasable: item.Purchasable,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewCartItem is the request body for POST /api/v1/cart/items.
type NewCartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddCartItem handles POST /api/v1/cart/items - adds a product to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	var body NewCartItem
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(actor.ID(), productID, body.Quantity)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cart item: "+err.Error())
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CartItemUpdate is the request body for PATCH /api/v1/cart/items/:productId.
type CartItemUpdate struct {
	Quantity int `json:"quantity"`
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:productId - sets a line
// quantity; zero removes the line.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	productID, err := pathUUID(ctx, "productId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid product id: "+err.Error())
	}

	var body CartItemUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(actor.ID(), productID, body.Quantity)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cart item: "+err.Error())
	}

	if handleErr := s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutRequest is the request body for POST /api/v1/checkout.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}

// CheckoutFailure names a seller whose partition could not be ordered.
type CheckoutFailure struct {
	SellerID string `json:"seller_id"`
	Reason   string `json:"reason"`
}

// CheckoutResponse lists orders that were created and sellers that failed.
type CheckoutResponse struct {
	OrderIDs []string          `json:"order_ids"`
	Failures []CheckoutFailure `json:"failures"`
}

// Checkout handles POST /api/v1/checkout - turns the cart into per-seller
// orders. A multi-seller cart may partially succeed; the response reports
// both outcomes and the status code follows the overall result.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	var body CheckoutRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	method, err := order.PaymentMethodFromString(body.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payment method: "+err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(actor.ID(), body.ShippingAddress, method)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid checkout: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := CheckoutResponse{
		OrderIDs: make([]string, len(result.CreatedOrderIDs)),
		Failures: make([]CheckoutFailure, len(result.FailedPartitions)),
	}
	for i, id := range result.CreatedOrderIDs {
		response.OrderIDs[i] = id.String()
	}
	for i, failed := range result.FailedPartitions {
		response.Failures[i] = CheckoutFailure{
			SellerID: failed.SellerID.String(),
			Reason:   failed.Cause.Error(),
		}
	}

	status := http.StatusCreated
	switch {
	case len(response.OrderIDs) == 0:
		status = http.StatusConflict
	case len(response.Failures) > 0:
		status = http.StatusMultiStatus
	}

	return ctx.JSON(status, response)
}

// OrderTransition is the request body for POST /api/v1/orders/:orderId/status.
type OrderTransition struct {
	Status string `json:"status"`
}

// TransitionOrder handles POST /api/v1/orders/:orderId/status - drives the
// order to the requested status on behalf of the acting user.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var body OrderTransition
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, actor)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid transition: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RiderAssignment is the request body for POST /api/v1/orders/:orderId/rider.
type RiderAssignment struct {
	RiderID string `json:"rider_id"`
}

// AssignRider handles POST /api/v1/orders/:orderId/rider - assigns a rider
// to a prepared order.
func (s *Server) AssignRider(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var body RiderAssignment
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(body.RiderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rider id: "+err.Error())
	}

	cmd, err := commands.NewAssignRiderCommand(orderID, riderID, actor)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid assignment: "+err.Error())
	}

	if handleErr := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliveryUpdate is the request body for POST /api/v1/deliveries/:deliveryId/status.
// DistanceKm and TipCents only matter for the delivered transition, where they
// feed the earning calculation.
type DeliveryUpdate struct {
	Status     string `json:"status"`
	DistanceKm int    `json:"distance_km"`
	TipCents   int64  `json:"tip_cents"`
}

// UpdateDelivery handles POST /api/v1/deliveries/:deliveryId/status - advances
// a delivery attempt and mirrors the movement into the order.
func (s *Server) UpdateDelivery(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	deliveryID, err := pathUUID(ctx, "deliveryId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery id: "+err.Error())
	}

	var body DeliveryUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := delivery.SubStatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	tip, err := kernel.MoneyFromCents(body.TipCents)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid tip: "+err.Error())
	}

	cmd, err := commands.NewUpdateDeliveryCommand(deliveryID, target, actor, body.DistanceKm, tip)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid delivery update: "+err.Error())
	}

	if handleErr := s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewReview is the request body for POST /api/v1/reviews.
type NewReview struct {
	OrderID     string `json:"order_id"`
	OrderItemID string `json:"order_item_id"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

// CreateReview handles POST /api/v1/reviews - records a product review for
// a delivered order item.
func (s *Server) CreateReview(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	var body NewReview
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	orderItemID, err := kernel.UUIDFromString(body.OrderItemID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order item id: "+err.Error())
	}

	cmd, err := commands.NewCreateReviewCommand(actor.ID(), orderID, orderItemID, body.Rating, body.Comment)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid review: "+err.Error())
	}

	if handleErr := s.createReviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RiderRating is the request body for POST /api/v1/orders/:orderId/rider-rating.
type RiderRating struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RateRider handles POST /api/v1/orders/:orderId/rider-rating - lets the
// seller rate the rider who delivered the order.
func (s *Server) RateRider(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var body RiderRating
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRateRiderCommand(orderID, actor, body.Rating, body.Comment)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rating: "+err.Error())
	}

	if handleErr := s.rateRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// Earning is one settled or pending payout line.
type Earning struct {
	OrderID    string `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

// RiderEarnings is the response body for GET /api/v1/riders/:riderId/earnings.
type RiderEarnings struct {
	Earnings          []Earning `json:"earnings"`
	PendingTotalCents int64     `json:"pending_total_cents"`
	PaidTotalCents    int64     `json:"paid_total_cents"`
}

// GetRiderEarnings handles GET /api/v1/riders/:riderId/earnings.
func (s *Server) GetRiderEarnings(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	riderID, err := pathUUID(ctx, "riderId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid rider id: "+err.Error())
	}

	// Riders may only see their own earnings.
	if actor.Role() != user.RoleAdmin && !actor.ID().IsEqual(riderID) {
		return errorJSON(ctx, http.StatusForbidden, "earnings are visible to their rider only")
	}

	query, err := queries.NewGetRiderEarningsQuery(riderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.getRiderEarningsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := RiderEarnings{
		Earnings:          make([]Earning, len(result.Earnings)),
		PendingTotalCents: result.PendingTotalCents,
		PaidTotalCents:    result.PaidTotalCents,
	}
	for i, earning := range result.Earnings {
		response.Earnings[i] = Earning{
			OrderID:    earning.OrderID.String(),
			TotalCents: earning.TotalCents,
			Status:     earning.Status,
			CreatedAt:  earning.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SellerOrder is one order line in a seller's order list.
type SellerOrder struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Status     string `json:"status"`
	ItemCount  int    `json:"item_count"`
	TotalCents int64  `json:"total_cents"`
	CreatedAt  string `json:"created_at"`
}

// GetSellerOrders handles GET /api/v1/sellers/:sellerId/orders.
func (s *Server) GetSellerOrders(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	sellerID, err := pathUUID(ctx, "sellerId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid seller id: "+err.Error())
	}

	if actor.Role() != user.RoleAdmin && !actor.ID().IsEqual(sellerID) {
		return errorJSON(ctx, http.StatusForbidden, "orders are visible to their seller only")
	}

	query, err := queries.NewGetSellerOrdersQuery(sellerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getSellerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]SellerOrder, len(orders))
	for i, ord := range orders {
		response[i] = SellerOrder{
			ID:         ord.ID.String(),
			CustomerID: ord.CustomerID.String(),
			Status:     ord.Status,
			ItemCount:  ord.ItemCount,
			TotalCents: ord.TotalCents,
			CreatedAt:  ord.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApplicationVerdict is the request body for
// POST /api/v1/seller-applications/:applicationId/review.
type ApplicationVerdict struct {
	Approve bool `json:"approve"`
}

// ReviewSellerApplication handles POST /api/v1/seller-applications/:applicationId/review.
func (s *Server) ReviewSellerApplication(ctx echo.Context) error {
	actor, err := actorFromHeaders(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, err.Error())
	}

	applicationID, err := pathUUID(ctx, "applicationId")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid application id: "+err.Error())
	}

	var body ApplicationVerdict
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewReviewSellerApplicationCommand(applicationID, body.Approve, actor)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid verdict: "+err.Error())
	}

	if handleErr := s.reviewApplicationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
