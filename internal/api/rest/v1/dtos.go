package v1

import (
	"fmt"
	"time"

	"github.com/fredriick/Electrify-sub009/internal/domain/currency"
	"github.com/fredriick/Electrify-sub009/internal/domain/notifications"
	"github.com/fredriick/Electrify-sub009/internal/domain/orders"
	"github.com/fredriick/Electrify-sub009/internal/domain/payments"
	"github.com/fredriick/Electrify-sub009/internal/domain/products"
	"github.com/fredriick/Electrify-sub009/internal/domain/suppliers"
	"github.com/fredriick/Electrify-sub009/internal/domain/tax"
	"github.com/fredriick/Electrify-sub009/internal/domain/users"
	"github.com/fredriick/Electrify-sub009/internal/pkg/validators"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a plain message
type InfoResponse struct {
	Message string `json:"message"`
}

// CountResponse carries a count
type CountResponse struct {
	Count int64 `json:"count"`
}

// TaxRateRequest is the admin payload for creating or updating a tax rate
type TaxRateRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=100"`
	Country         string          `json:"country" validate:"omitempty,country"`
	ProductCategory string          `json:"product_category" validate:"omitempty,max=50"`
	Rate            decimal.Decimal `json:"rate"`
	IsDefault       bool            `json:"is_default"`
	// IsActive defaults to true when omitted
	IsActive *bool `json:"is_active"`
}

// Validate for validating TaxRateRequest struct
func (r *TaxRateRequest) Validate() error {
	return validators.Struct(r)
}

// ToInput converts the request into the service input
func (r *TaxRateRequest) ToInput() *tax.TaxRateInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &tax.TaxRateInput{
		Name:            r.Name,
		Country:         r.Country,
		ProductCategory: r.ProductCategory,
		Rate:            r.Rate,
		IsDefault:       r.IsDefault,
		IsActive:        active,
	}
}

// TaxRateResponse represents a tax rate
type TaxRateResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Country         string          `json:"country,omitempty"`
	ProductCategory string          `json:"product_category,omitempty"`
	Rate            decimal.Decimal `json:"rate"`
	IsDefault       bool            `json:"is_default"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newTaxRateResponse(r *tax.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		ID:              r.ID,
		Name:            r.Name,
		Country:         r.Country,
		ProductCategory: r.ProductCategory,
		Rate:            r.Rate,
		IsDefault:       r.IsDefault,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// TaxResolutionResponse tells which rate applies to a sale
type TaxResolutionResponse struct {
	Country   string          `json:"country,omitempty"`
	Category  string          `json:"category,omitempty"`
	Rate      decimal.Decimal `json:"rate"`
	Source    tax.Source      `json:"source"`
	TaxRateID string          `json:"tax_rate_id,omitempty"`
	Name      string          `json:"name,omitempty"`
}

func newTaxResolutionResponse(country, category string, res tax.Resolution) TaxResolutionResponse {
	return TaxResolutionResponse{
		Country:   country,
		Category:  category,
		Rate:      res.Rate,
		Source:    res.Source,
		TaxRateID: res.TaxRateID,
		Name:      res.Name,
	}
}

// CalculateTaxRequest asks for the tax on an amount
type CalculateTaxRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Country  string          `json:"country" validate:"omitempty,country"`
	Category string          `json:"category" validate:"omitempty,max=50"`
}

// Validate for validating CalculateTaxRequest struct
func (r *CalculateTaxRequest) Validate() error {
	if r.Amount.IsNegative() {
		return tax.ErrNegativeAmount
	}
	return validators.Struct(r)
}

// CalculateTaxResponse is the tax on an amount together with the resolution used
type CalculateTaxResponse struct {
	Amount    decimal.Decimal       `json:"amount"`
	TaxAmount decimal.Decimal       `json:"tax_amount"`
	Total     decimal.Decimal       `json:"total"`
	Rate      TaxResolutionResponse `json:"rate"`
}

// CurrencyResponse describes a supported currency
type CurrencyResponse struct {
	Code     string `json:"code"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int32  `json:"decimals"`
}

// ExchangeRateResponse quotes one currency against the base currency
type ExchangeRateResponse struct {
	Currency  string          `json:"currency"`
	Rate      decimal.Decimal `json:"rate"`
	Source    string          `json:"source,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newExchangeRateResponse(r *currency.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		Currency:  r.Currency,
		Rate:      r.Rate,
		Source:    r.Source,
		UpdatedAt: r.UpdatedAt,
	}
}

// ExchangeRatesResponse lists the rates against Base
type ExchangeRatesResponse struct {
	Base  string                 `json:"base"`
	Rates []ExchangeRateResponse `json:"rates"`
}

// ConvertResponse is the result of a conversion
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
}

// UpsertExchangeRateRequest sets the rate of one currency
type UpsertExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

// Validate for validating UpsertExchangeRateRequest struct
func (r *UpsertExchangeRateRequest) Validate() error {
	if !r.Rate.IsPositive() {
		return currency.ErrInvalidExchangeRate
	}
	return nil
}

// SpecificationsDTO is the technical sheet of a product
type SpecificationsDTO struct {
	PowerRatingW  int `json:"power_rating_w,omitempty"`
	VoltageV      int `json:"voltage_v,omitempty"`
	CapacityWh    int `json:"capacity_wh,omitempty"`
	WarrantyYears int `json:"warranty_years,omitempty"`
}

// ProductRequest is the supplier payload for a listing
type ProductRequest struct {
	Name           string            `json:"name" validate:"required,min=1,max=255"`
	Description    string            `json:"description" validate:"max=5000"`
	Category       string            `json:"category" validate:"required"`
	Brand          string            `json:"brand" validate:"max=100"`
	Price          decimal.Decimal   `json:"price"`
	Currency       string            `json:"currency" validate:"required,currency"`
	Stock          int               `json:"stock" validate:"min=0"`
	Specifications SpecificationsDTO `json:"specifications"`
	SaveAsDraft    bool              `json:"save_as_draft"`
}

// Validate for validating ProductRequest struct
func (r *ProductRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return err
	}
	if _, err := products.ParseCategory(r.Category); err != nil {
		return err
	}
	if !r.Price.IsPositive() {
		return products.ErrInvalidPrice
	}
	return nil
}

// ToInput converts the request into the service input
func (r *ProductRequest) ToInput() *products.ProductInput {
	return &products.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    products.Category(r.Category),
		Brand:       r.Brand,
		Price:       r.Price,
		Currency:    r.Currency,
		Stock:       r.Stock,
		Specifications: products.Specifications{
			PowerRatingW:  r.Specifications.PowerRatingW,
			VoltageV:      r.Specifications.VoltageV,
			CapacityWh:    r.Specifications.CapacityWh,
			WarrantyYears: r.Specifications.WarrantyYears,
		},
		SaveAsDraft: r.SaveAsDraft,
	}
}

// ProductResponse represents a listing
type ProductResponse struct {
	ID              string            `json:"id"`
	SupplierID      string            `json:"supplier_id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Category        products.Category `json:"category"`
	Brand           string            `json:"brand,omitempty"`
	Price           decimal.Decimal   `json:"price"`
	Currency        string            `json:"currency"`
	FormattedPrice  string            `json:"formatted_price"`
	Stock           int               `json:"stock"`
	Status          products.Status   `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	ImageURLs       []string          `json:"image_urls"`
	Specifications  SpecificationsDTO `json:"specifications"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newProductResponse(p *products.Product) ProductResponse {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return ProductResponse{
		ID:              p.ID,
		SupplierID:      p.SupplierID,
		Name:            p.Name,
		Description:     p.Description,
		Category:        p.Category,
		Brand:           p.Brand,
		Price:           p.Price,
		Currency:        p.Currency,
		FormattedPrice:  currency.Format(p.Price, p.Currency),
		Stock:           p.Stock,
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		ImageURLs:       imageURLs,
		Specifications: SpecificationsDTO{
			PowerRatingW:  p.Specifications.PowerRatingW,
			VoltageV:      p.Specifications.VoltageV,
			CapacityWh:    p.Specifications.CapacityWh,
			WarrantyYears: p.Specifications.WarrantyYears,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func newProductResponses(list []*products.Product) []ProductResponse {
	response := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		response = append(response, newProductResponse(p))
	}
	return response
}

// ReviewProductRequest is an admin verdict on a listing
type ReviewProductRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Reason  string `json:"reason" validate:"max=1000"`
}

// Validate for validating ReviewProductRequest struct
func (r *ReviewProductRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return err
	}
	if !*r.Approve && r.Reason == "" {
		return products.ErrRejectionReason
	}
	return nil
}

// SupplierRegistrationRequest is what a user submits to open a supplier account
type SupplierRegistrationRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=2,max=255"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	TaxID       string `json:"tax_id" validate:"required"`
	Country     string `json:"country" validate:"required,country"`
	Address     string `json:"address" validate:"max=500"`
}

// Validate for validating SupplierRegistrationRequest struct
func (r *SupplierRegistrationRequest) Validate() error {
	return validators.Struct(r)
}

// ToInput converts the request into the service input
func (r *SupplierRegistrationRequest) ToInput() *suppliers.RegistrationInput {
	return &suppliers.RegistrationInput{
		CompanyName: r.CompanyName,
		Email:       r.Email,
		Phone:       r.Phone,
		TaxID:       r.TaxID,
		Country:     r.Country,
		Address:     r.Address,
	}
}

// SupplierResponse represents a supplier account
type SupplierResponse struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	CompanyName string           `json:"company_name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	TaxID       string           `json:"tax_id"`
	Country     string           `json:"country"`
	Address     string           `json:"address,omitempty"`
	Status      suppliers.Status `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newSupplierResponse(s *suppliers.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		CompanyName: s.CompanyName,
		Email:       s.Email,
		Phone:       s.Phone,
		TaxID:       s.TaxID,
		Country:     s.Country,
		Address:     s.Address,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// StatusRequest changes the status of a supplier or an order
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate for validating StatusRequest struct
func (r *StatusRequest) Validate() error {
	return validators.Struct(r)
}

// ProfileResponse represents a marketplace account
type ProfileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email,omitempty"`
	FullName  string     `json:"full_name,omitempty"`
	Role      users.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newProfileResponse(p *users.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// UpdateRoleRequest changes the role of a profile
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer supplier admin super_admin"`
}

// Validate for validating UpdateRoleRequest struct
func (r *UpdateRoleRequest) Validate() error {
	return validators.Struct(r)
}

// CheckoutItemRequest is one cart line
type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=1000"`
}

// CheckoutRequest is a cart submission
type CheckoutRequest struct {
	Items           []CheckoutItemRequest  `json:"items" validate:"required,min=1,max=100,dive"`
	Currency        string                 `json:"currency" validate:"required,currency"`
	Email           string                 `json:"email" validate:"omitempty,email"`
	ShippingAddress orders.ShippingAddress `json:"shipping_address"`
}

// Validate for validating CheckoutRequest struct
func (r *CheckoutRequest) Validate() error {
	if len(r.Items) == 0 {
		return orders.ErrEmptyOrder
	}
	r.ShippingAddress = r.ShippingAddress.Normalized()
	return validators.Struct(r)
}

// ToInput converts the request into the service input
func (r *CheckoutRequest) ToInput() *orders.CheckoutInput {
	items := make([]orders.CheckoutItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, orders.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &orders.CheckoutInput{
		Items:           items,
		Currency:        r.Currency,
		Email:           r.Email,
		ShippingAddress: r.ShippingAddress,
	}
}

// OrderItemResponse is one product line of an order
type OrderItemResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	SupplierID string          `json:"supplier_id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order
type OrderResponse struct {
	ID               string                 `json:"id"`
	OrderNumber      string                 `json:"order_number"`
	CustomerID       string                 `json:"customer_id"`
	CustomerEmail    string                 `json:"customer_email"`
	Items            []OrderItemResponse    `json:"items"`
	Currency         string                 `json:"currency"`
	Subtotal         decimal.Decimal        `json:"subtotal"`
	TaxAmount        decimal.Decimal        `json:"tax_amount"`
	ShippingAmount   decimal.Decimal        `json:"shipping_amount"`
	Total            decimal.Decimal        `json:"total"`
	FormattedTotal   string                 `json:"formatted_total"`
	Status           orders.Status          `json:"status"`
	PaymentStatus    orders.PaymentStatus   `json:"payment_status"`
	PaymentReference *string                `json:"payment_reference,omitempty"`
	ShippingAddress  orders.ShippingAddress `json:"shipping_address"`
	PaidAt           *time.Time             `json:"paid_at,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func newOrderResponse(o *orders.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			SupplierID: item.SupplierID,
			Name:       item.Name,
			Category:   item.Category,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TaxRate:    item.TaxRate,
			TaxAmount:  item.TaxAmount,
			LineTotal:  item.LineTotal,
		})
	}
	return OrderResponse{
		ID:               o.ID,
		OrderNumber:      o.OrderNumber,
		CustomerID:       o.CustomerID,
		CustomerEmail:    o.CustomerEmail,
		Items:            items,
		Currency:         o.Currency,
		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		ShippingAmount:   o.ShippingAmount,
		Total:            o.Total,
		FormattedTotal:   currency.Format(o.Total, o.Currency),
		Status:           o.Status,
		PaymentStatus:    o.PaymentStatus,
		PaymentReference: o.PaymentReference,
		ShippingAddress:  o.ShippingAddress,
		PaidAt:           o.PaidAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// InitializePaymentRequest starts a Paystack transaction
type InitializePaymentRequest struct {
	Email       string            `json:"email" validate:"omitempty,email"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency" validate:"omitempty,currency"`
	OrderID     string            `json:"order_id" validate:"omitempty,uuid4"`
	CallbackURL string            `json:"callback_url" validate:"omitempty,url"`
	Metadata    map[string]string `json:"metadata"`
}

// Validate for validating InitializePaymentRequest struct.
// Without an order the caller must name a positive amount.
func (r *InitializePaymentRequest) Validate() error {
	if err := validators.Struct(r); err != nil {
		return err
	}
	if r.OrderID == "" && !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", payments.ErrInvalidPaymentRequest)
	}
	return nil
}

// ToInput converts the request into the service input
func (r *InitializePaymentRequest) ToInput() *payments.InitializeInput {
	return &payments.InitializeInput{
		Email:       r.Email,
		Amount:      r.Amount,
		Currency:    r.Currency,
		OrderID:     r.OrderID,
		CallbackURL: r.CallbackURL,
		Metadata:    r.Metadata,
	}
}

// InitializePaymentResponse tells the client where to complete the payment
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// TransactionResponse is the recorded outcome of a payment
type TransactionResponse struct {
	Reference       string          `json:"reference"`
	OrderID         *string         `json:"order_id,omitempty"`
	Email           string          `json:"email"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Status          payments.Status `json:"status"`
	GatewayResponse string          `json:"gateway_response,omitempty"`
	PaidAt          *time.Time      `json:"paid_at,omitempty"`
}

func newTransactionResponse(tx *payments.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:       tx.Reference,
		OrderID:         tx.OrderID,
		Email:           tx.Email,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Status:          tx.Status,
		GatewayResponse: tx.GatewayResponse,
		PaidAt:          tx.PaidAt,
	}
}

// NotificationResponse represents an in-app notification
type NotificationResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Type      notifications.Type `json:"type"`
	Read      bool               `json:"read"`
	CreatedAt time.Time          `json:"created_at"`
}

func newNotificationResponse(n *notifications.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
