package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pendiente"
	StatusProcessing OrderStatus = "procesando"
	StatusShipped    OrderStatus = "enviado"
	StatusDelivered  OrderStatus = "entregado"
	StatusCompleted  OrderStatus = "completado"
	StatusCancelled  OrderStatus = "cancelado"
)

// AllStatuses lists the closed status vocabulary in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCompleted,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order maps the pedidos table of the pre-existing store schema.
type Order struct {
	ID         uint64          `json:"id" gorm:"column:ID_pedido;primaryKey;autoIncrement"`
	CustomerID uint64          `json:"id_usuario" gorm:"column:ID_usuario;not null;index"`
	AddressID  *uint64         `json:"id_direccion,omitempty" gorm:"column:ID_direccion;index"`
	Total      decimal.Decimal `json:"total" gorm:"column:total;type:decimal(10,2);not null"`
	Status     OrderStatus     `json:"estado" gorm:"column:estado;type:enum('pendiente','procesando','enviado','entregado','completado','cancelado');default:'pendiente'"`
	CreatedAt  time.Time       `json:"fecha" gorm:"column:fecha;autoCreateTime"`
}

func (Order) TableName() string { return "pedidos" }

// OrderSummary is one row of the enriched order listing: the order joined to
// its customer and, when present, a single formatted address string. The JSON
// field names match what the dashboard client already consumes.
type OrderSummary struct {
	ID           uint64          `json:"id" gorm:"column:id"`
	CreatedAt    time.Time       `json:"fecha" gorm:"column:fecha"`
	Total        decimal.Decimal `json:"total" gorm:"column:total"`
	Status       OrderStatus     `json:"estado" gorm:"column:estado"`
	CustomerName string          `json:"nombre_cliente" gorm:"column:nombre_cliente"`
	Email        string          `json:"email" gorm:"column:email"`
	Phone        *string         `json:"telefono" gorm:"column:telefono"`
	Address      *string         `json:"direccion_completa,omitempty" gorm:"column:direccion_completa"`
}

// OrderDetail extends the summary with the full shipping address and the
// order's line items.
type OrderDetail struct {
	OrderSummary `gorm:"embedded"`
	Street         *string `json:"calle" gorm:"column:calle"`
	ExteriorNumber *string `json:"numero_exterior" gorm:"column:numero_exterior"`
	InteriorNumber *string `json:"numero_interior" gorm:"column:numero_interior"`
	Neighborhood   *string `json:"colonia" gorm:"column:colonia"`
	City           *string `json:"ciudad" gorm:"column:ciudad"`
	State          *string `json:"estado_direccion" gorm:"column:estado_direccion"`
	PostalCode     *string `json:"codigo_postal" gorm:"column:codigo_postal"`
	Country        *string `json:"pais" gorm:"column:pais"`

	Items []OrderLineItem `json:"productos" gorm:"-"`
}

// OrderLineItem is one detalle_pedido row enriched with product reference
// data. The product columns come from left joins, so any of them can be
// missing without failing the read. UnitPrice is the price snapshotted when
// the order was placed, not the live product price; Subtotal is derived in
// the query (cantidad * precio_unitario) and never stored.
type OrderLineItem struct {
	ProductID   uint64          `json:"ID_producto" gorm:"column:ID_producto"`
	Name        *string         `json:"nombre" gorm:"column:nombre"`
	Description *string         `json:"descripcion" gorm:"column:descripcion"`
	Image       *string         `json:"imagen" gorm:"column:imagen"`
	Brand       *string         `json:"nombre_marca" gorm:"column:nombre_marca"`
	Material    *string         `json:"nombre_material" gorm:"column:nombre_material"`
	Category    *string         `json:"nombre_categoria" gorm:"column:nombre_categoria"`
	Gender      *string         `json:"nombre_genero" gorm:"column:nombre_genero"`
	Quantity    int64           `json:"cantidad" gorm:"column:cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario" gorm:"column:precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"column:subtotal"`
}

// OrderStatistics is the dashboard summary: a count per status plus revenue
// for the current calendar day and month. Cancelled orders never count
// toward revenue. Every field is zero, not null, when there is no data.
type OrderStatistics struct {
	Total        int64           `json:"total"`
	Pending      int64           `json:"pendientes"`
	Processing   int64           `json:"procesando"`
	Shipped      int64           `json:"enviados"`
	Delivered    int64           `json:"entregados"`
	Completed    int64           `json:"completados"`
	Cancelled    int64           `json:"cancelados"`
	RevenueToday decimal.Decimal `json:"ventas_hoy"`
	RevenueMonth decimal.Decimal `json:"ventas_mes"`
}
