package http

import "github.com/shopspring/decimal"

// Response is the envelope every endpoint answers with. Count is only set on
// list responses.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

type CreateOrderRequest struct {
	CustomerID uint64          `json:"id_usuario" binding:"required"`
	AddressID  *uint64         `json:"id_direccion"`
	Total      decimal.Decimal `json:"total" binding:"required"`
	Status     string          `json:"estado"`
}

type UpdateOrderRequest struct {
	Status *string          `json:"estado"`
	Total  *decimal.Decimal `json:"total"`
}

type UpdateStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

func success(data any) Response {
	return Response{Success: true, Data: data}
}

func successList(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

func fail(msg string) Response {
	return Response{Success: false, Error: msg}
}
