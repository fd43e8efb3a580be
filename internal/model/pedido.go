package model

import "github.com/shopspring/decimal"

// Pedido is a customer order. FechaEntrega is stored as the opaque string
// the client sends; NombreRamo is a denormalized display string with no
// FK back to the catalog.
type Pedido struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	NombreCliente  string          `gorm:"column:nombre_cliente;not null" json:"nombre_cliente"`
	Direccion      string          `gorm:"not null" json:"direccion"`
	FechaEntrega   string          `gorm:"column:fecha_entrega;not null" json:"fecha_entrega"`
	ValorRamo      decimal.Decimal `gorm:"column:valor_ramo;type:decimal(10,2);not null" json:"valor_ramo"`
	NombreRamo     string          `gorm:"column:nombre_ramo" json:"nombre_ramo"`
	Celular        string          `json:"celular"`
	Descripcion    string          `json:"descripcion"`
	Estado         string          `gorm:"default:'En proceso'" json:"estado"`
	CantidadPagada decimal.Decimal `gorm:"column:cantidad_pagada;type:decimal(10,2)" json:"cantidad_pagada"`
}

func (Pedido) TableName() string { return "pedido" }
