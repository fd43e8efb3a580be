package dto

import "github.com/2001Hector/api-movil/internal/validation"

var PedidoRequired = []string{"nombre_cliente", "direccion", "fecha_entrega", "valor_ramo"}

var PedidoFields = []validation.Field{
	{Name: "nombre_cliente", Kind: validation.String},
	{Name: "direccion", Kind: validation.String},
	{Name: "fecha_entrega", Kind: validation.String},
	{Name: "valor_ramo", Kind: validation.Decimal},
	{Name: "nombre_ramo", Kind: validation.String},
	{Name: "celular", Kind: validation.String},
	{Name: "descripcion", Kind: validation.String},
	{Name: "estado", Kind: validation.String},
	{Name: "cantidad_pagada", Kind: validation.Decimal},
}

type PedidoResponse struct {
	ID             int64   `json:"id"`
	NombreCliente  string  `json:"nombre_cliente"`
	Direccion      string  `json:"direccion"`
	FechaEntrega   string  `json:"fecha_entrega"`
	ValorRamo      float64 `json:"valor_ramo"`
	NombreRamo     string  `json:"nombre_ramo"`
	Celular        string  `json:"celular"`
	Descripcion    string  `json:"descripcion"`
	Estado         string  `json:"estado"`
	CantidadPagada float64 `json:"cantidad_pagada"`
}
