package service

import (
	"context"
	"errors"
	"strings"

	"github.com/2001Hector/api-movil/internal/apierror"
	"github.com/2001Hector/api-movil/internal/dto"
	"github.com/2001Hector/api-movil/internal/model"
	"github.com/2001Hector/api-movil/internal/repository"
	"github.com/2001Hector/api-movil/internal/validation"

	"gorm.io/gorm"
)

// PedidoService implements the order operations. Structurally the Ramo
// twin minus the image side-channel.
type PedidoService interface {
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*dto.PedidoResponse, error)
	Crear(ctx context.Context, input map[string]any) (*dto.CreatedResponse, error)
	Actualizar(ctx context.Context, id int64, input map[string]any) (*dto.MessageResponse, error)
	Eliminar(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

type pedidoService struct {
	repo repository.PedidoRepository
}

func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	return dto.PedidoResponse{
		ID:             p.ID,
		NombreCliente:  p.NombreCliente,
		Direccion:      p.Direccion,
		FechaEntrega:   p.FechaEntrega,
		ValorRamo:      p.ValorRamo.InexactFloat64(),
		NombreRamo:     p.NombreRamo,
		Celular:        p.Celular,
		Descripcion:    p.Descripcion,
		Estado:         p.Estado,
		CantidadPagada: p.CantidadPagada.InexactFloat64(),
	}
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("Error al listar pedidos: " + err.Error())
	}
	result := make([]dto.PedidoResponse, 0, len(rows))
	for _, p := range rows {
		result = append(result, mapPedido(p))
	}
	return result, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id int64) (*dto.PedidoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, apierror.Internal("Error al obtener pedido: " + err.Error())
	}
	resp := mapPedido(*p)
	return &resp, nil
}

func (s *pedidoService) Crear(ctx context.Context, input map[string]any) (*dto.CreatedResponse, error) {
	if missing := validation.Missing(input, dto.PedidoRequired); len(missing) > 0 {
		return nil, apierror.Validation("Faltan campos requeridos: " + strings.Join(missing, ", "))
	}
	fields := validation.Coerce(input, dto.PedidoFields)

	pedido := &model.Pedido{
		NombreCliente:  fieldString(fields, "nombre_cliente"),
		Direccion:      fieldString(fields, "direccion"),
		FechaEntrega:   fieldString(fields, "fecha_entrega"),
		ValorRamo:      fieldDecimal(fields, "valor_ramo"),
		NombreRamo:     fieldString(fields, "nombre_ramo"),
		Celular:        fieldString(fields, "celular"),
		Descripcion:    fieldString(fields, "descripcion"),
		Estado:         "En proceso",
		CantidadPagada: fieldDecimal(fields, "cantidad_pagada"),
	}
	if _, ok := fields["estado"]; ok {
		pedido.Estado = fieldString(fields, "estado")
	}

	if err := s.repo.Create(ctx, pedido); err != nil {
		return nil, apierror.Internal("Error al crear pedido: " + err.Error())
	}
	return &dto.CreatedResponse{ID: pedido.ID, Message: "Pedido creado exitosamente"}, nil
}

func (s *pedidoService) Actualizar(ctx context.Context, id int64, input map[string]any) (*dto.MessageResponse, error) {
	fields := validation.Coerce(input, dto.PedidoFields)
	if len(fields) == 0 {
		return nil, apierror.Validation("No hay campos para actualizar")
	}
	rows, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, apierror.Internal("Error al actualizar pedido: " + err.Error())
	}
	if rows == 0 {
		return nil, apierror.NotFound("Pedido no encontrado")
	}
	return &dto.MessageResponse{Message: "Pedido actualizado exitosamente"}, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apierror.Internal("Error al eliminar pedido: " + err.Error())
	}
	if rows == 0 {
		return nil, apierror.NotFound("Pedido no encontrado")
	}
	return &dto.MessageResponse{Message: "Pedido eliminado exitosamente"}, nil
}
