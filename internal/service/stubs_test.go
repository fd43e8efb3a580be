package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2001Hector/api-movil/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory RamoRepository stub ────────────────────────────────────────────

type stubRamoRepo struct {
	ramos      map[int64]*model.Ramo
	nextID     int64
	failCreate bool
	failUpdate bool
	lastFields map[string]any
}

func newStubRamoRepo() *stubRamoRepo {
	return &stubRamoRepo{ramos: make(map[int64]*model.Ramo)}
}

func (r *stubRamoRepo) List(_ context.Context) ([]model.Ramo, error) {
	ids := make([]int64, 0, len(r.ramos))
	for id := range r.ramos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	result := make([]model.Ramo, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.ramos[id])
	}
	return result, nil
}

func (r *stubRamoRepo) FindByID(_ context.Context, id int64) (*model.Ramo, error) {
	ramo, ok := r.ramos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ramo
	return &copied, nil
}

func (r *stubRamoRepo) Create(_ context.Context, ramo *model.Ramo) error {
	if r.failCreate {
		return errors.New("insert rejected")
	}
	r.nextID++
	ramo.ID = r.nextID
	copied := *ramo
	r.ramos[ramo.ID] = &copied
	return nil
}

func (r *stubRamoRepo) UpdateFields(_ context.Context, id int64, fields map[string]any) (int64, error) {
	if r.failUpdate {
		return 0, errors.New("update rejected")
	}
	r.lastFields = fields
	ramo, ok := r.ramos[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "titulo":
			ramo.Titulo = v.(string)
		case "valor":
			ramo.Valor = v.(decimal.Decimal)
		case "categoria":
			ramo.Categoria = v.(string)
		case "description":
			ramo.Description = v.(string)
		case "imagen":
			s := v.(string)
			ramo.Imagen = &s
		}
	}
	return 1, nil
}

func (r *stubRamoRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.ramos[id]; !ok {
		return 0, nil
	}
	delete(r.ramos, id)
	return 1, nil
}

// ── In-memory PedidoRepository stub ──────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos    map[int64]*model.Pedido
	nextID     int64
	lastFields map[string]any
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int64]*model.Pedido)}
}

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	ids := make([]int64, 0, len(r.pedidos))
	for id := range r.pedidos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	result := make([]model.Pedido, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.pedidos[id])
	}
	return result, nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id int64) (*model.Pedido, error) {
	pedido, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pedido
	return &copied, nil
}

func (r *stubPedidoRepo) Create(_ context.Context, pedido *model.Pedido) error {
	r.nextID++
	pedido.ID = r.nextID
	copied := *pedido
	r.pedidos[pedido.ID] = &copied
	return nil
}

func (r *stubPedidoRepo) UpdateFields(_ context.Context, id int64, fields map[string]any) (int64, error) {
	r.lastFields = fields
	pedido, ok := r.pedidos[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "nombre_cliente":
			pedido.NombreCliente = v.(string)
		case "direccion":
			pedido.Direccion = v.(string)
		case "fecha_entrega":
			pedido.FechaEntrega = v.(string)
		case "valor_ramo":
			pedido.ValorRamo = v.(decimal.Decimal)
		case "nombre_ramo":
			pedido.NombreRamo = v.(string)
		case "celular":
			pedido.Celular = v.(string)
		case "descripcion":
			pedido.Descripcion = v.(string)
		case "estado":
			pedido.Estado = v.(string)
		case "cantidad_pagada":
			pedido.CantidadPagada = v.(decimal.Decimal)
		}
	}
	return 1, nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.pedidos[id]; !ok {
		return 0, nil
	}
	delete(r.pedidos, id)
	return 1, nil
}

// ── ImageStore stub ──────────────────────────────────────────────────────────

type stubImages struct {
	files    map[string]bool
	saved    []string
	removed  []string
	failSave bool
}

func newStubImages() *stubImages {
	return &stubImages{files: make(map[string]bool)}
}

func (s *stubImages) Save(payload string) (string, bool, error) {
	if s.failSave {
		return "", false, errors.New("disk full")
	}
	if !strings.HasPrefix(payload, "data:image/") {
		if s.files[payload] {
			return payload, false, nil
		}
		return "", false, errors.New("unknown reference")
	}
	name := fmt.Sprintf("img_%d.jpg", len(s.saved)+1)
	s.files[name] = true
	s.saved = append(s.saved, name)
	return name, true, nil
}

func (s *stubImages) Remove(name string) {
	delete(s.files, name)
	s.removed = append(s.removed, name)
}

func (s *stubImages) ResolveURL(name, origin string) string {
	return origin + "/uploads/" + name
}
