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

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImageStore is the image side-channel as the services consume it.
// The concrete implementation lives in internal/imagestore.
type ImageStore interface {
	Save(payload string) (name string, written bool, err error)
	Remove(name string)
	ResolveURL(name, origin string) string
}

// RamoService implements the catalog operations: validation, coercion,
// the image file lifecycle, and the mapping of repository outcomes to
// typed request errors.
type RamoService interface {
	Listar(ctx context.Context, origin string) ([]dto.RamoResponse, error)
	ObtenerPorID(ctx context.Context, id int64, origin string) (*dto.RamoResponse, error)
	Crear(ctx context.Context, input map[string]any) (*dto.CreatedResponse, error)
	Actualizar(ctx context.Context, id int64, input map[string]any) (*dto.MessageResponse, error)
	Eliminar(ctx context.Context, id int64) (*dto.MessageResponse, error)
}

type ramoService struct {
	repo   repository.RamoRepository
	images ImageStore
}

func NewRamoService(repo repository.RamoRepository, images ImageStore) RamoService {
	return &ramoService{repo: repo, images: images}
}

func (s *ramoService) mapRamo(r model.Ramo, origin string) dto.RamoResponse {
	resp := dto.RamoResponse{
		ID:          r.ID,
		Titulo:      r.Titulo,
		Valor:       r.Valor.InexactFloat64(),
		Categoria:   r.Categoria,
		Description: r.Description,
		Imagen:      r.Imagen,
	}
	if r.Imagen != nil && *r.Imagen != "" {
		u := s.images.ResolveURL(*r.Imagen, origin)
		resp.ImagenURL = &u
	}
	return resp
}

func (s *ramoService) Listar(ctx context.Context, origin string) ([]dto.RamoResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal("Error al listar ramos: " + err.Error())
	}
	result := make([]dto.RamoResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, s.mapRamo(r, origin))
	}
	return result, nil
}

func (s *ramoService) ObtenerPorID(ctx context.Context, id int64, origin string) (*dto.RamoResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Ramo no encontrado")
		}
		return nil, apierror.Internal("Error al obtener ramo: " + err.Error())
	}
	resp := s.mapRamo(*r, origin)
	return &resp, nil
}

func (s *ramoService) Crear(ctx context.Context, input map[string]any) (*dto.CreatedResponse, error) {
	if missing := validation.Missing(input, dto.RamoRequired); len(missing) > 0 {
		return nil, apierror.Validation("Faltan campos requeridos: " + strings.Join(missing, ", "))
	}
	fields := validation.Coerce(input, dto.RamoFields)

	ramo := &model.Ramo{
		Titulo:      fieldString(fields, "titulo"),
		Valor:       fieldDecimal(fields, "valor"),
		Categoria:   fieldString(fields, "categoria"),
		Description: fieldString(fields, "description"),
	}

	// The image is written before the insert so the row never references a
	// file that does not exist. Only a file this request actually wrote is
	// removed on a failed insert: a resolved existing reference may back
	// other rows.
	var stored string
	if payload := fieldString(fields, "imagen"); payload != "" {
		ref, written, err := s.images.Save(payload)
		if err != nil {
			return nil, apierror.Internal("Error al guardar la imagen: " + err.Error())
		}
		if written {
			stored = ref
		}
		ramo.Imagen = &ref
	}

	if err := s.repo.Create(ctx, ramo); err != nil {
		if stored != "" {
			s.images.Remove(stored)
		}
		return nil, apierror.Internal("Error al crear ramo: " + err.Error())
	}
	return &dto.CreatedResponse{ID: ramo.ID, Message: "Ramo creado exitosamente"}, nil
}

func (s *ramoService) Actualizar(ctx context.Context, id int64, input map[string]any) (*dto.MessageResponse, error) {
	fields := validation.Coerce(input, dto.RamoFields)

	// A request that carries an image always rewrites the imagen column,
	// even when the write degrades to the previous reference. No file is
	// removed until the row update has actually landed: the previous image
	// must survive a failed update, and a freshly written replacement must
	// not be orphaned by one.
	var (
		newRef  string
		prevRef string
		written bool
	)
	if payload, ok := fields["imagen"].(string); ok {
		prev, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound("Ramo no encontrado")
			}
			return nil, apierror.Internal("Error al obtener ramo: " + err.Error())
		}
		if prev.Imagen != nil {
			prevRef = *prev.Imagen
		}
		ref, w, err := s.images.Save(payload)
		if err != nil {
			// Degraded: the row keeps its previous image rather than
			// pointing at a file that was never written.
			fields["imagen"] = prevRef
		} else {
			newRef, written = ref, w
			fields["imagen"] = ref
		}
	}

	if len(fields) == 0 {
		return nil, apierror.Validation("No hay campos para actualizar")
	}
	rows, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if written {
			s.images.Remove(newRef)
		}
		return nil, apierror.Internal("Error al actualizar ramo: " + err.Error())
	}
	if rows == 0 {
		if written {
			s.images.Remove(newRef)
		}
		return nil, apierror.NotFound("Ramo no encontrado")
	}
	if written && prevRef != "" && prevRef != newRef {
		s.images.Remove(prevRef)
	}
	return &dto.MessageResponse{Message: "Ramo actualizado exitosamente"}, nil
}

func (s *ramoService) Eliminar(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	prev, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Ramo no encontrado")
		}
		return nil, apierror.Internal("Error al obtener ramo: " + err.Error())
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, apierror.Internal("Error al eliminar ramo: " + err.Error())
	}
	if rows == 0 {
		// Lost a race with a concurrent delete; the image went with it.
		return nil, apierror.NotFound("Ramo no encontrado")
	}
	if prev.Imagen != nil && *prev.Imagen != "" {
		s.images.Remove(*prev.Imagen)
	}
	return &dto.MessageResponse{Message: "Ramo eliminado exitosamente"}, nil
}

// ─── Coerced-field accessors ─────────────────────────────────────────────────

func fieldString(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func fieldDecimal(fields map[string]any, key string) decimal.Decimal {
	if d, ok := fields[key].(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}
