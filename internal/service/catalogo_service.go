package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const catalogoCacheTTL = 4 * time.Hour

// CatalogoService expone el catálogo maestro en modo solo lectura: el
// abastecimiento consume productos, proveedores e instalaciones pero no
// los administra.
type CatalogoService interface {
	ListarProductos(ctx context.Context) ([]dto.ProductoCatalogoResponse, error)
	ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoCatalogoResponse, error)
	ListarProveedores(ctx context.Context) ([]dto.ProveedorResponse, error)
	ObtenerProveedor(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error)
	ListarInstalaciones(ctx context.Context) ([]dto.InstalacionResponse, error)
}

type catalogoService struct {
	productoRepo    repository.ProductoRepository
	proveedorRepo   repository.ProveedorRepository
	instalacionRepo repository.InstalacionRepository
	rdb             *redis.Client
}

func NewCatalogoService(
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	instalacionRepo repository.InstalacionRepository,
	rdb *redis.Client,
) CatalogoService {
	return &catalogoService{
		productoRepo:    productoRepo,
		proveedorRepo:   proveedorRepo,
		instalacionRepo: instalacionRepo,
		rdb:             rdb,
	}
}

func productoCatalogoDTO(p *model.Producto) dto.ProductoCatalogoResponse {
	resp := dto.ProductoCatalogoResponse{
		ID:           p.ID.String(),
		Nombre:       p.Nombre,
		Marca:        p.Marca,
		UnidadMedida: p.UnidadMedida,
		PrecioBase:   p.PrecioBase,
	}
	if p.Categoria != nil {
		resp.Rubro = p.Categoria.Rubro
		resp.Familia = p.Categoria.Familia
		resp.Clase = p.Categoria.Clase
	}
	return resp
}

// ListarProductos serves the full active catalog, Redis-cached. The catalog
// changes rarely; a stale read of a few hours is acceptable here.
func (s *catalogoService) ListarProductos(ctx context.Context) ([]dto.ProductoCatalogoResponse, error) {
	const cacheKey = "catalogo:productos"

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp []dto.ProductoCatalogoResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return resp, nil
			}
		}
	}

	productos, err := s.productoRepo.ListCatalogo(ctx)
	if err != nil {
		return nil, domain.Storage("listar catálogo de productos", err)
	}
	resp := make([]dto.ProductoCatalogoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, productoCatalogoDTO(&productos[i]))
	}

	// Populate cache — best effort, ignore errors
	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(context.Background(), cacheKey, b, catalogoCacheTTL).Err()
		}
	}
	return resp, nil
}

func (s *catalogoService) ObtenerProducto(ctx context.Context, id uuid.UUID) (*dto.ProductoCatalogoResponse, error) {
	producto, err := s.productoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.FromGorm("producto", err)
	}
	resp := productoCatalogoDTO(producto)
	return &resp, nil
}

func (s *catalogoService) ListarProveedores(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.proveedorRepo.List(ctx)
	if err != nil {
		return nil, domain.Storage("listar proveedores", err)
	}
	resp := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		resp = append(resp, dto.ProveedorResponse{
			ID:              p.ID.String(),
			NombreComercial: p.NombreComercial,
			RazonSocial:     p.RazonSocial,
			RUC:             p.RUC,
		})
	}
	return resp, nil
}

func (s *catalogoService) ObtenerProveedor(ctx context.Context, id uuid.UUID) (*dto.ProveedorResponse, error) {
	p, err := s.proveedorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.FromGorm("proveedor", err)
	}
	return &dto.ProveedorResponse{
		ID:              p.ID.String(),
		NombreComercial: p.NombreComercial,
		RazonSocial:     p.RazonSocial,
		RUC:             p.RUC,
	}, nil
}

func (s *catalogoService) ListarInstalaciones(ctx context.Context) ([]dto.InstalacionResponse, error) {
	instalaciones, err := s.instalacionRepo.List(ctx)
	if err != nil {
		return nil, domain.Storage("listar instalaciones", err)
	}
	resp := make([]dto.InstalacionResponse, 0, len(instalaciones))
	for _, i := range instalaciones {
		resp = append(resp, dto.InstalacionResponse{
			ID:        i.ID.String(),
			Codigo:    i.Codigo,
			Nombre:    i.Nombre,
			Direccion: i.Direccion,
		})
	}
	return resp, nil
}
