package service

import (
	"context"
	"errors"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CotizacionService interface {
	ProductosParaCotizar(ctx context.Context, solicitudID uuid.UUID) ([]dto.ProductoParaCotizarItem, error)
	BuscarProveedores(ctx context.Context, termino string) ([]dto.ProveedorBusquedaItem, error)
	Registrar(ctx context.Context, req dto.RegistrarCotizacionRequest) (*dto.RegistrarCotizacionResponse, error)
}

type cotizacionService struct {
	repo          repository.CotizacionRepository
	solicitudRepo repository.SolicitudRepository
	pedidoRepo    repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
}

func NewCotizacionService(
	repo repository.CotizacionRepository,
	solicitudRepo repository.SolicitudRepository,
	pedidoRepo repository.PedidoRepository,
	proveedorRepo repository.ProveedorRepository,
) CotizacionService {
	return &cotizacionService{
		repo:          repo,
		solicitudRepo: solicitudRepo,
		pedidoRepo:    pedidoRepo,
		proveedorRepo: proveedorRepo,
	}
}

func (s *cotizacionService) ProductosParaCotizar(ctx context.Context, solicitudID uuid.UUID) ([]dto.ProductoParaCotizarItem, error) {
	detalles, err := s.solicitudRepo.ListDetalles(ctx, solicitudID)
	if err != nil {
		return nil, domain.Storage("listar productos de solicitud", err)
	}
	if len(detalles) == 0 {
		return nil, domain.NotFound("solicitud", "solicitud %s no existe o no tiene líneas", solicitudID)
	}

	items := make([]dto.ProductoParaCotizarItem, 0, len(detalles))
	for _, d := range detalles {
		item := dto.ProductoParaCotizarItem{
			ProductoID:         d.ProductoID.String(),
			CantidadSolicitada: d.CantidadSolicitada,
		}
		if d.Producto != nil {
			item.NombreProducto = d.Producto.Nombre
			item.UnidadMedida = d.Producto.UnidadMedida
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *cotizacionService) BuscarProveedores(ctx context.Context, termino string) ([]dto.ProveedorBusquedaItem, error) {
	proveedores, err := s.proveedorRepo.Search(ctx, termino, 10)
	if err != nil {
		return nil, domain.Storage("buscar proveedores", err)
	}
	items := make([]dto.ProveedorBusquedaItem, 0, len(proveedores))
	for _, p := range proveedores {
		items = append(items, dto.ProveedorBusquedaItem{
			ID:              p.ID.String(),
			NombreComercial: p.NombreComercial,
		})
	}
	return items, nil
}

// Registrar guarda la respuesta valorizada de un proveedor y propaga en la
// misma transacción: la solicitud pasa a Cotizada y las líneas de pedido
// que la originaron pasan de En Cotización a Cotizado, navegando la FK de
// enlace (nunca por producto: el mismo producto puede estar en otra
// solicitud en curso y esa no debe moverse).
func (s *cotizacionService) Registrar(ctx context.Context, req dto.RegistrarCotizacionRequest) (*dto.RegistrarCotizacionResponse, error) {
	if len(req.ProductosCotizados) == 0 {
		return nil, domain.Validation("la cotización debe incluir al menos un producto")
	}

	solicitudID, err := uuid.Parse(req.SolicitudID)
	if err != nil {
		return nil, domain.Validation("solicitud_id inválido")
	}
	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		return nil, domain.Validation("proveedor_id inválido")
	}
	fechaEmision, err := time.Parse(fechaISO, req.FechaEmision)
	if err != nil {
		return nil, domain.Validation("fecha_emision inválida, se espera YYYY-MM-DD")
	}
	var fechaGarantia time.Time
	if req.FechaGarantia != "" {
		if fechaGarantia, err = time.Parse(fechaISO, req.FechaGarantia); err != nil {
			return nil, domain.Validation("fecha_garantia inválida, se espera YYYY-MM-DD")
		}
	}

	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		return nil, domain.FromGorm("proveedor", err)
	}

	cotizacion := model.Cotizacion{
		SolicitudID:      solicitudID,
		ProveedorID:      proveedorID,
		FechaEmision:     fechaEmision,
		FechaGarantia:    fechaGarantia,
		PlazoEntregaDias: req.PlazoEntregaDias,
		MontoTotal:       req.MontoTotal,
	}
	for _, item := range req.ProductosCotizados {
		productoID, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, domain.Validation("producto_id inválido: %s", item.ProductoID)
		}
		cotizacion.Detalles = append(cotizacion.Detalles, model.DetalleCotizacion{
			ProductoID:    productoID,
			CostoTotal:    item.CostoTotal,
			ModalidadPago: item.ModalidadPago,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Lock the solicitud row: a concurrent Registrar or award on the
		// same RFQ serializes here.
		solicitud, err := s.solicitudRepo.FindByIDForUpdateTx(tx, solicitudID)
		if err != nil {
			return domain.FromGorm("solicitud", err)
		}
		if solicitud.Estado == model.SolicitudAdjudicada {
			return domain.Integrity("la solicitud %s ya fue adjudicada", req.SolicitudID)
		}

		// One quotation per (solicitud, proveedor).
		if _, err := s.repo.FindBySolicitudProveedorTx(tx, solicitudID, proveedorID); err == nil {
			return domain.Integrity("el proveedor ya registró una cotización para esta solicitud")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.repo.CreateTx(tx, &cotizacion); err != nil {
			return err
		}
		if err := s.solicitudRepo.UpdateEstadoTx(tx, solicitudID, model.SolicitudCotizada); err != nil {
			return err
		}
		return s.pedidoRepo.CascadeEstadoPorSolicitudTx(tx, solicitudID, model.LineaEnCotizacion, model.LineaCotizada)
	})
	if txErr != nil {
		if domain.IsValidation(txErr) || domain.IsNotFound(txErr) || domain.IsIntegrity(txErr) {
			return nil, txErr
		}
		return nil, domain.Storage("registrar cotización", txErr)
	}

	return &dto.RegistrarCotizacionResponse{
		ID:              cotizacion.ID.String(),
		SolicitudID:     req.SolicitudID,
		EstadoSolicitud: model.SolicitudCotizada,
	}, nil
}
