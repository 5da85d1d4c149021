package service

import (
	"context"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdjudicacionService interface {
	ProveedoresCotizantes(ctx context.Context, solicitudID uuid.UUID) ([]dto.ProveedorBusquedaItem, error)
	ObtenerOferta(ctx context.Context, solicitudID, proveedorID uuid.UUID) ([]dto.DetalleOfertaItem, error)
	GenerarOrdenes(ctx context.Context, req dto.GenerarOrdenesRequest) (*dto.GenerarOrdenesResponse, error)
}

type adjudicacionService struct {
	cotizacionRepo repository.CotizacionRepository
	solicitudRepo  repository.SolicitudRepository
	pedidoRepo     repository.PedidoRepository
	ordenRepo      repository.OrdenRepository
	dispatcher     *worker.Dispatcher
}

func NewAdjudicacionService(
	cotizacionRepo repository.CotizacionRepository,
	solicitudRepo repository.SolicitudRepository,
	pedidoRepo repository.PedidoRepository,
	ordenRepo repository.OrdenRepository,
	dispatcher *worker.Dispatcher,
) AdjudicacionService {
	return &adjudicacionService{
		cotizacionRepo: cotizacionRepo,
		solicitudRepo:  solicitudRepo,
		pedidoRepo:     pedidoRepo,
		ordenRepo:      ordenRepo,
		dispatcher:     dispatcher,
	}
}

func (s *adjudicacionService) ProveedoresCotizantes(ctx context.Context, solicitudID uuid.UUID) ([]dto.ProveedorBusquedaItem, error) {
	proveedores, err := s.cotizacionRepo.ListProveedoresCotizantes(ctx, solicitudID)
	if err != nil {
		return nil, domain.Storage("listar proveedores cotizantes", err)
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

func (s *adjudicacionService) ObtenerOferta(ctx context.Context, solicitudID, proveedorID uuid.UUID) ([]dto.DetalleOfertaItem, error) {
	rows, err := s.cotizacionRepo.ListOferta(ctx, solicitudID, proveedorID)
	if err != nil {
		return nil, domain.Storage("obtener oferta", err)
	}
	if len(rows) == 0 {
		return nil, domain.NotFound("cotización", "el proveedor %s no cotizó la solicitud %s", proveedorID, solicitudID)
	}
	items := make([]dto.DetalleOfertaItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DetalleOfertaItem{
			ProductoID:         r.ProductoID.String(),
			NombreProducto:     r.NombreProducto,
			CantidadSolicitada: r.CantidadSolicitada,
			UnidadMedida:       r.UnidadMedida,
			CostoTotal:         r.CostoTotal,
			ModalidadPago:      r.ModalidadPago,
		})
	}
	return items, nil
}

// grupoOrden es la clave compuesta de partición: una orden de compra por
// cada par (proveedor, modalidad de pago) presente en la adjudicación.
type grupoOrden struct {
	ProveedorID   uuid.UUID
	ModalidadPago string
}

// GenerarOrdenes particiona los ítems adjudicados por (proveedor,
// modalidad de pago) y emite una orden de compra por partición, con el
// monto igual a la suma de los costos de sus ítems. Tras crear todas las
// órdenes, la solicitud pasa a Adjudicada y las líneas de pedido
// originales de Cotizado a Adjudicado.
func (s *adjudicacionService) GenerarOrdenes(ctx context.Context, req dto.GenerarOrdenesRequest) (*dto.GenerarOrdenesResponse, error) {
	if len(req.ItemsAdjudicados) == 0 {
		return nil, domain.Validation("no hay ítems adjudicados para generar órdenes")
	}

	solicitudID, err := uuid.Parse(req.SolicitudID)
	if err != nil {
		return nil, domain.Validation("solicitud_id inválido")
	}

	// Partition preserving first-seen order so the response is stable.
	grupos := make(map[grupoOrden][]dto.ItemAdjudicado)
	var orden []grupoOrden
	for _, item := range req.ItemsAdjudicados {
		proveedorID, err := uuid.Parse(item.ProveedorID)
		if err != nil {
			return nil, domain.Validation("proveedor_id inválido: %s", item.ProveedorID)
		}
		if _, err := uuid.Parse(item.ProductoID); err != nil {
			return nil, domain.Validation("producto_id inválido: %s", item.ProductoID)
		}
		if item.CantidadComprada <= 0 {
			return nil, domain.Validation("cantidad_comprada inválida para producto %s", item.ProductoID)
		}
		clave := grupoOrden{ProveedorID: proveedorID, ModalidadPago: item.ModalidadPago}
		if _, visto := grupos[clave]; !visto {
			orden = append(orden, clave)
		}
		grupos[clave] = append(grupos[clave], item)
	}

	var generadas []dto.OrdenGeneradaItem
	hoy := time.Now().Truncate(24 * time.Hour)

	txErr := runTx(ctx, s.ordenRepo.DB(), func(tx *gorm.DB) error {
		// Lock the solicitud for the whole awarding transaction.
		solicitud, err := s.solicitudRepo.FindByIDForUpdateTx(tx, solicitudID)
		if err != nil {
			return domain.FromGorm("solicitud", err)
		}
		if solicitud.Estado == model.SolicitudAdjudicada {
			return domain.Integrity("la solicitud %s ya fue adjudicada", req.SolicitudID)
		}

		for _, clave := range orden {
			items := grupos[clave]

			cotizacion, err := s.cotizacionRepo.FindBySolicitudProveedorTx(tx, solicitudID, clave.ProveedorID)
			if err != nil {
				return domain.FromGorm("cotización del proveedor", err)
			}

			monto := decimal.Zero
			oc := model.OrdenCompra{
				CotizacionID:  cotizacion.ID,
				FechaEmision:  hoy,
				ModalidadPago: clave.ModalidadPago,
				Estado:        model.OrdenEmitida,
			}
			for _, item := range items {
				productoID, _ := uuid.Parse(item.ProductoID)
				monto = monto.Add(item.CostoTotal)
				oc.Detalles = append(oc.Detalles, model.DetalleOrden{
					ProductoID:       productoID,
					CantidadComprada: item.CantidadComprada,
					CostoTotal:       item.CostoTotal,
				})
			}
			oc.Monto = monto

			if err := s.ordenRepo.CreateTx(tx, &oc); err != nil {
				return err
			}
			generadas = append(generadas, dto.OrdenGeneradaItem{
				ID:            oc.ID.String(),
				ProveedorID:   clave.ProveedorID.String(),
				ModalidadPago: clave.ModalidadPago,
				Monto:         monto,
				TotalItems:    len(items),
			})
		}

		if err := s.solicitudRepo.UpdateEstadoTx(tx, solicitudID, model.SolicitudAdjudicada); err != nil {
			return err
		}
		return s.pedidoRepo.CascadeEstadoPorSolicitudTx(tx, solicitudID, model.LineaCotizada, model.LineaAdjudicada)
	})
	if txErr != nil {
		if domain.IsValidation(txErr) || domain.IsNotFound(txErr) || domain.IsIntegrity(txErr) {
			return nil, txErr
		}
		return nil, domain.Storage("generar órdenes de compra", txErr)
	}

	// Best-effort supplier notification (PDF + e-mail), after commit.
	if s.dispatcher != nil {
		for _, g := range generadas {
			_ = s.dispatcher.EnqueueOrdenEmitida(ctx, worker.OrdenEmitidaPayload{OrdenID: g.ID})
		}
	}

	return &dto.GenerarOrdenesResponse{
		SolicitudID: req.SolicitudID,
		Ordenes:     generadas,
	}, nil
}
