package service

import (
	"context"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SolicitudService interface {
	Listar(ctx context.Context) ([]dto.SolicitudResumenItem, error)
	Generar(ctx context.Context, req dto.GenerarSolicitudRequest) (*dto.GenerarSolicitudResponse, error)
}

type solicitudService struct {
	repo       repository.SolicitudRepository
	pedidoRepo repository.PedidoRepository
}

func NewSolicitudService(repo repository.SolicitudRepository, pedidoRepo repository.PedidoRepository) SolicitudService {
	return &solicitudService{repo: repo, pedidoRepo: pedidoRepo}
}

func (s *solicitudService) Listar(ctx context.Context) ([]dto.SolicitudResumenItem, error) {
	rows, err := s.repo.ListResumen(ctx)
	if err != nil {
		return nil, domain.Storage("listar solicitudes", err)
	}
	items := make([]dto.SolicitudResumenItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.SolicitudResumenItem{
			ID:           r.ID.String(),
			FechaEmision: r.FechaEmision,
			Estado:       r.Estado,
			TotalItems:   r.TotalItems,
		})
	}
	return items, nil
}

// Generar crea una solicitud de cotización (estado Enviada, fechada hoy)
// a partir de líneas de pedido seleccionadas por el usuario. Cada línea
// seleccionada queda En Cotización y la solicitud guarda la FK explícita
// hacia ella. No se agregan cantidades entre duplicados: el llamador ya
// consolidó su selección.
func (s *solicitudService) Generar(ctx context.Context, req dto.GenerarSolicitudRequest) (*dto.GenerarSolicitudResponse, error) {
	if len(req.ItemsSeleccionados) == 0 {
		return nil, domain.Validation("debe seleccionar al menos un ítem para generar la solicitud")
	}

	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, domain.Validation("usuario_id inválido")
	}

	// Pre-flight: resolve every selected line before touching the DB so the
	// failure surfaces without a half-built solicitud.
	type seleccion struct {
		detalle  *model.DetallePedido
		cantidad int
	}
	resueltos := make([]seleccion, 0, len(req.ItemsSeleccionados))
	for _, item := range req.ItemsSeleccionados {
		pedidoID, err := uuid.Parse(item.PedidoID)
		if err != nil {
			return nil, domain.Validation("pedido_id inválido: %s", item.PedidoID)
		}
		productoID, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, domain.Validation("producto_id inválido: %s", item.ProductoID)
		}
		if item.Cantidad <= 0 {
			return nil, domain.Validation("cantidad inválida para producto %s", item.ProductoID)
		}

		detalle, err := s.pedidoRepo.FindDetalle(ctx, pedidoID, productoID)
		if err != nil {
			return nil, domain.FromGorm("línea de pedido", err)
		}
		if detalle.Estado != model.LineaRevisada {
			return nil, domain.Integrity(
				"la línea (%s, %s) no está revisada: estado %q", item.PedidoID, item.ProductoID, detalle.Estado)
		}
		resueltos = append(resueltos, seleccion{detalle: detalle, cantidad: item.Cantidad})
	}

	solicitud := model.SolicitudCotizacion{
		UsuarioID:    usuarioID,
		FechaEmision: time.Now().Truncate(24 * time.Hour),
		Estado:       model.SolicitudEnviada,
	}
	for _, sel := range resueltos {
		solicitud.Detalles = append(solicitud.Detalles, model.DetalleSolicitud{
			DetallePedidoID:    sel.detalle.ID,
			ProductoID:         sel.detalle.ProductoID,
			CantidadSolicitada: sel.cantidad,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &solicitud); err != nil {
			return err
		}
		for _, sel := range resueltos {
			if err := s.pedidoRepo.UpdateDetalleEstadoTx(tx, sel.detalle.ID, model.LineaEnCotizacion); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, domain.Storage("generar solicitud", txErr)
	}

	return &dto.GenerarSolicitudResponse{
		ID:           solicitud.ID.String(),
		FechaEmision: solicitud.FechaEmision.Format(fechaISO),
		Estado:       solicitud.Estado,
		TotalItems:   len(solicitud.Detalles),
	}, nil
}
