package service

import (
	"context"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const fechaISO = "2006-01-02"

type PedidoService interface {
	Listar(ctx context.Context) ([]dto.PedidoResumenItem, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.PedidoDetalleResponse, error)
	MarcarRevisado(ctx context.Context, id uuid.UUID) error
	ListarItemsPendientes(ctx context.Context, desde, hasta *time.Time) ([]dto.ItemPendienteResponse, error)
}

type pedidoService struct {
	repo repository.PedidoRepository
}

func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResumenItem, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Storage("listar pedidos", err)
	}
	items := make([]dto.PedidoResumenItem, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, dto.PedidoResumenItem{
			ID:          p.ID.String(),
			FechaPedido: p.FechaPedido.Format(fechaISO),
			HoraPedido:  p.FechaPedido.Format("15:04"),
			Estado:      p.Estado,
		})
	}
	return items, nil
}

func (s *pedidoService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.PedidoDetalleResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.FromGorm("pedido", err)
	}

	resp := &dto.PedidoDetalleResponse{
		ID:              pedido.ID.String(),
		FechaPedido:     pedido.FechaPedido.Format(fechaISO),
		HoraPedido:      pedido.FechaPedido.Format("15:04"),
		Estado:          pedido.Estado,
		AreaSolicitante: pedido.AreaSolicitante,
		Productos:       make([]dto.PedidoDetalleItem, 0, len(pedido.Detalles)),
	}
	for _, d := range pedido.Detalles {
		item := dto.PedidoDetalleItem{
			ProductoID:              d.ProductoID.String(),
			CantidadRequerida:       d.CantidadRequerida,
			FechaRequerida:          d.FechaRequerida.Format(fechaISO),
			TipoDestino:             d.TipoDestino,
			DireccionDestinoExterno: d.DireccionDestinoExterno,
			Estado:                  d.Estado,
		}
		if d.Producto != nil {
			item.NombreProducto = d.Producto.Nombre
			item.UnidadMedida = d.Producto.UnidadMedida
		}
		resp.Productos = append(resp.Productos, item)
	}
	return resp, nil
}

// MarcarRevisado flips the pedido and all its lines to Revisado.
// Calling it on an already reviewed pedido is a no-op; a pedido with no
// lines is not an error.
func (s *pedidoService) MarcarRevisado(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.FromGorm("pedido", err)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.MarcarRevisadoTx(tx, id)
	})
	if txErr != nil {
		return domain.Storage("marcar pedido revisado", txErr)
	}
	return nil
}

func (s *pedidoService) ListarItemsPendientes(ctx context.Context, desde, hasta *time.Time) ([]dto.ItemPendienteResponse, error) {
	detalles, err := s.repo.ListDetallesRevisados(ctx, desde, hasta)
	if err != nil {
		return nil, domain.Storage("listar items pendientes", err)
	}
	items := make([]dto.ItemPendienteResponse, 0, len(detalles))
	for _, d := range detalles {
		item := dto.ItemPendienteResponse{
			PedidoID:          d.PedidoID.String(),
			ProductoID:        d.ProductoID.String(),
			CantidadRequerida: d.CantidadRequerida,
			FechaRequerida:    d.FechaRequerida.Format(fechaISO),
		}
		if d.Producto != nil {
			item.NombreProducto = d.Producto.Nombre
			item.UnidadMedida = d.Producto.UnidadMedida
		}
		items = append(items, item)
	}
	return items, nil
}
