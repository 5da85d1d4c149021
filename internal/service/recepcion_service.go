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

type RecepcionService interface {
	OrdenesPendientes(ctx context.Context) ([]dto.OrdenPendienteItem, error)
	ProductosProgramables(ctx context.Context, ordenID uuid.UUID, modalidad string) ([]dto.ProductoProgramableItem, error)
	Programar(ctx context.Context, req dto.ProgramarRecepcionRequest) (*dto.ProgramarRecepcionResponse, error)
}

type recepcionService struct {
	ordenRepo       repository.OrdenRepository
	recepcionRepo   repository.RecepcionRepository
	solicitudRepo   repository.SolicitudRepository
	instalacionRepo repository.InstalacionRepository
}

func NewRecepcionService(
	ordenRepo repository.OrdenRepository,
	recepcionRepo repository.RecepcionRepository,
	solicitudRepo repository.SolicitudRepository,
	instalacionRepo repository.InstalacionRepository,
) RecepcionService {
	return &recepcionService{
		ordenRepo:       ordenRepo,
		recepcionRepo:   recepcionRepo,
		solicitudRepo:   solicitudRepo,
		instalacionRepo: instalacionRepo,
	}
}

// destinoParaModalidad maps the chosen logistics modality to the
// destination type the originating requisition line must declare.
func destinoParaModalidad(modalidad string) (string, error) {
	switch modalidad {
	case model.ModalidadEntregaAlmacen:
		return model.DestinoInterno, nil
	case model.ModalidadTransportePropio:
		return model.DestinoExterno, nil
	default:
		return "", domain.Validation("modalidad logística desconocida: %s", modalidad)
	}
}

func (s *recepcionService) OrdenesPendientes(ctx context.Context) ([]dto.OrdenPendienteItem, error) {
	rows, err := s.ordenRepo.ListPendientesRecepcion(ctx)
	if err != nil {
		return nil, domain.Storage("listar órdenes pendientes", err)
	}
	items := make([]dto.OrdenPendienteItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.OrdenPendienteItem{
			ID:              r.Orden.ID.String(),
			NombreComercial: r.Proveedor.NombreComercial,
			FechaEmision:    r.Orden.FechaEmision.Format(fechaISO),
			Monto:           r.Orden.Monto,
			Estado:          r.Orden.Estado,
		})
	}
	return items, nil
}

// ProductosProgramables lists the order lines whose destination matches the
// chosen modality, with the quantity still unscheduled. Lines with another
// destination are omitted, not reported as zero.
func (s *recepcionService) ProductosProgramables(ctx context.Context, ordenID uuid.UUID, modalidad string) ([]dto.ProductoProgramableItem, error) {
	destino, err := destinoParaModalidad(modalidad)
	if err != nil {
		return nil, err
	}

	orden, err := s.ordenRepo.FindByID(ctx, ordenID)
	if err != nil {
		return nil, domain.FromGorm("orden de compra", err)
	}
	if orden.Cotizacion == nil {
		return nil, domain.Storage("productos programables", gorm.ErrRecordNotFound)
	}

	destinos, err := s.solicitudRepo.MapTipoDestino(ctx, orden.Cotizacion.SolicitudID)
	if err != nil {
		return nil, domain.Storage("resolver destinos de la solicitud", err)
	}
	programadas, err := s.recepcionRepo.SumProgramadas(ctx, ordenID)
	if err != nil {
		return nil, domain.Storage("sumar cantidades programadas", err)
	}

	var items []dto.ProductoProgramableItem
	for _, det := range orden.Detalles {
		if destinos[det.ProductoID] != destino {
			continue
		}
		pendiente := det.CantidadComprada - programadas[det.ProductoID]
		if pendiente <= 0 {
			continue
		}
		item := dto.ProductoProgramableItem{
			ProductoID:        det.ProductoID.String(),
			CantidadComprada:  det.CantidadComprada,
			CantidadPendiente: pendiente,
			TipoDestino:       destino,
		}
		if det.Producto != nil {
			item.NombreProducto = det.Producto.Nombre
			item.UnidadMedida = det.Producto.UnidadMedida
		}
		items = append(items, item)
	}
	return items, nil
}

// Programar registra una entrega parcial contra la orden. Solo persisten
// los ítems con cantidad positiva; nunca se crea una recepción sin líneas.
// Cuando cada línea de la orden queda completamente programada, la orden
// pasa a Programada.
func (s *recepcionService) Programar(ctx context.Context, req dto.ProgramarRecepcionRequest) (*dto.ProgramarRecepcionResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.Validation("no hay ítems para programar")
	}

	ordenID, err := uuid.Parse(req.OrdenID)
	if err != nil {
		return nil, domain.Validation("orden_id inválido")
	}
	destino, err := destinoParaModalidad(req.ModalidadLogistica)
	if err != nil {
		return nil, err
	}
	fecha, err := time.Parse(fechaISO, req.FechaProgramada)
	if err != nil {
		return nil, domain.Validation("fecha_programada inválida: %s", req.FechaProgramada)
	}
	if _, err := time.Parse("15:04", req.HoraProgramada); err != nil {
		return nil, domain.Validation("hora_programada inválida: %s", req.HoraProgramada)
	}

	// Ítems con cantidad cero o negativa se descartan, no se persisten.
	positivos := make(map[uuid.UUID]int)
	for _, item := range req.Items {
		productoID, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, domain.Validation("producto_id inválido: %s", item.ProductoID)
		}
		if item.CantidadAProgramar > 0 {
			positivos[productoID] += item.CantidadAProgramar
		}
	}
	if len(positivos) == 0 {
		return nil, domain.Validation("todas las cantidades a programar son cero")
	}

	var instalacionID *uuid.UUID
	if req.ModalidadLogistica == model.ModalidadEntregaAlmacen {
		if req.InstalacionID == nil {
			return nil, domain.Validation("la entrega en almacén requiere una instalación destino")
		}
		id, err := uuid.Parse(*req.InstalacionID)
		if err != nil {
			return nil, domain.Validation("instalacion_id inválido")
		}
		if _, err := s.instalacionRepo.FindByID(ctx, id); err != nil {
			return nil, domain.FromGorm("instalación", err)
		}
		instalacionID = &id
	}

	// Pre-flight fuera de la transacción: pertenencia a la orden y
	// coherencia destino-modalidad.
	orden, err := s.ordenRepo.FindByID(ctx, ordenID)
	if err != nil {
		return nil, domain.FromGorm("orden de compra", err)
	}
	if orden.Cotizacion == nil {
		return nil, domain.Storage("programar recepción", gorm.ErrRecordNotFound)
	}
	destinos, err := s.solicitudRepo.MapTipoDestino(ctx, orden.Cotizacion.SolicitudID)
	if err != nil {
		return nil, domain.Storage("resolver destinos de la solicitud", err)
	}
	lineas := make(map[uuid.UUID]int, len(orden.Detalles))
	for _, det := range orden.Detalles {
		lineas[det.ProductoID] = det.CantidadComprada
	}
	for productoID := range positivos {
		if _, ok := lineas[productoID]; !ok {
			return nil, domain.Integrity("el producto %s no pertenece a la orden", productoID)
		}
		if destinos[productoID] != destino {
			return nil, domain.Integrity("el destino del producto %s no corresponde a la modalidad %s", productoID, req.ModalidadLogistica)
		}
	}

	recepcion := model.Recepcion{
		OrdenID:            ordenID,
		InstalacionID:      instalacionID,
		FechaProgramada:    fecha,
		HoraProgramada:     req.HoraProgramada,
		ModalidadLogistica: req.ModalidadLogistica,
		Estado:             model.RecepcionProgramada,
	}
	estadoOrden := model.OrdenEmitida

	txErr := runTx(ctx, s.recepcionRepo.DB(), func(tx *gorm.DB) error {
		// El lock de la orden serializa programaciones concurrentes: la
		// suma de programadas nunca se lee desactualizada.
		bloqueada, err := s.ordenRepo.FindByIDForUpdateTx(tx, ordenID)
		if err != nil {
			return domain.FromGorm("orden de compra", err)
		}
		if bloqueada.Estado != model.OrdenEmitida {
			return domain.Integrity("la orden %s ya fue programada en su totalidad", req.OrdenID)
		}

		programadas, err := s.recepcionRepo.SumProgramadasTx(tx, ordenID)
		if err != nil {
			return err
		}
		for productoID, cantidad := range positivos {
			pendiente := lineas[productoID] - programadas[productoID]
			if cantidad > pendiente {
				return domain.Integrity(
					"la cantidad a programar (%d) excede lo pendiente (%d) del producto %s",
					cantidad, pendiente, productoID)
			}
			recepcion.Detalles = append(recepcion.Detalles, model.DetalleRecepcion{
				ProductoID:         productoID,
				CantidadProgramada: cantidad,
			})
		}

		if err := s.recepcionRepo.CreateTx(tx, &recepcion); err != nil {
			return err
		}

		// La orden se completa cuando cada línea, no el agregado, queda
		// sin cantidad pendiente.
		completa := true
		for productoID, comprada := range lineas {
			if comprada-programadas[productoID]-positivos[productoID] > 0 {
				completa = false
				break
			}
		}
		if completa {
			if err := s.ordenRepo.UpdateEstadoTx(tx, ordenID, model.OrdenProgramada); err != nil {
				return err
			}
			estadoOrden = model.OrdenProgramada
		}
		return nil
	})
	if txErr != nil {
		if domain.IsValidation(txErr) || domain.IsNotFound(txErr) || domain.IsIntegrity(txErr) {
			return nil, txErr
		}
		return nil, domain.Storage("programar recepción", txErr)
	}

	return &dto.ProgramarRecepcionResponse{
		ID:               recepcion.ID.String(),
		OrdenID:          req.OrdenID,
		EstadoOrden:      estadoOrden,
		ItemsProgramados: len(recepcion.Detalles),
	}, nil
}
