package service

import (
	"context"
	"testing"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/domain"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/dto"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// entornoAdjudicacion arma una solicitud Cotizada con cotizaciones de dos
// proveedores sobre los mismos productos.
type entornoAdjudicacion struct {
	pedidoRepo    *stubPedidoRepo
	solicitudRepo *stubSolicitudRepo
	cotRepo       *stubCotizacionRepo
	ordenRepo     *stubOrdenRepo

	sol        *model.SolicitudCotizacion
	prodA      uuid.UUID
	prodB      uuid.UUID
	proveedor1 *model.Proveedor
	proveedor2 *model.Proveedor
}

func armaEntornoAdjudicacion(t *testing.T) *entornoAdjudicacion {
	t.Helper()
	e := &entornoAdjudicacion{
		pedidoRepo:    newStubPedidoRepo(),
		solicitudRepo: newStubSolicitudRepo(),
		cotRepo:       newStubCotizacionRepo(),
		ordenRepo:     newStubOrdenRepo(),
		prodA:         uuid.New(),
		prodB:         uuid.New(),
	}
	e.pedidoRepo.solicitudes = e.solicitudRepo
	e.solicitudRepo.pedidos = e.pedidoRepo
	e.cotRepo.solicitudes = e.solicitudRepo
	e.ordenRepo.cotizaciones = e.cotRepo

	e.sol = armaSolicitudEnCotizacion(t, e.pedidoRepo, e.solicitudRepo, e.prodA, e.prodB)
	e.sol.Estado = model.SolicitudCotizada
	for _, ds := range e.sol.Detalles {
		e.pedidoRepo.detalles[ds.DetallePedidoID].Estado = model.LineaCotizada
	}

	e.proveedor1 = &model.Proveedor{ID: uuid.New(), NombreComercial: "Aceros del Pacífico"}
	e.proveedor2 = &model.Proveedor{ID: uuid.New(), NombreComercial: "FerreSur"}
	e.cotRepo.proveedores[e.proveedor1.ID] = e.proveedor1
	e.cotRepo.proveedores[e.proveedor2.ID] = e.proveedor2

	assert.NoError(t, e.cotRepo.CreateTx(nil, &model.Cotizacion{
		SolicitudID: e.sol.ID, ProveedorID: e.proveedor1.ID, FechaEmision: fecha("2026-08-10"),
		MontoTotal: decimal.NewFromInt(1000),
		Detalles: []model.DetalleCotizacion{
			{ProductoID: e.prodA, CostoTotal: decimal.NewFromInt(600), ModalidadPago: model.PagoContado},
			{ProductoID: e.prodB, CostoTotal: decimal.NewFromInt(400), ModalidadPago: model.PagoCredito30Dias},
		},
	}))
	assert.NoError(t, e.cotRepo.CreateTx(nil, &model.Cotizacion{
		SolicitudID: e.sol.ID, ProveedorID: e.proveedor2.ID, FechaEmision: fecha("2026-08-11"),
		MontoTotal: decimal.NewFromInt(950),
		Detalles: []model.DetalleCotizacion{
			{ProductoID: e.prodA, CostoTotal: decimal.NewFromInt(550), ModalidadPago: model.PagoContado},
			{ProductoID: e.prodB, CostoTotal: decimal.NewFromInt(400), ModalidadPago: model.PagoContado},
		},
	}))
	return e
}

func (e *entornoAdjudicacion) servicio() AdjudicacionService {
	return NewAdjudicacionService(e.cotRepo, e.solicitudRepo, e.pedidoRepo, e.ordenRepo, nil)
}

func TestGenerarOrdenesParticionaPorProveedorYModalidad(t *testing.T) {
	e := armaEntornoAdjudicacion(t)

	// prodA al proveedor 2 (contado); prodB al proveedor 1 (crédito):
	// dos particiones, dos órdenes.
	resp, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
		ItemsAdjudicados: []dto.ItemAdjudicado{
			{ProveedorID: e.proveedor2.ID.String(), ProductoID: e.prodA.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(550), ModalidadPago: model.PagoContado},
			{ProveedorID: e.proveedor1.ID.String(), ProductoID: e.prodB.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(400), ModalidadPago: model.PagoCredito30Dias},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Ordenes, 2)
	assert.Len(t, e.ordenRepo.ordenes, 2)
	assert.Equal(t, model.SolicitudAdjudicada, e.sol.Estado)

	for _, ds := range e.sol.Detalles {
		assert.Equal(t, model.LineaAdjudicada, e.pedidoRepo.detalles[ds.DetallePedidoID].Estado)
	}
}

func TestGenerarOrdenesMismaModalidadUnaSolaOrden(t *testing.T) {
	e := armaEntornoAdjudicacion(t)

	// Dos productos al mismo proveedor con la misma modalidad: una orden
	// con el monto acumulado.
	resp, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
		ItemsAdjudicados: []dto.ItemAdjudicado{
			{ProveedorID: e.proveedor2.ID.String(), ProductoID: e.prodA.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(550), ModalidadPago: model.PagoContado},
			{ProveedorID: e.proveedor2.ID.String(), ProductoID: e.prodB.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(400), ModalidadPago: model.PagoContado},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Ordenes, 1)
	assert.True(t, resp.Ordenes[0].Monto.Equal(decimal.NewFromInt(950)))
	assert.Equal(t, 2, resp.Ordenes[0].TotalItems)

	orden := e.ordenRepo.ordenes[uuid.MustParse(resp.Ordenes[0].ID)]
	assert.Equal(t, model.OrdenEmitida, orden.Estado)
	assert.Len(t, orden.Detalles, 2)
}

func TestGenerarOrdenesMismoProveedorDosModalidades(t *testing.T) {
	e := armaEntornoAdjudicacion(t)

	// Mismo proveedor pero modalidades distintas: la clave de partición es
	// el par completo, salen dos órdenes.
	resp, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
		ItemsAdjudicados: []dto.ItemAdjudicado{
			{ProveedorID: e.proveedor1.ID.String(), ProductoID: e.prodA.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(600), ModalidadPago: model.PagoContado},
			{ProveedorID: e.proveedor1.ID.String(), ProductoID: e.prodB.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(400), ModalidadPago: model.PagoCredito30Dias},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Ordenes, 2)
}

func TestGenerarOrdenesProveedorSinCotizacion(t *testing.T) {
	e := armaEntornoAdjudicacion(t)
	intruso := uuid.New()

	_, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
		ItemsAdjudicados: []dto.ItemAdjudicado{
			{ProveedorID: intruso.String(), ProductoID: e.prodA.String(), CantidadComprada: 50, CostoTotal: decimal.NewFromInt(500), ModalidadPago: model.PagoContado},
		},
	})
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, e.ordenRepo.ordenes)
	// La solicitud no avanzó.
	assert.Equal(t, model.SolicitudCotizada, e.sol.Estado)
}

func TestGenerarOrdenesSinItems(t *testing.T) {
	e := armaEntornoAdjudicacion(t)
	_, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
	})
	assert.True(t, domain.IsValidation(err))
}

func TestGenerarOrdenesSolicitudYaAdjudicada(t *testing.T) {
	e := armaEntornoAdjudicacion(t)
	e.sol.Estado = model.SolicitudAdjudicada

	_, err := e.servicio().GenerarOrdenes(context.Background(), dto.GenerarOrdenesRequest{
		SolicitudID: e.sol.ID.String(),
		ItemsAdjudicados: []dto.ItemAdjudicado{
			{ProveedorID: e.proveedor1.ID.String(), ProductoID: e.prodA.String(), CantidadComprada: 10, CostoTotal: decimal.NewFromInt(100), ModalidadPago: model.PagoContado},
		},
	})
	assert.True(t, domain.IsIntegrity(err))
}

func TestProveedoresCotizantesYOferta(t *testing.T) {
	e := armaEntornoAdjudicacion(t)
	svc := e.servicio()

	proveedores, err := svc.ProveedoresCotizantes(context.Background(), e.sol.ID)
	assert.NoError(t, err)
	assert.Len(t, proveedores, 2)

	oferta, err := svc.ObtenerOferta(context.Background(), e.sol.ID, e.proveedor1.ID)
	assert.NoError(t, err)
	assert.Len(t, oferta, 2)
	assert.Equal(t, 50, oferta[0].CantidadSolicitada)

	_, err = svc.ObtenerOferta(context.Background(), e.sol.ID, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}
