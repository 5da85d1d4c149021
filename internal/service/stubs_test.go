package service

// In-memory repository stubs shared by the service tests. All Tx methods
// ignore the *gorm.DB argument: runTx passes nil when no database is wired.

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	_ repository.PedidoRepository      = (*stubPedidoRepo)(nil)
	_ repository.SolicitudRepository   = (*stubSolicitudRepo)(nil)
	_ repository.CotizacionRepository  = (*stubCotizacionRepo)(nil)
	_ repository.OrdenRepository       = (*stubOrdenRepo)(nil)
	_ repository.RecepcionRepository   = (*stubRecepcionRepo)(nil)
	_ repository.ProveedorRepository   = (*stubProveedorRepo)(nil)
	_ repository.ProductoRepository    = (*stubProductoRepo)(nil)
	_ repository.InstalacionRepository = (*stubInstalacionRepo)(nil)
)

// ── Pedidos ───────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos     map[uuid.UUID]*model.Pedido
	detalles    map[uuid.UUID]*model.DetallePedido
	solicitudes *stubSolicitudRepo // for linkage cascades
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{
		pedidos:  make(map[uuid.UUID]*model.Pedido),
		detalles: make(map[uuid.UUID]*model.DetallePedido),
	}
}

func (r *stubPedidoRepo) addPedido(p *model.Pedido) *model.Pedido {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pedidos[p.ID] = p
	return p
}

func (r *stubPedidoRepo) addDetalle(d *model.DetallePedido) *model.DetallePedido {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.detalles[d.ID] = d
	return d
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	copia.Detalles = nil
	for _, d := range r.detalles {
		if d.PedidoID == id {
			copia.Detalles = append(copia.Detalles, *d)
		}
	}
	return &copia, nil
}

func (r *stubPedidoRepo) FindDetalle(_ context.Context, pedidoID, productoID uuid.UUID) (*model.DetallePedido, error) {
	for _, d := range r.detalles {
		if d.PedidoID == pedidoID && d.ProductoID == productoID {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPedidoRepo) ListDetallesRevisados(_ context.Context, desde, hasta *time.Time) ([]model.DetallePedido, error) {
	var out []model.DetallePedido
	for _, d := range r.detalles {
		if d.Estado != model.LineaRevisada {
			continue
		}
		if desde != nil && d.FechaRequerida.Before(*desde) {
			continue
		}
		if hasta != nil && d.FechaRequerida.After(*hasta) {
			continue
		}
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaRequerida.Before(out[j].FechaRequerida) })
	return out, nil
}

func (r *stubPedidoRepo) MarcarRevisadoTx(_ *gorm.DB, id uuid.UUID) error {
	p, ok := r.pedidos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if p.Estado == model.PedidoPendiente {
		p.Estado = model.PedidoRevisado
	}
	for _, d := range r.detalles {
		if d.PedidoID == id && d.Estado == model.LineaPendiente {
			d.Estado = model.LineaRevisada
		}
	}
	return nil
}

func (r *stubPedidoRepo) UpdateDetalleEstadoTx(_ *gorm.DB, detalleID uuid.UUID, estado string) error {
	d, ok := r.detalles[detalleID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Estado = estado
	return nil
}

func (r *stubPedidoRepo) CascadeEstadoPorSolicitudTx(_ *gorm.DB, solicitudID uuid.UUID, desde, hacia string) error {
	sol, ok := r.solicitudes.solicitudes[solicitudID]
	if !ok {
		return nil
	}
	for _, ds := range sol.Detalles {
		if d, ok := r.detalles[ds.DetallePedidoID]; ok && d.Estado == desde {
			d.Estado = hacia
		}
	}
	return nil
}

// ── Solicitudes ───────────────────────────────────────────────────────────────

type stubSolicitudRepo struct {
	solicitudes map[uuid.UUID]*model.SolicitudCotizacion
	pedidos     *stubPedidoRepo // for destination lookups
}

func newStubSolicitudRepo() *stubSolicitudRepo {
	return &stubSolicitudRepo{solicitudes: make(map[uuid.UUID]*model.SolicitudCotizacion)}
}

func (r *stubSolicitudRepo) DB() *gorm.DB { return nil }

func (r *stubSolicitudRepo) CreateTx(_ *gorm.DB, s *model.SolicitudCotizacion) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Detalles {
		if s.Detalles[i].ID == uuid.Nil {
			s.Detalles[i].ID = uuid.New()
		}
		s.Detalles[i].SolicitudID = s.ID
	}
	r.solicitudes[s.ID] = s
	return nil
}

func (r *stubSolicitudRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SolicitudCotizacion, error) {
	s, ok := r.solicitudes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSolicitudRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.SolicitudCotizacion, error) {
	s, ok := r.solicitudes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSolicitudRepo) ListResumen(_ context.Context) ([]repository.SolicitudResumenRow, error) {
	out := make([]repository.SolicitudResumenRow, 0, len(r.solicitudes))
	for _, s := range r.solicitudes {
		out = append(out, repository.SolicitudResumenRow{
			ID:           s.ID,
			FechaEmision: s.FechaEmision.Format("2006-01-02"),
			Estado:       s.Estado,
			TotalItems:   len(s.Detalles),
		})
	}
	return out, nil
}

func (r *stubSolicitudRepo) ListDetalles(_ context.Context, solicitudID uuid.UUID) ([]model.DetalleSolicitud, error) {
	s, ok := r.solicitudes[solicitudID]
	if !ok {
		return nil, nil
	}
	return s.Detalles, nil
}

func (r *stubSolicitudRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	s, ok := r.solicitudes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Estado = estado
	return nil
}

func (r *stubSolicitudRepo) MapTipoDestino(_ context.Context, solicitudID uuid.UUID) (map[uuid.UUID]string, error) {
	destinos := make(map[uuid.UUID]string)
	s, ok := r.solicitudes[solicitudID]
	if !ok {
		return destinos, nil
	}
	for _, ds := range s.Detalles {
		if d, ok := r.pedidos.detalles[ds.DetallePedidoID]; ok {
			destinos[ds.ProductoID] = d.TipoDestino
		}
	}
	return destinos, nil
}

// ── Cotizaciones ──────────────────────────────────────────────────────────────

type stubCotizacionRepo struct {
	cotizaciones []*model.Cotizacion
	proveedores  map[uuid.UUID]*model.Proveedor
	solicitudes  *stubSolicitudRepo
	productos    map[uuid.UUID]*model.Producto
}

func newStubCotizacionRepo() *stubCotizacionRepo {
	return &stubCotizacionRepo{
		proveedores: make(map[uuid.UUID]*model.Proveedor),
		productos:   make(map[uuid.UUID]*model.Producto),
	}
}

func (r *stubCotizacionRepo) DB() *gorm.DB { return nil }

func (r *stubCotizacionRepo) CreateTx(_ *gorm.DB, c *model.Cotizacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.cotizaciones = append(r.cotizaciones, c)
	return nil
}

func (r *stubCotizacionRepo) find(solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	for _, c := range r.cotizaciones {
		if c.SolicitudID == solicitudID && c.ProveedorID == proveedorID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCotizacionRepo) FindBySolicitudProveedor(_ context.Context, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	return r.find(solicitudID, proveedorID)
}

func (r *stubCotizacionRepo) FindBySolicitudProveedorTx(_ *gorm.DB, solicitudID, proveedorID uuid.UUID) (*model.Cotizacion, error) {
	return r.find(solicitudID, proveedorID)
}

func (r *stubCotizacionRepo) ListProveedoresCotizantes(_ context.Context, solicitudID uuid.UUID) ([]model.Proveedor, error) {
	vistos := make(map[uuid.UUID]bool)
	var out []model.Proveedor
	for _, c := range r.cotizaciones {
		if c.SolicitudID != solicitudID || vistos[c.ProveedorID] {
			continue
		}
		vistos[c.ProveedorID] = true
		if p, ok := r.proveedores[c.ProveedorID]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubCotizacionRepo) ListOferta(_ context.Context, solicitudID, proveedorID uuid.UUID) ([]repository.OfertaRow, error) {
	c, err := r.find(solicitudID, proveedorID)
	if err != nil {
		return nil, nil
	}
	cantidades := make(map[uuid.UUID]int)
	if s, ok := r.solicitudes.solicitudes[solicitudID]; ok {
		for _, ds := range s.Detalles {
			cantidades[ds.ProductoID] = ds.CantidadSolicitada
		}
	}
	var rows []repository.OfertaRow
	for _, d := range c.Detalles {
		row := repository.OfertaRow{
			ProductoID:         d.ProductoID,
			CantidadSolicitada: cantidades[d.ProductoID],
			CostoTotal:         d.CostoTotal,
			ModalidadPago:      d.ModalidadPago,
		}
		if p, ok := r.productos[d.ProductoID]; ok {
			row.NombreProducto = p.Nombre
			row.UnidadMedida = p.UnidadMedida
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

type stubOrdenRepo struct {
	ordenes      map[uuid.UUID]*model.OrdenCompra
	cotizaciones *stubCotizacionRepo
}

func newStubOrdenRepo() *stubOrdenRepo {
	return &stubOrdenRepo{ordenes: make(map[uuid.UUID]*model.OrdenCompra)}
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

func (r *stubOrdenRepo) CreateTx(_ *gorm.DB, o *model.OrdenCompra) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Detalles {
		if o.Detalles[i].ID == uuid.Nil {
			o.Detalles[i].ID = uuid.New()
		}
		o.Detalles[i].OrdenID = o.ID
	}
	r.ordenes[o.ID] = o
	return nil
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id uuid.UUID) (*model.OrdenCompra, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if o.Cotizacion == nil && r.cotizaciones != nil {
		for _, c := range r.cotizaciones.cotizaciones {
			if c.ID == o.CotizacionID {
				o.Cotizacion = c
			}
		}
	}
	return o, nil
}

func (r *stubOrdenRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.OrdenCompra, error) {
	o, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrdenRepo) ListPendientesRecepcion(_ context.Context) ([]repository.OrdenPendienteRow, error) {
	var rows []repository.OrdenPendienteRow
	for _, o := range r.ordenes {
		if o.Estado != model.OrdenEmitida {
			continue
		}
		row := repository.OrdenPendienteRow{Orden: *o}
		if o.Cotizacion != nil && o.Cotizacion.Proveedor != nil {
			row.Proveedor = *o.Cotizacion.Proveedor
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *stubOrdenRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	o, ok := r.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Estado = estado
	return nil
}

// ── Recepciones ───────────────────────────────────────────────────────────────

type stubRecepcionRepo struct {
	recepciones []*model.Recepcion
}

func newStubRecepcionRepo() *stubRecepcionRepo { return &stubRecepcionRepo{} }

func (r *stubRecepcionRepo) DB() *gorm.DB { return nil }

func (r *stubRecepcionRepo) CreateTx(_ *gorm.DB, rec *model.Recepcion) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.recepciones = append(r.recepciones, rec)
	return nil
}

func (r *stubRecepcionRepo) sum(ordenID uuid.UUID) map[uuid.UUID]int {
	totales := make(map[uuid.UUID]int)
	for _, rec := range r.recepciones {
		if rec.OrdenID != ordenID {
			continue
		}
		for _, d := range rec.Detalles {
			totales[d.ProductoID] += d.CantidadProgramada
		}
	}
	return totales
}

func (r *stubRecepcionRepo) SumProgramadas(_ context.Context, ordenID uuid.UUID) (map[uuid.UUID]int, error) {
	return r.sum(ordenID), nil
}

func (r *stubRecepcionRepo) SumProgramadasTx(_ *gorm.DB, ordenID uuid.UUID) (map[uuid.UUID]int, error) {
	return r.sum(ordenID), nil
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[uuid.UUID]*model.Proveedor
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{proveedores: make(map[uuid.UUID]*model.Proveedor)}
}

func (r *stubProveedorRepo) add(nombre string) *model.Proveedor {
	p := &model.Proveedor{ID: uuid.New(), NombreComercial: nombre, RazonSocial: nombre + " S.A.C.", Activo: true}
	r.proveedores[p.ID] = p
	return p
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) Search(_ context.Context, termino string, limit int) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for _, p := range r.proveedores {
		if strings.HasPrefix(strings.ToLower(p.NombreComercial), strings.ToLower(termino)) {
			out = append(out, *p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) add(nombre, unidad string) *model.Producto {
	p := &model.Producto{ID: uuid.New(), Nombre: nombre, UnidadMedida: unidad, Activo: true}
	r.productos[p.ID] = p
	return p
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) ListCatalogo(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

type stubInstalacionRepo struct {
	instalaciones map[uuid.UUID]*model.Instalacion
}

func newStubInstalacionRepo() *stubInstalacionRepo {
	return &stubInstalacionRepo{instalaciones: make(map[uuid.UUID]*model.Instalacion)}
}

func (r *stubInstalacionRepo) add(codigo string) *model.Instalacion {
	i := &model.Instalacion{ID: uuid.New(), Codigo: codigo, Nombre: codigo, Activo: true}
	r.instalaciones[i.ID] = i
	return i
}

func (r *stubInstalacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Instalacion, error) {
	i, ok := r.instalaciones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return i, nil
}

func (r *stubInstalacionRepo) List(_ context.Context) ([]model.Instalacion, error) {
	out := make([]model.Instalacion, 0, len(r.instalaciones))
	for _, i := range r.instalaciones {
		out = append(out, *i)
	}
	return out, nil
}
