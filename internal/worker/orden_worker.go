package worker

// orden_worker.go
// Processes purchase order jobs from QueueOrdenes: renders the order PDF
// and mails it to the supplier contact, when one is registered.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/infra"
	"github.com/fiis-disenobd/bd252-grupo2-app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// OrdenEmitidaPayload is the job envelope sent to QueueOrdenes.
type OrdenEmitidaPayload struct {
	OrdenID string `json:"orden_id"`
}

// OrdenWorker notifies suppliers about newly issued purchase orders.
type OrdenWorker struct {
	ordenRepo   repository.OrdenRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewOrdenWorker(ordenRepo repository.OrdenRepository, mailer *infra.Mailer, storagePath string) *OrdenWorker {
	return &OrdenWorker{ordenRepo: ordenRepo, mailer: mailer, storagePath: storagePath}
}

// Process renders the order PDF and sends it to the supplier.
func (w *OrdenWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload OrdenEmitidaPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("orden_worker: invalid payload")
		return
	}

	ordenID, err := uuid.Parse(payload.OrdenID)
	if err != nil {
		log.Error().Str("orden_id", payload.OrdenID).Msg("orden_worker: invalid orden_id")
		return
	}

	orden, err := w.ordenRepo.FindByID(ctx, ordenID)
	if err != nil {
		log.Error().Err(err).Str("orden_id", payload.OrdenID).Msg("orden_worker: order not found")
		return
	}

	pdfPath, err := infra.GenerateOrdenPDF(orden, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("orden_id", payload.OrdenID).Msg("orden_worker: PDF generation failed")
		return
	}

	if orden.Cotizacion == nil || orden.Cotizacion.Proveedor == nil || orden.Cotizacion.Proveedor.Email == nil {
		log.Warn().Str("orden_id", payload.OrdenID).Msg("orden_worker: supplier has no email — PDF generated only")
		return
	}

	prov := orden.Cotizacion.Proveedor
	subject := fmt.Sprintf("Orden de Compra %s", orden.ID)
	body := fmt.Sprintf(
		"Estimado proveedor %s:\n\nAdjuntamos la orden de compra emitida el %s por un monto de S/ %s (%s).\n\nAtentamente,\nÁrea de Abastecimiento",
		prov.NombreComercial,
		orden.FechaEmision.Format("02/01/2006"),
		orden.Monto.StringFixed(2),
		orden.ModalidadPago,
	)

	if err := w.mailer.SendOrdenCompra(*prov.Email, subject, body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", *prov.Email).Msg("orden_worker: failed to send email")
		return
	}
	log.Info().Str("orden_id", payload.OrdenID).Str("to", *prov.Email).Msg("orden_worker: orden de compra enviada")
}
