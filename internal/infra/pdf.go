package infra

// pdf.go — Generación del PDF de la orden de compra con go-pdf/fpdf.
// El documento A4 incluye cabecera con número de orden y fecha de emisión,
// datos del proveedor, tabla de ítems adjudicados (producto, cantidad,
// costo), modalidad de pago y monto total en negrita.
//
// El archivo se guarda en storagePath/orden_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fiis-disenobd/bd252-grupo2-app/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateOrdenPDF renders the purchase order document for a supplier.
// storagePath is created if needed; returns the absolute path of the file.
func GenerateOrdenPDF(orden *model.OrdenCompra, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("orden_%s.pdf", orden.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Cabecera ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Ferretería Central", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Orden de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Orden N° %s", orden.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Fecha de emisión: "+orden.FechaEmision.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, "Modalidad de pago: "+orden.ModalidadPago, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Proveedor ─────────────────────────────────────────────────────────────
	if orden.Cotizacion != nil && orden.Cotizacion.Proveedor != nil {
		prov := orden.Cotizacion.Proveedor
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, "Proveedor", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, prov.RazonSocial, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "RUC: "+prov.RUC, "", 1, "L", false, 0, "")
		if prov.Direccion != nil {
			pdf.CellFormat(contentW, 5, *prov.Direccion, "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
	}

	// ── Tabla de ítems ────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // producto
	col2 := contentW * 0.18 // cantidad
	col3 := contentW * 0.30 // costo

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Cantidad", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Costo", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, det := range orden.Detalles {
		nombre := det.ProductoID.String()
		unidad := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
			unidad = " " + det.Producto.UnidadMedida
		}
		if len(nombre) > 48 {
			nombre = nombre[:47] + "…"
		}
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d%s", det.CantidadComprada, unidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "S/ "+det.CostoTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 8, "MONTO TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "S/ "+orden.Monto.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Documento generado automáticamente por el sistema de abastecimiento.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
