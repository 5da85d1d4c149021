package dto

import "github.com/shopspring/decimal"

// ─── Catálogo (colaborador de solo lectura) ──────────────────────────────────

type ProductoCatalogoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Rubro        string          `json:"rubro"`
	Familia      string          `json:"familia"`
	Clase        string          `json:"clase"`
	Marca        string          `json:"marca"`
	UnidadMedida string          `json:"unidad_medida"`
	PrecioBase   decimal.Decimal `json:"precio_base"`
}

type ProveedorResponse struct {
	ID              string `json:"id"`
	NombreComercial string `json:"nombre_comercial"`
	RazonSocial     string `json:"razon_social"`
	RUC             string `json:"ruc"`
}

// ProveedorBusquedaItem alimenta el autocomplete del formulario de cotización.
type ProveedorBusquedaItem struct {
	ID              string `json:"id"`
	NombreComercial string `json:"nombre_comercial"`
}

type InstalacionResponse struct {
	ID        string `json:"id"`
	Codigo    string `json:"codigo"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}
