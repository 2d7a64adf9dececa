package domain

import (
	"strings"
	"time"
)

// Nome sentinela para linhas sem pessoa responsável resolvida.
const (
	UnassignedName = "Sin asignación"
	UnassignedKey  = "SIN_ASIGNACION"
)

// ReturnDetailRow é uma linha do detalhe analítico de devoluções: um item
// (artigo) de uma devolução. Campos opcionais são ponteiros — nil significa
// "coluna ausente na origem", exatamente como no store de documentos.
// O importe já chega rateado por item proporcionalmente às peças (a query
// de detalhe é responsável por isso).
type ReturnDetailRow struct {
	Date     time.Time
	Zone     *string
	Aisle    *string
	Person   *string
	Pieces   *int
	Quantity *int // alias de origem para Pieces
	Amount   *float64
	Total    *float64 // fallback de Amount
	Subtotal *float64 // segundo fallback de Amount
	Returns  *int     // sempre 1 por linha na carga

	// Preenchidos pelo enriquecimento, nunca pelo loader.
	PersonID   *string
	PersonName *string
}

// ZoneValue devolve a zona normalizada (string vazia quando ausente).
func (r ReturnDetailRow) ZoneValue() string {
	if r.Zone == nil {
		return ""
	}
	return strings.TrimSpace(*r.Zone)
}

// AisleValue devolve o pasillo normalizado (string vazia quando ausente).
func (r ReturnDetailRow) AisleValue() string {
	if r.Aisle == nil {
		return ""
	}
	return strings.TrimSpace(*r.Aisle)
}

// PersonValue devolve o rótulo "persona" vindo da origem (dimensão livre).
func (r ReturnDetailRow) PersonValue() string {
	if r.Person == nil {
		return ""
	}
	return strings.TrimSpace(*r.Person)
}

// PiecesValue devolve as peças da linha (0 quando ausente).
func (r ReturnDetailRow) PiecesValue() int {
	if r.Pieces == nil {
		return 0
	}
	return *r.Pieces
}

// AmountValue devolve o importe rateado da linha (0 quando ausente).
func (r ReturnDetailRow) AmountValue() float64 {
	if r.Amount == nil {
		return 0
	}
	return *r.Amount
}

// ReturnsValue devolve o contador de devoluções da linha (1 por item).
func (r ReturnDetailRow) ReturnsValue() int {
	if r.Returns == nil {
		return 0
	}
	return *r.Returns
}

// PersonIDValue devolve o id da pessoa resolvida ("" quando não resolvida).
func (r ReturnDetailRow) PersonIDValue() string {
	if r.PersonID == nil {
		return ""
	}
	return *r.PersonID
}

// PersonNameValue devolve o nome resolvido (sentinela quando ausente).
func (r ReturnDetailRow) PersonNameValue() string {
	if r.PersonName == nil || strings.TrimSpace(*r.PersonName) == "" {
		return UnassignedName
	}
	return *r.PersonName
}
