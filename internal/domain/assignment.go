package domain

import "time"

// Assignment representa um intervalo de responsabilidade: a pessoa cuidou do
// pasillo durante [From, To]. Limites nil são intervalos abertos. A fonte NÃO
// garante intervalos sem sobreposição por pasillo.
type Assignment struct {
	Aisle    string
	PersonID string
	From     *time.Time
	To       *time.Time
}

// ActiveIn informa se o intervalo tem qualquer sobreposição com [desde, hasta].
// Intervalos totalmente abertos estão ativos para qualquer faixa.
func (a Assignment) ActiveIn(desde, hasta time.Time) bool {
	if a.From != nil && a.From.After(hasta) {
		return false
	}
	if a.To != nil && a.To.Before(desde) {
		return false
	}
	return true
}
