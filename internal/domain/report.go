package domain

import "time"

// KPIConfig são os três interruptores independentes de métricas. Todos
// habilitados por padrão. Métrica desabilitada aparece zerada no resumo e é
// omitida dos mapas de kpis por bucket/grupo.
type KPIConfig struct {
	Amount  bool `json:"importe"`
	Pieces  bool `json:"piezas"`
	Returns bool `json:"devoluciones"`
}

// KPIConfigInput é o formato aceito no request: campos ausentes valem true.
type KPIConfigInput struct {
	Amount  *bool `json:"importe"`
	Pieces  *bool `json:"piezas"`
	Returns *bool `json:"devoluciones"`
}

// Normalize aplica os defaults do contrato: nil (ou input inteiro ausente)
// significa tudo habilitado.
func (in *KPIConfigInput) Normalize() KPIConfig {
	cfg := KPIConfig{Amount: true, Pieces: true, Returns: true}
	if in == nil {
		return cfg
	}
	if in.Amount != nil {
		cfg.Amount = *in.Amount
	}
	if in.Pieces != nil {
		cfg.Pieces = *in.Pieces
	}
	if in.Returns != nil {
		cfg.Returns = *in.Returns
	}
	return cfg
}

// Summary é o resumo global. Métricas desabilitadas ficam em zero, nunca são
// omitidas aqui. TotalAmount é ponteiro para que não-finitos virem null no
// JSON em vez de quebrar a serialização.
type Summary struct {
	TotalAmount  *float64 `json:"importe_total"`
	TotalPieces  int      `json:"piezas_total"`
	TotalReturns int      `json:"devoluciones_total"`
}

// KPIValues é o mapa de métricas com campos opcionais explícitos: presente
// apenas quando o interruptor correspondente está habilitado (exceção:
// buckets vazios da série geral carregam os três em zero).
type KPIValues struct {
	Amount  *float64 `json:"importe,omitempty"`
	Pieces  *int     `json:"piezas,omitempty"`
	Returns *int     `json:"devoluciones,omitempty"`
}

// PersonBreakdown é o desglose de um bucket por pessoa.
type PersonBreakdown struct {
	ID   string    `json:"id"`
	Name string    `json:"nombre"`
	KPIs KPIValues `json:"kpis"`
}

// SeriesPoint é um bucket da série temporal geral. Label carrega o mesmo
// valor de Key: formatação é responsabilidade do frontend.
type SeriesPoint struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	KPIs    KPIValues         `json:"kpis"`
	Persons []PersonBreakdown `json:"personas"`
}

// TimeSeries é a série geral etiquetada com o período efetivo.
type TimeSeries struct {
	Period string        `json:"periodo"`
	Series []SeriesPoint `json:"serie"`
}

// DimensionPoint é um ponto por data das séries de zona/pasillo. Estas séries
// NÃO são calendarizadas: só aparecem datas com dados.
type DimensionPoint struct {
	Date    string   `json:"fecha"`
	Amount  *float64 `json:"importe,omitempty"`
	Pieces  *int     `json:"piezas,omitempty"`
	Returns *int     `json:"devoluciones,omitempty"`
}

// DimensionGroup agrupa série e resumo de um valor de dimensão.
type DimensionGroup struct {
	Series  []DimensionPoint `json:"series"`
	Summary KPIValues        `json:"resumen"`
}

// TableRow é uma linha da tabela de detalhe. As três métricas são sempre
// calculadas aqui, independente dos interruptores de KPI.
type TableRow struct {
	Date    string  `json:"fecha"`
	Zone    string  `json:"zona"`
	Aisle   string  `json:"pasillo"`
	Person  string  `json:"persona"`
	Returns int     `json:"devoluciones"`
	Pieces  int     `json:"piezas"`
	Amount  float64 `json:"importe"`
}

// PersonTable é a vista tabular por pessoa.
type PersonTable struct {
	Summary KPIValues  `json:"resumen"`
	Table   []TableRow `json:"tabla"`
}

// PersonSeriesPoint é um ponto da série individual de uma pessoa.
type PersonSeriesPoint struct {
	Date  time.Time `json:"fecha"`
	Key   string    `json:"key"`
	Label string    `json:"label"`
	KPIs  KPIValues `json:"kpis"`
}

// PersonSeries é a série temporal individual de uma pessoa.
type PersonSeries struct {
	Name   string              `json:"nombre"`
	Series []PersonSeriesPoint `json:"series"`
}

// Report é o resultado completo de uma geração de relatório. As variantes de
// erro e de vazio usam a mesma estrutura: erro tem Error preenchido e
// General nulo; vazio tem resumo zerado e containers vazios sem Error.
type Report struct {
	KPIs         KPIConfig                  `json:"kpis"`
	Summary      *Summary                   `json:"resumen,omitempty"`
	General      *TimeSeries                `json:"general"`
	ByZone       map[string]*DimensionGroup `json:"por_zona"`
	ByAisle      map[string]*DimensionGroup `json:"por_pasillo"`
	Persons      map[string]string          `json:"personas"`
	ByPerson     map[string]*PersonTable    `json:"por_persona"`
	PersonSeries map[string]*PersonSeries   `json:"personas_series"`
	Table        []TableRow                 `json:"tabla"`
	Error        string                     `json:"error,omitempty"`
}
