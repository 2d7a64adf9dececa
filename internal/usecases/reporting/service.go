package reporting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/returns-report-api/infrastructure/repository"
	"github.com/vfg2006/returns-report-api/internal/domain"
)

// Mensagem devolvida no resultado de erro quando a faixa de datas não parseia
// ou está invertida.
const invalidRangeMessage = "Rango de fechas inválido"

// Service orquestra a geração de relatórios de devoluções: queries,
// enriquecimento, normalização, agregações e montagem do payload final.
// Leitura pura — nada é persistido, cada request recomputa do zero.
type Service struct {
	returns     repository.ReturnsRepository
	assignments repository.AssignmentsRepository
	staff       repository.StaffRepository
}

// NewService cria o serviço de relatórios com as três queries colaboradoras.
func NewService(
	returns repository.ReturnsRepository,
	assignments repository.AssignmentsRepository,
	staff repository.StaffRepository,
) ReportGenerator {
	return &Service{
		returns:     returns,
		assignments: assignments,
		staff:       staff,
	}
}

// Generate computa o relatório completo para [desde, hasta].
//
// Curto-circuitos: datas inválidas/invertidas → resultado de erro
// estruturado; nenhuma linha na faixa → resultado vazio (sucesso sem dados).
// Falhas de repositório propagam como error — sem retry e sem modo
// degradado, por desenho: o sistema é só leitura e não tem o que proteger.
func (s *Service) Generate(desde, hasta, agrupar string, kpis *domain.KPIConfigInput) (*domain.Report, error) {
	cfg := kpis.Normalize()
	period := MapPeriod(agrupar)

	from, okFrom := parseDate(desde)
	to, okTo := parseDate(hasta)
	if !okFrom || !okTo || from.After(to) {
		logrus.WithFields(logrus.Fields{
			"desde": desde,
			"hasta": hasta,
		}).Warn("reportes: faixa de datas inválida")
		return errorReport(cfg, invalidRangeMessage), nil
	}

	raw, err := s.returns.DetailByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return emptyReport(cfg, period), nil
	}

	asignaciones, err := s.assignments.ListAssignments()
	if err != nil {
		return nil, err
	}

	personas, err := s.staff.ActivePersons()
	if err != nil {
		return nil, err
	}

	aisleToPerson := ActiveAssignments(asignaciones, from, to)

	enriched := EnrichRows(raw, aisleToPerson, personas)
	if len(enriched) == 0 {
		return emptyReport(cfg, period), nil
	}

	norm := NormalizeRows(enriched, cfg)

	logrus.WithFields(logrus.Fields{
		"filas":   len(norm),
		"periodo": period,
		"desde":   from.Format(time.DateOnly),
		"hasta":   to.Format(time.DateOnly),
	}).Debug("reportes: detalhe carregado e normalizado")

	return &domain.Report{
		KPIs:    cfg,
		Summary: buildSummary(norm, cfg),
		General: &domain.TimeSeries{
			Period: string(period),
			Series: BuildGeneralSeries(norm, cfg, period, from, to),
		},
		ByZone:       GroupByZone(norm, cfg),
		ByAisle:      GroupByAisle(norm, cfg),
		Persons:      personas,
		ByPerson:     GroupByPerson(norm, aisleToPerson, cfg),
		PersonSeries: PersonDateSeries(norm, cfg),
		Table:        FinalTable(norm),
	}, nil
}

// buildSummary soma os KPIs globais. Métricas desabilitadas ficam em zero —
// aqui elas nunca são omitidas.
func buildSummary(rows []domain.ReturnDetailRow, cfg domain.KPIConfig) *domain.Summary {
	amount, pieces, returns := sumRows(rows)

	summary := &domain.Summary{TotalAmount: safeFloat(0)}
	if cfg.Amount {
		summary.TotalAmount = safeFloat(amount)
	}
	if cfg.Pieces {
		summary.TotalPieces = pieces
	}
	if cfg.Returns {
		summary.TotalReturns = returns
	}
	return summary
}

// emptyReport é o caso de sucesso sem dados: resumo zerado, série vazia
// etiquetada com o período pedido e containers vazios. Sem campo de erro.
func emptyReport(cfg domain.KPIConfig, period Period) *domain.Report {
	return &domain.Report{
		KPIs:    cfg,
		Summary: &domain.Summary{TotalAmount: safeFloat(0)},
		General: &domain.TimeSeries{
			Period: string(period),
			Series: []domain.SeriesPoint{},
		},
		ByZone:       map[string]*domain.DimensionGroup{},
		ByAisle:      map[string]*domain.DimensionGroup{},
		Persons:      map[string]string{},
		ByPerson:     map[string]*domain.PersonTable{},
		PersonSeries: map[string]*domain.PersonSeries{},
		Table:        []domain.TableRow{},
	}
}

// errorReport é a variante de falha de validação: resposta normal da API com
// a mensagem em Error, general nulo e containers vazios.
func errorReport(cfg domain.KPIConfig, mensaje string) *domain.Report {
	return &domain.Report{
		KPIs:         cfg,
		Error:        mensaje,
		General:      nil,
		ByZone:       map[string]*domain.DimensionGroup{},
		ByAisle:      map[string]*domain.DimensionGroup{},
		Persons:      map[string]string{},
		ByPerson:     map[string]*domain.PersonTable{},
		PersonSeries: map[string]*domain.PersonSeries{},
		Table:        []domain.TableRow{},
	}
}

// parseDate aceita datas ISO (YYYY-MM-DD) e timestamps RFC3339, sempre
// truncando para data de calendário.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return dateOnly(t), true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return dateOnly(t), true
	}

	return time.Time{}, false
}
