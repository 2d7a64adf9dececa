package reporting

import (
	"github.com/vfg2006/returns-report-api/internal/domain"
)

// ReportGenerator é a interface pública do serviço de relatórios de
// devoluções.
type ReportGenerator interface {
	// Generate computa o relatório completo para [desde, hasta] com a
	// granularidade pedida em agrupar (Dia|Semana|Mes|Anio, default Mes).
	// Datas inválidas ou invertidas produzem um resultado de erro
	// estruturado, não um error Go; falhas de repositório propagam como
	// error.
	Generate(desde, hasta, agrupar string, kpis *domain.KPIConfigInput) (*domain.Report, error)
}
