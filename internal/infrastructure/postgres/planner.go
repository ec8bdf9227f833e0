package postgres

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"

	"github.com/lucashmelo/painel-gestao/internal/domain/filter"
)

// activeSellersPredicate subconsulta do catálogo de vendedores ativos.
// O join é por igualdade com TRIM: a coluna de vendedor carrega espaços do ETL.
const activeSellersPredicate = `TRIM(%s) IN (SELECT "Name" FROM "ActiveSellers")`

// identPattern só identificadores quoted simples saem do planner; qualquer
// outra coisa é rejeitada antes de chegar ao SQL. Os nomes de coluna vêm dos
// repositórios (código), nunca do usuário — o Spec tipado é a whitelist de
// filtros, e esta checagem fecha a porta para expansões futuras descuidadas.
var identPattern = regexp.MustCompile(`^([a-z][a-z0-9]*\.)?"[A-Za-z][A-Za-z0-9_]*"$`)

// FilterColumns liga os campos do filter.Spec às colunas (quoted) da tabela
// alvo. Campo vazio desativa o filtro correspondente.
type FilterColumns struct {
	Date          string // obrigatória; coluna TEXT convertida com ::DATE
	Seller        string
	Status        string
	PaymentMethod string
	Deadline      string // coluna TEXT com vazios; comparada via NULLIF(TRIM(..),'')::DATE
}

// Planner monta SELECTs parametrizados a partir de um filter.Spec. Toda
// interpolação passa por placeholders posicionais ($n); a única expansão
// controlada é a de listas IN, com aridade fixada no momento da chamada.
type Planner struct {
	b squirrel.StatementBuilderType
}

// NewPlanner cria o planner com placeholders no formato do PostgreSQL.
func NewPlanner() Planner {
	return Planner{b: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
}

// Select inicia um SELECT das colunas dadas. Colunas NULL viram '' para que
// o scan em string nunca falhe.
func (p Planner) Select(table string, columns ...string) squirrel.SelectBuilder {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = fmt.Sprintf("COALESCE(%s, '')", c)
	}
	return p.b.Select(cols...).From(table)
}

// Raw inicia um SELECT sem COALESCE (para expressões e agregações).
func (p Planner) Raw(table string, columns ...string) squirrel.SelectBuilder {
	return p.b.Select(columns...).From(table)
}

// Apply aplica os filtros do spec sobre o builder, na ordem documentada:
// período de datas, vendedores ativos, filtros multi-valor (IN), valor
// único (=), exclusões (NOT IN) e período opcional de prazo NULL-safe.
// O ORDER BY fica a cargo do repositório, que conhece o desempate estável.
func (p Planner) Apply(qb squirrel.SelectBuilder, spec filter.Spec, cols FilterColumns) (squirrel.SelectBuilder, error) {
	if err := checkIdents(cols); err != nil {
		return qb, err
	}
	if cols.Date == "" {
		return qb, fmt.Errorf("planner: coluna de data não configurada")
	}

	qb = qb.Where(squirrel.Expr(
		fmt.Sprintf(`%s::DATE BETWEEN ? AND ?`, cols.Date),
		spec.DateStart, spec.DateEnd,
	))

	if spec.OnlyActiveSellers && cols.Seller != "" {
		qb = qb.Where(fmt.Sprintf(activeSellersPredicate, cols.Seller))
	}

	if len(spec.Sellers) > 0 && cols.Seller != "" {
		qb = qb.Where(squirrel.Eq{fmt.Sprintf("TRIM(%s)", cols.Seller): spec.Sellers})
	}
	if len(spec.Statuses) > 0 && cols.Status != "" {
		qb = qb.Where(squirrel.Eq{cols.Status: spec.Statuses})
	}
	if len(spec.PaymentMethods) > 0 && cols.PaymentMethod != "" {
		qb = qb.Where(squirrel.Eq{cols.PaymentMethod: spec.PaymentMethods})
	}

	if spec.Status != "" && cols.Status != "" {
		qb = qb.Where(squirrel.Eq{cols.Status: spec.Status})
	}

	if len(spec.ExcludeStatuses) > 0 && cols.Status != "" {
		qb = qb.Where(squirrel.NotEq{cols.Status: spec.ExcludeStatuses})
	}

	if spec.HasDeadlineRange() && cols.Deadline != "" {
		// Vazio na coluna de prazo é "sem prazo", não erro de cast.
		qb = qb.Where(squirrel.Expr(
			fmt.Sprintf(`NULLIF(TRIM(%s), '')::DATE BETWEEN ? AND ?`, cols.Deadline),
			spec.DeadlineStart, spec.DeadlineEnd,
		))
	}

	return qb, nil
}

func checkIdents(cols FilterColumns) error {
	for _, c := range []string{cols.Date, cols.Seller, cols.Status, cols.PaymentMethod, cols.Deadline} {
		if c != "" && !identPattern.MatchString(c) {
			return fmt.Errorf("planner: identificador inválido %q", c)
		}
	}
	return nil
}
