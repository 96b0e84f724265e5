package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const budgetsTable = "budgets"

var budgetColumns = []any{
	psql.Quote("id"),
	psql.Quote("category_id"),
	psql.Quote("monthly_limit"),
	psql.Quote("month"),
	psql.Quote("year"),
	psql.Quote("created_at"),
	psql.Quote("updated_at"),
}

// upsertBudgetSQL relies on the budgets_category_period_key unique
// constraint, so the lookup and the write happen in one statement.
const upsertBudgetSQL = `INSERT INTO budgets (category_id, monthly_limit, month, year)
VALUES (?, ?, ?, ?)
ON CONFLICT (category_id, month, year)
DO UPDATE SET monthly_limit = EXCLUDED.monthly_limit, updated_at = clock_timestamp()
RETURNING id, category_id, monthly_limit, month, year, created_at, updated_at`

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

var _ IBudgetTable = (*BudgetsTable)(nil)

// NewBudgetsTable binds the table to a database handle or an open transaction.
func NewBudgetsTable(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

// Upsert inserts the budget for its period or replaces the limit of the
// existing one.
func (t *BudgetsTable) Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, error) {
	q := psql.RawQuery(upsertBudgetSQL, upsert.CategoryID, upsert.MonthlyLimit, upsert.Month, upsert.Year)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Budget]())
	if err != nil {
		return nil, err
	}
	return row, nil
}

// List returns budgets matching the filter, ordered by period then category.
func (t *BudgetsTable) List(ctx context.Context, filter *BudgetFilter) ([]*Budget, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(budgetColumns...),
		sm.From(psql.Quote(budgetsTable)),
	}
	if filter != nil {
		var whereMods []bob.Expression
		if filter.Month != nil {
			whereMods = append(whereMods, psql.Quote("month").EQ(psql.Arg(*filter.Month)))
		}
		if filter.Year != nil {
			whereMods = append(whereMods, psql.Quote("year").EQ(psql.Arg(*filter.Year)))
		}
		if len(whereMods) == 1 {
			queryMods = append(queryMods, sm.Where(whereMods[0]))
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, sm.Where(psql.And(whereMods...)))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("year")).Asc(),
		sm.OrderBy(psql.Quote("month")).Asc(),
		sm.OrderBy(psql.Quote("category_id")).Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Budget]())
}
