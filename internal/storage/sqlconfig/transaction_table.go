package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var transactionColumns = []any{
	psql.Quote("id"),
	psql.Quote("amount"),
	psql.Quote("description"),
	psql.Quote("type"),
	psql.Quote("category_id"),
	psql.Quote("transaction_date"),
	psql.Quote("created_at"),
	psql.Quote("updated_at"),
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a database handle or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key. Returns nil, nil when absent.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTable)),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now().UTC()
	}

	q := psql.RawQuery(
		`INSERT INTO transactions (amount, description, type, category_id, transaction_date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
		create.Amount, create.Description, string(create.Type), create.CategoryID, transactionDate,
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns transactions matching the filter. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	q := psql.Select(transactionQueryMods(filter)...)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func transactionQueryMods(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(psql.Quote(transactionsTable)),
	}
	if filter != nil {
		whereMods := transactionWhere(filter)
		if len(whereMods) == 1 {
			queryMods = append(queryMods, sm.Where(whereMods[0]))
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, sm.Where(psql.And(whereMods...)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)
	return queryMods
}

// transactionWhere is the single translation of a TransactionFilter into SQL
// predicates. Keep it in step with TransactionFilter.Matches.
func transactionWhere(filter *TransactionFilter) []bob.Expression {
	var whereMods []bob.Expression
	if filter.Type != nil {
		whereMods = append(whereMods, psql.Quote("type").EQ(psql.Arg(string(*filter.Type))))
	}
	if filter.CategoryID != nil {
		whereMods = append(whereMods, psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID)))
	}
	if filter.Range.Start != nil {
		whereMods = append(whereMods, psql.Quote("transaction_date").GTE(psql.Arg(*filter.Range.Start)))
	}
	if filter.Range.End != nil {
		whereMods = append(whereMods, psql.Quote("transaction_date").LTE(psql.Arg(*filter.Range.End)))
	}
	if filter.MaxCreationTime != nil {
		whereMods = append(whereMods, psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime)))
	}
	return whereMods
}
