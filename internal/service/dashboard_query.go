package service

import (
	"time"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const minQueryYear = 2000

// NormalizeQuery resolves a query into the transaction date window it covers.
// Month and Year together select that whole calendar month in UTC. Only one
// of them is still range checked but does not override the dates.
func NormalizeQuery(query DashboardQuery) (sqlconfig.DateRange, error) {
	if query.Month != nil && (*query.Month < 1 || *query.Month > 12) {
		return sqlconfig.DateRange{}, invalidQuery("month %d outside 1..12", *query.Month)
	}
	if query.Year != nil && *query.Year < minQueryYear {
		return sqlconfig.DateRange{}, invalidQuery("year %d before %d", *query.Year, minQueryYear)
	}
	if query.Month != nil && query.Year != nil {
		return sqlconfig.MonthRange(*query.Year, time.Month(*query.Month)), nil
	}

	if query.StartDate != nil && query.EndDate != nil && query.StartDate.After(*query.EndDate) {
		return sqlconfig.DateRange{}, invalidQuery("start_date %s is after end_date %s",
			query.StartDate.Format(time.RFC3339), query.EndDate.Format(time.RFC3339))
	}
	return sqlconfig.DateRange{Start: query.StartDate, End: query.EndDate}, nil
}

// budgetFilter scopes budget status to the queried month, or to every budget
// when the query is not a month query.
func budgetFilter(query DashboardQuery) *sqlconfig.BudgetFilter {
	if query.Month == nil || query.Year == nil {
		return nil
	}
	return &sqlconfig.BudgetFilter{Month: query.Month, Year: query.Year}
}
