package database

const (
	SortIDAsc       = "id_asc"
	SortNameAsc     = "name_asc"
	SortNameDesc    = "name_desc"
	SortCreatedDesc = "created_desc"
	SortOrderIndex  = "order_index"
)

const DefaultSortOrder = SortIDAsc

// personOrderClauses maps a sort key to the ORDER BY used for the people table.
// Every clause ends on id so paging stays stable.
var personOrderClauses = map[string]string{
	SortIDAsc:       "id ASC",
	SortNameAsc:     "first_name ASC, last_name ASC, id ASC",
	SortNameDesc:    "first_name DESC, last_name DESC, id ASC",
	SortCreatedDesc: "created_at DESC, id ASC",
	SortOrderIndex:  "order_index ASC, id ASC",
}

// IsValidSortOrder checks if a string is a valid sort order constant
func IsValidSortOrder(order string) bool {
	_, ok := personOrderClauses[order]
	return ok
}

// PersonOrderClause returns the ORDER BY clause for a sort key, falling back to the default.
func PersonOrderClause(order string) string {
	if clause, ok := personOrderClauses[order]; ok {
		return clause
	}
	return personOrderClauses[DefaultSortOrder]
}
