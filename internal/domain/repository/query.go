package repository

// Op is a predicate operator understood by the document store.
type Op string

const (
	OpEqual          Op = "=="
	OpGreaterOrEqual Op = ">="
	OpLessOrEqual    Op = "<="
	OpIn             Op = "in"
	OpContainsAny    Op = "array-contains-any"
)

// Clause is one predicate of a compiled query.
type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// Query is the predicate/sort/pagination descriptor the catalog filter
// compiler produces and the store adapters serialize. Sort uses the
// "field_asc"/"field_desc" convention. Depth controls how many levels of
// relationships the adapter populates (0 = ids only).
type Query struct {
	Clauses []Clause
	Sort    string
	Page    int
	Limit   int
	Depth   int
}

func NewQuery() *Query {
	return &Query{Page: 1}
}

func (q *Query) Where(field string, op Op, value interface{}) *Query {
	q.Clauses = append(q.Clauses, Clause{Field: field, Op: op, Value: value})
	return q
}

func (q *Query) OrderBy(sort string) *Query {
	q.Sort = sort
	return q
}

func (q *Query) Paginate(page, limit int) *Query {
	if page > 0 {
		q.Page = page
	}
	q.Limit = limit
	return q
}

func (q *Query) WithDepth(depth int) *Query {
	q.Depth = depth
	return q
}

// Offset translates the page cursor into a row offset.
func (q *Query) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}
