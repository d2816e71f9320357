package repository

import (
	"strings"

	"cloud.google.com/go/firestore"

	"ebazaar/internal/domain/repository"
)

// maxDisjunction is Firestore's cap on the number of values an "in" or
// "array-contains-any" clause may carry.
const maxDisjunction = 30

// applyQuery serializes a compiled query descriptor onto a Firestore
// collection query. Pagination is applied separately so callers can count
// the filtered set first.
func applyQuery(base firestore.Query, q *repository.Query) firestore.Query {
	out := base

	for _, clause := range q.Clauses {
		out = out.Where(clause.Field, string(clause.Op), clause.Value)
	}

	if q.Sort != "" {
		parts := strings.Split(q.Sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		out = out.OrderBy(field, order)
	}

	return out
}

// chunkStrings splits ids into store-sized disjunction chunks.
func chunkStrings(values []string, size int) [][]string {
	var chunks [][]string
	for len(values) > size {
		chunks = append(chunks, values[:size])
		values = values[size:]
	}
	if len(values) > 0 {
		chunks = append(chunks, values)
	}
	return chunks
}
