// Package query parses free-text filter queries into clauses and
// evaluates those clauses against rows.
//
// The query language is a sequence of space-separated terms. A bare
// word matches the table's default textual field; a
// `[-]fieldAlias:operator:value` term builds a typed clause. Operators
// cover substring, equality, list membership, emptiness, and numeric
// comparison; double-quoted phrases keep their spaces and the reserved
// tokens `(empty)` and `empty` inside an in-list match missing values.
//
// Example usage:
//
//	clauses := query.Parse(`login -status:equals:Done owner:in:"alice,bob"`, fields)
//	for _, row := range rows {
//	    keep := true
//	    for _, clause := range clauses {
//	        if !query.Matches(row, clause, fields.FieldByID(clause.Field)) {
//	            keep = false
//	            break
//	        }
//	    }
//	    ...
//	}
//
// Parsing is best-effort and evaluation never returns an error: a
// malformed term degrades to a bare search word, a clause against an
// unknown field passes rows through, and a failed numeric coercion is
// a no-match. A filter query never fails a render.
package query
