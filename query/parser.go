package query

import (
	"strings"

	"github.com/vegasq/gridview/schema"
)

// Operator identifies a filter comparison.
type Operator string

const (
	OpContains   Operator = "contains"
	OpEquals     Operator = "equals"
	OpNotEquals  Operator = "not-equals"
	OpIn         Operator = "in"
	OpIsEmpty    Operator = "is-empty"
	OpIsNotEmpty Operator = "is-not-empty"
	OpGT         Operator = "gt"
	OpGTE        Operator = "gte"
	OpLT         Operator = "lt"
	OpLTE        Operator = "lte"
)

// FilterClause is one parsed filter condition. Value is a string for
// most operators, a []string for in-lists, and nil for the emptiness
// operators. Clauses combine with AND semantics.
type FilterClause struct {
	Field    string      `json:"field"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value,omitempty"`
}

// operatorNames maps query-text operator spellings to operators.
// Symbolic comparators are spelled as in the query grammar.
var operatorNames = map[string]Operator{
	"contains":     OpContains,
	"equals":       OpEquals,
	"not-equals":   OpNotEquals,
	"in":           OpIn,
	"is-empty":     OpIsEmpty,
	"is-not-empty": OpIsNotEmpty,
	">":            OpGT,
	">=":           OpGTE,
	"<":            OpLT,
	"<=":           OpLTE,
}

// fieldAliases maps well-known alias words to the field type they
// select. The first catalog field of that type wins.
var fieldAliases = map[string]schema.FieldType{
	"owner":     schema.FieldAssignee,
	"assigned":  schema.FieldAssignee,
	"assignee":  schema.FieldAssignee,
	"tag":       schema.FieldMultiSelect,
	"tags":      schema.FieldMultiSelect,
	"status":    schema.FieldSingleSelect,
	"title":     schema.FieldTitle,
	"iteration": schema.FieldIteration,
	"sprint":    schema.FieldIteration,
}

// Parse tokenizes a free-text filter query into an ordered list of
// clauses. Each term is either a bare word, which becomes a contains
// clause against the catalog's default textual field, or a
// `[-]fieldAlias:operator:value` clause. Parsing is best-effort: a
// malformed clause term degrades to a bare contains-word instead of
// failing the whole query, so Parse never returns an error.
func Parse(input string, fields schema.Catalog) []FilterClause {
	var clauses []FilterClause
	for _, term := range SplitTerms(input) {
		if clause, ok := parseClauseTerm(term, fields); ok {
			clauses = append(clauses, clause)
			continue
		}
		if clause, ok := bareWordClause(term, fields); ok {
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// parseClauseTerm interprets one term as a field clause. Reports false
// for anything that does not parse as a clause, including unknown
// fields and operators; the caller then falls back to a bare word.
func parseClauseTerm(term string, fields schema.Catalog) (FilterClause, bool) {
	negated := false
	if strings.HasPrefix(term, "-") {
		negated = true
		term = term[1:]
	}

	parts := strings.SplitN(term, ":", 3)
	if len(parts) < 2 {
		return FilterClause{}, false
	}

	field := ResolveField(parts[0], fields)
	if field == nil {
		return FilterClause{}, false
	}

	op, ok := operatorNames[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return FilterClause{}, false
	}

	// Only equality negates in this grammar; a leading minus on any
	// other operator is left without effect.
	if negated && op == OpEquals {
		op = OpNotEquals
	}

	clause := FilterClause{Field: field.ID, Operator: op}
	switch op {
	case OpIsEmpty, OpIsNotEmpty:
		// No value; a trailing segment is tolerated and ignored.
		return clause, true
	}

	if len(parts) < 3 {
		return FilterClause{}, false
	}
	raw := parts[2]

	switch op {
	case OpIn:
		clause.Value = SplitValueList(raw)
	case OpEquals, OpNotEquals:
		clause.Value = resolveOptionValue(field, Unquote(raw))
	default:
		clause.Value = Unquote(raw)
	}
	return clause, true
}

// bareWordClause builds a contains clause on the default textual field
// for a bare search word. Reports false when the catalog has no textual
// field or the word is empty.
func bareWordClause(term string, fields schema.Catalog) (FilterClause, bool) {
	word := Unquote(strings.TrimSpace(term))
	if word == "" {
		return FilterClause{}, false
	}
	field := fields.DefaultTextField()
	if field == nil {
		return FilterClause{}, false
	}
	return FilterClause{Field: field.ID, Operator: OpContains, Value: word}, true
}

// ResolveField resolves a field alias from a query term: first the
// fixed alias table, then a case-insensitive field name match, then an
// exact field id match.
func ResolveField(alias string, fields schema.Catalog) *schema.FieldDefinition {
	name := strings.TrimSpace(alias)
	if name == "" {
		return nil
	}

	if fieldType, ok := fieldAliases[strings.ToLower(name)]; ok {
		if field := fields.FirstOfType(fieldType); field != nil {
			return field
		}
	}
	if field := fields.FieldByName(name); field != nil {
		return field
	}
	return fields.FieldByID(name)
}

// resolveOptionValue maps a filter value to an option id for
// select-style fields when the value names an option label or id.
// Values that resolve to nothing are kept as written; the evaluator
// treats them as not-equal to everything.
func resolveOptionValue(field *schema.FieldDefinition, value string) string {
	if !field.Type.IsSelect() {
		return value
	}
	if opt := field.OptionByID(value); opt != nil {
		return opt.ID
	}
	if opt := field.OptionByLabel(value); opt != nil {
		return opt.ID
	}
	return value
}
