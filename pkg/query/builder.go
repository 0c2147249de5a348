package query

import (
	"fmt"
	"reflect"
	"strings"
)

type predicate struct {
	clause string
	args   []any
}

// SortField is one column of an ORDER BY clause. Field is the logical field
// name resolved through the projection; Descending flips the direction.
type SortField struct {
	Field      string
	Descending bool
}

// Builder assembles SELECT statements over a single projection with
// automatically numbered parameters. Where* methods ignore nil and empty
// values, so optional filters compose without conditionals at call sites.
type Builder struct {
	projection  *ProjectionMap
	predicates  []predicate
	sortFields  []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder for the given projection with optional default
// sort fields applied when no explicit ordering is set.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: defaultSort,
	}
}

// ParseSortFields parses a comma-separated sort expression such as
// "name,-comparedAt" into SortField values; a "-" prefix means descending.
// Empty input yields nil.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if name, ok := strings.CutPrefix(part, "-"); ok {
			fields = append(fields, SortField{Field: name, Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}

	return fields
}

// Build returns a SELECT with the accumulated predicates and ordering.
func (b *Builder) Build() (string, []any) {
	where, args := b.buildWhere()

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s",
		b.projection.Columns(),
		b.projection.From(),
		where,
		b.buildOrderBy(),
	)

	return sql, args
}

// BuildCount returns a COUNT(*) query with the accumulated predicates.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.From(), where)
	return sql, args
}

// BuildPage returns a SELECT with ordering, limit, and offset for the given
// one-based page.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	where, args := b.buildWhere()
	offset := (page - 1) * pageSize

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d OFFSET %d",
		b.projection.Columns(),
		b.projection.From(),
		where,
		b.buildOrderBy(),
		pageSize,
		offset,
	)

	return sql, args
}

// BuildSingle returns a SELECT for one record matched on the given field.
func (b *Builder) BuildSingle(field string, value any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.From(),
		b.projection.Column(field),
	)
	return sql, []any{value}
}

// BuildSingleOrNull returns a SELECT limited to one row with the accumulated
// predicates. Callers treat sql.ErrNoRows as absence, not failure.
func (b *Builder) BuildSingleOrNull() (string, []any) {
	where, args := b.buildWhere()
	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s LIMIT 1",
		b.projection.Columns(),
		b.projection.From(),
		where,
	)
	return sql, args
}

// OrderByFields sets the sort order, overriding the default sort fields.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.sortFields = fields
	return b
}

// WhereEquals adds an equality predicate. No-op for nil values.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	b.predicates = append(b.predicates, predicate{
		clause: fmt.Sprintf("%s = $%%d", b.projection.Column(field)),
		args:   []any{value},
	})
	return b
}

// WhereContains adds a case-insensitive substring predicate. No-op for nil
// or empty values.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	b.predicates = append(b.predicates, predicate{
		clause: fmt.Sprintf("%s ILIKE $%%d", b.projection.Column(field)),
		args:   []any{"%" + *value + "%"},
	})
	return b
}

// WhereIn adds an IN predicate. No-op for empty value sets.
func (b *Builder) WhereIn(field string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	placeholders := make([]string, len(values))
	for i := range values {
		placeholders[i] = "$%d"
	}
	b.predicates = append(b.predicates, predicate{
		clause: fmt.Sprintf(
			"%s IN (%s)",
			b.projection.Column(field),
			strings.Join(placeholders, ", "),
		),
		args: values,
	})
	return b
}

// WhereSearch adds an OR of case-insensitive substring predicates across the
// given fields. No-op for nil or empty search terms.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	pattern := "%" + *search + "%"

	for i, field := range fields {
		clauses[i] = fmt.Sprintf("%s ILIKE $%%d", b.projection.Column(field))
		args[i] = pattern
	}

	b.predicates = append(b.predicates, predicate{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

func (b *Builder) buildOrderBy() string {
	fields := b.sortFields
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", b.projection.Column(f.Field), dir)
	}

	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.predicates) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.predicates))
	args := make([]any, 0)
	param := 1

	for _, p := range b.predicates {
		clause := p.clause
		for _, arg := range p.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", param), 1)
			args = append(args, arg)
			param++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}

	return false
}
