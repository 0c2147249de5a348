// Package query builds parameterized SQL through projection maps that
// translate logical field names into qualified column references.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap binds logical field names to alias-qualified columns for one
// table. Repositories declare a projection once and share it across queries.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	columns    map[string]string
	columnList []string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project adds a mapping from a database column to a logical field name.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns[field] = qualified
	p.columnList = append(p.columnList, qualified)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// From returns the aliased table reference for a FROM clause.
func (p *ProjectionMap) From() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a logical field name to its qualified column, returning the
// input unchanged when no mapping exists.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.columns[field]; ok {
		return col
	}
	return field
}

// Columns returns all projected columns as a comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}

// ColumnList returns all projected columns in declaration order.
func (p *ProjectionMap) ColumnList() []string {
	return p.columnList
}
