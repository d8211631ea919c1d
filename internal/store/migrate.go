package store

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/factdrill/ent/schema"
)

const completedUnitsTable = "completed_units"

// Column names of the completed_units table.
const (
	colID          = "id"
	colUnitID      = "unit_id"
	colCurriculum  = "curriculum"
	colFactCount   = "fact_count"
	colCompletedAt = "completed_at"
)

// entitySchema is the part of an ent schema the store reads.
type entitySchema interface {
	Fields() []ent.Field
	Indexes() []ent.Index
}

// tableFor builds the SQL table for an ent schema: an auto-increment id
// followed by the schema's fields in declaration order. Index names
// follow ent's "<type>_<fields>" convention.
func tableFor(name, typeName string, s entitySchema) (*sqlschema.Table, error) {
	id := &sqlschema.Column{Name: colID, Type: field.TypeInt, Increment: true}
	t := &sqlschema.Table{
		Name:       name,
		Columns:    []*sqlschema.Column{id},
		PrimaryKey: []*sqlschema.Column{id},
	}

	byName := map[string]*sqlschema.Column{colID: id}
	for _, f := range s.Fields() {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		c := &sqlschema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Size:     int64(d.Size),
		}
		// Function defaults are applied in Go, not by the database.
		if d.Default != nil && reflect.TypeOf(d.Default).Kind() != reflect.Func {
			c.Default = d.Default
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, ix := range s.Indexes() {
		d := ix.Descriptor()
		idx := &sqlschema.Index{
			Name:   strings.ToLower(typeName) + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, fname := range d.Fields {
			c, ok := byName[fname]
			if !ok {
				return nil, fmt.Errorf("index on unknown field %q", fname)
			}
			idx.Columns = append(idx.Columns, c)
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t, nil
}

// migrate creates or updates the tables owned by the store.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	completedUnits, err := tableFor(completedUnitsTable, "CompletedUnit", entschema.CompletedUnit{})
	if err != nil {
		return fmt.Errorf("build %s table: %w", completedUnitsTable, err)
	}
	m, err := sqlschema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, completedUnits)
}
