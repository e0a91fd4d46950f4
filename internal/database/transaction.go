package database

import (
	"context"
	"fmt"
	"strings"
)

// AtomicBatch accumulates statements and executes them as a single
// BEGIN TRANSACTION / COMMIT TRANSACTION block. Variables from each Add are
// namespaced so statements from different call sites cannot collide.
//
//	var batch AtomicBatch
//	batch.Add("DELETE training WHERE trainee = $id", vars1)
//	batch.Add("DELETE $id", vars2)
//	err := batch.Execute(ctx, db)
type AtomicBatch struct {
	statements []string
	vars       map[string]interface{}
	counter    int
}

// NewAtomicBatch creates an empty batch. The zero value is also usable.
func NewAtomicBatch() *AtomicBatch {
	return &AtomicBatch{}
}

// Add appends a statement, rewriting its variables into a unique namespace.
func (b *AtomicBatch) Add(query string, vars map[string]interface{}) *AtomicBatch {
	if b.vars == nil {
		b.vars = make(map[string]interface{})
	}
	for name, value := range vars {
		b.counter++
		scoped := fmt.Sprintf("v%d_%s", b.counter, name)
		query = strings.ReplaceAll(query, "$"+name, "$"+scoped)
		b.vars[scoped] = value
	}
	b.statements = append(b.statements, query)
	return b
}

// Len returns the number of queued statements.
func (b *AtomicBatch) Len() int {
	return len(b.statements)
}

// Execute runs the batch atomically. An empty batch is a no-op.
func (b *AtomicBatch) Execute(ctx context.Context, db Database) error {
	if len(b.statements) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("BEGIN TRANSACTION;\n")
	for _, stmt := range b.statements {
		sb.WriteString(stmt)
		if !strings.HasSuffix(strings.TrimSpace(stmt), ";") {
			sb.WriteString(";")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("COMMIT TRANSACTION;")

	_, err := db.Query(ctx, sb.String(), b.vars)
	return err
}
