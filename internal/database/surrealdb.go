package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements the Database interface for SurrealDB
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance. Connect must be called
// before any queries.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{config: cfg}
}

// Connect establishes a connection and selects the configured namespace and
// database.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if _, err := db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	}); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping verifies the connection is alive
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns one entry per statement, each wrapped as
// {status, result}.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		if isDuplicateError(err) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil, nil
	}

	output := make([]interface{}, 0, len(*results))
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				if isDuplicateMessage(r.Error.Message) {
					return nil, fmt.Errorf("%w: %s", ErrDuplicate, r.Error.Message)
				}
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		output = append(output, map[string]interface{}{
			"status": r.Status,
			"result": r.Result,
		})
	}

	return output, nil
}

// QueryOne executes a query and returns the first record, or ErrNotFound when
// the result set is empty.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	results, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}

	// Unwrap the {status, result} envelope from Query
	if resp, ok := results[0].(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if rows, ok := resp["result"].([]interface{}); ok {
				if len(rows) == 0 {
					return nil, ErrNotFound
				}
				return rows[0], nil
			}
			// Scalar results come back as-is
			return resp["result"], nil
		}
	}
	return results[0], nil
}

// Execute runs a query without returning results
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// BeginTx starts a batch-based transaction
func (s *SurrealDB) BeginTx(ctx context.Context) (Transaction, error) {
	if s.db == nil {
		return nil, ErrConnection
	}
	return &surrealTransaction{db: s, ctx: ctx}, nil
}

// isDuplicateError matches SurrealDB unique index violations by message text;
// the driver does not expose a typed error for them.
func isDuplicateError(err error) bool {
	return err != nil && isDuplicateMessage(err.Error())
}

func isDuplicateMessage(msg string) bool {
	return strings.Contains(msg, "already contains") || strings.Contains(msg, "already exists")
}

type surrealTransaction struct {
	db        *SurrealDB
	ctx       context.Context
	batch     AtomicBatch
	committed bool
}

func (t *surrealTransaction) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	t.batch.Add(query, vars)
	return nil
}

func (t *surrealTransaction) Commit() error {
	if t.committed {
		return nil
	}
	if err := t.batch.Execute(t.ctx, t.db); err != nil {
		return err
	}
	t.committed = true
	return nil
}

func (t *surrealTransaction) Rollback() error {
	// Nothing has executed yet; discard the pending batch.
	t.batch = AtomicBatch{}
	return nil
}
