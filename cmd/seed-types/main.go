// Command seed-types prepares a fresh database: it defines the unique
// username index and loads the training type catalog. Running it against an
// already seeded database is safe; existing types are left alone.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gymkit/api/internal/config"
	"github.com/gymkit/api/internal/database"
)

var catalogTypes = []string{
	"fitness",
	"yoga",
	"zumba",
	"stretching",
	"resistance",
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Print statements without executing them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	statements := buildStatements()

	if *dryRun {
		for _, stmt := range statements {
			fmt.Println(stmt)
		}
		return
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	for _, stmt := range statements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing %q: %v\n", stmt, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d training types and defined the username index\n", len(catalogTypes))
}

// buildStatements returns the schema and catalog statements in execution
// order. Types are created with fixed record IDs so reruns do not duplicate
// the catalog.
func buildStatements() []string {
	statements := []string{
		"DEFINE INDEX user_username_idx ON TABLE user COLUMNS username UNIQUE",
	}
	for _, name := range catalogTypes {
		statements = append(statements,
			fmt.Sprintf("UPSERT training_type:%s SET name = '%s'", name, name),
		)
	}
	return statements
}
