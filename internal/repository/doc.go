// Package repository implements SurrealDB-backed data access for the gym
// domain. Each repository is a thin struct over database.Database; the
// interfaces they satisfy are declared next to the services that consume
// them.
//
// Record links (trainee.user, trainer.specialization, training.trainee, ...)
// are resolved with FETCH clauses and decoded into the nested model structs.
// Row decoding is manual: SurrealDB returns loosely typed maps, and the
// helpers in helpers.go normalize record IDs, datetimes and numbers.
package repository
