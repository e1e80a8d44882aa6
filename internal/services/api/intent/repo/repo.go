// Package repo provides postgres access for the fiber name lexicon
package repo

import (
	"context"

	"fiberdex/internal/modkit/repokit"
)

// Repo defines the repository contract for the lexicon source
type Repo interface {
	// ActiveFiberNames returns the names of all active fibers as stored,
	// reflecting table state at call time. Normalization happens downstream
	ActiveFiberNames(ctx context.Context) ([]string, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) ActiveFiberNames(ctx context.Context) ([]string, error) {
	const sql = `
select name
from fibers
where is_active
order by name
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
