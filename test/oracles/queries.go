package oracles

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Oracle struct {
	Name string
	SQL  string
}

func All() []Oracle {
	return []Oracle{
		{
			// Every reference stored on a record must resolve to an
			// uploaded blob. A failed upload must never leave behind a
			// record pointing at nothing.
			Name: "O1_application_refs_resolve",
			SQL: `SELECT a.id, ref FROM applications a, unnest(a.document_ids) AS ref
                  LEFT JOIN documents d ON d.bucket || '/' || d.path = ref
                  WHERE d.id IS NULL`,
		},
		{
			Name: "O2_grievance_refs_resolve",
			SQL: `SELECT g.id, ref FROM grievances g, unnest(g.document_ids) AS ref
                  LEFT JOIN documents d ON d.bucket || '/' || d.path = ref
                  WHERE d.id IS NULL`,
		},
		{
			// The field snapshot must mirror the reference column: the
			// documents array inside submitted_data has the same length
			// as document_ids.
			Name: "O3_snapshot_matches_refs",
			SQL: `SELECT id FROM applications
                  WHERE jsonb_array_length(submitted_data->'documents') <> cardinality(document_ids)`,
		},
		{
			Name: "O4_snapshot_timestamped",
			SQL:  `SELECT id FROM applications WHERE submitted_data->>'submitted_at' IS NULL`,
		},
		{
			// Rejection reasons only accompany rejections.
			Name: "O5_rejection_reason_consistent",
			SQL:  `SELECT id FROM applications WHERE rejection_reason IS NOT NULL AND status <> 'Rejected'`,
		},
		{
			Name: "O6_unique_document_paths",
			SQL: `SELECT bucket, path FROM documents
                  GROUP BY bucket, path HAVING COUNT(*) > 1`,
		},
		{
			Name: "O7_grievance_has_substance",
			SQL:  `SELECT id FROM grievances WHERE length(trim(description)) = 0`,
		},
	}
}

// Run executes all oracles and returns the first failure (name and a
// sample row) or an empty name if all pass.
func Run(ctx context.Context, pool *pgxpool.Pool) (string, string, error) {
	for _, o := range All() {
		rows, err := pool.Query(ctx, o.SQL)
		if err != nil {
			return o.Name, "", fmt.Errorf("oracle %s: %w", o.Name, err)
		}
		if rows.Next() {
			vals, err := rows.Values()
			rows.Close()
			if err != nil {
				return o.Name, "", err
			}
			return o.Name, fmt.Sprintf("%v", vals), nil
		}
		rows.Close()
	}
	return "", "", nil
}
