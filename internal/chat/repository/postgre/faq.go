package postgre

import (
	"context"

	"github.com/lib/pq"

	repo "voltassist/internal/chat/repository"
	"voltassist/internal/model"
)

// ListFAQs returns the full FAQ catalogue in creation order, so matching is
// deterministic across calls.
func (r *implRepository) ListFAQs(ctx context.Context) ([]model.FAQ, error) {
	query := `SELECT id, question, answer, category, keywords, created_at
		FROM faqs ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListFAQs"), err)
		return nil, repo.ErrFailedToGet
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category,
			pq.Array(&f.Keywords), &f.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s: scan: %v", r.dsn("ListFAQs"), err)
			return nil, repo.ErrFailedToGet
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: rows: %v", r.dsn("ListFAQs"), err)
		return nil, repo.ErrFailedToGet
	}
	return faqs, nil
}
