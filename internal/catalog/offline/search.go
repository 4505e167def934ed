package offline

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"

	"github.com/partlink-labs/partlink-cli/internal/core/domain"
)

// Search finds parts matching the query in the local index, best
// match first, hydrated from the parts store. A local search is never
// rate limited.
func (l *Library) Search(ctx context.Context, query string) ([]domain.Candidate, error) {
	request := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	request.Size = l.pageSize

	result, err := l.index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(result.Hits))
	err = l.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(componentsBucket))
		for _, hit := range result.Hits {
			raw := bucket.Get([]byte(hit.ID))
			if raw == nil {
				continue
			}
			var rec record
			if err := decodeRecord(raw, &rec); err != nil {
				return fmt.Errorf("decode %s: %w", hit.ID, err)
			}
			candidates = append(candidates, rec.candidate())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
