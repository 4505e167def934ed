package driving

import "context"

// ImportService builds the local part index from supplier spreadsheet
// exports, for searching without network access.
type ImportService interface {
	// Import indexes every part in the spreadsheet at path and returns
	// how many were indexed.
	Import(ctx context.Context, path string) (int, error)
}
