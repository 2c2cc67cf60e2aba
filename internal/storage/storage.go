// Package storage provides the document store boundary used by the
// claim workflow. The workflow holds only the returned reference,
// never the bytes.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// DocumentStore persists uploaded claim documents under a
// collision-resistant name and returns a durable reference.
type DocumentStore interface {
	Store(ctx context.Context, data []byte, suggestedName string) (string, error)
}

// DocumentKey builds a timestamp-prefixed name so two uploads of the
// same file never collide.
func DocumentKey(now time.Time, suggestedName string) string {
	return fmt.Sprintf("%s_%s", now.Format("20060102_150405"), filepath.Base(suggestedName))
}
