package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"io"
)

// FileStore keeps uploaded gallery files. Save returns the public source path
// the image row stores; Remove takes that same path.
type FileStore interface {
	Save(ctx context.Context, filename string, body io.Reader) (string, error)
	Remove(ctx context.Context, src string) error
}
