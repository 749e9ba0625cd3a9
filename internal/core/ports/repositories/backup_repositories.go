package repositories

import (
	"context"
	"io"
)

// BackupWriter produces a restorable snapshot of the whole store.
type BackupWriter interface {
	// WriteBackup writes a consistent copy of every table to w.
	WriteBackup(ctx context.Context, w io.Writer) error

	// BackupExtension is the file extension of the snapshot, without the dot.
	BackupExtension() string
}
