package services

import (
	"context"
	"io"
)

// BackupSvcFacade exposes store snapshots for download.
type BackupSvcFacade interface {
	// WriteBackup writes a snapshot to w and returns the suggested file name.
	WriteBackup(ctx context.Context, w io.Writer) (string, error)
}
