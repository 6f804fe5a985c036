package iohistory

import (
	"fmt"

	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// PrintStorageStatus renders history storage status for the status command.
func PrintStorageStatus(status schema.StorageStatus) {
	fmt.Printf("History storage status:\n")
	fmt.Printf("  Backend:   %s\n", status.Backend)
	fmt.Printf("  Connected: %t\n", status.Connected)
	fmt.Printf("  Records:   %d (limit %d)\n", status.Records, HistoryLimit)
	fmt.Printf("  Snapshot:  %d bytes\n", status.SnapshotBytes)
	if status.Records > 0 {
		fmt.Printf("  Newest:    %s\n", status.NewestTimestamp.Format(contract.DateTimeFormat))
		fmt.Printf("  Oldest:    %s\n", status.OldestTimestamp.Format(contract.DateTimeFormat))
	}
}
