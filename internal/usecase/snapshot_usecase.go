package usecase

import "context"

// SnapshotUsecase moves tracker and order state in and out of the backup
// bucket
type SnapshotUsecase interface {
	// ExportBackup writes a JSON snapshot of the tracker state and returns
	// the object key
	ExportBackup(ctx context.Context) (string, error)

	// ImportBackup validates a previously exported snapshot and replaces
	// the tracker state wholesale; a malformed file leaves state untouched
	ImportBackup(ctx context.Context, raw []byte) error

	// ExportOrders writes the order list as JSON and returns the object key
	ExportOrders(ctx context.Context) (string, error)

	// InventoryCSV renders the inventory report as CSV
	InventoryCSV(ctx context.Context) ([]byte, error)

	// SalesCSV renders the sales report as CSV
	SalesCSV(ctx context.Context) ([]byte, error)

	// SuppliersCSV renders the supplier report as CSV
	SuppliersCSV(ctx context.Context) ([]byte, error)

	// ClearAllData resets every tracker list and the id counters
	ClearAllData(ctx context.Context) error
}
