package alerts

import "context"

// Repository persiste la colección completa de alertas y el log de acks.
type Repository interface {
	Alerts(ctx context.Context) ([]Alert, error)
	SaveAlerts(ctx context.Context, alerts []Alert) error

	Acks(ctx context.Context) (AckLog, error)
	SaveAcks(ctx context.Context, log AckLog) error
}
