package policy

import "github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов (*sql.DB или *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
