package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
}

func recordAfter(db *gorm.DB, recorder MetricsRecorder, op string) {
	startTime, ok := db.InstanceGet("query_start_time")
	if !ok {
		return
	}
	table := db.Statement.Table
	if table == "" {
		table = "unknown"
	}
	recorder.RecordDBQuery(op, table, time.Since(startTime.(time.Time)), db.Error)
}

func markStart(db *gorm.DB) {
	db.InstanceSet("query_start_time", time.Now())
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query/create/update/delete per table.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", markStart)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", func(db *gorm.DB) {
		recordAfter(db, recorder, "select")
	})

	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", markStart)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", func(db *gorm.DB) {
		recordAfter(db, recorder, "insert")
	})

	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", markStart)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", func(db *gorm.DB) {
		recordAfter(db, recorder, "update")
	})

	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", markStart)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", func(db *gorm.DB) {
		recordAfter(db, recorder, "delete")
	})
}
