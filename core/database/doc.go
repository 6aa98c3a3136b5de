// Package database opens the GORM connection backing the in-process item
// store.
//
// MySQL is used in deployments; sqlite serves local runs and tests. Connect
// pings the database before returning, so a nil error means the store is
// usable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable, item store disabled", zap.Error(err))
//	}
package database
