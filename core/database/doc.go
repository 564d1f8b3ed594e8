// Package database opens the optional run history database.
//
// It wraps GORM and supports MySQL for shared installations and SQLite for
// a local history file. An empty driver disables history entirely and
// Connect reports ErrDisabled.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("run history unavailable", zap.Error(err))
//	}
package database
