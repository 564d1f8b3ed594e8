// Package config provides configuration management for the balance tool.
//
// It uses Viper to read environment variables (optionally from a .env file)
// and fills unset keys from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Balance: source file names, ignored units, rules cache TTL, publish prefix
//   - Server: HTTP listen address, API key, upload limit
//   - Storage: S3/MinIO credentials and bucket
//   - Database: optional run history (mysql or sqlite)
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Balance.RulesFile)
package config
