// Package config provides configuration management for the LCR sandbox backend.
//
// Configuration is loaded from environment variables using the env package.
// All configuration values have sensible defaults for development use; the
// report store variables (DATABASE_URL, DATABASE_NAME) are optional and
// only drive the diagnostic endpoint.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
