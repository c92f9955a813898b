// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file, with defaults taken from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Server: backend process settings (host, port, API key, uvicorn target)
//   - Python: virtual environment settings (interpreter, venv directory)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
