// Package config provides configuration for the labyrinth binaries.
//
// The config package handles:
//   - Loading a .env file and reading LABYRINTH_* environment variables
//   - Building the logrus logger shared by the commands
//   - Locating map files in a maps directory
//
// Usage:
//
//	if err := config.LoadEnv(); err != nil {
//		log.Fatal(err)
//	}
//	settings := config.FromEnv()
//
//	logger, err := config.NewLogger(settings.LogLevel, os.Stderr)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager, err := config.NewManager(settings.MapsDir)
//	if err != nil {
//		log.Fatal(err)
//	}
//	maps, err := manager.ListMaps()
package config
