// Package main is the entry point for gcli2api.
//
//	@title						gcli2api Panel API
//	@version					1.0
//	@description				In-memory usage telemetry and control panel API for the gcli2api service.
//
//	@contact.name				gcli2api Support
//	@contact.url				https://github.com/Aurora-NEW/gcli2api/issues
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	PanelAuth
//	@in							header
//	@name						X-Panel-Token
//	@description				Panel session token or panel password
package main

func main() {
	Execute()
}
