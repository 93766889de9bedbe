package main

// @title Medi-Geo API
// @version 1.0.0
// @description Parses free-form geographic coordinate text into decimal degrees
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /
