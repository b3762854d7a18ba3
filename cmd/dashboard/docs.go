package main

//go:generate swag init -g cmd/dashboard/main.go -o docs

// @title           OddsDesk Dashboard API
// @version         0.1.0
// @description     Ranked opportunities, alert quality, filters, and live consensus for the odds dashboard.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
