package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/muhu-travel/backoffice-api/cmd/app"
)

// @title           Muhu Travel back office API
// @version         1.0
// @description     Reservations, clients, packages and staff of the travel agency.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
