package main

import (
	"os"

	"github.com/jackunq19/daily-fuel-tracker/config"
	"github.com/jackunq19/daily-fuel-tracker/routes"
)

func main() {
	config.LoadEnv()
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
