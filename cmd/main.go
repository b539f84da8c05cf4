package main

import (
	"os"

	"github.com/ErjonAhmetaj/FitCoachAI/config"
	"github.com/ErjonAhmetaj/FitCoachAI/routes"
	"github.com/ErjonAhmetaj/FitCoachAI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
