package main

import (
	"log"
	"net/http"
	"os"

	"github.com/dquispe/electromarket/app/cmd"
	"github.com/dquispe/electromarket/app/configs"
	"github.com/dquispe/electromarket/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	snapClient := configs.NewSnapClient()
	log.Println("✅ Midtrans Snap Client initialized.")

	router := routes.NewRouter(db, snapClient)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}
}
