package main

import (
	"log"
	"os"

	"Momentum/Config"
	"Momentum/CronJobs"
	"Momentum/FiberConfig"
	"Momentum/Gateway"
	"Momentum/Models"
	"Momentum/Recurring"
	"Momentum/Store"
	"Momentum/middleware"
)

func main() {
	settings, err := Config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if settings.LogFile != "" {
		setupLogging(settings.LogFile)
	}
	if settings.SessionSecret != "" {
		middleware.SecretKey = settings.SessionSecret
	}

	if err := Models.Connect(settings.DBPath); err != nil {
		log.Fatal("Failed to open local cache:", err)
	}

	gateway, err := Gateway.NewClient(Gateway.ClientConfig{
		BaseURL: settings.APIBaseURL,
		Timeout: settings.RequestTimeout,
	})
	if err != nil {
		log.Fatal("Failed to create gateway client:", err)
	}

	store := Store.New(gateway, Models.DB)
	planner := Recurring.NewPlanner(Recurring.NewTaskDB(Models.DB))

	// Render from the offline snapshots until the first sync lands.
	if err := store.Schedules.LoadSnapshots(); err != nil {
		log.Println("Failed to load schedule snapshots:", err)
	}

	syncScheduler := CronJobs.NewSyncScheduler(store, planner, settings.SyncSpec, true)
	if err := syncScheduler.Start(); err != nil {
		log.Fatal("Failed to start sync scheduler:", err)
	}
	defer syncScheduler.Stop()

	midnight := Recurring.NewMidnightReset(func() {
		planner.ResetForNewDay(store.Goals.Goals())
	})
	midnight.Start()
	defer midnight.Stop()

	if settings.SlackToken != "" && settings.SlackChannel != "" {
		digest := CronJobs.NewDailyDigest(store, planner, settings.SlackToken, settings.SlackChannel, settings.DigestSpec)
		if err := digest.Start(); err != nil {
			log.Println("Failed to start daily digest:", err)
		} else {
			defer digest.Stop()
		}
	}

	if err := FiberConfig.FiberConfig(settings.ListenAddr, store, planner, Models.DB); err != nil {
		log.Fatal(err)
	}
}

func setupLogging(path string) {
	// Create logs directory if it doesn't exist
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile(path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	// Redirect log output to the file
	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
