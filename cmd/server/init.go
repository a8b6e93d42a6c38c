package main

import (
	"github.com/sirupsen/logrus"

	"github.com/Mbenve9198/bdr-tool-backend/config"
	"github.com/Mbenve9198/bdr-tool-backend/internal/database"
	"github.com/Mbenve9198/bdr-tool-backend/internal/global"
)

// InitGlobal initializes the global state: validator, server config and the
// MongoDB connection.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initValidator registers the custom validators (no_xss, domain_like, ...).
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
}
