package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ginny-app/ginny-server/api"
	"github.com/ginny-app/ginny-server/internal/config"
	"github.com/ginny-app/ginny-server/internal/logging"
	"github.com/ginny-app/ginny-server/internal/mail"
	"github.com/ginny-app/ginny-server/internal/service"
	"github.com/ginny-app/ginny-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ginny-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	tokenSource := mail.NewStaticTokenSource(envConfig.GmailAccessToken, envConfig.GmailTokenExpiry)
	mailSource, err := mail.NewGmailSource(context.Background(), tokenSource)
	if err != nil {
		logrus.WithError(err).Fatal("mail.NewGmailSource")
		return
	}

	svc := service.NewService(dbStorage, mailSource, envConfig.SyncFetchLimit)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
