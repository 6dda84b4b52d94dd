package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/ginny-app/ginny-server/internal/handlers/v1/bank"
	"github.com/ginny-app/ginny-server/internal/handlers/v1/profile"
	"github.com/ginny-app/ginny-server/internal/handlers/v1/stats"
	"github.com/ginny-app/ginny-server/internal/handlers/v1/status"
	syncv1 "github.com/ginny-app/ginny-server/internal/handlers/v1/sync"
	"github.com/ginny-app/ginny-server/internal/handlers/v1/transaction"
	"github.com/ginny-app/ginny-server/internal/logging"
	"github.com/ginny-app/ginny-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Ginny API", "1.0.0"))
	humaAPI.UseMiddleware(logging.HumaMiddleware(r.Logger))

	syncv1.NewRunSyncHandler(r.Service.Sync).Register(humaAPI)
	syncv1.NewSyncStatusHandler(r.Service.Sync).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewSeedDemoHandler(r.Service.Transaction).Register(humaAPI)
	stats.NewMonthlyStatsHandler(r.Service.Stats).Register(humaAPI)
	stats.NewCategoryBreakdownHandler(r.Service.Stats).Register(humaAPI)
	bank.NewListBanksHandler(r.Service.Stats).Register(humaAPI)
	bank.NewBankStatsHandler(r.Service.Stats).Register(humaAPI)
	profile.NewGetProfileHandler(r.Service.User).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
