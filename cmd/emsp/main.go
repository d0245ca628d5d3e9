package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/adriandotdev/emsp-v2/internal/api"
	"github.com/adriandotdev/emsp-v2/internal/pkg/constants"
	"github.com/adriandotdev/emsp-v2/internal/pkg/geocoding"
	"github.com/adriandotdev/emsp-v2/internal/pkg/logger"
	"github.com/adriandotdev/emsp-v2/internal/pkg/mailer"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store"
	"github.com/adriandotdev/emsp-v2/internal/pkg/store/xpgx"
)

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperListenAddr, ":4001")
	viper.SetDefault(constants.ViperMetricsAddr, ":9091")

	_ = viper.ReadInConfig()
}

func newMailer() mailer.Mailer {
	host := viper.GetString(constants.ViperSMTPHost)
	if host == "" {
		return mailer.Noop{}
	}
	return mailer.NewSMTP(
		host,
		viper.GetString(constants.ViperSMTPPort),
		viper.GetString(constants.ViperSMTPUser),
		viper.GetString(constants.ViperSMTPPassword),
	)
}

func main() {
	initConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zapLogger)

	ctx := context.Background()

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(
		store.NewStore(pool),
		geocoding.NewGoogle(viper.GetString(constants.ViperGoogleGeoKey)),
		newMailer(),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	metricsServer := &http.Server{
		Addr:    viper.GetString(constants.ViperMetricsAddr),
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf(ctx, "metrics server: %v", err)
		}
	}()

	go svc.Serve(viper.GetString(constants.ViperListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "api shutdown: %v", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "metrics shutdown: %v", err)
	}
}
