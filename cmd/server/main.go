package main

import (
	"fmt"
	"log"
	"net"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"liyu1981.xyz/battery-tracking-service/pkg/bootstrap"
	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/config"
	batteryGrpc "liyu1981.xyz/battery-tracking-service/pkg/grpc"
	batteryHttp "liyu1981.xyz/battery-tracking-service/pkg/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	common.SetupLogger(cfg.LogDir, cfg.IsProduction())

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreType, err)
	}
	defer app.Close()

	logger := common.GetLogger()
	defaultLimiter := fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst)

	if cfg.GrpcHostPort != "" {
		logger.Info("Starting gRPC server on port " + cfg.GrpcHostPort)
		go func() {
			inventoryGrpcServer := batteryGrpc.InventoryServer{
				Inventory:        app.Inventory,
				RateLimiterStore: app.NewRateLimiterStore(),
			}
			interceptor := inventoryGrpcServer.CreateRateLimitInterceptor(batteryGrpc.MutatingMethods)
			s := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
			batteryGrpc.RegisterInventoryServiceServer(s, &inventoryGrpcServer)
			logger.Info("gRPC server created with:", zap.String("default_limiter", defaultLimiter))

			listener, err := net.Listen("tcp", cfg.GrpcHostPort)
			if err != nil {
				log.Fatalf("failed to listen: %v", err)
			}

			logger.Info("start gRPC server on " + cfg.GrpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
	}

	rs := &batteryHttp.RestfulServer{
		Server:           gin.Default(),
		Inventory:        app.Inventory,
		Notifier:         app.Notifier,
		Metrics:          app.Metrics,
		RateLimiterStore: app.NewRateLimiterStore(),
	}
	rs.Setup()

	logger.Info("http server created with:", zap.String("default_limiter", defaultLimiter))

	logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
	if err := rs.Server.Run(cfg.HttpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
