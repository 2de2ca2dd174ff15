package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/adsclient"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/api"
	"github.com/vfg2006/negative-keywords-api/internal/config"
	"github.com/vfg2006/negative-keywords-api/internal/scheduler"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/dashboarding"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/provisioning"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/scoring"
	"github.com/vfg2006/negative-keywords-api/pkg/cache"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	requestRepo := repository.NewNegativeKeywordRequestRepository(pgConn)
	triggerRepo := repository.NewProcessingTriggerRepository(pgConn)
	referenceRepo := repository.NewReferenceDataRepository(pgConn)
	performanceRepo := repository.NewPerformanceRepository(pgConn)

	adsClient := adsclient.NewClient(cfg)
	adPlatformIntegrator := adplatform.New(cfg, adsClient)

	provisioningService := provisioning.NewService(requestRepo, triggerRepo)
	scoringService := scoring.NewService(performanceRepo)

	// O dashboard memoiza as métricas agregadas por um TTL curto
	metricsCache := cache.New(time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second)
	dashboardService := dashboarding.NewService(performanceRepo, metricsCache)

	// Inicializa o worker de provisionamento de palavras-chave negativas
	negativeKeywordSyncService := scheduler.NewNegativeKeywordSyncService(
		requestRepo,
		triggerRepo,
		referenceRepo,
		adPlatformIntegrator,
		cfg,
	)

	// Inicia o agendador em background
	if err := negativeKeywordSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o worker de provisionamento de palavras-chave negativas")
	} else {
		logrus.Info("Worker de provisionamento de palavras-chave negativas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		provisioningService,
		scoringService,
		dashboardService,
		referenceRepo,
		negativeKeywordSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
