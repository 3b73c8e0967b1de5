package cmd

import (
	"log/slog"

	httpadapter "keygen/internal/adapters/in/http"
	"keygen/internal/adapters/out/postgres"
	"keygen/internal/adapters/out/queue"
	"keygen/internal/core/application/usecases/commands"
	"keygen/internal/core/application/usecases/queries"
	"keygen/internal/jobs"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateGenerateKeyCommandHandler() commands.GenerateKeyCommandHandler {
	var f commands.SecretUoWFactory = FuncSecretUoWFactory(func() commands.SecretUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateKeyCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAllKeysCommandHandler() commands.DeleteAllKeysCommandHandler {
	var f commands.SecretUoWFactory = FuncSecretUoWFactory(func() commands.SecretUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAllKeysCommandHandler(f)
}

func (c *CompositionRoot) CreateListSecretsQueryHandler() queries.ListSecretsQueryHandler {
	return queries.NewListSecretsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEnqueuer(client *asynq.Client) *queue.AsynqEnqueuer {
	return queue.NewAsynqEnqueuer(client, c.logger)
}

func (c *CompositionRoot) CreateGenerateKeyTaskHandler() *queue.GenerateKeyTaskHandler {
	return queue.NewGenerateKeyTaskHandler(c.CreateGenerateKeyCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer(client *asynq.Client) *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateGenerateKeyCommandHandler(),
		c.CreateDeleteAllKeysCommandHandler(),
		c.CreateListSecretsQueryHandler(),
		c.CreateEnqueuer(client),
		httpadapter.NewFlashStore(c.config.SecretKey),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListSecretsQueryHandler(), c.logger)
}

type FuncSecretUoWFactory func() commands.SecretUoW

func (f FuncSecretUoWFactory) Create() commands.SecretUoW {
	return f()
}
