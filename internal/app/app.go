package app

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"vettr/internal/analyzer"
	"vettr/internal/classifier"
	"vettr/internal/config"
)

// ServiceVersion is reported in processing metadata and the service-info
// endpoint.
const ServiceVersion = "1.0.0"

// App wires configuration into the classifier chain and the analysis
// service. JobClient is nil unless Redis is configured.
type App struct {
	Config    *config.Config
	Analyzer  *analyzer.Service
	JobClient *asynq.Client

	primaryCloser interface{ Close() error }
}

func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{Config: cfg}

	if err := app.initAnalyzer(); err != nil {
		return nil, err
	}
	app.initJobClient()

	log.Infoln("Application initialization complete.")
	return app, nil
}

func (a *App) initAnalyzer() error {
	cfg := a.Config

	promptTemplate := ""
	if cfg.Classifier.PromptTemplate != "" {
		content, err := config.LoadPromptContent(cfg.Classifier.PromptTemplate, "classify.txt")
		if err != nil {
			return fmt.Errorf("load classifier prompt: %w", err)
		}
		promptTemplate = content
	}

	var primary classifier.Provider
	switch cfg.Classifier.Provider {
	case "gemini":
		gemini, err := classifier.NewGeminiClassifier(cfg.Classifier.GeminiApiKey, cfg.Classifier.Model, promptTemplate)
		if err != nil {
			return fmt.Errorf("init Gemini classifier: %w", err)
		}
		primary = gemini
		a.primaryCloser = gemini
	case "openai":
		client := openai.NewClient(cfg.Classifier.OpenaiApiKey)
		primary = classifier.NewOpenAIClassifier(client, cfg.Classifier.Model, promptTemplate)
		log.Infof("OpenAI classifier initialized with model %s", cfg.Classifier.Model)
	case "heuristic", "":
		log.Warnln("No external classifier configured; every item will take the keyword heuristic path.")
	}

	fallback := classifier.NewFallback(primary, classifier.NewHeuristic(), cfg.Analysis.ItemTimeout)
	a.Analyzer = analyzer.New(fallback, cfg.Analysis.Concurrency)
	return nil
}

func (a *App) initJobClient() {
	if a.Config.Redis.Address == "" {
		return
	}
	a.JobClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
}

// Close releases the classifier client and the job client.
func (a *App) Close() {
	if a.primaryCloser != nil {
		if err := a.primaryCloser.Close(); err != nil {
			log.Warnf("Error closing classifier client: %v", err)
		}
	}
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Warnf("Error closing job client: %v", err)
		}
	}
}
