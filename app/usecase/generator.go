package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lakenine-studio/internal/domain/entity"
	"lakenine-studio/internal/domain/repository"
	"lakenine-studio/internal/extract"
	"lakenine-studio/internal/infrastructure/metrics"
	"lakenine-studio/internal/repair"
	"lakenine-studio/internal/scaffold"
	"lakenine-studio/internal/validate"
)

// ProgressFunc receives pipeline stage names as generation advances.
type ProgressFunc func(stage string)

type GeneratorUsecase interface {
	Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error)
	GenerateStream(ctx context.Context, req entity.GenerateRequest, progress ProgressFunc) (*entity.GenerateResponse, error)
}

// GeneratorService runs the full prompt-to-project pipeline: classify,
// call the model, extract, validate, repair or fall back, persist.
type GeneratorService struct {
	model       repository.ModelClient
	repairer    *repair.Engine
	generations repository.GenerationRepository
	workspace   repository.WorkspaceRepository
	logger      *slog.Logger
	timeout     time.Duration
}

func NewGeneratorService(
	model repository.ModelClient,
	repairer *repair.Engine,
	generations repository.GenerationRepository,
	workspace repository.WorkspaceRepository,
	timeout time.Duration,
	logger *slog.Logger,
) *GeneratorService {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &GeneratorService{
		model:       model,
		repairer:    repairer,
		generations: generations,
		workspace:   workspace,
		logger:      logger,
		timeout:     timeout,
	}
}

func (s *GeneratorService) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error) {
	return s.GenerateStream(ctx, req, nil)
}

// GenerateStream is Generate with stage callbacks for the websocket
// feed. Only a failed model call is an error; every post-model outcome
// is a served project.
func (s *GeneratorService) GenerateStream(ctx context.Context, req entity.GenerateRequest, progress ProgressFunc) (*entity.GenerateResponse, error) {
	start := time.Now()
	emit := func(stage string) {
		if progress != nil {
			progress(stage)
		}
	}

	domain := entity.DetectDomain(req.Prompt)
	gen := entity.NewGeneration(req.Prompt, req.UserID, domain)
	log := s.logger.With("generation_id", gen.ID, "domain", domain)
	emit("classified")

	systemPrompt := entity.BuildSystemPrompt(req.UseBoltPrompt, domain)
	emit("calling_model")
	modelCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	raw, err := s.model.Complete(modelCtx, systemPrompt, req.Prompt)
	if err != nil {
		gen.Status = entity.GenerationStatusFailed
		gen.Error = err.Error()
		s.persist(ctx, gen, log)
		metrics.IncGeneration("error")
		return nil, fmt.Errorf("model call: %w", err)
	}

	emit("extracting")
	plan, files, strategyName := extract.Extract(raw)
	metrics.IncExtraction(strategyName)
	log.Info("extraction done", "strategy", strategyName, "files", len(files))

	emit("validating")
	verdict := validate.Validate(files, validate.Options{Comprehensive: req.UseBoltPrompt})
	for _, is := range verdict.Issues {
		metrics.IncValidationIssue(string(is.Code), string(is.Severity))
	}

	fallback := false
	switch {
	case strategyName == extract.StrategyFallback:
		// The diagnostic project already explains the failure; repair
		// would only paper over it.
		fallback = true
	case verdict.HasCode(entity.CodeZeroComponents, entity.CodeZeroImageMarkers):
		emit("building_fallback")
		log.Warn("extraction rejected, serving baseline", "issues", verdict.Codes())
		files = scaffold.BaselineProject(domain)
		plan = fallbackPlan(domain, verdict)
		fallback = true
	default:
		emit("repairing")
		repaired, applied, err := s.repairer.Repair(ctx, files, domain)
		if err != nil {
			return nil, fmt.Errorf("repair: %w", err)
		}
		files = repaired
		for _, step := range applied {
			metrics.IncRepairStep(step)
		}
		log.Info("repair done", "steps", applied)
	}

	if plan == "" {
		plan = fmt.Sprintf("Generated a %s website with navigation, content sections, contact form and footer.", domain)
	}

	gen.Plan = plan
	gen.Strategy = strategyName
	gen.FileCount = len(files)
	gen.Valid = verdict.Valid
	gen.IssueCodes = verdict.Codes()
	gen.Status = entity.GenerationStatusSucceeded
	if fallback {
		gen.Status = entity.GenerationStatusFallback
	}
	s.persist(ctx, gen, log)

	if s.workspace != nil {
		if _, err := s.workspace.SaveProject(ctx, gen.ID, files); err != nil {
			log.Warn("workspace save failed", "error", err)
		}
	}

	metrics.IncGeneration(string(gen.Status))
	metrics.ObserveGeneration(time.Since(start).Seconds())
	emit("done")

	return &entity.GenerateResponse{
		GenerationID: gen.ID,
		Plan:         plan,
		Files:        files,
		Domain:       domain,
		Strategy:     strategyName,
		Fallback:     fallback,
		Valid:        verdict.Valid,
		Issues:       verdict.Issues,
	}, nil
}

// persist is best-effort: a dead record store must not fail a
// generation that already produced a project.
func (s *GeneratorService) persist(ctx context.Context, gen *entity.Generation, log *slog.Logger) {
	if s.generations == nil {
		return
	}
	if err := s.generations.Create(ctx, gen); err != nil {
		log.Warn("generation record save failed", "error", err)
	}
}

func fallbackPlan(domain entity.BusinessDomain, verdict entity.Verdict) string {
	var reasons []string
	for _, is := range verdict.Critical() {
		reasons = append(reasons, is.Message)
	}
	return fmt.Sprintf(
		"The generated output did not meet quality requirements (%s), so a professionally designed %s template was served instead. Refine your prompt and regenerate for a custom result.",
		strings.Join(reasons, "; "), domain,
	)
}
