package analyzer

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/pkg/ai"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

const (
	opAnalyze         = "analyze"
	opExtractTasks    = "extract_tasks"
	opExtractMeetings = "extract_meetings"

	providerRules = "rules"

	textMaxTokens   = 1000
	visionMaxTokens = 2000

	defaultImageType = "image/png"
)

// Analyzer runs LLM-backed analysis with a deterministic fallback
type Analyzer struct {
	providers     *ai.Providers
	timeout       time.Duration
	visionTimeout time.Duration
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewAnalyzer creates a new analyzer. providers may hold no provider at all.
func NewAnalyzer(providers *ai.Providers, cfg config.AIConfig, m *metrics.Metrics, logger *zap.Logger) *Analyzer {
	if providers == nil {
		providers = &ai.Providers{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.VisionTimeout <= 0 {
		cfg.VisionTimeout = 60 * time.Second
	}
	return &Analyzer{
		providers:     providers,
		timeout:       cfg.Timeout,
		visionTimeout: cfg.VisionTimeout,
		metrics:       m,
		logger:        logger,
	}
}

// Analyze extracts insights, topics and sentiment from notes
func (a *Analyzer) Analyze(ctx context.Context, notes string) *Analysis {
	for _, p := range a.providers.Text() {
		reply, err := a.chat(ctx, opAnalyze, p, analystSystemPrompt, analysisPrompt(notes))
		if err == nil {
			var result *Analysis
			if result, err = parseAnalysis(reply); err == nil {
				a.metrics.RecordAICall(opAnalyze, p.Name(), metrics.OutcomeOK)
				return result
			}
		}
		a.metrics.RecordAICall(opAnalyze, p.Name(), metrics.OutcomeError)
		a.logger.Warn("LLM analysis failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}

	a.metrics.RecordAICall(opAnalyze, providerRules, metrics.OutcomeFallback)
	return AnalyzeRules(notes)
}

// ExtractTasks proposes tasks from notes, linked to the given person and meeting
func (a *Analyzer) ExtractTasks(ctx context.Context, notes string, personID, meetingID *uint) []SuggestedTask {
	if strings.TrimSpace(notes) == "" {
		return []SuggestedTask{}
	}

	for _, p := range a.providers.Text() {
		reply, err := a.chat(ctx, opExtractTasks, p, extractorSystemPrompt, taskExtractionPrompt(notes))
		if err == nil {
			var tasks []SuggestedTask
			if tasks, err = parseTasks(reply, personID, meetingID); err == nil {
				a.metrics.RecordAICall(opExtractTasks, p.Name(), metrics.OutcomeOK)
				return tasks
			}
		}
		a.metrics.RecordAICall(opExtractTasks, p.Name(), metrics.OutcomeError)
		a.logger.Warn("LLM task extraction failed",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}

	a.metrics.RecordAICall(opExtractTasks, providerRules, metrics.OutcomeFallback)
	return ExtractTasksRules(notes, personID, meetingID)
}

// ExtractMeetings asks the first vision provider for the meetings in a
// screenshot. The call is made once; its failure is returned.
func (a *Analyzer) ExtractMeetings(ctx context.Context, image string, targetDate string) ([]ExtractedMeeting, error) {
	vision := a.providers.Vision()
	if len(vision) == 0 {
		a.metrics.RecordAICall(opExtractMeetings, providerRules, metrics.OutcomeFallback)
		return SampleMeetings(), nil
	}

	decoded, err := DecodeScreenshot(image)
	if err != nil {
		return nil, err
	}

	p := vision[0]
	ctx, cancel := context.WithTimeout(ctx, a.visionTimeout)
	defer cancel()

	start := time.Now()
	reply, err := p.ChatWithImage(ctx, screenshotPrompt(targetDate), decoded.Data, decoded.MimeType, visionMaxTokens)
	a.metrics.ObserveAICall(opExtractMeetings, p.Name(), time.Since(start).Seconds())
	if err != nil {
		a.metrics.RecordAICall(opExtractMeetings, p.Name(), metrics.OutcomeError)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrScreenshotFailed, err)
	}

	meetings, err := parseMeetings(reply)
	if err != nil {
		a.metrics.RecordAICall(opExtractMeetings, p.Name(), metrics.OutcomeError)
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrScreenshotFailed, err)
	}

	a.metrics.RecordAICall(opExtractMeetings, p.Name(), metrics.OutcomeOK)
	return meetings, nil
}

func (a *Analyzer) chat(ctx context.Context, operation string, p *ai.Provider, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	reply, err := p.Chat(ctx, system, prompt, textMaxTokens)
	a.metrics.ObserveAICall(operation, p.Name(), time.Since(start).Seconds())
	return reply, err
}

// DecodeScreenshot accepts raw base64 or a data URL such as
// "data:image/jpeg;base64,...". The mime type defaults to image/png.
func DecodeScreenshot(image string) (ScreenshotImage, error) {
	mimeType := defaultImageType
	payload := strings.TrimSpace(image)

	if strings.HasPrefix(payload, "data:") {
		header, data, ok := strings.Cut(payload, ",")
		if !ok {
			return ScreenshotImage{}, fmt.Errorf("%w: malformed data URL", usecaseErrors.ErrInvalidInput)
		}
		if mt, _, _ := strings.Cut(strings.TrimPrefix(header, "data:"), ";"); mt != "" {
			mimeType = mt
		}
		payload = data
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ScreenshotImage{}, fmt.Errorf("%w: image is not valid base64", usecaseErrors.ErrInvalidInput)
	}
	if len(data) == 0 {
		return ScreenshotImage{}, fmt.Errorf("%w: empty image", usecaseErrors.ErrInvalidInput)
	}
	return ScreenshotImage{Data: data, MimeType: mimeType}, nil
}
