package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/assets"
	"github.com/esigns/signbot/internal/modules/fansign/application/ports"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
	"github.com/esigns/signbot/internal/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signbot",
		Name:      "fansign_generations_total",
		Help:      "Fansign renders, by kind and outcome.",
	}, []string{"kind", "outcome"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "signbot",
		Name:      "fansign_render_seconds",
		Help:      "Time spent rendering a single fansign.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})
)

// GenerationOptions configures a GenerationService.
type GenerationOptions struct {
	// Kind labels generations produced by the service.
	Kind domain.Kind

	// Order is the order styles are listed in.
	Order assets.Order

	// BlurScale controls the post-process blur; 0 disables it.
	BlurScale float64
}

// GenerationService validates fansign requests and dispatches them to renderers.
type GenerationService struct {
	fonts     ports.FontLister
	styles    ports.StyleLister
	renderers ports.RendererLookup
	log       ports.GenerationLog
	opts      GenerationOptions
	now       func() time.Time
}

// NewGenerationService creates a new GenerationService.
// log may be nil, in which case generations are not recorded.
func NewGenerationService(
	fonts ports.FontLister,
	styles ports.StyleLister,
	renderers ports.RendererLookup,
	log ports.GenerationLog,
	opts GenerationOptions,
) *GenerationService {
	return &GenerationService{
		fonts:     fonts,
		styles:    styles,
		renderers: renderers,
		log:       log,
		opts:      opts,
		now:       time.Now,
	}
}

// Kind returns the kind of generations this service produces.
func (g *GenerationService) Kind() domain.Kind {
	return g.opts.Kind
}

// Fonts returns the available font names.
func (g *GenerationService) Fonts() ([]string, error) {
	return g.fonts.List()
}

// Styles returns the available style names in the service's order.
func (g *GenerationService) Styles() ([]string, error) {
	return g.styles.List(g.opts.Order)
}

// GenerateInput contains the input for the Generate use case.
type GenerateInput struct {
	UserID snowflake.ID
	Text   string
	Font   string
	Style  string
}

// GenerateOutput contains the output for the Generate use case.
type GenerateOutput struct {
	Style string
	Image *render.Image
}

// Validate checks a single-style request without rendering anything.
func (g *GenerationService) Validate(input GenerateInput) error {
	if err := g.validateTextAndFont(input.Text, input.Font); err != nil {
		return err
	}
	return g.validateStyles([]string{strings.ToLower(input.Style)})
}

// Generate validates, renders and post-processes a single fansign.
func (g *GenerationService) Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	if err := g.Validate(input); err != nil {
		return nil, err
	}

	style := strings.ToLower(input.Style)
	path, err := g.render(ctx, style, render.Request{
		UserID: input.UserID,
		Text:   input.Text,
		Font:   input.Font,
	})
	if err != nil {
		return nil, err
	}

	img, err := g.postProcess(path)
	if err != nil {
		return nil, err
	}

	g.record(ctx, input.UserID, style)
	return &GenerateOutput{Style: style, Image: img}, nil
}

// BulkInput contains the input for the GenerateBulk use case.
// Styles holds one entry per slot; empty entries are unused slots.
type BulkInput struct {
	UserID snowflake.ID
	Text   string
	Font   string
	Styles []string
}

// Artifact is one rendered image of a bulk request.
type Artifact struct {
	Style string
	Image *render.Image
}

// BulkOutput contains the output for the GenerateBulk use case.
type BulkOutput struct {
	Artifacts []Artifact

	// Batches partitions Artifacts into groups deliverable in one message.
	Batches [][]Artifact
}

// ValidateBulk checks a bulk request without rendering anything and returns
// the normalized styles in slot order.
func (g *GenerationService) ValidateBulk(input BulkInput) ([]string, error) {
	if err := g.validateTextAndFont(input.Text, input.Font); err != nil {
		return nil, err
	}

	styles := domain.NormalizeStyles(input.Styles)
	switch {
	case len(styles) == 0:
		return nil, ErrNoStyles
	case len(styles) > domain.MaxBulkStyles:
		return nil, ErrTooManyStyles
	}
	if dup, ok := domain.FirstDuplicate(styles); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateStyle, dup)
	}

	if err := g.validateStyles(styles); err != nil {
		return nil, err
	}
	return styles, nil
}

// GenerateBulk validates and renders one fansign per selected style.
// Bulk images are not post-processed.
func (g *GenerationService) GenerateBulk(ctx context.Context, input BulkInput) (*BulkOutput, error) {
	styles, err := g.ValidateBulk(input)
	if err != nil {
		return nil, err
	}

	req := render.Request{UserID: input.UserID, Text: input.Text, Font: input.Font}

	artifacts := make([]Artifact, 0, len(styles))
	for _, style := range styles {
		path, err := g.render(ctx, style, req)
		if err != nil {
			return nil, err
		}

		img, err := readImage(path)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Style: style, Image: img})
		g.record(ctx, input.UserID, style)
	}

	return &BulkOutput{
		Artifacts: artifacts,
		Batches:   domain.Batch(artifacts, domain.AttachmentsPerMessage),
	}, nil
}

func (g *GenerationService) validateTextAndFont(text, font string) error {
	if !domain.TextFits(text) {
		return ErrTextTooLong
	}

	fonts, err := g.fonts.List()
	if err != nil {
		return err
	}
	if !slices.Contains(fonts, font) {
		return &ChoiceError{Err: ErrUnknownFont, Value: font, Available: fonts}
	}
	return nil
}

func (g *GenerationService) validateStyles(styles []string) error {
	available, err := g.styles.List(g.opts.Order)
	if err != nil {
		return err
	}

	for _, style := range styles {
		if !slices.Contains(available, style) {
			return &ChoiceError{Err: ErrUnknownStyle, Value: style, Available: available}
		}
	}
	return nil
}

func (g *GenerationService) render(ctx context.Context, style string, req render.Request) (string, error) {
	renderer, err := g.renderers.Lookup(style)
	if err != nil {
		generationsTotal.WithLabelValues(string(g.opts.Kind), "missing_renderer").Inc()
		return "", err
	}

	start := g.now()
	path, err := renderer.Render(ctx, req)
	renderDuration.WithLabelValues(string(g.opts.Kind)).Observe(time.Since(start).Seconds())
	if err != nil {
		generationsTotal.WithLabelValues(string(g.opts.Kind), "error").Inc()
		return "", fmt.Errorf("failed to render style %s: %w", style, err)
	}

	generationsTotal.WithLabelValues(string(g.opts.Kind), "ok").Inc()
	return path, nil
}

// postProcess blurs the rendered image, falling back to the original file
// when the blur fails.
func (g *GenerationService) postProcess(path string) (*render.Image, error) {
	if g.opts.BlurScale <= 0 {
		return readImage(path)
	}

	img, err := render.Blur(path, g.opts.BlurScale)
	if err == nil {
		return img, nil
	}

	slog.Warn("could not blur image, sending original", "path", path, "error", err)
	return readImage(path)
}

func (g *GenerationService) record(ctx context.Context, userID snowflake.ID, style string) {
	if g.log == nil {
		return
	}

	err := g.log.Record(ctx, domain.Generation{
		UserID:    userID,
		Style:     style,
		Kind:      g.opts.Kind,
		CreatedAt: g.now(),
	})
	if err != nil {
		slog.Warn("failed to record generation", "style", style, "error", err)
	}
}

func readImage(path string) (*render.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered image: %w", err)
	}
	return &render.Image{Name: filepath.Base(path), Data: data}, nil
}
