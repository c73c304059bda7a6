package usecases

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/esigns/signbot/internal/assets"
	"github.com/esigns/signbot/internal/modules/fansign/domain"
	"github.com/esigns/signbot/internal/render"
)

type mockFonts struct {
	names []string
	err   error
}

func (m *mockFonts) List() ([]string, error) {
	return m.names, m.err
}

type mockStyles struct {
	names     []string
	err       error
	lastOrder assets.Order
}

func (m *mockStyles) List(order assets.Order) ([]string, error) {
	m.lastOrder = order
	return m.names, m.err
}

type mockGenerationLog struct {
	mu       sync.Mutex
	recorded []domain.Generation
	count    int
	since    time.Time
	err      error
}

func (m *mockGenerationLog) Record(_ context.Context, g domain.Generation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, g)
	return nil
}

func (m *mockGenerationLog) CountSince(_ context.Context, since time.Time) (int, error) {
	m.since = since
	return m.count, m.err
}

type mockChannels struct {
	channels map[snowflake.ID]domain.Channel
	err      error
}

func (m *mockChannels) Channel(id snowflake.ID) (domain.Channel, error) {
	if m.err != nil {
		return domain.Channel{}, m.err
	}
	ch, ok := m.channels[id]
	if !ok {
		return domain.Channel{}, errors.New("channel not found")
	}
	return ch, nil
}

type mockEntitlements struct {
	entitled map[snowflake.ID]bool
	err      error
	calls    int
}

func (m *mockEntitlements) IsEntitled(_ context.Context, userID snowflake.ID) (bool, error) {
	m.calls++
	return m.entitled[userID], m.err
}

// writePNG writes a small solid PNG to path.
func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// fileRenderer returns a renderer that writes a PNG named after style into dir
// and records the requests it receives.
func fileRenderer(t *testing.T, dir, style string, calls *[]render.Request) render.Renderer {
	return render.RendererFunc(func(_ context.Context, req render.Request) (string, error) {
		*calls = append(*calls, req)
		path := filepath.Join(dir, style+"_"+req.UserID.String()+".png")
		writePNG(t, path)
		return path, nil
	})
}

type generationFixture struct {
	fonts     *mockFonts
	styles    *mockStyles
	renderers *render.Registry
	log       *mockGenerationLog
	calls     []render.Request
	dir       string
}

func newGenerationFixture(t *testing.T, styles ...string) *generationFixture {
	t.Helper()
	f := &generationFixture{
		fonts:     &mockFonts{names: []string{"Arial", "Comic"}},
		styles:    &mockStyles{names: styles},
		renderers: render.NewRegistry(),
		log:       &mockGenerationLog{},
		dir:       t.TempDir(),
	}
	for _, style := range styles {
		f.renderers.Register(style, fileRenderer(t, f.dir, style, &f.calls))
	}
	return f
}

func (f *generationFixture) service(opts GenerationOptions) *GenerationService {
	return NewGenerationService(f.fonts, f.styles, f.renderers, f.log, opts)
}
