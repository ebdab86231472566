package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log/slog"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/d9705996/kysai/internal/ai"
	"github.com/d9705996/kysai/internal/metrics"
	"github.com/d9705996/kysai/internal/schema"
	"github.com/d9705996/kysai/internal/storage"
	"github.com/gabriel-vasile/mimetype"
)

// Fallback corrective action reported when the analysis fails.
const manualInspection = "Please inspect the image manually."

// Upload is an image received from a multipart form.
type Upload struct {
	Filename string
	Body     io.Reader
}

// HSEService analyses workplace photographs for safety findings.
type HSEService struct {
	ai    *ai.Client
	store *storage.Local
	log   *slog.Logger
}

func NewHSEService(client *ai.Client, store *storage.Local, log *slog.Logger) *HSEService {
	return &HSEService{ai: client, store: store, log: log}
}

// Analyze never fails: errors are reported inside the returned findings so
// the caller always gets a 200 payload. Mock mode returns the fixed findings
// without touching the disk.
func (s *HSEService) Analyze(ctx context.Context, up Upload) *schema.HSEAnalysisResponse {
	mode := string(s.ai.Mode())

	if s.ai.Mode() == ai.ModeMock {
		nc, ca := ai.MockHSE()
		metrics.GenerationsTotal.WithLabelValues("hse", mode, metrics.OutcomeSuccess).Inc()
		return &schema.HSEAnalysisResponse{
			NonConformities:   nc,
			CorrectiveActions: ca,
			ImagePath:         ai.MockHSEImagePath,
		}
	}

	filename := ""
	fail := func(err error) *schema.HSEAnalysisResponse {
		outcome := metrics.OutcomeError
		if errors.Is(err, ai.ErrTimeout) {
			outcome = metrics.OutcomeTimeout
		}
		metrics.GenerationsTotal.WithLabelValues("hse", mode, outcome).Inc()
		s.log.ErrorContext(ctx, "hse analysis failed", "err", err, "filename", filename)

		imagePath := ""
		if filename != "" {
			imagePath = storage.URL(filename)
		}
		return &schema.HSEAnalysisResponse{
			NonConformities:   []string{"AI Analysis Error: " + err.Error()},
			CorrectiveActions: []string{manualInspection},
			ImagePath:         imagePath,
		}
	}

	if err := s.store.EnsureDir(); err != nil {
		return fail(err)
	}
	filename = s.store.Filename(up.Filename)

	var buf bytes.Buffer
	if _, err := s.store.Save(filename, io.TeeReader(up.Body, &buf)); err != nil {
		return fail(err)
	}
	data := buf.Bytes()

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fail(fmt.Errorf("cannot identify image file %s: %w", filename, err))
	}
	img := ai.Image{Data: data, MIMEType: mimetype.Detect(data).String()}

	start := time.Now()
	reply, err := s.ai.Vision(ctx, ai.HSEPrompt, img)
	metrics.GenerationDuration.WithLabelValues("hse").Observe(time.Since(start).Seconds())
	if err != nil {
		return fail(err)
	}

	nc, ca, err := ai.ParseHSE(reply)
	if err != nil {
		return fail(err)
	}

	metrics.GenerationsTotal.WithLabelValues("hse", mode, metrics.OutcomeSuccess).Inc()
	s.log.InfoContext(ctx, "hse image analysed", "filename", filename, "mime", img.MIMEType)
	return &schema.HSEAnalysisResponse{
		NonConformities:   nc,
		CorrectiveActions: ca,
		ImagePath:         storage.URL(filename),
	}
}
