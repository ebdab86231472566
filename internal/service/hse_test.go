package service_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/d9705996/kysai/internal/ai"
	"github.com/d9705996/kysai/internal/mocks"
	"github.com/d9705996/kysai/internal/service"
	"github.com/d9705996/kysai/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func fixedClock() time.Time { return time.Unix(1700000000, 0) }

func TestHSEService_MockModeWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := service.NewHSEService(ai.NewMock(), storage.NewLocal(dir), newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{
		Filename: "site.jpg",
		Body:     bytes.NewReader([]byte("ignored")),
	})

	nc, ca := ai.MockHSE()
	assert.Equal(t, nc, resp.NonConformities)
	assert.Equal(t, ca, resp.CorrectiveActions)
	assert.Equal(t, "/static/uploads/mock_hse.jpg", resp.ImagePath)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "mock mode must not create the upload dir")
}

func TestHSEService_LiveSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	data := pngBytes(t)
	gen.EXPECT().
		GenerateVision(gomock.Any(), ai.HSEPrompt, ai.Image{Data: data, MIMEType: "image/png"}).
		Return(`{"non_conformities": ["Baretsiz çalışan"], "corrective_actions": ["Baret zorunlu"]}`, nil)

	dir := filepath.Join(t.TempDir(), "uploads")
	store := storage.NewLocal(dir).WithClock(fixedClock)
	svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{Filename: "site.png", Body: bytes.NewReader(data)})

	assert.Equal(t, []string{"Baretsiz çalışan"}, resp.NonConformities)
	assert.Equal(t, []string{"Baret zorunlu"}, resp.CorrectiveActions)
	assert.Equal(t, "/static/uploads/hse_1700000000.png", resp.ImagePath)

	written, err := os.ReadFile(filepath.Join(dir, "hse_1700000000.png"))
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

// webpPixel is a 1x1 lossless WebP.
const webpPixel = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

func TestHSEService_LiveAcceptsOtherImageFormats(t *testing.T) {
	webp, err := base64.StdEncoding.DecodeString(webpPixel)
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var bmpBuf, tiffBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, img))
	require.NoError(t, tiff.Encode(&tiffBuf, img, nil))

	tests := []struct {
		name     string
		filename string
		data     []byte
		mime     string
	}{
		{"webp", "site.webp", webp, "image/webp"},
		{"bmp", "site.bmp", bmpBuf.Bytes(), "image/bmp"},
		{"tiff", "site.tiff", tiffBuf.Bytes(), "image/tiff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := mocks.NewMockGenerator(ctrl)
			gen.EXPECT().
				GenerateVision(gomock.Any(), ai.HSEPrompt, ai.Image{Data: tt.data, MIMEType: tt.mime}).
				Return(`{"non_conformities": ["Blocked exit"], "corrective_actions": ["Clear exit"]}`, nil)

			store := storage.NewLocal(t.TempDir()).WithClock(fixedClock)
			svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

			resp := svc.Analyze(context.Background(), service.Upload{Filename: tt.filename, Body: bytes.NewReader(tt.data)})
			assert.Equal(t, []string{"Blocked exit"}, resp.NonConformities)
			assert.Equal(t, []string{"Clear exit"}, resp.CorrectiveActions)
		})
	}
}

func TestHSEService_LiveMissingKeysUseFallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().GenerateVision(gomock.Any(), gomock.Any(), gomock.Any()).Return("```json\n{}\n```", nil)

	store := storage.NewLocal(t.TempDir()).WithClock(fixedClock)
	svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{Filename: "a.png", Body: bytes.NewReader(pngBytes(t))})
	assert.Equal(t, ai.DefaultNonConformities, resp.NonConformities)
	assert.Equal(t, ai.DefaultCorrectiveActions, resp.CorrectiveActions)
}

func TestHSEService_LiveModelErrorDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().GenerateVision(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

	store := storage.NewLocal(t.TempDir()).WithClock(fixedClock)
	svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{Filename: "a.jpeg", Body: bytes.NewReader(pngBytes(t))})
	require.Len(t, resp.NonConformities, 1)
	assert.True(t, strings.HasPrefix(resp.NonConformities[0], "AI Analysis Error: "))
	assert.Contains(t, resp.NonConformities[0], "quota exceeded")
	assert.Equal(t, []string{"Please inspect the image manually."}, resp.CorrectiveActions)
	assert.Equal(t, "/static/uploads/hse_1700000000.jpeg", resp.ImagePath)
}

func TestHSEService_NotAnImageDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	store := storage.NewLocal(t.TempDir()).WithClock(fixedClock)
	svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{Filename: "notes.txt", Body: strings.NewReader("plain text")})
	assert.True(t, strings.HasPrefix(resp.NonConformities[0], "AI Analysis Error: "))
	assert.Equal(t, "/static/uploads/hse_1700000000.txt", resp.ImagePath)
}

func TestHSEService_DirFailureHasNoImagePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	store := storage.NewLocal(filepath.Join(blocker, "uploads"))
	svc := service.NewHSEService(ai.New(gen, time.Second), store, newNullLogger())

	resp := svc.Analyze(context.Background(), service.Upload{Filename: "a.png", Body: bytes.NewReader(pngBytes(t))})
	assert.True(t, strings.HasPrefix(resp.NonConformities[0], "AI Analysis Error: "))
	assert.Equal(t, "", resp.ImagePath)
}
