package detection

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDetector returns canned circles and records the plane it received.
type stubDetector struct {
	circles []Circle
	err     error
	got     *image.Gray
}

func (s *stubDetector) Name() string { return "stub" }

func (s *stubDetector) Detect(gray *image.Gray, _ Params) ([]Circle, error) {
	s.got = gray
	return s.circles, s.err
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(*Params) {}, false},
		{"max below min is allowed", func(p *Params) { p.MinRadius, p.MaxRadius = 200, 100 }, false},
		{"unbounded max", func(p *Params) { p.MaxRadius = 0 }, false},
		{"zero dp", func(p *Params) { p.DP = 0 }, true},
		{"zero min dist", func(p *Params) { p.MinDist = 0 }, true},
		{"negative param1", func(p *Params) { p.Param1 = -1 }, true},
		{"zero param2", func(p *Params) { p.Param2 = 0 }, true},
		{"negative min radius", func(p *Params) { p.MinRadius = -1 }, true},
		{"negative max radius", func(p *Params) { p.MaxRadius = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFind_ReturnsFirstCandidate(t *testing.T) {
	stub := &stubDetector{circles: []Circle{
		{X: 10, Y: 20, Radius: 5, Votes: 50},
		{X: 40, Y: 20, Radius: 6, Votes: 80},
	}}
	img := createTestImage(60, 40, color.White)

	circle, err := Find(stub, img, DefaultParams())
	require.NoError(t, err)
	require.NotNil(t, circle)
	assert.Equal(t, Circle{X: 10, Y: 20, Radius: 5, Votes: 50}, *circle)
}

func TestFind_NoCandidate(t *testing.T) {
	stub := &stubDetector{}
	img := createTestImage(60, 40, color.White)

	circle, err := Find(stub, img, DefaultParams())
	require.NoError(t, err)
	assert.Nil(t, circle)
}

func TestFindAll_PassesSmoothedGray(t *testing.T) {
	stub := &stubDetector{}
	img := image.NewRGBA(image.Rect(10, 10, 70, 50))

	_, err := FindAll(stub, img, DefaultParams())
	require.NoError(t, err)

	require.NotNil(t, stub.got)
	assert.Equal(t, image.Rect(0, 0, 60, 40), stub.got.Bounds())
}

func TestFindAll_WrapsDetectorError(t *testing.T) {
	boom := errors.New("boom")
	stub := &stubDetector{err: boom}
	img := createTestImage(20, 20, color.White)

	_, err := FindAll(stub, img, DefaultParams())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stub detector")
}

func TestFindAll_RejectsInvalidParams(t *testing.T) {
	stub := &stubDetector{}
	img := createTestImage(20, 20, color.White)

	p := DefaultParams()
	p.DP = -1

	_, err := FindAll(stub, img, p)
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Nil(t, stub.got, "detector must not run")
}

func TestCircle_Diameter(t *testing.T) {
	assert.Equal(t, 61.0, Circle{Radius: 30.5}.Diameter())
}
