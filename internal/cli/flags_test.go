package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/sandglass/pkg/timerange"
)

func TestGlassOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    glassOptions
		wantErr string
	}{
		{"Valid", glassOptions{width: 7, height: 12, fullness: 0.75}, ""},
		{"EvenWidth", glassOptions{width: 6, height: 12, fullness: 0.5}, "width must be odd"},
		{"TooNarrow", glassOptions{width: 1, height: 12, fullness: 0.5}, "width must be odd"},
		{"TooShort", glassOptions{width: 7, height: 7, fullness: 0.5}, "height must exceed width"},
		{"FullnessHigh", glassOptions{width: 7, height: 12, fullness: 1.5}, "fullness must be between"},
		{"FullnessNegative", glassOptions{width: 7, height: 12, fullness: -0.1}, "fullness must be between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestGlassOptionsBuild(t *testing.T) {
	opts := glassOptions{width: 7, height: 12, fullness: 0.75, seed: 42}

	glass, rng, err := opts.build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rng == nil {
		t.Fatal("build returned nil rng")
	}
	if glass.Width() != 7 || glass.Height() != 12 {
		t.Errorf("glass is %dx%d, want 7x12", glass.Width(), glass.Height())
	}
	// The upper bulb gets half the requested fullness poured in.
	if glass.CountTopSand() == 0 || glass.CountBottomSand() != 0 {
		t.Errorf("unexpected pour: top %d, bottom %d", glass.CountTopSand(), glass.CountBottomSand())
	}
}

func TestTimeOptionsResolve(t *testing.T) {
	now := time.Now()

	t.Run("Length", func(t *testing.T) {
		span, err := (timeOptions{length: "1m30s"}).resolve(now)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if span.Duration != 90*time.Second {
			t.Errorf("duration = %v, want 1m30s", span.Duration)
		}
	})

	t.Run("BadBegin", func(t *testing.T) {
		_, err := (timeOptions{begin: "noonish", length: "5m"}).resolve(now)
		if err == nil || !strings.Contains(err.Error(), "--begin") {
			t.Fatalf("error = %v, want --begin parse failure", err)
		}
	})

	t.Run("BadLength", func(t *testing.T) {
		_, err := (timeOptions{length: "5parsecs"}).resolve(now)
		if err == nil || !strings.Contains(err.Error(), "--length") {
			t.Fatalf("error = %v, want --length parse failure", err)
		}
	})

	t.Run("NothingGiven", func(t *testing.T) {
		_, err := (timeOptions{}).resolve(now)
		if err != timerange.ErrNoRange {
			t.Fatalf("error = %v, want ErrNoRange", err)
		}
	})
}
