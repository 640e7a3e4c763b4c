package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		options     Options
		expectError error
	}{
		{"random scene", "random", Options{Size: 2, Seed: 1}, nil},
		{"default scene", "default", DefaultOptions(), nil},
		{"single sphere scene", "single-sphere", DefaultOptions(), nil},
		{"unknown scene", "cornell", DefaultOptions(), ErrUnknownScene},
		{"negative size", "random", Options{Size: -1}, core.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneName, tt.options)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("Expected error %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Camera == nil {
				t.Error("Scene camera should not be nil")
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene should have shapes")
			}
			if s.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", s.CameraConfig.Width)
			}
			if err := s.SamplingConfig.Validate(); err != nil {
				t.Errorf("Scene sampling config should be valid: %v", err)
			}

			top, bottom := s.GetBackgroundColors()
			if top != core.NewVec3(0.5, 0.7, 1.0) || bottom != core.NewVec3(1, 1, 1) {
				t.Errorf("Unexpected sky colors %v %v", top, bottom)
			}
		})
	}
}

func TestList(t *testing.T) {
	infos := List()
	names := Names()

	if len(infos) != len(names) || len(infos) != 3 {
		t.Fatalf("Expected 3 scenes, got %d infos and %d names", len(infos), len(names))
	}

	for i, info := range infos {
		if info.ID != names[i] {
			t.Errorf("Info %d has id %q, want %q", i, info.ID, names[i])
		}
		if info.DisplayName == "" || info.Width <= 0 || info.Height <= 0 || info.SamplesPerPixel <= 0 {
			t.Errorf("Incomplete scene info %+v", info)
		}
		if _, err := Create(info.ID, DefaultOptions()); err != nil {
			t.Errorf("Listed scene %q cannot be created: %v", info.ID, err)
		}
	}
}
