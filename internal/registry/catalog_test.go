package registry_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/JaimeStill/physics-lab/internal/registry"
)

var publishedPaths = []string{
	"/",
	"/projectile", "/force", "/pendulum", "/incline", "/circular", "/spring", "/collision", "/torque", "/rolling",
	"/waves", "/standing", "/doppler",
	"/electric", "/capacitor", "/magnetic",
	"/snell", "/lenses", "/diffraction",
	"/thermal",
}

func paths(routes []registry.Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Path
	}
	return out
}

func TestSelect_Full(t *testing.T) {
	routes, err := registry.Select(registry.SetFull, nil)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if got := paths(routes); !slices.Equal(got, publishedPaths) {
		t.Errorf("paths = %v, want %v", got, publishedPaths)
	}
}

func TestSelect_Mechanics(t *testing.T) {
	routes, err := registry.Select(registry.SetMechanics, nil)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if len(routes) != 10 {
		t.Errorf("len = %d, want 10", len(routes))
	}
	for _, r := range routes {
		if r.Section != registry.SectionHome && r.Section != registry.SectionMechanics {
			t.Errorf("unexpected section %q for %s", r.Section, r.Path)
		}
	}
}

func TestSelect_Extended(t *testing.T) {
	routes, err := registry.Select(registry.SetExtended, nil)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	got := paths(routes)
	if len(got) != len(publishedPaths)+2 {
		t.Errorf("len = %d, want %d", len(got), len(publishedPaths)+2)
	}
	for _, p := range []string{"/gaslaws", "/photoelectric"} {
		if !slices.Contains(got, p) {
			t.Errorf("extended set missing %s", p)
		}
	}
}

func TestSelect_EverySetIsValidAndRooted(t *testing.T) {
	for _, set := range registry.Sets() {
		t.Run(set, func(t *testing.T) {
			routes, err := registry.Select(set, nil)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}

			reg, err := registry.New(routes...)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			route, err := reg.Resolve("/")
			if err != nil {
				t.Fatalf("Resolve(/) error = %v", err)
			}
			if route.Resource != "index" {
				t.Errorf("Resolve(/).Resource = %q, want index", route.Resource)
			}
		})
	}
}

func TestSelect_Exclude(t *testing.T) {
	routes, err := registry.Select(registry.SetFull, []string{registry.SectionOptics, registry.SectionHome})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	got := paths(routes)
	if got[0] != "/" {
		t.Errorf("landing page removed by exclusion: %v", got)
	}
	for _, p := range []string{"/snell", "/lenses", "/diffraction"} {
		if slices.Contains(got, p) {
			t.Errorf("excluded path %s still present", p)
		}
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := registry.Select("everything", nil); !errors.Is(err, registry.ErrUnknownSet) {
		t.Errorf("Select(unknown set) error = %v, want ErrUnknownSet", err)
	}
	if _, err := registry.Select(registry.SetFull, []string{"astronomy"}); !errors.Is(err, registry.ErrUnknownSection) {
		t.Errorf("Select(unknown section) error = %v, want ErrUnknownSection", err)
	}
}

func TestSelect_ReturnsIndependentSlices(t *testing.T) {
	first, _ := registry.Select(registry.SetFull, nil)
	first[1].Path = "/mutated"

	second, _ := registry.Select(registry.SetFull, nil)
	if second[1].Path == "/mutated" {
		t.Error("Select() shares backing storage between calls")
	}
}

func TestSets(t *testing.T) {
	want := []string{registry.SetExtended, registry.SetFull, registry.SetMechanics}
	if got := registry.Sets(); !slices.Equal(got, want) {
		t.Errorf("Sets() = %v, want %v", got, want)
	}
	if !slices.Contains(registry.Sets(), registry.DefaultSet) {
		t.Errorf("DefaultSet %q is not a known set", registry.DefaultSet)
	}
}
