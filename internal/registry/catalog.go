package registry

import (
	"fmt"
	"slices"
)

// Catalog sections.
const (
	SectionHome           = "home"
	SectionMechanics      = "mechanics"
	SectionWaves          = "waves"
	SectionElectrostatics = "electrostatics"
	SectionOptics         = "optics"
	SectionThermodynamics = "thermodynamics"
	SectionModern         = "modern"
)

// Route sets.
const (
	// SetMechanics is the landing page plus the mechanics demos.
	SetMechanics = "mechanics"
	// SetFull is every demo in the published route table.
	SetFull = "full"
	// SetExtended adds the gas laws and photoelectric demos to SetFull.
	SetExtended = "extended"
)

// DefaultSet is used when no route set is configured.
const DefaultSet = SetFull

var landing = Route{Path: "/", Resource: "index", Title: "Physics Lab", Section: SectionHome}

var core = []Route{
	landing,

	{Path: "/projectile", Resource: "projectile", Title: "Projectile Motion", Section: SectionMechanics},
	{Path: "/force", Resource: "force", Title: "Forces and Free-Body Diagrams", Section: SectionMechanics},
	{Path: "/pendulum", Resource: "pendulum", Title: "Simple Pendulum", Section: SectionMechanics},
	{Path: "/incline", Resource: "incline", Title: "Inclined Plane", Section: SectionMechanics},
	{Path: "/circular", Resource: "circular", Title: "Circular Motion", Section: SectionMechanics},
	{Path: "/spring", Resource: "spring", Title: "Spring-Mass Oscillator", Section: SectionMechanics},
	{Path: "/collision", Resource: "collision", Title: "Collisions", Section: SectionMechanics},
	{Path: "/torque", Resource: "torque", Title: "Torque and Rotational Equilibrium", Section: SectionMechanics},
	{Path: "/rolling", Resource: "rolling", Title: "Rolling Motion", Section: SectionMechanics},

	{Path: "/waves", Resource: "waves", Title: "Wave Motion", Section: SectionWaves},
	{Path: "/standing", Resource: "standing", Title: "Standing Waves", Section: SectionWaves},
	{Path: "/doppler", Resource: "doppler", Title: "Doppler Effect", Section: SectionWaves},

	{Path: "/electric", Resource: "electric", Title: "Electric Fields", Section: SectionElectrostatics},
	{Path: "/capacitor", Resource: "capacitor", Title: "Parallel-Plate Capacitor", Section: SectionElectrostatics},
	{Path: "/magnetic", Resource: "magnetic", Title: "Magnetic Fields", Section: SectionElectrostatics},

	{Path: "/snell", Resource: "snell", Title: "Snell's Law", Section: SectionOptics},
	{Path: "/lenses", Resource: "lenses", Title: "Thin Lenses", Section: SectionOptics},
	{Path: "/diffraction", Resource: "diffraction", Title: "Diffraction and Interference", Section: SectionOptics},

	{Path: "/thermal", Resource: "thermal", Title: "Heat Transfer", Section: SectionThermodynamics},
}

var extended = []Route{
	{Path: "/gaslaws", Resource: "gaslaws", Title: "Ideal Gas Laws", Section: SectionThermodynamics},
	{Path: "/photoelectric", Resource: "photoelectric", Title: "Photoelectric Effect", Section: SectionModern},
}

var sections = []string{
	SectionHome,
	SectionMechanics,
	SectionWaves,
	SectionElectrostatics,
	SectionOptics,
	SectionThermodynamics,
	SectionModern,
}

var sets = map[string]func() []Route{
	SetMechanics: func() []Route {
		return filter(core, func(r Route) bool {
			return r.Section == SectionHome || r.Section == SectionMechanics
		})
	},
	SetFull: func() []Route {
		return slices.Clone(core)
	},
	SetExtended: func() []Route {
		return slices.Concat(core, extended)
	},
}

// Sets returns the names of the available route sets, sorted.
func Sets() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sections returns the catalog sections in display order.
func Sections() []string {
	return slices.Clone(sections)
}

// Select returns the ordered route table for set with the excluded sections removed.
// The landing page is always kept.
func Select(set string, exclude []string) ([]Route, error) {
	build, ok := sets[set]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSet, set)
	}

	for _, section := range exclude {
		if !slices.Contains(sections, section) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
		}
	}

	routes := filter(build(), func(r Route) bool {
		return r.Section == SectionHome || !slices.Contains(exclude, r.Section)
	})

	return routes, nil
}

func filter(routes []Route, keep func(Route) bool) []Route {
	out := make([]Route, 0, len(routes))
	for _, r := range routes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
