package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/JaimeStill/physics-lab/internal/registry"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRoutesCmd_Table(t *testing.T) {
	out, err := runCmd(t, "routes")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"PATH", "/pendulum", "pendulum.html", "electrostatics", "/thermal"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRoutesCmd_YAML(t *testing.T) {
	t.Setenv("ROUTES_SET", "extended")

	out, err := runCmd(t, "routes", "--format", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got routeTable
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}

	want, _ := registry.Select(registry.SetExtended, nil)
	if got.Set != registry.SetExtended || len(got.Routes) != len(want) {
		t.Errorf("got set %q with %d routes, want %q with %d", got.Set, len(got.Routes), registry.SetExtended, len(want))
	}
	if got.Routes[0].Path != "/" || got.Routes[0].Resource != "index" {
		t.Errorf("first route = %+v, want landing page", got.Routes[0])
	}
}

func TestRoutesCmd_UnknownFormat(t *testing.T) {
	if _, err := runCmd(t, "routes", "--format", "xml"); err == nil {
		t.Error("Execute() error = nil, want unknown format error")
	}
}

func TestRoutesCmd_InvalidConfig(t *testing.T) {
	t.Setenv("ROUTES_SET", "everything")

	if _, err := runCmd(t, "routes"); err == nil {
		t.Error("Execute() error = nil, want config error")
	}
}

func TestExecute(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name   string
		set    string
		code   int
		logged []string
	}{
		{"success", "full", 0, nil},
		{"config error", "bogus", 1, []string{`"level":"ERROR"`, `"msg":"command failed"`, `"command":"physics-lab routes"`, "unknown route set"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ROUTES_SET", tt.set)

			var out, cobraErr, logs bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&cobraErr)
			cmd.SetArgs([]string{"routes"})

			if code := execute(cmd, &logs); code != tt.code {
				t.Errorf("execute() = %d, want %d", code, tt.code)
			}
			if cobraErr.Len() != 0 {
				t.Errorf("unexpected plain error output: %q", cobraErr.String())
			}
			for _, want := range tt.logged {
				if !strings.Contains(logs.String(), want) {
					t.Errorf("log missing %q: %s", want, logs.String())
				}
			}
			if tt.code == 0 && logs.Len() != 0 {
				t.Errorf("unexpected log output: %s", logs.String())
			}
		})
	}
}

func TestRenderTable_GroupsBySection(t *testing.T) {
	reg, err := registry.New(
		registry.Route{Path: "/waves", Resource: "waves", Title: "Wave Motion", Section: registry.SectionWaves},
		registry.Route{Path: "/custom", Resource: "custom", Title: "Custom", Section: "workshop"},
		registry.Route{Path: "/pendulum", Resource: "pendulum", Title: "Simple Pendulum", Section: registry.SectionMechanics},
		registry.Route{Path: "/", Resource: "index", Title: "Physics Lab", Section: registry.SectionHome},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := renderTable(reg)

	order := []string{"index.html", "pendulum.html", "waves.html", "custom.html"}
	last := -1
	for _, name := range order {
		i := strings.Index(out, name)
		if i < 0 {
			t.Fatalf("table missing %q:\n%s", name, out)
		}
		if i < last {
			t.Errorf("%q out of section order:\n%s", name, out)
		}
		last = i
	}
}
