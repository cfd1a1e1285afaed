package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/nlp"
)

func testGenerator() *Generator {
	return NewGenerator(domain.Config{})
}

func record(name, framework string, features ...string) domain.Requirements {
	rec := domain.Requirements{AppName: name, UIFramework: framework}
	for _, f := range features {
		rec.Features = append(rec.Features, domain.Feature{Name: f})
	}
	return rec
}

func TestGenerateSwiftUIProjectShape(t *testing.T) {
	project, err := testGenerator().Generate(record("CounterApp", domain.FrameworkSwiftUI, nlp.FeatureCounter))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if project.Name != "CounterApp" {
		t.Fatalf("project name = %q", project.Name)
	}
	wantPaths := []string{"CounterAppApp.swift", "ContentView.swift", "Info.plist"}
	var gotPaths []string
	for _, a := range project.Files {
		gotPaths = append(gotPaths, a.Path)
	}
	if diff := cmp.Diff(wantPaths, gotPaths); diff != "" {
		t.Fatalf("artifact paths (-want +got):\n%s", diff)
	}
	if project.Files[2].Kind != domain.ArtifactPlist {
		t.Fatalf("manifest kind = %q", project.Files[2].Kind)
	}
	if project.Metadata[domain.MetaFramework] != domain.FrameworkSwiftUI {
		t.Fatalf("metadata framework = %q", project.Metadata[domain.MetaFramework])
	}
}

func TestGenerateUIKitProjectShape(t *testing.T) {
	project, err := testGenerator().Generate(record("TodoApp", domain.FrameworkUIKit, nlp.FeatureTasks))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantPaths := []string{"AppDelegate.swift", "ViewController.swift", "Info.plist"}
	var gotPaths []string
	for _, a := range project.Files {
		gotPaths = append(gotPaths, a.Path)
	}
	if diff := cmp.Diff(wantPaths, gotPaths); diff != "" {
		t.Fatalf("artifact paths (-want +got):\n%s", diff)
	}
	if !strings.Contains(project.Files[1].Content, "Hello from TodoApp!") {
		t.Fatal("view controller does not greet with the app name")
	}
}

func TestGenerateDeterminism(t *testing.T) {
	rec := record("WeatherApp", domain.FrameworkSwiftUI, nlp.FeatureWeather)
	first, err := testGenerator().Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := testGenerator().Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated generation differs:\n%s", diff)
	}
}

func TestGenerateViewBodySelection(t *testing.T) {
	cases := []struct {
		name    string
		feature string
		marker  string
	}{
		{"counter", nlp.FeatureCounter, "@State private var count = 0"},
		{"weather", nlp.FeatureWeather, `@State private var temperature = "72°F"`},
		{"generic", nlp.FeatureGeneric, `Text("Welcome to MyApp")`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			project, err := testGenerator().Generate(record("MyApp", domain.FrameworkSwiftUI, tc.feature))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			view := project.Files[1].Content
			if !strings.Contains(view, tc.marker) {
				t.Fatalf("view body missing %q:\n%s", tc.marker, view)
			}
		})
	}
}

func TestGenerateUsesOnlyFirstFeature(t *testing.T) {
	rec := record("MyApp", domain.FrameworkSwiftUI, nlp.FeatureCounter, nlp.FeatureWeather)
	project, err := testGenerator().Generate(rec)
	if err != nil {
		t.Fatal(err)
	}
	view := project.Files[1].Content
	if !strings.Contains(view, "count") {
		t.Fatal("first feature not rendered")
	}
	if strings.Contains(view, "temperature") {
		t.Fatal("second feature leaked into the rendered view")
	}
}

func TestGenerateNoFeaturesFallsBackToHelloWorld(t *testing.T) {
	project, err := testGenerator().Generate(record("BareApp", domain.FrameworkSwiftUI))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(project.Files[1].Content, `Text("Hello, World!")`) {
		t.Fatal("expected hello-world body for a featureless record")
	}
}

func TestGenerateRejectsUnknownFramework(t *testing.T) {
	_, err := testGenerator().Generate(record("MyApp", "flutter", nlp.FeatureCounter))
	if err == nil {
		t.Fatal("expected an error for an unsupported framework")
	}
	if !strings.Contains(err.Error(), "flutter") {
		t.Fatalf("error does not name the offending framework: %v", err)
	}
}

func TestGenerateManifestNamesTheApp(t *testing.T) {
	project, err := testGenerator().Generate(record("PhotoGallery", domain.FrameworkSwiftUI, nlp.FeatureGeneric))
	if err != nil {
		t.Fatal(err)
	}
	manifest := project.Files[len(project.Files)-1]
	if manifest.Path != "Info.plist" {
		t.Fatalf("manifest not last: %q", manifest.Path)
	}
	if !strings.Contains(manifest.Content, "<string>PhotoGallery</string>") {
		t.Fatal("manifest missing CFBundleDisplayName value")
	}
}
