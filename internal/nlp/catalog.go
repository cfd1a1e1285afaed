package nlp

import "github.com/hikarudev/promptforge/internal/domain"

// Feature names the generator's view-template selection matches on.
const (
	FeatureCounter = "Counter"
	FeatureWeather = "WeatherDisplay"
	FeatureTasks   = "TaskList"
	FeatureGeneric = "MainFeature"
)

// DefaultAppName is used when no name marker matches the prompt.
const DefaultAppName = "GeneratedApp"

// nameMarker maps trigger substrings to an application name. Declaration order
// is priority order: the first marker with any trigger present in the prompt
// wins, regardless of where its trigger occurs in the text.
type nameMarker struct {
	appName  string
	triggers []string
}

var nameMarkers = []nameMarker{
	{appName: "CounterApp", triggers: []string{"counter"}},
	{appName: "WeatherApp", triggers: []string{"weather"}},
	{appName: "TodoApp", triggers: []string{"todo", "task"}},
	{appName: "PhotoGallery", triggers: []string{"photo", "gallery"}},
}

// featureCategory couples trigger substrings with the feature descriptor they
// produce. Categories are tested independently, so one prompt may yield
// several features, appended in declaration order.
type featureCategory struct {
	triggers []string
	feature  domain.Feature
}

var featureCatalog = []featureCategory{
	{
		triggers: []string{"counter"},
		feature: domain.Feature{
			Name:          FeatureCounter,
			Description:   "Display and modify a counter value",
			UIElements:    []string{"label", "button", "button"},
			Functionality: []string{"increment", "decrement", "display"},
		},
	},
	{
		triggers: []string{"weather"},
		feature: domain.Feature{
			Name:          FeatureWeather,
			Description:   "Show weather information",
			UIElements:    []string{"label", "image", "text"},
			Functionality: []string{"fetch_weather", "display_temperature", "display_conditions"},
		},
	},
	{
		triggers: []string{"todo", "task"},
		feature: domain.Feature{
			Name:          FeatureTasks,
			Description:   "Manage a list of tasks",
			UIElements:    []string{"list", "text_field", "button"},
			Functionality: []string{"add_task", "remove_task", "toggle_completion"},
		},
	},
}

// genericFeature is substituted when no category matches, keeping the
// invariant that a requirements record always carries at least one feature.
var genericFeature = domain.Feature{
	Name:          FeatureGeneric,
	Description:   "Main application functionality",
	UIElements:    []string{"view"},
	Functionality: []string{"display"},
}
