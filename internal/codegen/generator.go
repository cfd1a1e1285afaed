// Package codegen turns a requirements record into an ordered project
// artifact set through a static tag-to-producer dispatch table.
//
// Generation is pure text assembly: the application name and the
// feature-selected view body are interpolated into fixed skeletons. No parsing
// or syntax validation happens here, and identical records always produce
// byte-identical artifact sets, so any downstream step may memoize generation
// on the same key the parse cache uses.
package codegen

import (
	"fmt"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/ports"
)

// artifactTag identifies one artifact producer. The tag set is closed: plans
// reference these constants and the dispatch table is checked at generation
// time, so adding an artifact kind is an explicit decision here rather than a
// silently swallowed runtime miss.
type artifactTag string

const (
	tagSwiftUIApp      artifactTag = "swiftui_app"
	tagSwiftUIView     artifactTag = "swiftui_content_view"
	tagUIKitDelegate   artifactTag = "uikit_app_delegate"
	tagUIKitController artifactTag = "uikit_view_controller"
	tagInfoPlist       artifactTag = "info_plist"
)

type producer func(g *Generator, req domain.Requirements) domain.Artifact

var producers = map[artifactTag]producer{
	tagSwiftUIApp:      (*Generator).swiftUIApp,
	tagSwiftUIView:     (*Generator).swiftUIContentView,
	tagUIKitDelegate:   (*Generator).uiKitAppDelegate,
	tagUIKitController: (*Generator).uiKitViewController,
	tagInfoPlist:       (*Generator).infoPlist,
}

// frameworkPlans fix the ordered producer list per dialect. The platform
// manifest is appended last regardless of dialect.
var frameworkPlans = map[string][]artifactTag{
	domain.FrameworkSwiftUI: {tagSwiftUIApp, tagSwiftUIView},
	domain.FrameworkUIKit:   {tagUIKitDelegate, tagUIKitController},
}

// Generator emits source and manifest artifacts for a requirements record.
type Generator struct {
	language        string
	targetOSVersion string
}

// NewGenerator builds a generator carrying the configuration echoed into
// project metadata.
func NewGenerator(cfg domain.Config) *Generator {
	return &Generator{
		language:        cfg.EffectiveLanguage(),
		targetOSVersion: cfg.EffectiveTargetOSVersion(),
	}
}

// Generate implements ports.Generator. The framework on the record must be one
// of the supported dialects; that is validated at configuration time, so an
// unknown value here is a programming error and reported as such.
func (g *Generator) Generate(req domain.Requirements) (domain.Project, error) {
	plan, ok := frameworkPlans[req.UIFramework]
	if !ok {
		return domain.Project{}, fmt.Errorf("unsupported ui framework %q", req.UIFramework)
	}

	tags := make([]artifactTag, 0, len(plan)+1)
	tags = append(tags, plan...)
	tags = append(tags, tagInfoPlist)

	project := domain.Project{
		Name: req.AppName,
		Metadata: map[string]string{
			domain.MetaFramework: req.UIFramework,
			domain.MetaLanguage:  g.language,
			domain.MetaOSVersion: g.targetOSVersion,
		},
	}
	for _, tag := range tags {
		produce, ok := producers[tag]
		if !ok {
			return domain.Project{}, fmt.Errorf("no artifact producer registered for tag %q", tag)
		}
		project.Files = append(project.Files, produce(g, req))
	}
	return project, nil
}

var _ ports.Generator = (*Generator)(nil)
