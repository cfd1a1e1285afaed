package codegen

import (
	"fmt"

	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/nlp"
)

func (g *Generator) swiftUIApp(req domain.Requirements) domain.Artifact {
	content := fmt.Sprintf(`import SwiftUI

@main
struct %s: App {
    var body: some Scene {
        WindowGroup {
            ContentView()
        }
    }
}
`, req.AppName)
	return domain.Artifact{
		Path:    req.AppName + "App.swift",
		Content: content,
		Kind:    domain.ArtifactSwift,
	}
}

func (g *Generator) swiftUIContentView(req domain.Requirements) domain.Artifact {
	content := fmt.Sprintf(`import SwiftUI

struct ContentView: View {
%s
}

struct ContentView_Previews: PreviewProvider {
    static var previews: some View {
        ContentView()
    }
}
`, g.viewBody(req))
	return domain.Artifact{
		Path:    "ContentView.swift",
		Content: content,
		Kind:    domain.ArtifactSwift,
	}
}

// viewBody selects the fixed template for the primary view. Only the first
// derived feature drives the selection; any further features stay on the
// record but are not rendered. Preserved from the original design for output
// compatibility.
func (g *Generator) viewBody(req domain.Requirements) string {
	if len(req.Features) == 0 {
		return helloWorldBody
	}
	switch req.Features[0].Name {
	case nlp.FeatureCounter:
		return counterViewBody
	case nlp.FeatureWeather:
		return weatherViewBody
	default:
		return fmt.Sprintf(greetingViewBody, req.AppName)
	}
}

const helloWorldBody = `    var body: some View {
        Text("Hello, World!")
            .padding()
    }`

const counterViewBody = `    @State private var count = 0

    var body: some View {
        VStack(spacing: 20) {
            Text("Counter: \(count)")
                .font(.largeTitle)
                .fontWeight(.bold)

            HStack(spacing: 20) {
                Button(action: {
                    count -= 1
                }) {
                    Image(systemName: "minus.circle.fill")
                        .font(.system(size: 50))
                }

                Button(action: {
                    count += 1
                }) {
                    Image(systemName: "plus.circle.fill")
                        .font(.system(size: 50))
                }
            }
        }
        .padding()
    }`

const weatherViewBody = `    @State private var temperature = "72°F"
    @State private var condition = "Sunny"

    var body: some View {
        VStack(spacing: 20) {
            Image(systemName: "sun.max.fill")
                .font(.system(size: 100))
                .foregroundColor(.orange)

            Text(temperature)
                .font(.system(size: 60))
                .fontWeight(.bold)

            Text(condition)
                .font(.title)
                .foregroundColor(.secondary)
        }
        .padding()
    }`

const greetingViewBody = `    var body: some View {
        VStack {
            Text("Welcome to %s")
                .font(.largeTitle)
                .padding()
        }
    }`

func (g *Generator) uiKitAppDelegate(_ domain.Requirements) domain.Artifact {
	content := `import UIKit

@main
class AppDelegate: UIResponder, UIApplicationDelegate {

    func application(_ application: UIApplication, didFinishLaunchingWithOptions launchOptions: [UIApplication.LaunchOptionsKey: Any]?) -> Bool {
        return true
    }

    func application(_ application: UIApplication, configurationForConnecting connectingSceneSession: UISceneSession, options: UIScene.ConnectionOptions) -> UISceneConfiguration {
        return UISceneConfiguration(name: "Default Configuration", sessionRole: connectingSceneSession.role)
    }
}
`
	return domain.Artifact{
		Path:    "AppDelegate.swift",
		Content: content,
		Kind:    domain.ArtifactSwift,
	}
}

func (g *Generator) uiKitViewController(req domain.Requirements) domain.Artifact {
	content := fmt.Sprintf(`import UIKit

class ViewController: UIViewController {

    override func viewDidLoad() {
        super.viewDidLoad()
        view.backgroundColor = .systemBackground

        let label = UILabel()
        label.text = "Hello from %s!"
        label.textAlignment = .center
        label.translatesAutoresizingMaskIntoConstraints = false

        view.addSubview(label)

        NSLayoutConstraint.activate([
            label.centerXAnchor.constraint(equalTo: view.centerXAnchor),
            label.centerYAnchor.constraint(equalTo: view.centerYAnchor)
        ])
    }
}
`, req.AppName)
	return domain.Artifact{
		Path:    "ViewController.swift",
		Content: content,
		Kind:    domain.ArtifactSwift,
	}
}

func (g *Generator) infoPlist(req domain.Requirements) domain.Artifact {
	content := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>CFBundleDevelopmentRegion</key>
    <string>en</string>
    <key>CFBundleDisplayName</key>
    <string>%s</string>
    <key>CFBundleExecutable</key>
    <string>$(EXECUTABLE_NAME)</string>
    <key>CFBundleIdentifier</key>
    <string>$(PRODUCT_BUNDLE_IDENTIFIER)</string>
    <key>CFBundleInfoDictionaryVersion</key>
    <string>6.0</string>
    <key>CFBundleName</key>
    <string>$(PRODUCT_NAME)</string>
    <key>CFBundlePackageType</key>
    <string>APPL</string>
    <key>CFBundleShortVersionString</key>
    <string>1.0</string>
    <key>CFBundleVersion</key>
    <string>1</string>
    <key>LSRequiresIPhoneOS</key>
    <true/>
    <key>UILaunchStoryboardName</key>
    <string>LaunchScreen</string>
    <key>UIRequiredDeviceCapabilities</key>
    <array>
        <string>armv7</string>
    </array>
    <key>UISupportedInterfaceOrientations</key>
    <array>
        <string>UIInterfaceOrientationPortrait</string>
    </array>
</dict>
</plist>
`, req.AppName)
	return domain.Artifact{
		Path:    "Info.plist",
		Content: content,
		Kind:    domain.ArtifactPlist,
	}
}
