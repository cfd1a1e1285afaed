package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/hikarudev/promptforge/internal/app"
	"github.com/hikarudev/promptforge/internal/domain"
	"github.com/hikarudev/promptforge/internal/infrastructure/cache"
	"github.com/hikarudev/promptforge/internal/ports"
)

func cacheTestContainer(t *testing.T) *app.Container {
	t.Helper()
	return &app.Container{
		Config: domain.Config{
			Build: domain.BuildSettings{
				Framework: domain.FrameworkSwiftUI,
				Language:  domain.LanguageSwift,
			},
		},
		Cache: cache.NewStore(t.TempDir()),
	}
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCacheListEmpty(t *testing.T) {
	container := cacheTestContainer(t)
	out := runCommand(t, NewCacheCommand(container), "list")
	require.Contains(t, out, msgNoCachedRequirements)
}

func TestCacheListAndClear(t *testing.T) {
	container := cacheTestContainer(t)
	opts := ports.ParseOptions{Framework: domain.FrameworkSwiftUI, Language: domain.LanguageSwift}
	rec := domain.Requirements{AppName: "CounterApp", Features: []domain.Feature{{Name: "Counter"}}}
	require.NoError(t, container.Cache.Put("counter app", opts, rec))

	out := runCommand(t, NewCacheCommand(container), "list")
	wantKey := cache.Key("counter app", domain.FrameworkSwiftUI, domain.LanguageSwift)
	require.Contains(t, out, wantKey)

	runCommand(t, NewCacheCommand(container), "clear")

	out = runCommand(t, NewCacheCommand(container), "list")
	require.Contains(t, out, msgNoCachedRequirements)
}

func TestCacheKeyMatchesStoreDerivation(t *testing.T) {
	container := cacheTestContainer(t)

	out := runCommand(t, NewCacheCommand(container), "key", "counter", "app")
	want := cache.Key("counter app", domain.FrameworkSwiftUI, domain.LanguageSwift)
	require.Equal(t, want, strings.TrimSpace(out))

	out = runCommand(t, NewCacheCommand(container), "key", "counter", "app", "--ui-framework", domain.FrameworkUIKit)
	require.NotEqual(t, want, strings.TrimSpace(out))
}

func TestCacheSizeReportsDirectory(t *testing.T) {
	container := cacheTestContainer(t)
	opts := ports.ParseOptions{Framework: domain.FrameworkSwiftUI, Language: domain.LanguageSwift}
	rec := domain.Requirements{AppName: "CounterApp", Features: []domain.Feature{{Name: "Counter"}}}
	require.NoError(t, container.Cache.Put("counter app", opts, rec))

	out := runCommand(t, NewCacheCommand(container), "size")
	require.Contains(t, out, container.Cache.Dir())
	require.Contains(t, out, "Size: ")
	require.NotContains(t, out, "Size: 0 B")
}
