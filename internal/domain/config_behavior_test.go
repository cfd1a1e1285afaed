package domain

import "testing"

func TestIsCachingEnabled(t *testing.T) {
	cases := []struct {
		name string
		c    CacheSettings
		want bool
	}{
		{"enabled with dir", CacheSettings{Enabled: true, Dir: "/tmp/c"}, true},
		{"enabled without dir", CacheSettings{Enabled: true}, false},
		{"disabled", CacheSettings{Enabled: false, Dir: "/tmp/c"}, false},
	}
	for _, tc := range cases {
		cfg := Config{Cache: tc.c}
		if got := cfg.IsCachingEnabled(); got != tc.want {
			t.Errorf("%s: IsCachingEnabled() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEffectiveFallbacks(t *testing.T) {
	var empty Config
	if got := empty.EffectiveFramework(); got != FrameworkSwiftUI {
		t.Errorf("EffectiveFramework() = %q", got)
	}
	if got := empty.EffectiveLanguage(); got != LanguageSwift {
		t.Errorf("EffectiveLanguage() = %q", got)
	}
	if got := empty.EffectiveTargetOSVersion(); got != DefaultTargetOSVersion {
		t.Errorf("EffectiveTargetOSVersion() = %q", got)
	}
	if got := empty.EffectiveOutputDir(); got != DefaultOutputDir {
		t.Errorf("EffectiveOutputDir() = %q", got)
	}

	set := Config{
		Build:  BuildSettings{Framework: FrameworkUIKit, Language: LanguageObjC, TargetOSVersion: "17.0"},
		Output: OutputSettings{Dir: "/custom"},
	}
	if got := set.EffectiveFramework(); got != FrameworkUIKit {
		t.Errorf("EffectiveFramework() = %q", got)
	}
	if got := set.EffectiveLanguage(); got != LanguageObjC {
		t.Errorf("EffectiveLanguage() = %q", got)
	}
	if got := set.EffectiveTargetOSVersion(); got != "17.0" {
		t.Errorf("EffectiveTargetOSVersion() = %q", got)
	}
	if got := set.EffectiveOutputDir(); got != "/custom" {
		t.Errorf("EffectiveOutputDir() = %q", got)
	}
}
