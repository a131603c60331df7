package prompter

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	expected := []string{
		"default",
		"high-contrast",
		"amber",
		"green-screen",
		"solarized-dark",
		"solarized-light",
		"mono",
	}
	for _, name := range expected {
		if _, ok := ThemeByName(name); !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
	}
	if _, ok := ThemeByName("  AMBER "); !ok {
		t.Fatalf("expected lookup to normalize case and spaces")
	}
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Fatalf("expected empty name to return default theme")
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatalf("expected unknown theme to be rejected")
	}

	available := AvailableThemes()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range expected {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected theme %q in available list", name)
		}
	}
}

func TestThemesHighlightCurrentWord(t *testing.T) {
	for _, name := range AvailableThemes() {
		th, _ := ThemeByName(name)
		styles := th.Styles()
		if styles.Current.Prefix == "" {
			t.Fatalf("theme %q has no current-word style", name)
		}
		if styles.Current.Prefix == styles.Text.Prefix {
			t.Fatalf("theme %q current style equals text style", name)
		}
	}
}

func TestBoringThemeHasNoPrefixes(t *testing.T) {
	styles := BoringTheme().Styles()
	for _, prefix := range []string{
		styles.Text.Prefix,
		styles.Current.Prefix,
		styles.Read.Prefix,
		styles.Status.Prefix,
		styles.Notice.Prefix,
		styles.Prompt.Prefix,
	} {
		if strings.TrimSpace(prefix) != "" {
			t.Fatalf("expected empty prefix, got %q", prefix)
		}
	}
}
