package ui

import "testing"

func TestSetTheme(t *testing.T) {
	defer SetTheme("dark")

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}

	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitThemeRespectsNoColorEnv(t *testing.T) {
	defer SetTheme("dark")
	t.Setenv("NO_COLOR", "1")

	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR set: theme = %q, want none", GetCurrentTheme().Name)
	}

	if ColorPrimary() != "" || ColorReset() != "" {
		t.Error("no-color theme should emit empty escape codes")
	}
}

func TestGetCurrentTUIThemeFollowsTheme(t *testing.T) {
	defer SetTheme("dark")

	SetTheme("none")
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("none theme should map to NoColorTUITheme")
	}

	SetTheme("dark")
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
