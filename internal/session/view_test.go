package session

import "testing"

func TestFaceString(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{FaceFront, "front"},
		{FaceBack, "back"},
		{Face(7), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.face.String(); got != tt.want {
			t.Errorf("Face(%d).String() = %q, want %q", tt.face, got, tt.want)
		}
	}
}

func TestThemeString(t *testing.T) {
	tests := []struct {
		theme Theme
		want  string
	}{
		{ThemeLight, "light"},
		{ThemeDark, "dark"},
		{Theme(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.theme.String(); got != tt.want {
			t.Errorf("Theme(%d).String() = %q, want %q", tt.theme, got, tt.want)
		}
	}
}
