package watcher

import "testing"

func TestIsScriptFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.vdscript", true},
		{"dir/movie.vdscript", true},
		{"movie.VDSCRIPT", true},
		{"movie.vdscript.bak", false},
		{"movie.cpf", false},
		{"movie", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isScriptFile(tt.path); got != tt.want {
				t.Errorf("isScriptFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
