package embed

import "testing"

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://example.com/player/1", false},
		{"http", "http://example.com/player/1", false},
		{"protocol relative", "//example.com/player/1", false},
		{"with query", "https://example.com/p?a=b&c=d", false},
		{"javascript scheme", "javascript:alert(1)", true},
		{"data scheme", "data:text/html,<h1>Hi</h1>", true},
		{"ftp", "ftp://example.com/file", true},
		{"empty", "", true},
		{"no host", "https://", true},
		{"bare path", "player/1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSource(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckSource(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
