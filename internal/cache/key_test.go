package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyOrderIndependent(t *testing.T) {
	// Two maps with the same entries; Go randomizes iteration order per map,
	// so repeated runs exercise different insertion orders too.
	a := map[string]string{
		"radius":      "10",
		"origin":      "49931",
		"maxMatches":  "10",
		"ambiguities": "ignore",
		"outFormat":   "json",
	}
	b := map[string]string{
		"outFormat":   "json",
		"ambiguities": "ignore",
		"maxMatches":  "10",
		"origin":      "49931",
		"radius":      "10",
	}

	for i := 0; i < 20; i++ {
		require.Equal(t, Key("http://example.com/search", a), Key("http://example.com/search", b))
	}
}

func TestKeyShape(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		params  map[string]string
		want    string
	}{
		{
			name:    "no params is the url itself",
			baseURL: "https://www.nps.gov/isro/index.htm",
			params:  nil,
			want:    "https://www.nps.gov/isro/index.htm",
		},
		{
			name:    "params sorted and joined",
			baseURL: "http://api.example.com",
			params:  map[string]string{"radius": "10", "origin": "49931"},
			want:    "http://api.example.com_origin_49931_radius_10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Key(tt.baseURL, tt.params))
		})
	}
}
