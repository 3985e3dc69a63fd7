package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAlerts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		protos  []string
	}{
		{
			name:    "json array",
			content: `[{"proto":"TCP"},{"proto":"UDP"}]`,
			protos:  []string{"TCP", "UDP"},
		},
		{
			name:    "ndjson with junk",
			content: "{\"proto\":\"TCP\"}\nnot json\n\n{\"proto\":\"ICMP\"}\n",
			protos:  []string{"TCP", "ICMP"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "eve.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			alerts, err := loadAlerts(path)
			require.NoError(t, err)

			var protos []string
			for _, a := range alerts {
				assert.Equal(t, "eve.json", a.Source)
				protos = append(protos, a.Record.Proto)
			}
			assert.Equal(t, tt.protos, protos)
		})
	}
}

func TestLoadAlerts_MissingFile(t *testing.T) {
	_, err := loadAlerts(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
