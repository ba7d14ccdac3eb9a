package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	keys := []string{
		"variables",
		"variables.instance_name",
		"variables.protocol",
		"services_config.haproxy.port",
		"services_config.haproxy.host",
	}

	tests := []struct {
		name     string
		key      string
		limit    int
		expected []string
	}{
		{name: "typo in leaf", key: "variables.instanse_name", limit: 3, expected: []string{"variables.instance_name"}},
		{name: "case and separators", key: "Variables.InstanceName", limit: 3, expected: []string{"variables.instance_name"}},
		{name: "leaf under same parent", key: "services_config.haproxy.hosts", limit: 1, expected: []string{"services_config.haproxy.host"}},
		{name: "nothing close", key: "zzz", limit: 3, expected: []string{}},
		{name: "zero limit", key: "variables.instance_nam", limit: 0, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.key, keys, tt.limit))
		})
	}
}

func TestSuggest_SkipsExactKey(t *testing.T) {
	assert.Equal(t, []string{}, Suggest("a.b", []string{"a.b"}, 2))
}
