package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamlsimple/internal/flat"
	"yamlsimple/internal/keypath"
)

const scenarioDoc = "variables:\n    instance_name: 'app1'\n"

func TestReplace(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		key      string
		value    string
		expected string
	}{
		{
			name:     "quoted value",
			doc:      scenarioDoc,
			key:      "variables.instance_name",
			value:    "app2",
			expected: "variables:\n    instance_name: 'app2'\n",
		},
		{
			name:     "unquoted value",
			doc:      "server:\n    port: 80\n    host: example\n",
			key:      "server.port",
			value:    "8080",
			expected: "server:\n    port: 8080\n    host: example\n",
		},
		{
			name:     "empty value gets quoted",
			doc:      "a:\n    name: ''\n    other: x\n",
			key:      "a.name",
			value:    "filled",
			expected: "a:\n    name: 'filled'\n    other: x\n",
		},
		{
			name:     "comments and blank lines are kept",
			doc:      "# header\nvariables:\n\n    # instance_name: 'app1'\n    instance_name: 'app1'\n# footer\n",
			key:      "variables.instance_name",
			value:    "app2",
			expected: "# header\nvariables:\n\n    # instance_name: 'app1'\n    instance_name: 'app2'\n# footer\n",
		},
		{
			name:     "crlf document",
			doc:      "a: 1\r\nb: 2\r\n",
			key:      "b",
			value:    "3",
			expected: "a: 1\r\nb: 3\r\n",
		},
		{
			name:     "first line naming leaf and value wins",
			doc:      "a:\n    port: 80\nb:\n    port: 80\n",
			key:      "b.port",
			value:    "81",
			expected: "a:\n    port: 81\nb:\n    port: 80\n",
		},
		{
			name:     "quoted value with spaces",
			doc:      "a:\n    name: 'x x'\n",
			key:      "a.name",
			value:    "y",
			expected: "a:\n    name: 'y'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Replace(tt.doc, tt.key, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReplace_Errors(t *testing.T) {
	_, err := Replace(scenarioDoc, "variables.missing", "x")
	require.ErrorIs(t, err, ErrKeyNotFound)

	var notFound *KeyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "variables.missing", notFound.Key)

	// A whitespace-only quoted value is not written as '' so no line matches.
	_, err = Replace("a: '  '\n", "a", "x")
	require.ErrorIs(t, err, ErrAnchorNotFound)

	var anchor *AnchorNotFoundError
	require.ErrorAs(t, err, &anchor)
	assert.Equal(t, "a", anchor.Segment)

	_, err = Replace("a: 1\na: 2\n", "a", "x")
	require.ErrorIs(t, err, flat.ErrDuplicateKey)

	_, err = Replace(scenarioDoc, "variables.", "x")
	require.ErrorIs(t, err, keypath.ErrInvalid)
}

func TestReplace_SameValueRoundTrip(t *testing.T) {
	docs := []string{
		scenarioDoc,
		"# c\nserver:\n    port: 80\n    host: 'h'\n\nempty: ''\n",
		"a:\r\n    b:\r\n        c: deep\r\n    d: 'x'\r\n",
	}

	for _, doc := range docs {
		m, err := flat.Parse(doc)
		require.NoError(t, err)

		for k, v := range m.Leaves() {
			got, err := Replace(doc, k, v)
			require.NoError(t, err, k)
			assert.Equal(t, doc, got, k)
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		key      string
		value    string
		expected string
	}{
		{
			name:     "under direct parent",
			doc:      scenarioDoc,
			key:      "variables.region",
			value:    "eu",
			expected: "variables:\n    region: 'eu'\n    instance_name: 'app1'",
		},
		{
			name:     "top level goes after the first line",
			doc:      "first: 1\nsecond: 2\n",
			key:      "third",
			value:    "3",
			expected: "first: 1\n     third: '3'\nsecond: 2",
		},
		{
			name:     "deep parent",
			doc:      "services_config:\n    SungeroHaproxy:\n        port: 80\n",
			key:      "services_config.SungeroHaproxy.instance_name",
			value:    "x",
			expected: "services_config:\n    SungeroHaproxy:\n        instance_name: 'x'\n        port: 80",
		},
		{
			name:     "comments and blank lines are dropped",
			doc:      "# c\na:\n\n    b: 1\n",
			key:      "a.c",
			value:    "2",
			expected: "a:\n    c: '2'\n    b: 1",
		},
		{
			name:     "crlf document",
			doc:      "a:\r\n    b: 1\r\n",
			key:      "a.c",
			value:    "2",
			expected: "a:\r\n    c: '2'\r\n    b: 1",
		},
		{
			name:     "trailing whitespace on anchor is not counted",
			doc:      "a:   \n    b: 1\n",
			key:      "a.c",
			value:    "",
			expected: "a:   \n    c: ''\n    b: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Insert(tt.doc, tt.key, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInsert_TopLevelIndent(t *testing.T) {
	got, err := Insert(scenarioDoc, "region", "eu")
	require.NoError(t, err)

	lines := flat.SplitLines(got)
	require.Len(t, lines, 3)
	assert.Equal(t, "variables:", lines[0].Text)
	assert.Equal(t, "    region: 'eu'", lines[1].Text)
}

func TestInsert_ExistingKeyIsNoop(t *testing.T) {
	doc := "# keep me\n" + scenarioDoc

	got, err := Insert(doc, "variables.instance_name", "other")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestInsert_Idempotent(t *testing.T) {
	once, err := Insert(scenarioDoc, "variables.region", "eu")
	require.NoError(t, err)

	twice, err := Insert(once, "variables.region", "eu")
	require.NoError(t, err)
	assert.Equal(t, once, twice)

	m, err := flat.Parse(twice)
	require.NoError(t, err)

	v, ok := m.Get("variables.region")
	assert.True(t, ok)
	assert.Equal(t, "eu", v)
}

func TestInsert_Errors(t *testing.T) {
	_, err := Insert("a:\n    b: 1\n", "x.y", "v")
	require.ErrorIs(t, err, ErrAnchorNotFound)

	var anchor *AnchorNotFoundError
	require.ErrorAs(t, err, &anchor)
	assert.Equal(t, "x", anchor.Segment)
	assert.Equal(t, "x.y", anchor.Key)

	_, err = Insert("", "top", "v")
	require.ErrorIs(t, err, ErrAnchorNotFound)

	_, err = Insert("a: 1\na: 2\n", "b", "v")
	require.ErrorIs(t, err, flat.ErrDuplicateKey)

	_, err = Insert(scenarioDoc, "", "v")
	require.ErrorIs(t, err, keypath.ErrInvalid)
}

func TestExists(t *testing.T) {
	ok, err := Exists(scenarioDoc, "variables.instance_name")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(scenarioDoc, "variables.missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Exists(scenarioDoc, "variables")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Exists("a: 1\na: 2\n", "a")
	require.ErrorIs(t, err, flat.ErrDuplicateKey)
}
