package configuration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "321", "test")
	require.NoError(t, testFlagSet.Set("A", "123"))

	config := New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.EqualValues(t, "123", config.String("A"))
	require.EqualValues(t, "123", config.String("a"))
	require.True(t, HasFlag(testFlagSet, "A"))
	require.False(t, HasFlag(testFlagSet, "B"))
}

func TestFlagDefaultsDoNotOverrideFile(t *testing.T) {
	filePath := writeFile(t, "config.json", `{"logger": {"level": "debug"}}`)

	testFlagSet := NewUnsortedFlagSet("", flag.ContinueOnError)
	testFlagSet.String("logger.level", "info", "the minimum enabled logging level")
	testFlagSet.String("logger.encoding", "console", "the logger's encoding")

	config := New()
	require.NoError(t, config.LoadFile(filePath))
	require.NoError(t, config.LoadFlagSet(testFlagSet))

	require.Equal(t, "debug", config.String("logger.level"))
	require.Equal(t, "console", config.String("logger.encoding"))

	// explicitly set flags win
	require.NoError(t, testFlagSet.Set("logger.level", "warn"))
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.Equal(t, "warn", config.String("logger.level"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")

	config := New()
	require.NoError(t, config.LoadFlagSet(testFlagSet))
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.EqualValues(t, "321", config.String("B"))

	_, exists := config.All()["c"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestLoadDefaults(t *testing.T) {
	config := New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"replay.workers": 4,
		"logger": map[string]interface{}{
			"outputPaths": []string{"stdout"},
		},
	}))

	require.Equal(t, 4, config.Int("replay.workers"))
	require.Equal(t, []string{"stdout"}, config.Strings("logger.outputPaths"))
}

func TestPrint(t *testing.T) {
	config := New()
	require.NoError(t, config.LoadDefaults(map[string]interface{}{
		"replay.workers": 4,
	}))

	var output bytes.Buffer
	require.NoError(t, config.Print(&output))
	require.Contains(t, output.String(), "Parameters loaded")
	require.Contains(t, output.String(), `"workers": 4`)
}

type testConfig struct {
	Name       string `json:"name"`
	ThreadSafe bool   `json:"threadSafe"`
	Steps      []struct {
		Op    string `json:"op"`
		Value int    `json:"value"`
	} `json:"steps"`
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "config.json",
			content: `{"Name": "json", "threadSafe": true, "steps": [{"op": "push", "Value": 1}, {"op": "pop"}]}`,
		},
		{
			name: "config.yaml",
			content: `Name: yaml
threadSafe: true
steps:
  - op: push
    Value: 1
  - op: pop
`,
		},
		{
			name: "config.toml",
			content: `Name = "toml"
threadSafe = true

[[steps]]
op = "push"
Value = 1

[[steps]]
op = "pop"
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := New()
			require.NoError(t, config.LoadFile(writeFile(t, test.name, test.content)))

			require.True(t, config.Exists("name"))
			require.True(t, config.Bool("threadsafe"))

			var out testConfig
			require.NoError(t, config.Unmarshal("", &out))
			require.NotEmpty(t, out.Name)
			require.True(t, out.ThreadSafe)
			require.Len(t, out.Steps, 2)
			require.Equal(t, "push", out.Steps[0].Op)
			require.Equal(t, 1, out.Steps[0].Value)
			require.Equal(t, "pop", out.Steps[1].Op)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	config := New()

	require.ErrorIs(t, config.LoadFile(writeFile(t, "config.ini", "a=b")), ErrUnknownConfigFormat)
	require.ErrorIs(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")), os.ErrNotExist)
	require.Error(t, config.LoadFile(t.TempDir()))
	require.Error(t, config.LoadFile(writeFile(t, "broken.json", "{")))
}
