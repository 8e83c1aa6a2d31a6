package substitute

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Lambdaspire/action-substitute-secrets-in-file/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func configFor(file, secretsJSON string) config.SubstituteOptions {
	return config.SubstituteOptions{
		File:         file,
		TokenPattern: "${TOKEN}",
		SecretsJSON:  secretsJSON,
	}
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name        string
		contents    string
		secrets     string
		want        string
		wantMatches int
		wantMissing []string
	}{
		{
			name:        "all tokens resolved",
			contents:    "host: ${HOST}, port: ${PORT}",
			secrets:     `{"HOST":"example.com","PORT":"8080"}`,
			want:        "host: example.com, port: 8080",
			wantMatches: 2,
			wantMissing: []string{},
		},
		{
			name:        "missing token stays in place",
			contents:    "host: ${HOST}, port: ${PORT}",
			secrets:     `{"HOST":"example.com"}`,
			want:        "host: example.com, port: ${PORT}",
			wantMatches: 2,
			wantMissing: []string{"${PORT}"},
		},
		{
			name:        "duplicate target replaced everywhere",
			contents:    "${A}${A}",
			secrets:     `{"A":"x"}`,
			want:        "xx",
			wantMatches: 1,
			wantMissing: []string{},
		},
		{
			name:        "no placeholders",
			contents:    "plain text\nwith two lines\n",
			secrets:     `{"A":"x"}`,
			want:        "plain text\nwith two lines\n",
			wantMatches: 0,
			wantMissing: []string{},
		},
		{
			name:        "non string values use their json text",
			contents:    "port=${PORT} debug=${DEBUG} none=${NONE}",
			secrets:     `{"PORT":8080,"DEBUG":true,"NONE":null}`,
			want:        "port=8080 debug=true none=null",
			wantMatches: 3,
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			file := writeFile(t, dir, "input.txt", tt.contents)

			result, err := Run(config.SubstituteOptions{
				File:         file,
				TokenPattern: "${TOKEN}",
				SecretsJSON:  tt.secrets,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, readFile(t, file))
			assert.Equal(t, tt.want, result.Contents)
			assert.Len(t, result.Matches, tt.wantMatches)
			assert.Equal(t, tt.wantMissing, Targets(result.Missing))
			assert.True(t, result.Written)
		})
	}
}

func TestRunWritesToSeparateOutput(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "template.env", "TOKEN=#{API_TOKEN}#\n")
	output := filepath.Join(dir, "rendered.env")

	_, err := Run(config.SubstituteOptions{
		File:         file,
		Output:       output,
		TokenPattern: "#{TOKEN}#",
		SecretsJSON:  `{"API_TOKEN":"s3cr3t"}`,
	})
	require.NoError(t, err)

	assert.Equal(t, "TOKEN=#{API_TOKEN}#\n", readFile(t, file))
	assert.Equal(t, "TOKEN=s3cr3t\n", readFile(t, output))
}

func TestRunOverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "in.txt", "${A}")
	output := writeFile(t, dir, "out.txt", "old content that is longer")

	_, err := Run(config.SubstituteOptions{
		File:         file,
		Output:       output,
		TokenPattern: "${TOKEN}",
		SecretsJSON:  `{"A":"new"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", readFile(t, output))
}

func TestRunKeepsInputFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "secret.conf")
	require.NoError(t, os.WriteFile(file, []byte("${A}"), 0600))
	output := filepath.Join(dir, "out.conf")

	_, err := Run(config.SubstituteOptions{
		File:         file,
		Output:       output,
		TokenPattern: "${TOKEN}",
		SecretsJSON:  `{"A":"x"}`,
	})
	require.NoError(t, err)

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestRunDryRun(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "in.txt", "${A}")

	result, err := Run(config.SubstituteOptions{
		File:         file,
		TokenPattern: "${TOKEN}",
		SecretsJSON:  `{"A":"x"}`,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.False(t, result.Written)
	assert.Equal(t, "x", result.Contents)
	assert.Equal(t, "${A}", readFile(t, file))
}

func TestRunSecretsFile(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "in.txt", "user=${USER} pass=${PASS}")
	secretsFile := writeFile(t, dir, "secrets.yaml", "USER: admin\nPASS: \"p@ss: word\"\n")

	_, err := Run(config.SubstituteOptions{
		File:         file,
		TokenPattern: "${TOKEN}",
		SecretsFile:  secretsFile,
	})
	require.NoError(t, err)
	assert.Equal(t, "user=admin pass=p@ss: word", readFile(t, file))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "in.txt", "${A}")
	big := writeFile(t, dir, "big.txt", "${A} and a lot more text than ten bytes")
	badSecretsFile := writeFile(t, dir, "secrets.json", "{not json")

	tests := []struct {
		name    string
		opts    config.SubstituteOptions
		wantErr error
	}{
		{
			name:    "missing file input",
			opts:    config.SubstituteOptions{TokenPattern: "${TOKEN}", SecretsJSON: `{}`},
			wantErr: ErrInputMissing,
		},
		{
			name:    "missing token pattern",
			opts:    config.SubstituteOptions{File: file, SecretsJSON: `{}`},
			wantErr: ErrInputMissing,
		},
		{
			name:    "missing secrets",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}"},
			wantErr: ErrInputMissing,
		},
		{
			name:    "both secrets sources",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsJSON: `{}`, SecretsFile: badSecretsFile},
			wantErr: ErrInvalidOption,
		},
		{
			name:    "invalid max file size",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsJSON: `{}`, MaxFileSize: "huge"},
			wantErr: ErrInvalidOption,
		},
		{
			name:    "pattern without placeholder",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${NAME}", SecretsJSON: `{}`},
			wantErr: ErrNoPlaceholder,
		},
		{
			name:    "file not found",
			opts:    config.SubstituteOptions{File: filepath.Join(dir, "nope.txt"), TokenPattern: "${TOKEN}", SecretsJSON: `{}`},
			wantErr: ErrFileRead,
		},
		{
			name:    "file is a directory",
			opts:    config.SubstituteOptions{File: dir, TokenPattern: "${TOKEN}", SecretsJSON: `{}`},
			wantErr: ErrFileRead,
		},
		{
			name:    "file too large",
			opts:    config.SubstituteOptions{File: big, TokenPattern: "${TOKEN}", SecretsJSON: `{}`, MaxFileSize: "10B"},
			wantErr: ErrFileTooLarge,
		},
		{
			name:    "malformed secrets json",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsJSON: `{"A":`},
			wantErr: ErrMalformedSecrets,
		},
		{
			name:    "secrets json is not an object",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsJSON: `["A"]`},
			wantErr: ErrMalformedSecrets,
		},
		{
			name:    "malformed secrets file",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsFile: badSecretsFile},
			wantErr: ErrMalformedSecrets,
		},
		{
			name:    "secrets file not found",
			opts:    config.SubstituteOptions{File: file, TokenPattern: "${TOKEN}", SecretsFile: filepath.Join(dir, "missing.json")},
			wantErr: ErrFileRead,
		},
		{
			name:    "output directory does not exist",
			opts:    config.SubstituteOptions{File: file, Output: filepath.Join(dir, "no", "such", "dir", "out.txt"), TokenPattern: "${TOKEN}", SecretsJSON: `{"A":"x"}`},
			wantErr: ErrFileWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, "${A}", readFile(t, file), "input must stay untouched")
		})
	}
}
