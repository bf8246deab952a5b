package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run installs the default logger, so these tests do not run in parallel.

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOTELS_LOG_LEVEL", "")
	t.Setenv("HOTELS_LOG_FORMAT", "")
	t.Setenv("HOTELS_FORMAT", "")
	t.Setenv("HOTELS_DATA_DIR", "testdata")
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunReports(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"chosen": {
			args: []string{"-f", "csv", "chosen"},
			want: "Ritz\nPlaza\n",
		},
		"unchosen": {
			args: []string{"--format", "csv", "unchosen"},
			want: "Savoy\n",
		},
		"most nights": {
			args: []string{"-f", "csv", "most-nights"},
			want: "Adams,Zoe\nBrown,Al\n",
		},
		"budget": {
			args: []string{"-f", "csv", "--max", "260", "budget"},
			want: "Adams,Zoe,250\n",
		},
		"names": {
			args: []string{"-f", "plain", "names"},
			want: "Ritz\nPlaza\nSavoy\n",
		},
		"travelers": {
			args: []string{"-f", "csv", "travelers"},
			want: "Smith,John,Ritz,Suite,3\nAdams,Zoe,Plaza,Single,5\nBrown,Al,Nowhere,Single,5\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t)
			stdout, _, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRunHotelsTable(t *testing.T) {
	setEnv(t)
	stdout, stderr, err := runCLI(t, "hotels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Hotels", lines[0])
	assert.Equal(t, "|Name           |Room      |Price   |", lines[2])
	assert.Equal(t, "|Ritz           |Suite     |100     |", lines[4])
	assert.Equal(t, "|Savoy          |Twin      |75.50   |", lines[6])

	assert.Contains(t, stderr, `msg="failed to parse line"`)
	assert.Contains(t, stderr, "line=4")
	assert.Contains(t, stderr, `msg="skipped invalid lines"`)
}

func TestRunQueryTables(t *testing.T) {
	tests := map[string]struct {
		report string
		want   []string
	}{
		"chosen": {
			report: "chosen",
			want: []string{
				"Chosen hotels",
				"-----------------",
				"|Name           |",
				"-----------------",
				"|Ritz           |",
				"|Plaza          |",
				"-----------------",
			},
		},
		"unchosen": {
			report: "unchosen",
			want: []string{
				"Hotels nobody chose",
				"-----------------",
				"|Name           |",
				"-----------------",
				"|Savoy          |",
				"-----------------",
			},
		},
		"most nights": {
			report: "most-nights",
			want: []string{
				"Longest stays",
				"-----------------------",
				"|Surname   |Name      |",
				"-----------------------",
				"|Adams     |Zoe       |",
				"|Brown     |Al        |",
				"-----------------------",
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t)
			stdout, _, err := runCLI(t, tt.report)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Split(strings.TrimSuffix(stdout, "\n"), "\n"))
		})
	}
}

func TestRunTitleAndPaths(t *testing.T) {
	setEnv(t)
	t.Setenv("HOTELS_DATA_DIR", t.TempDir())
	stdout, _, err := runCLI(t,
		"--hotels", filepath.Join("testdata", "hotels.txt"),
		"--title", "Cheap rooms",
		"hotels",
	)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Cheap rooms\n"))
}

func TestRunOut(t *testing.T) {
	setEnv(t)
	path := filepath.Join(t.TempDir(), "report.txt")
	stdout, stderr, err := runCLI(t, "-f", "csv", "-o", path, "unchosen")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `msg="report saved"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Savoy\n", string(data))
}

func TestRunJSONLogs(t *testing.T) {
	setEnv(t)
	t.Setenv("HOTELS_LOG_FORMAT", "json")
	_, stderr, err := runCLI(t, "-f", "csv", "travelers")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"failed to parse line"`)
}

func TestRunHelp(t *testing.T) {
	setEnv(t)
	stdout, _, err := runCLI(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Usage: hotels [flags] <report>")
	assert.Contains(t, stdout, "--max")
}

func TestRunErrors(t *testing.T) {
	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"no report":      {args: nil, wantErr: "expected exactly one report"},
		"two reports":    {args: []string{"hotels", "names"}, wantErr: "expected exactly one report"},
		"unknown report": {args: []string{"suites"}, wantErr: `unknown report "suites"`},
		"bad format":     {args: []string{"-f", "xml", "hotels"}, wantErr: "unsupported format"},
		"budget no max":  {args: []string{"budget"}, wantErr: "--max is required"},
		"budget bad max": {args: []string{"--max", "lots", "budget"}, wantErr: "invalid --max"},
		"missing file":   {args: []string{"--hotels", "testdata/none.txt", "hotels"}, wantErr: "loading testdata/none.txt"},
		"unknown flag":   {args: []string{"--colour", "hotels"}, wantErr: "unknown flag"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t)
			_, _, err := runCLI(t, tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRunBadEnv(t *testing.T) {
	setEnv(t)
	t.Setenv("HOTELS_FORMAT", "xml")
	_, _, err := runCLI(t, "hotels")
	assert.ErrorContains(t, err, "config validation")
}
