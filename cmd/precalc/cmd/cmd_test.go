package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/precalc/foundation/core/error"
	mdwerrors "github.com/msto63/precalc/foundation/core/errors"
	"github.com/msto63/precalc/pkg/core/config"
	"github.com/msto63/precalc/pkg/core/version"
)

// execute runs the command tree isolated from config files on the machine
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"binary representation error", []string{"0.1", "plus", "0.2"}, "0.3"},
		{"scaled multiply", []string{"1.1", "x", "3"}, "3.3"},
		{"chain of groups", []string{"10", "+", "5", "times", "2"}, "30"},
		{"no seed", []string{"plus", "1", "2", "3"}, "6"},
		{"several operands per group", []string{"100", "minus", "0.1", "0.2", "divide", "2"}, "49.85"},
		{"division by zero", []string{"5", "divide", "0"}, "0"},
		{"skips non-numeric operands", []string{"7", "plus", "abc", "1"}, "8"},
		{"negative operand after the chain starts", []string{"2", "minus", "-5"}, "7"},
		{"negative seed after terminator", []string{"--", "-5", "plus", "2"}, "-3"},
		{"seed only", []string{"4.35"}, "4.35"},
		{"fixed default digits", []string{"--fixed", "3.14159"}, "3.14"},
		{"fixed zero digits", []string{"--fixed", "--digits", "0", "3.14159"}, "3"},
		{"fixed keeps trailing zeros", []string{"-f", "-d", "3", "1.5", "times", "2"}, "3.000"},
		{"precision flag", []string{"--precision", "3", "10", "divide", "3"}, "3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"eval"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"operand without operator", []string{"1", "2"}, mdwerrors.CodeInvalidInput},
		{"nothing to seed from", []string{"plus", "abc"}, mdwerrors.CodeMathxNoSeedOperand},
		{"precision out of range", []string{"--precision", "42", "1"}, mdwerrors.CodeMathxConfigOutOfRange},
		{"digits out of range", []string{"--fixed", "--digits", "21", "1"}, mdwerrors.CodeMathxConfigOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"eval"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.Code(tt.wantCode)), "got %v", mdwerror.GetCode(err))
			assert.Empty(t, stdout)
		})
	}
}

func TestEval_RequiresTokens(t *testing.T) {
	_, _, err := execute(t, "eval")
	require.Error(t, err)
}

func TestEval_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "-v", "eval", "1", "plus", "1")
	require.NoError(t, err)

	assert.Equal(t, "2\n", stdout)
	assert.Contains(t, stderr, "[DBG]")
	assert.Contains(t, stderr, "evaluated")
	assert.Contains(t, stderr, "result=2")
}

func TestEval_CheckBoundary(t *testing.T) {
	stdout, stderr, err := execute(t, "eval", "--check-boundary", "9007199254740993", "plus", "1")
	require.NoError(t, err)

	assert.Equal(t, "9007199254740990\n", stdout)
	assert.Contains(t, stderr, "safe integer range")
	assert.Contains(t, stderr, "operator=plus")
}

func TestEval_NoBoundaryWarningByDefault(t *testing.T) {
	_, stderr, err := execute(t, "eval", "9007199254740993", "plus", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestEval_ConfigFile(t *testing.T) {
	path := writeConfig(t, "precalc.toml", "[calculator]\nprecision = 3\n")

	stdout, _, err := execute(t, "--config", path, "eval", "10", "divide", "3")
	require.NoError(t, err)
	assert.Equal(t, "3.33\n", stdout)
}

func TestEval_EnvironmentOverride(t *testing.T) {
	t.Setenv("PRECALC_FRACTION_DIGITS", "4")

	stdout, _, err := execute(t, "eval", "--fixed", "1", "divide", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.3333\n", stdout)
}

func TestRoot_InvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "precalc.yaml", "calculator:\n  precision: 99\n")

	_, _, err := execute(t, "--config", path, "eval", "1")
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeConfigInvalid))
}

func TestConfigCommand(t *testing.T) {
	t.Run("defaults as toml", func(t *testing.T) {
		stdout, _, err := execute(t, "config")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[calculator]")
		assert.Contains(t, stdout, "precision = 15")
	})

	t.Run("file as yaml", func(t *testing.T) {
		path := writeConfig(t, "precalc.toml", "[calculator]\nprecision = 7\n")

		stdout, _, err := execute(t, "--config", path, "config", "--format", "yaml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "precision: 7")
		assert.Contains(t, stdout, "fraction_digits: 2")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := execute(t, "config", "--format", "json")
		require.Error(t, err)
		assert.True(t, mdwerror.HasCode(err, mdwerrors.CodeInvalidFormat))
	})
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version.String())
}

func TestEval_WarnsAboutSkippedOperands(t *testing.T) {
	stdout, stderr, err := execute(t, "eval", "7", "plus", "abc", "1")
	require.NoError(t, err)

	assert.Equal(t, "8\n", stdout)
	assert.Contains(t, stderr, "[WRN]")
	assert.Contains(t, stderr, "operand skipped")
	assert.Contains(t, stderr, `operand="abc"`)
	assert.Contains(t, stderr, "tokens=4")
}

func TestEval_TraceLevel(t *testing.T) {
	t.Setenv("PRECALC_LOG_LEVEL", "trace")

	stdout, stderr, err := execute(t, "eval", "1", "plus", "2", "times", "3")
	require.NoError(t, err)

	assert.Equal(t, "9\n", stdout)
	assert.Contains(t, stderr, "[TRC]")
	assert.Contains(t, stderr, "operator=times")
	assert.Contains(t, stderr, "value=9")
}

func TestEval_MixedMagnitudes(t *testing.T) {
	stdout, _, err := execute(t, "eval", "1e10", "plus", "1e-300", "plus", "1")
	require.NoError(t, err)
	assert.Equal(t, "10000000001\n", stdout)
}

func TestRun_LogsFailure(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"eval", "1", "2"})

	err := run(root)
	require.Error(t, err)

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "[ERR]")
	assert.Contains(t, stderr.String(), "command failed")
	assert.Contains(t, stderr.String(), "code=INVALID_INPUT")
}
