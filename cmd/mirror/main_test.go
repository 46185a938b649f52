/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/mirror/pkg/goutils/testingu"
	"github.com/voedger/mirror/pkg/mirror"
)

func execute(args []string, stdout, stderr io.Writer) error {
	return execRootCmd(append([]string{"mirror"}, args...), "0.1.0", stdout, stderr)
}

func TestCommands(t *testing.T) {
	testingu.RunCmdTestCases(t, execute, []testingu.CmdTestCase{
		{
			Name:                   "version",
			Args:                   []string{"version"},
			ExpectedStdoutPatterns: []string{"mirror version 0.1.0"},
		},
		{
			Name:                   "default policy",
			Args:                   []string{"policy"},
			ExpectedStdoutPatterns: []string{"protected: true\npackagePrivate: true\nprivate: false\n"},
		},
		{
			Name: "constructors of class",
			Args: []string{"inspect", "--class", "Server", "--kind", "constructors", "--no-color"},
			ExpectedStdoutPatterns: []string{
				"CLASS",
				"Constructor «NewServer(*main.Config, main.Logger)»",
				"func(*Config, Logger) *Server",
				"Constructor «newTestServer(*main.Config)»",
				"Protected",
				"4 declaration(s) matched",
			},
			NotExpectedStdout: []string{"ELEVATED", "Field", "Parameter", "ConsoleLogger"},
		},
		{
			Name: "elevated fields",
			Args: []string{"inspect", "--class", "Config", "--kind", "fields", "--elevate", "--no-color"},
			ExpectedStdoutPatterns: []string{
				"ELEVATED",
				"Field «Config.Host»",
				"Field «Config.secret»",
				"Private",
				"static int",
				"5 declaration(s) matched",
			},
		},
		{
			Name:                   "parameters by supertype",
			Args:                   []string{"inspect", "--kind", "parameters", "--type", "Logger", "--no-color"},
			ExpectedStdoutPatterns: []string{"Parameter «NewServer#1 log main.Logger»", "1 declaration(s) matched"},
		},
		{
			Name: "annotated declarations",
			Args: []string{"inspect", "--annotation", "Deprecated", "--no-color"},
			ExpectedStdoutPatterns: []string{
				"Constructor «NewLegacyServer(string, int)»",
				"Field «Server.handlers»",
				"2 declaration(s) matched",
			},
		},
		{
			Name:                   "declarations without annotations",
			Args:                   []string{"inspect", "--class", "Config", "--kind", "fields", "--no-annotations", "--no-color"},
			ExpectedStdoutPatterns: []string{"Field «Config.secret»", "Field «Config.DefaultPort»", "2 declaration(s) matched"},
			NotExpectedStdout:      []string{"Config.Host"},
		},
		{
			Name:                   "nothing matched",
			Args:                   []string{"inspect", "--kind", "fields,parameters", "--name", "unknown"},
			ExpectedStdoutPatterns: []string{"no declarations matched"},
		},
		{
			Name:                "required accessibility fails for private constructor",
			Args:                []string{"inspect", "--class", "Config", "--kind", "constructors", "--require", "--no-color"},
			ExpectedErr:         mirror.ErrInaccessibleError,
			ExpectedErrPatterns: []string{"Constructor «newConfigWithSecret» (Private) in main.Config"},
		},
		{
			Name:                "unknown type",
			Args:                []string{"inspect", "--type", "float64"},
			ExpectedErr:         mirror.ErrNotFoundError,
			ExpectedErrPatterns: []string{"type «float64»"},
		},
		{
			Name:                "unknown class",
			Args:                []string{"inspect", "--class", "Client"},
			ExpectedErr:         mirror.ErrNotFoundError,
			ExpectedErrPatterns: []string{"class «Client»"},
		},
		{
			Name:        "unknown kind",
			Args:        []string{"inspect", "--kind", "methods"},
			ExpectedErr: mirror.ErrInvalidError,
		},
		{
			Name:        "exclusive annotation flags",
			Args:        []string{"inspect", "--annotation", "Inject", "--no-annotations"},
			ExpectedErr: mirror.ErrInvalidError,
		},
	})
}

func TestPolicyConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("config file", func(t *testing.T) {
		require := require.New(t)
		cfg := filepath.Join(dir, "mirror.yaml")
		require.NoError(os.WriteFile(cfg, []byte("policy:\n  package_private: false\n  private: true\n"), 0o600))

		out := new(bytes.Buffer)
		require.NoError(execute([]string{"policy", "--config", cfg}, out, io.Discard))
		require.Equal("protected: true\npackagePrivate: false\nprivate: true\n", out.String())
	})

	t.Run("policy file", func(t *testing.T) {
		require := require.New(t)
		policy := filepath.Join(dir, "policy.yaml")
		require.NoError(os.WriteFile(policy, []byte("protected: false\n"), 0o600))
		cfg := filepath.Join(dir, "with-policy.yaml")
		require.NoError(os.WriteFile(cfg, []byte("policy_file: "+policy+"\n"), 0o600))

		out := new(bytes.Buffer)
		require.NoError(execute([]string{"policy", "--config", cfg}, out, io.Discard))
		require.Equal("protected: false\npackagePrivate: true\nprivate: false\n", out.String())
	})

	t.Run("environment", func(t *testing.T) {
		require := require.New(t)
		t.Setenv("MIRROR_POLICY_PRIVATE", "true")
		t.Setenv("MIRROR_POLICY_PROTECTED", "false")

		out := new(bytes.Buffer)
		require.NoError(execute([]string{"policy"}, out, io.Discard))
		require.Equal("protected: false\npackagePrivate: true\nprivate: true\n", out.String())

		out.Reset()
		require.NoError(execute([]string{"inspect", "--class", "Config", "--kind", "constructors", "--require", "--no-color"}, out, io.Discard))
		require.Contains(out.String(), "newConfigWithSecret")
	})

	t.Run("missed config file", func(t *testing.T) {
		err := execute([]string{"policy", "--config", filepath.Join(dir, "missed.yaml")}, io.Discard, io.Discard)
		require.Error(t, err)
	})

	t.Run("bad policy file", func(t *testing.T) {
		require := require.New(t)
		policy := filepath.Join(dir, "bad-policy.yaml")
		require.NoError(os.WriteFile(policy, []byte("public: true\n"), 0o600))
		cfg := filepath.Join(dir, "with-bad-policy.yaml")
		require.NoError(os.WriteFile(cfg, []byte("policy_file: "+policy+"\n"), 0o600))

		err := execute([]string{"policy", "--config", cfg}, io.Discard, io.Discard)
		require.ErrorIs(err, mirror.ErrInvalidError)
	})
}
