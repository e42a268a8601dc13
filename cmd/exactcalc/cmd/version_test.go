package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zephyrtronium/exactcalc/internal/config"
)

func TestVersion(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	if err := Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "exactcalc v"+Version+"\n") {
		t.Errorf("wrong version output %q", out.String())
	}
}
