package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logscan/config"
)

func TestInitConfig(t *testing.T) {
	jsonConfig := filepath.Join(t.TempDir(), "logscan.json")
	require.NoError(t, os.WriteFile(jsonConfig, []byte(`{
  "root": "./src", // root directory
  "trigger": "LogPrintStr", // logging function
  "jobs": 8
}`), 0644))

	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    func(c *config.Config)
		wantErr bool
	}{
		{
			name: "defaults",
			want: func(c *config.Config) {},
		},
		{
			name: "flags",
			args: []string{"-root", "/src", "-ext", "cc, hpp", "-exclude", "build", "-trigger", "LOG_INFO", "-format", "json", "-j", "0", "-v", "-color"},
			want: func(c *config.Config) {
				c.Root = "/src"
				c.Extensions = []string{"cc", "hpp"}
				c.Exclude = []string{"build"}
				c.Trigger = "LOG_INFO"
				c.Format = "json"
				c.Jobs = 0
				c.Verbose = true
				c.Color = true
			},
		},
		{
			name: "env has priority over flags",
			args: []string{"-root", "/src", "-j", "2"},
			env: map[string]string{
				"LOGSCAN_ROOT":    "/env",
				"LOGSCAN_EXT":     ".c,.h",
				"LOGSCAN_EXCLUDE": "third_party",
				"LOGSCAN_TRIGGER": "error",
				"LOGSCAN_FORMAT":  "json",
				"LOGSCAN_JOBS":    "3",
				"LOGSCAN_LOG":     "/tmp/logscan.log",
			},
			want: func(c *config.Config) {
				c.Root = "/env"
				c.Extensions = []string{".c", ".h"}
				c.Exclude = []string{"third_party"}
				c.Trigger = "error"
				c.Format = "json"
				c.Jobs = 3
				c.Logfile = "/tmp/logscan.log"
			},
		},
		{
			name: "json config file, flags have priority",
			args: []string{"-c", jsonConfig, "-j", "2"},
			want: func(c *config.Config) {
				c.ConfigFile = jsonConfig
				c.Root = "./src"
				c.Trigger = "LogPrintStr"
				c.Jobs = 2
			},
		},
		{
			name: "json config file from env",
			env:  map[string]string{"CONFIG": jsonConfig},
			want: func(c *config.Config) {
				c.ConfigFile = jsonConfig
				c.Root = "./src"
				c.Trigger = "LogPrintStr"
				c.Jobs = 8
			},
		},
		{
			name:    "missing json config file",
			args:    []string{"-c", filepath.Join(t.TempDir(), "missing.json")},
			wantErr: true,
		},
		{
			name:    "invalid LOGSCAN_JOBS",
			env:     map[string]string{"LOGSCAN_JOBS": "many"},
			wantErr: true,
		},
		{
			name:    "empty trigger",
			args:    []string{"-trigger", ""},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-unknown"},
			wantErr: true,
		},
		{
			name:    "positional arguments",
			args:    []string{"src"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := config.Default()
			err := InitConfig(&got, tt.args, io.Discard)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			want := config.Default()
			tt.want(&want)
			assert.Equal(t, want, got)
		})
	}
}

func TestInitConfigYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conf", "logscan.yaml"), []byte(`root: ./src
extensions:
  - .cpp
  - .hpp
trigger: LogPrintf
jobs: 4
`), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	got := config.Default()
	require.NoError(t, InitConfig(&got, []string{"-use-config", "-trigger", "LogPrint"}, io.Discard))

	want := config.Default()
	want.UseYAMLConfig = true
	want.Root = "./src"
	want.Extensions = []string{".cpp", ".hpp"}
	want.Jobs = 4
	assert.Equal(t, want, got)
}

func TestInitConfigYAMLMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	got := config.Default()
	assert.Error(t, InitConfig(&got, []string{"-use-config"}, io.Discard))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{".cpp", ".h"}, splitList(" .cpp, ,.h "))
	assert.Nil(t, splitList(""))
}
