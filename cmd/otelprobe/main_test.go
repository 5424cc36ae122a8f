package main

import (
	"testing"
	"time"

	"github.com/dm/otelprobe/internal/config"
	"github.com/dm/otelprobe/internal/report"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name       string
		healthOnly bool
		statsOnly  bool
		continuous bool
		watch      bool
		want       runMode
		wantError  bool
	}{
		{
			name: "no flags runs the full report once",
			want: modeFull,
		},
		{
			name:       "health only",
			healthOnly: true,
			want:       modeHealth,
		},
		{
			name:      "stats only",
			statsOnly: true,
			want:      modeStats,
		},
		{
			name:       "continuous",
			continuous: true,
			want:       modeContinuous,
		},
		{
			name:  "watch",
			watch: true,
			want:  modeWatch,
		},
		{
			name:       "watch wins over continuous",
			continuous: true,
			watch:      true,
			want:       modeWatch,
		},
		{
			name:       "watch wins over section flags",
			healthOnly: true,
			watch:      true,
			want:       modeWatch,
		},
		{
			name:       "continuous wins over section flags",
			statsOnly:  true,
			continuous: true,
			want:       modeContinuous,
		},
		{
			name:       "health and stats together is an error",
			healthOnly: true,
			statsOnly:  true,
			wantError:  true,
		},
		{
			name:       "health and stats conflict even under watch",
			healthOnly: true,
			statsOnly:  true,
			watch:      true,
			wantError:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveMode(tc.healthOnly, tc.statsOnly, tc.continuous, tc.watch)
			if tc.wantError {
				if err == nil {
					t.Errorf("resolveMode: expected error, got mode %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveMode: unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("mode = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMergeConfig(t *testing.T) {
	fileCfg := config.Default()
	fileCfg.Host = "filehost"
	fileCfg.Interval = time.Minute
	fileCfg.Timeout = 2 * time.Second
	fileCfg.FailBelow = "good"
	fileCfg.LogLevel = "warn"

	tests := []struct {
		name string
		ov   flagOverrides
		want config.Config
	}{
		{
			name: "no flags set keeps file values",
			ov:   flagOverrides{host: "localhost", interval: config.DefaultInterval, set: map[string]bool{}},
			want: fileCfg,
		},
		{
			name: "host flag wins over file",
			ov:   flagOverrides{host: "flaghost", set: map[string]bool{"host": true}},
			want: func() config.Config {
				c := fileCfg
				c.Host = "flaghost"
				return c
			}(),
		},
		{
			name: "interval and timeout flags win over file",
			ov: flagOverrides{
				interval: 15 * time.Second,
				timeout:  time.Second,
				set:      map[string]bool{"interval": true, "timeout": true},
			},
			want: func() config.Config {
				c := fileCfg
				c.Interval = 15 * time.Second
				c.Timeout = time.Second
				return c
			}(),
		},
		{
			name: "fail-below flag wins over file",
			ov:   flagOverrides{failBelow: "critical", set: map[string]bool{"fail-below": true}},
			want: func() config.Config {
				c := fileCfg
				c.FailBelow = "critical"
				return c
			}(),
		},
		{
			name: "debug flag raises the file log level",
			ov:   flagOverrides{debug: true, set: map[string]bool{"debug": true}},
			want: func() config.Config {
				c := fileCfg
				c.LogLevel = "debug"
				return c
			}(),
		},
		{
			name: "debug false leaves the file log level alone",
			ov:   flagOverrides{debug: false, set: map[string]bool{}},
			want: fileCfg,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mergeConfig(fileCfg, tc.ov)
			if got != tc.want {
				t.Errorf("mergeConfig = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMergeConfigDoesNotMutateInput(t *testing.T) {
	original := config.Default()
	_ = mergeConfig(original, flagOverrides{
		host: "elsewhere",
		set:  map[string]bool{"host": true},
	})
	if original.Host != config.Default().Host {
		t.Errorf("input config mutated: host = %q", original.Host)
	}
}

func TestReportMode(t *testing.T) {
	tests := []struct {
		mode runMode
		want report.Mode
	}{
		{modeFull, report.ModeFull},
		{modeHealth, report.ModeHealth},
		{modeStats, report.ModeStats},
		{modeContinuous, report.ModeFull},
		{modeWatch, report.ModeFull},
	}
	for _, tc := range tests {
		if got := reportMode(tc.mode); got != tc.want {
			t.Errorf("reportMode(%d) = %v, want %v", tc.mode, got, tc.want)
		}
	}
}
