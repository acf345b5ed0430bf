package cmd

import (
	"context"
	"flag"
	"testing"
)

type testConfig struct {
	Addr   string `env:"CMD_TEST_ADDR" envDefault:"127.0.0.1:8080"`
	DBPath string `env:"CMD_TEST_DB_PATH" envDefault:""`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDR", "env:9000")
	t.Setenv("CMD_TEST_DB_PATH", "/tmp/env.db")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Addr, "addr", cfgRef.Addr, "addr")
	fs.StringVar(&cfgRef.DBPath, "db-path", cfgRef.DBPath, "db path")

	if err := ParseArgs(fs, []string{"-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Addr != "flag:9001" {
		t.Fatalf("expected flag value for addr, got %q", cfgRef.Addr)
	}
	if cfgRef.DBPath != "/tmp/env.db" {
		t.Fatalf("expected env default db path, got %q", cfgRef.DBPath)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDR", "configarg:9000")
	t.Setenv("CMD_TEST_DB_PATH", "/tmp/configarg.db")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.Addr, "addr", "", "addr")
	fs.StringVar(&cfgRef.DBPath, "db-path", "", "db path")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-addr", "flag:9002"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.Addr != "flag:9002" {
		t.Fatalf("expected parsed flag addr, got %q", cfgRef.Addr)
	}
	if cfgRef.DBPath != "/tmp/configarg.db" {
		t.Fatalf("expected env default db path, got %q", cfgRef.DBPath)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(nil, "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(nil, ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}
