package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestParseOptions(t *testing.T) {
	o, err := parseOptions([]string{"-c", "x.yaml", "-o", "out/a.pdf", "-target", "main", "-export", "-v", "init"})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if o.configPath != "x.yaml" || o.output != "out/a.pdf" || o.target != "main" {
		t.Errorf("got %+v", o)
	}
	if !o.export || !o.verbose {
		t.Error("boolean flags not set")
	}
	if !slices.Equal(o.args, []string{"init"}) {
		t.Errorf("args = %v", o.args)
	}
}

func TestParseOptions_Errors(t *testing.T) {
	for _, args := range [][]string{{"-o"}, {"-x"}, {"-url"}} {
		if _, err := parseOptions(args); err == nil {
			t.Errorf("parseOptions(%v) succeeded", args)
		}
	}
}

func TestProgressBar_Plain(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf)
	for _, p := range []int{10, 10, 70, 100} {
		bar.Update(p)
	}
	bar.Finish()
	want := "progress: 10%\nprogress: 70%\nprogress: 100%\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestProgressBar_Terminal(t *testing.T) {
	var buf bytes.Buffer
	bar := &progressBar{w: &buf, isTTY: true, last: -1}
	bar.Update(50)
	bar.Finish()
	out := buf.String()
	if !strings.HasPrefix(out, "\r[") || !strings.Contains(out, " 50%") || !strings.HasSuffix(out, "\n") {
		t.Errorf("output = %q", out)
	}
	if strings.Count(out, "#") != barWidth/2 {
		t.Errorf("filled = %d, want %d", strings.Count(out, "#"), barWidth/2)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	if err := report(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "already running") {
		t.Errorf("output = %q", buf.String())
	}
}
