package cmd

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestFilterFlags(t *testing.T) {
	fs := new(pflag.FlagSet)
	fs.String("title", "", "")
	fs.Bool("html", false, "")
	fs.StringP("out", "o", "", "")
	fs.Bool("verbose", false, "")
	markDocFlags(fs, "title", "html", "missing")

	inFlags := map[string]struct{}{"title": {}, "html": {}}
	infs := filterFlags(fs, docFlagAnnotation, true)
	infs.VisitAll(func(f *pflag.Flag) {
		if _, ok := inFlags[f.Name]; !ok {
			t.Errorf("unexpected doc flag: %s", f.Name)
		}
		delete(inFlags, f.Name)
	})
	if len(inFlags) > 0 {
		t.Errorf("missing doc flags: %v", inFlags)
	}

	exFlags := map[string]struct{}{"out": {}, "verbose": {}}
	exfs := filterFlags(fs, docFlagAnnotation, false)
	exfs.VisitAll(func(f *pflag.Flag) {
		delete(exFlags, f.Name)
	})
	if len(exFlags) > 0 {
		t.Errorf("missing general flags: %v", exFlags)
	}
}

func TestUsage(t *testing.T) {
	c := &CommandLine{}
	root := c.build()

	usage := root.UsageString()
	doc := strings.Index(usage, "Documentation Flags:")
	general := strings.Index(usage, "General Flags:")
	if doc < 0 || general < doc {
		t.Errorf("expected documentation flags before general flags:\n%s", usage)
		return
	}

	if !strings.Contains(usage[doc:general], "--heading-level") {
		t.Errorf("expected --heading-level among documentation flags:\n%s", usage)
	}
	if !strings.Contains(usage[general:], "--out") {
		t.Errorf("expected --out among general flags:\n%s", usage)
	}
}
