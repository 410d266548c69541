package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/marcus/popup/internal/config"
	"github.com/spf13/pflag"
)

func TestApplyAppearanceFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addAppearanceFlags(fs)

	if err := fs.Parse([]string{"--animation-ms=300", "--backdrop-opacity=0.5", "--close-on-backdrop"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	c := &config.Config{AnimationMs: 900, PanelWidth: 40}
	applyAppearanceFlags(fs, c)

	want := &config.Config{
		AnimationMs:     300,
		BackdropOpacity: 0.5,
		PanelWidth:      40, // untouched: flag not set
		CloseOnBackdrop: true,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for invalid level")
	}

	l, closer, err := newLogger("", "debug")
	if err != nil || l == nil || closer != nil {
		t.Errorf("discard logger: l=%v closer=%v err=%v", l, closer, err)
	}

	path := t.TempDir() + "/popup.log"
	l, closer, err = newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	l.Info("hello")
	if err := closer.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
