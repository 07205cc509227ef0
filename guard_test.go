package reportpdf

import (
	"context"
	"errors"
	"testing"
)

func TestAcquireExportMode(t *testing.T) {
	doc := newFakeDocument(t, 10, 10)
	release, err := acquireExportMode(context.Background(), doc)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if ov, exp := doc.State(); ov != "visible" || !exp {
		t.Errorf("in export mode: overflow %q exporting %v", ov, exp)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ov, exp := doc.State(); ov != "hidden" || exp {
		t.Errorf("after release: overflow %q exporting %v, want hidden/false", ov, exp)
	}
}

func TestAcquireExportMode_ReleaseAfterCancel(t *testing.T) {
	doc := newFakeDocument(t, 10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	release, err := acquireExportMode(ctx, doc)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	cancel()
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ov, _ := doc.State(); ov != "hidden" {
		t.Errorf("overflow = %q after cancelled export, want hidden", ov)
	}
}

func TestAcquireExportMode_UndoesPartialAcquire(t *testing.T) {
	doc := newFakeDocument(t, 10, 10)
	doc.exportErr = errors.New("flag refused")
	if _, err := acquireExportMode(context.Background(), doc); !errors.Is(err, doc.exportErr) {
		t.Fatalf("err = %v, want the flag error", err)
	}
	if ov, exp := doc.State(); ov != "hidden" || exp {
		t.Errorf("after failed acquire: overflow %q exporting %v", ov, exp)
	}
}
