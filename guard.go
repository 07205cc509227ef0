package reportpdf

import (
	"context"
	"errors"
	"fmt"
)

const exportOverflow = "visible"

// acquireExportMode switches the page into export mode: body overflow
// forced visible and the exporting flag set. The returned release puts
// both back to their prior state and must be called on every path once
// acquire succeeds. If acquire fails part way, it undoes what it did.
func acquireExportMode(ctx context.Context, doc Document) (release func() error, err error) {
	prev, err := doc.BodyOverflow(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportpdf: reading body overflow: %w", err)
	}
	if err := doc.SetBodyOverflow(ctx, exportOverflow); err != nil {
		return nil, fmt.Errorf("reportpdf: entering export mode: %w", err)
	}
	if err := doc.SetExporting(ctx, true); err != nil {
		undo := doc.SetBodyOverflow(context.WithoutCancel(ctx), prev)
		return nil, errors.Join(fmt.Errorf("reportpdf: entering export mode: %w", err), undo)
	}

	return func() error {
		// Restore even when the export itself was cancelled.
		rctx := context.WithoutCancel(ctx)
		return errors.Join(
			doc.SetExporting(rctx, false),
			doc.SetBodyOverflow(rctx, prev),
		)
	}, nil
}
