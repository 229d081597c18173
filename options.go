package typstplot

// AnchorStrategy selects how text anchors are translated into Typst.
//
// The two strategies produce different, individually valid markup for the
// same semantic anchor and are not interchangeable byte-for-byte.
type AnchorStrategy uint8

const (
	// EdgeAnchors is the default and canonical strategy. Vertical anchors
	// map to top-edge/bottom-edge text attributes; horizontal center and
	// right anchors shift the text by its width, measured by Typst itself
	// at layout time.
	EdgeAnchors AnchorStrategy = iota

	// OffsetAnchors approximates vertical anchors with fixed
	// em-proportional placement offsets and maps horizontal anchors to a
	// named alignment, avoiding the measurement step.
	OffsetAnchors
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := typstplot.New("chart.typ", 500, 500,
//		typstplot.WithAnchorStrategy(typstplot.OffsetAnchors))
type Option func(*canvasOptions)

type canvasOptions struct {
	anchors AnchorStrategy
}

func defaultOptions() canvasOptions {
	return canvasOptions{anchors: EdgeAnchors}
}

// WithAnchorStrategy sets the text anchor translation strategy.
func WithAnchorStrategy(s AnchorStrategy) Option {
	return func(o *canvasOptions) {
		o.anchors = s
	}
}
