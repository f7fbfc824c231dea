// Package anchors converts typed path segments into flattened sequences of Bézier
// anchors, the way osu! describes slider curves.
//
// # Anchors
//
// An anchor sequence is a list of points describing a chain of Bézier curves. A
// point that appears twice in a row ends one curve and starts the next one, so the
// sequence
//
//	(0, 0) (1, 0) (1, 0) (1, 1) (2, 1)
//
// describes a line from (0, 0) to (1, 0) followed by a quadratic Bézier from (1, 0)
// to (2, 1). Curves may have any degree. [Pieces] splits a sequence back into its
// curves, and [NewBezPath] turns it into lines and quadratic and cubic Béziers,
// flattening curves of higher degree.
//
// # Segments
//
// A [Segment] is a list of points together with a [Kind] that says how to
// interpret them:
//
//   - [LinearKind] points are joined by straight lines (see [LinearAnchors]).
//   - [PerfectCircleKind] points describe an arc of the circle through the first
//     three points (see [CircleAnchors]).
//   - [CatmullKind] points are interpolated by a Catmull-Rom spline (see
//     [CatmullAnchors]).
//   - [BezierKind] points already are anchors.
//
// [Convert] dispatches on the kind, and [Path.Anchors] converts and joins a whole
// [Path]. Segments can be parsed from and formatted to the "K|x:y|x:y" notation,
// see [ParseSegment].
//
// # Circular arcs
//
// A single Bézier curve cannot represent a circular arc exactly. Arcs are instead
// approximated by one of a small number of precomputed control polygons for the
// unit circle, each good up to some sweep angle. The smallest sufficient polygon
// is repeatedly cut with de Casteljau's algorithm until it ends at the desired
// angle, and is then rotated, scaled and translated onto the arc. [ArcOptions]
// bounds the number of cuts.
//
// # Logging
//
// The package logs through [log/slog]. It is silent by default; see [SetLogger].
package anchors
