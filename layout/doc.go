// Package layout computes the geometry of PLS loading biplots.
//
// Every function here is pure: it reads its inputs and returns fresh values.
//
//   - ProjectPredictors picks a component pair from the predictor-side matrix.
//   - ScaleResponses does the same for the response side, times a factor
//     that only affects the drawn vector length.
//   - LabelAnchor places a response label below the tip for y > 0 and above
//     it otherwise (y == 0 included).
//   - DefaultAxisLimits returns the explicit range on both axes, or the fixed
//     (-0.4, 0.4) window.
//   - GroupByCategory partitions predictor indices by label, in order of
//     first appearance, for one drawn series per category.
//   - BuildBiplot runs the adapter and all of the above and returns a
//     complete, validated Biplot for a renderer.
package layout
