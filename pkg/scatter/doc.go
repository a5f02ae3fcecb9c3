// Package scatter builds scatter charts of one statistic against another.
//
// Two builders share the same marker layer (points coloured by a third
// column, hover text from name and detail columns):
//
//   - [Scatter] adds dotted reference lines through the mean of each axis,
//     splitting the chart into above/below-average quadrants.
//   - [WithRegression] adds the least-squares line of y on x and two
//     parallel lines one standard deviation of y above and below it.
//
// The deviation lines are vertical shifts of the fitted line, not a
// prediction interval.
//
// Both return a new [chart.Figure]; datasets are only read.
//
//	fig, err := scatter.WithRegression(ds, scatter.Options{
//	    X: "xwOBA", Y: "wOBA", Color: "Barrel%",
//	}, chart.DefaultConfig())
package scatter
