package script

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderReport writes an HTML line chart of scale and translation per step.
func RenderReport(w io.Writer, title string, steps []Step) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d events", len(steps)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)

	xs := make([]int, len(steps))
	scale := make([]opts.LineData, len(steps))
	tx := make([]opts.LineData, len(steps))
	ty := make([]opts.LineData, len(steps))
	for i, s := range steps {
		xs[i] = s.Index
		scale[i] = opts.LineData{Value: s.Transform.ScaleX}
		tx[i] = opts.LineData{Value: s.Transform.TranslateX}
		ty[i] = opts.LineData{Value: s.Transform.TranslateY}
	}
	line.SetXAxis(xs).
		AddSeries("scale", scale).
		AddSeries("translate x", tx).
		AddSeries("translate y", ty)

	return line.Render(w)
}

func WriteReport(fileName, title string, steps []Step) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()
	if err := RenderReport(f, title, steps); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
