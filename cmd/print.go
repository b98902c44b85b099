package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/servo2go/cmd/global"
	"github.com/markusressel/servo2go/internal/control_loop"
	"github.com/markusressel/servo2go/internal/statistics"
	"github.com/markusressel/servo2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

func printLoop(loop *control_loop.Loop) {
	stats := loop.GetStatistics()

	// print table
	ui.Printfln(loop.GetId())
	tab := table.Table{
		Headers: []string{"", ""},
		Rows: [][]string{
			{"Engine", loop.Engine().String()},
			{"Reads", strconv.FormatUint(stats.Reads, 10)},
			{"Failed reads", strconv.FormatUint(stats.FailedReads, 10)},
			{"Last control value", fmt.Sprintf("%.4f", stats.LastControlValue)},
			{"Last process value", fmt.Sprintf("%.4f", stats.LastProcessValue)},
			{"Moving average", fmt.Sprintf("%.4f", loop.MovingAvg())},
		},
	}
	var buf bytes.Buffer
	tableErr := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if tableErr != nil {
		ui.Error("Unable to render table: %v", tableErr)
		return
	}
	ui.Printfln(buf.String())

	// print graph
	history := loop.History()
	if len(history) <= 0 {
		ui.Printfln("No process values yet...")
		return
	}

	values := make([]float64, 0, len(history))
	for _, sample := range history {
		values = append(values, sample.Next)
	}

	caption := "Process value / Iteration"
	graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
	ui.Printfln(graph)
}

func printMetrics(loop *control_loop.Loop) {
	registry := statistics.NewRegistry(statistics.NewLoopCollector([]*control_loop.Loop{loop}))
	var buf bytes.Buffer
	if err := statistics.WriteText(&buf, registry); err != nil {
		ui.Error("Unable to gather metrics: %v", err)
		return
	}
	ui.Printf("%s", buf.String())
}
