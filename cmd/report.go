package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	sim "github.com/flowsim/flowsim/sim"
	"github.com/flowsim/flowsim/sim/trace"
)

// tickColumns is the layout of the streaming per-tick report.
var tickColumns = []string{
	"Time", "Wrote", "Released", "Available", "Capacity", "dCapacity",
	"Queued", "Latency", "Ack time", "Control", "NetThru", "NetLat",
}

func printTickHeader() {
	for _, col := range tickColumns {
		fmt.Printf("%15s", col)
	}
	fmt.Println()
}

// printTickRow streams one fixed-width row per completed tick.
func printTickRow(rec trace.TickRecord) {
	fmt.Printf("%15d%15d%15d%15d%15d%15d%15d",
		rec.Time, rec.Wrote, rec.Released, rec.Available, rec.Capacity, rec.Delta, rec.Queued)
	if rec.LatencyOK {
		fmt.Printf("%15d", rec.Latency)
	} else {
		fmt.Printf("%15s", "-")
	}
	if rec.AckTimeOK {
		fmt.Printf("%15d", rec.AckTime)
	} else {
		fmt.Printf("%15s", "-")
	}
	fmt.Printf("%15s%15s%15d\n", rec.Status, formatThroughput(rec.Throughput), rec.NetLatency)
}

// formatThroughput renders the uncapped sentinel as "inf".
func formatThroughput(v int64) string {
	if v == sim.UnlimitedThroughput {
		return "inf"
	}
	return strconv.FormatInt(v, 10)
}

// printSummaryTable renders the end-of-run aggregates as a table.
func printSummaryTable(s *trace.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})

	table.Append([]string{"Ticks", strconv.Itoa(s.Ticks)})
	table.Append([]string{"Bytes written", strconv.FormatInt(s.BytesWritten, 10)})
	table.Append([]string{"Bytes released", strconv.FormatInt(s.BytesReleased, 10)})
	table.Append([]string{"Mean latency", fmt.Sprintf("%.1f", s.MeanLatency)})
	table.Append([]string{"Max latency", strconv.FormatInt(s.MaxLatency, 10)})
	table.Append([]string{"Capacity range", fmt.Sprintf("[%d, %d]", s.MinCapacity, s.MaxCapacity)})
	table.Append([]string{"Mean capacity", fmt.Sprintf("%.1f", s.MeanCapacity)})

	statuses := make([]string, 0, len(s.StatusCounts))
	for status := range s.StatusCounts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		table.Append([]string{"Ticks " + status, strconv.Itoa(s.StatusCounts[status])})
	}

	table.Render() // Send output
}
