package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ratatop/internal/config"
	"ratatop/internal/dashboard"
	"ratatop/internal/sampler"
	"ratatop/internal/ui"
)

// snapshotWarmup is the delay between the priming sample and the reported
// one. CPU and network metrics are deltas, so a single read has nothing to
// diff against.
const snapshotWarmup = 1 * time.Second

// snapshotCommand captures one snapshot and prints it to stdout.
func snapshotCommand(jsonOut bool) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		if jsonOut {
			return WriteJSONFromError(os.Stdout, err)
		}
		return err
	}

	applyColorMode(cfg.Output.Color)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	smp := sampler.New(cfg)

	// Priming sample establishes the delta baselines.
	smp.Sample(ctx)

	select {
	case <-time.After(snapshotWarmup):
	case <-ctx.Done():
		return ctx.Err()
	}

	snap := smp.Sample(ctx)

	if jsonOut {
		return WriteJSONSuccess(os.Stdout, snap)
	}

	printSnapshot(cfg, snap)
	return nil
}

// printSnapshot renders a snapshot in human-readable form.
func printSnapshot(cfg *config.Config, snap *sampler.Snapshot) {
	warn := cfg.Thresholds.Warning
	crit := cfg.Thresholds.Critical

	fmt.Println(ui.Header("CPU"))
	fmt.Printf("  %s %s  load %.2f %.2f %.2f  (%d cores)\n",
		ui.UsageBar(22, snap.CPU.Percent),
		ui.PercentText(snap.CPU.Percent, warn, crit),
		snap.CPU.LoadAvg[0], snap.CPU.LoadAvg[1], snap.CPU.LoadAvg[2],
		snap.CPU.Cores)
	if len(snap.CPU.PerCore) > 0 {
		cells := make([]string, len(snap.CPU.PerCore))
		for i, pct := range snap.CPU.PerCore {
			cells[i] = ui.PercentText(pct, warn, crit)
		}
		fmt.Println("  " + ui.KeyValue("per-core", strings.Join(cells, " "), 10))
	}
	fmt.Println()

	fmt.Println(ui.Header("Memory"))
	fmt.Printf("  %s %s\n", ui.UsageBar(22, snap.Memory.UsedPercent),
		ui.PercentText(snap.Memory.UsedPercent, warn, crit))
	fmt.Println("  " + ui.KeyValue("used", humanize.IBytes(snap.Memory.UsedBytes), 10))
	fmt.Println("  " + ui.KeyValue("available", humanize.IBytes(snap.Memory.AvailableBytes), 10))
	fmt.Println("  " + ui.KeyValue("total", humanize.IBytes(snap.Memory.TotalBytes), 10))
	fmt.Println()

	if len(snap.Disks) > 0 {
		fmt.Println(ui.Header("Disks"))
		rows := make([][]string, 0, len(snap.Disks))
		for _, d := range snap.Disks {
			rows = append(rows, []string{
				d.Mount,
				d.Fstype,
				humanize.IBytes(d.UsedBytes),
				humanize.IBytes(d.TotalBytes),
				fmt.Sprintf("%.1f%%", d.UsedPercent),
			})
		}
		fmt.Println(ui.RenderSimpleTable([]ui.TableColumn{
			{Title: "MOUNT", Width: 18},
			{Title: "FSTYPE", Width: 8},
			{Title: "USED", Width: 10},
			{Title: "TOTAL", Width: 10},
			{Title: "USE%", Width: 7},
		}, rows))
		fmt.Println()
	}

	if len(snap.Network) > 0 {
		fmt.Println(ui.Header("Network"))
		for _, n := range snap.Network {
			fmt.Printf("  %-10s ↓ %-12s ↑ %s\n",
				n.Name,
				dashboard.FormatRate(n.RecvRate),
				dashboard.FormatRate(n.SendRate))
		}
		fmt.Println()
	}

	if len(snap.Processes) > 0 {
		limit := len(snap.Processes)
		if limit > 15 {
			limit = 15
		}

		fmt.Println(ui.Header(fmt.Sprintf("Top processes (%d of %d)", limit, len(snap.Processes))))
		rows := make([][]string, 0, limit)
		for _, p := range snap.Processes[:limit] {
			rows = append(rows, []string{
				fmt.Sprintf("%d", p.PID),
				p.Username,
				fmt.Sprintf("%.1f", p.CPUPercent),
				fmt.Sprintf("%.1f", p.MemoryPercent),
				humanize.IBytes(p.MemoryBytes),
				p.Name,
			})
		}
		fmt.Println(ui.RenderSimpleTable([]ui.TableColumn{
			{Title: "PID", Width: 8},
			{Title: "USER", Width: 12},
			{Title: "CPU%", Width: 6},
			{Title: "MEM%", Width: 6},
			{Title: "RSS", Width: 10},
			{Title: "NAME", Width: 24},
		}, rows))
	}

	for _, w := range snap.Warnings {
		fmt.Println(ui.Muted(ui.SymbolWarn + " " + w))
	}
}
