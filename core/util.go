package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/progen/instr"
)

// LevelTrace logs every label binding and executed call. It sits below
// Debug so that only an explicit trace level shows it.
const (
	LevelTrace slog.Level = slog.LevelDebug - 4
)

// DumpBlock renders the block tree as a table, one row per item.
func DumpBlock(b *Block) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Block %d", b.id))
	t.AppendHeader(table.Row{"Block", "Depth", "Kind", "Item", "Policy"})
	dumpRows(t, b, 0)
	return t.Render()
}

func dumpRows(t table.Writer, b *Block, depth int) {
	policy := make([]string, 0, len(b.policy.keys))
	for _, k := range b.policy.keys {
		policy = append(policy, fmt.Sprintf("%s=%v", k, b.policy.values[k]))
	}
	t.AppendRow(table.Row{b.id, depth, "block", "", strings.Join(policy, " ")})

	for _, item := range b.items {
		switch it := item.(type) {
		case *instr.Instruction:
			t.AppendRow(table.Row{b.id, depth, "instruction", it.String(), ""})
		case instr.Label:
			t.AppendRow(table.Row{b.id, depth, "label", it.String(), ""})
		case instr.Hook:
			t.AppendRow(table.Row{b.id, depth, "hook", it.String(), ""})
		case *Block:
			dumpRows(t, it, depth+1)
		}
	}
}

// LogBlock writes the block tree at debug level. The table is only
// rendered when debug is enabled.
func LogBlock(logger *slog.Logger, b *Block) {
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("BlockTree", "ID", b.id, "Items", len(b.items), "Dump", DumpBlock(b))
}
