// Package report implements the JSON run-report writer contract of
// spec.md §6, serializing gai.RunInfo values to results/ the way
// original_source/src/jsonPrinter.c does.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/rettertyp/gai/pkg/gai"
)

// record is the on-disk JSON shape: every RunInfo field except the
// per-cell AvgIncoming/AvgOutgoing, whose place is taken by the edge
// averages jsonPrinter.c computes (nOutgoingEdges/nUsedNodes and the
// incoming counterpart).
type record struct {
	Description      string  `json:"description"`
	SolutionFound    bool    `json:"solutionFound"`
	NIntervals       int     `json:"nIntervals"`
	NGroupsBuilt     int     `json:"nGroupsBuilt"`
	NGroupsKept      int     `json:"nGroupsKept"`
	NSolutions       int     `json:"nSolutions"`
	NSteps           int     `json:"nSteps"`
	NUsedNodes       int     `json:"nUsedNodes"`
	NOutgoingEdges   int     `json:"nOutgoingEdges"`
	NIncomingEdges   int     `json:"nIncomingEdges"`
	AvgOutgoingEdges float64 `json:"avgOutgoingEdges"`
	AvgIncomingEdges float64 `json:"avgIncomingEdges"`
	MaxOutgoingEdges int     `json:"maxOutgoingEdges"`
	MaxIncomingEdges int     `json:"maxIncomingEdges"`
	NEdges           int     `json:"nEdges"`
	NMarkedSets      int     `json:"nMarkedSets"`
	MaxSetsPerCell   int     `json:"maxSetsPerCell"`
	MinSetsPerCell   int     `json:"minSetsPerCell"`
	LongestPath      int     `json:"longestPath"`
	ShortestPath     int     `json:"shortestPath"`
	RunTimeSeconds   float64 `json:"runTime"`
	Metadata         []int   `json:"metadata"`
}

func toRecord(info gai.RunInfo) record {
	// AvgIncoming/AvgOutgoing on RunInfo are averaged over every table
	// cell, matching §3's RunInfo definition; the report writes
	// jsonPrinter.c's per-used-node averages instead, which divide by
	// NUsedNodes.
	var avgOut, avgIn float64
	if info.NUsedNodes > 0 {
		avgOut = float64(info.NEdges) / float64(info.NUsedNodes)
		avgIn = float64(info.NEdges) / float64(info.NUsedNodes)
	}

	metadata := info.Metadata
	if metadata == nil {
		metadata = []int{}
	}

	return record{
		Description:      info.Description,
		SolutionFound:    info.SolutionFound,
		NIntervals:       info.NIntervals,
		NGroupsBuilt:     info.NGroupsBuilt,
		NGroupsKept:      info.NGroupsKept,
		NSolutions:       info.NSolutions,
		NSteps:           info.NSteps,
		NUsedNodes:       info.NUsedNodes,
		NOutgoingEdges:   info.NEdges,
		NIncomingEdges:   info.NEdges,
		AvgOutgoingEdges: avgOut,
		AvgIncomingEdges: avgIn,
		MaxOutgoingEdges: info.MaxOutgoing,
		MaxIncomingEdges: info.MaxIncoming,
		NEdges:           info.NEdges,
		NMarkedSets:      info.NMarkedSets,
		MaxSetsPerCell:   info.MaxSetsPerCell,
		MinSetsPerCell:   info.MinSetsPerCell,
		LongestPath:      info.LongestPath,
		ShortestPath:     info.ShortestPath,
		RunTimeSeconds:   info.RunTime.Seconds(),
		Metadata:         metadata,
	}
}

// WriteOne serializes a single RunInfo to results/<description>_
// <nIntervals>_<index>.json under dir, incrementing <index> until an
// unused filename is found — mirroring jsonPrinterSaveToFile's
// access(filename, F_OK) probe loop.
func WriteOne(dir string, info gai.RunInfo) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: create results dir: %w", err)
	}

	data, err := json.MarshalIndent(toRecord(info), "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal run info: %w", err)
	}

	path, err := nextAvailablePath(dir, info.Description, info.NIntervals)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write %s: %w", path, err)
	}
	return path, nil
}

// WriteMany writes one JSON file per RunInfo, in order, and returns the
// paths written. It stops at the first failure.
func WriteMany(dir string, infos []gai.RunInfo) ([]string, error) {
	paths := make([]string, 0, len(infos))
	for _, info := range infos {
		path, err := WriteOne(dir, info)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func nextAvailablePath(dir, description string, nIntervals int) (string, error) {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d_%d.json", description, nIntervals, i)
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		} else if err != nil {
			return "", fmt.Errorf("report: stat %s: %w", path, err)
		}
	}
}
