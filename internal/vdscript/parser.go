package vdscript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"cutflow/internal/cutlist"
)

// rangePattern matches VirtualDub subset statements, e.g.
// VirtualDub.subset.AddRange(412,208);
// The match is anchored at column 0: a line with leading whitespace or any
// other prefix is not a cut statement. Lines that don't match carry no
// meaning to the conversion and are skipped.
var rangePattern = regexp.MustCompile(`^VirtualDub\.subset\.AddRange\((\d+),(\d+)\);`)

// ParseFile opens a vdscript file and extracts its cut ranges
func (p *implParser) ParseFile(ctx context.Context, path string) ([]cutlist.Interval, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", path, err)
	}
	defer file.Close()

	intervals, err := p.Parse(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	return intervals, nil
}

// Parse scans vdscript text line by line and returns one interval per
// AddRange statement, in source order. EndPosition in Cuttermaran is
// inclusive, so a (start, count) range becomes [start, start+count-1].
func (p *implParser) Parse(ctx context.Context, r io.Reader) ([]cutlist.Interval, error) {
	var intervals []cutlist.Interval

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		match := rangePattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		start, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			p.logger.Debug(ctx, "Line %d: start frame out of range, skipping", lineNo)
			continue
		}
		count, err := strconv.ParseInt(match[2], 10, 64)
		if err != nil {
			p.logger.Debug(ctx, "Line %d: frame count out of range, skipping", lineNo)
			continue
		}

		if count == 0 {
			p.logger.Warn(ctx, "Line %d: zero-length range at frame %d, skipping", lineNo, start)
			continue
		}

		intervals = append(intervals, cutlist.Interval{
			Start: start,
			End:   start + count - 1,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p.logger.Debug(ctx, "Extracted %d cut range(s) from %d line(s)", len(intervals), lineNo)
	return intervals, nil
}
