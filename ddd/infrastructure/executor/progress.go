package executor

import (
	"regexp"
	"strconv"
	"strings"
)

var reTime = regexp.MustCompile(`time=(\d+):(\d+):(\d+\.?\d*)`)

// ProgressParser turns raw ffmpeg diagnostic lines into percentage deltas.
// It is a pure function of its input so it can be tested with fabricated
// stderr text, without spawning a real process. With an unknown duration
// (totalSec <= 0) it never reports progress and the job runs in an
// indeterminate state until completion.
type ProgressParser struct {
	totalSec float64
	last     int
}

// NewProgressParser creates a parser for an input with the given total
// duration in seconds. Zero or negative means the duration probe failed.
func NewProgressParser(totalSec float64) *ProgressParser {
	return &ProgressParser{totalSec: totalSec}
}

// ParseLine extracts a progress percentage from one diagnostic line. The
// second return value reports whether the line carried a progress signal.
// Values are clamped to [0, 99]; 100 is reserved for a clean process exit.
// Reported values never decrease across the parser's lifetime.
func (p *ProgressParser) ParseLine(line string) (int, bool) {
	if p.totalSec <= 0 {
		return 0, false
	}

	var elapsed float64
	switch {
	case strings.HasPrefix(line, "out_time_ms="):
		us, err := strconv.ParseFloat(strings.TrimPrefix(line, "out_time_ms="), 64)
		if err != nil {
			return 0, false
		}
		elapsed = us / 1e6
	default:
		m := reTime.FindStringSubmatch(line)
		if len(m) != 4 {
			return 0, false
		}
		hh, _ := strconv.ParseFloat(m[1], 64)
		mm, _ := strconv.ParseFloat(m[2], 64)
		ss, _ := strconv.ParseFloat(m[3], 64)
		elapsed = hh*3600 + mm*60 + ss
	}

	pct := int((elapsed / p.totalSec) * 100)
	if pct > 99 {
		pct = 99
	}
	if pct < 0 {
		pct = 0
	}
	if pct < p.last {
		return p.last, true
	}
	p.last = pct
	return pct, true
}

// stderrTail keeps the last maxBytes of diagnostic output for error reports,
// so a pathological process cannot grow memory without bound.
type stderrTail struct {
	lines    []string
	size     int
	maxBytes int
}

func newStderrTail(maxBytes int) *stderrTail {
	if maxBytes <= 0 {
		maxBytes = 2048
	}
	return &stderrTail{maxBytes: maxBytes}
}

func (t *stderrTail) Append(line string) {
	t.lines = append(t.lines, line)
	t.size += len(line) + 1
	for len(t.lines) > 1 && t.size > t.maxBytes {
		t.size -= len(t.lines[0]) + 1
		t.lines = t.lines[1:]
	}
}

func (t *stderrTail) String() string {
	return strings.Join(t.lines, "\n")
}
