package executor

import (
	"strings"
	"testing"
)

func TestProgressParserTimeLines(t *testing.T) {
	p := NewProgressParser(200) // 200秒时长

	pct, ok := p.ParseLine("frame= 1000 fps=250 q=-1.0 size=  10240KiB time=00:00:50.00 bitrate=1677.8kbits/s speed=12.5x")
	if !ok || pct != 25 {
		t.Errorf("got (%d, %v), want (25, true)", pct, ok)
	}

	pct, ok = p.ParseLine("frame= 2000 fps=250 q=-1.0 size=  20480KiB time=00:01:40.00 bitrate=1677.8kbits/s speed=12.5x")
	if !ok || pct != 50 {
		t.Errorf("got (%d, %v), want (50, true)", pct, ok)
	}
}

func TestProgressParserOutTimeMs(t *testing.T) {
	p := NewProgressParser(100)
	pct, ok := p.ParseLine("out_time_ms=30000000")
	if !ok || pct != 30 {
		t.Errorf("got (%d, %v), want (30, true)", pct, ok)
	}
}

func TestProgressParserClampsAt99(t *testing.T) {
	p := NewProgressParser(100)
	// 超过总时长也不允许在进程退出前报100
	pct, ok := p.ParseLine("time=00:02:30.00")
	if !ok || pct != 99 {
		t.Errorf("got (%d, %v), want (99, true)", pct, ok)
	}
}

func TestProgressParserMonotonic(t *testing.T) {
	p := NewProgressParser(100)
	if pct, _ := p.ParseLine("time=00:01:00.00"); pct != 60 {
		t.Fatalf("got %d, want 60", pct)
	}
	// 乱序时间戳不允许进度回退
	pct, ok := p.ParseLine("time=00:00:10.00")
	if !ok || pct != 60 {
		t.Errorf("got (%d, %v), want (60, true)", pct, ok)
	}
}

func TestProgressParserUnknownDuration(t *testing.T) {
	p := NewProgressParser(0)
	if _, ok := p.ParseLine("time=00:01:00.00"); ok {
		t.Error("unknown duration must not report progress")
	}
}

func TestProgressParserIgnoresNoise(t *testing.T) {
	p := NewProgressParser(100)
	for _, line := range []string{
		"Stream #0:0(und): Video: h264 (High)",
		"Press [q] to stop, [?] for help",
		"out_time_ms=bogus",
		"",
	} {
		if _, ok := p.ParseLine(line); ok {
			t.Errorf("line %q should not carry progress", line)
		}
	}
}

func TestStderrTailBounded(t *testing.T) {
	tail := newStderrTail(64)
	for i := 0; i < 100; i++ {
		tail.Append("diagnostic line with some detail")
	}
	if got := len(tail.String()); got > 64+33 {
		t.Errorf("tail grew to %d bytes", got)
	}
	if !strings.Contains(tail.String(), "diagnostic") {
		t.Error("tail should keep the most recent lines")
	}
}

func TestStderrTailKeepsLastLines(t *testing.T) {
	tail := newStderrTail(32)
	tail.Append("first")
	tail.Append("second")
	tail.Append("this is the final error line")
	if !strings.Contains(tail.String(), "final error") {
		t.Errorf("tail = %q, want the last line retained", tail.String())
	}
}
