package service

import "testing"

func sub(name string) ScanEntry {
	return ScanEntry{Path: "/lib/" + name, Name: name}
}

func TestResolveSubtitleExactStemMatch(t *testing.T) {
	match, ok := ResolveSubtitle("Movie(1994).mp4", []ScanEntry{
		sub("Other.ar.srt"),
		sub("Movie(1994).ar.srt"),
	})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.Path != "/lib/Movie(1994).ar.srt" || match.Language != "ar" {
		t.Errorf("got %+v", match)
	}
}

func TestResolveSubtitleCaseSensitiveStem(t *testing.T) {
	if _, ok := ResolveSubtitle("Movie.mp4", []ScanEntry{sub("movie.ar.srt")}); ok {
		t.Error("stem match must be case-sensitive")
	}
}

func TestResolveSubtitleNoLanguageSegment(t *testing.T) {
	// 缺少语言段的字幕不配对,而不是默认一种语言
	if _, ok := ResolveSubtitle("Movie.mp4", []ScanEntry{sub("Movie.srt")}); ok {
		t.Error("subtitle without language segment must not pair")
	}
	if _, ok := ResolveSubtitle("Movie.mp4", []ScanEntry{sub("Movie.arabic.srt")}); ok {
		t.Error("segments longer than three letters are not language codes")
	}
	if _, ok := ResolveSubtitle("Movie.mp4", []ScanEntry{sub("Movie.a1.srt")}); ok {
		t.Error("digits are not part of a language code")
	}
}

func TestResolveSubtitleLanguageVerbatim(t *testing.T) {
	match, ok := ResolveSubtitle("Show.S01E01.mkv", []ScanEntry{sub("Show.S01E01.eng.vtt")})
	if !ok || match.Language != "eng" {
		t.Errorf("got %+v ok=%v, want eng", match, ok)
	}
}

func TestResolveSubtitleTieBreakShorterCodeWins(t *testing.T) {
	match, ok := ResolveSubtitle("Movie.mp4", []ScanEntry{
		sub("Movie.ara.srt"),
		sub("Movie.ar.srt"),
	})
	if !ok || match.Language != "ar" {
		t.Errorf("got %+v ok=%v, want two-letter code", match, ok)
	}

	// 长度相同取遍历顺序先出现者
	match, ok = ResolveSubtitle("Movie.mp4", []ScanEntry{
		sub("Movie.ar.srt"),
		sub("Movie.en.srt"),
	})
	if !ok || match.Language != "ar" {
		t.Errorf("got %+v ok=%v, want first candidate", match, ok)
	}
}

func TestResolveSubtitleDeterministic(t *testing.T) {
	candidates := []ScanEntry{
		sub("Movie.eng.srt"),
		sub("Movie.ara.srt"),
		sub("Movie.en.vtt"),
	}
	first, _ := ResolveSubtitle("Movie.mp4", candidates)
	for i := 0; i < 10; i++ {
		again, _ := ResolveSubtitle("Movie.mp4", candidates)
		if again != first {
			t.Fatalf("resolution not deterministic: %+v vs %+v", again, first)
		}
	}
}

func TestResolveSubtitleNoCandidates(t *testing.T) {
	if _, ok := ResolveSubtitle("Show.S01E01.mkv", nil); ok {
		t.Error("no candidates must resolve to no pairing")
	}
}

func TestOutputFilePath(t *testing.T) {
	got := OutputFilePath("/out/movies", "Movie(1994).mp4", "ar")
	want := "/out/movies/Movie(1994).ar.mp4"
	if got != want {
		t.Errorf("OutputFilePath = %q, want %q", got, want)
	}

	got = OutputFilePath("/out/tv", "Show.S01E01.mkv", "eng")
	want = "/out/tv/Show.S01E01.eng.mkv"
	if got != want {
		t.Errorf("OutputFilePath = %q, want %q", got, want)
	}
}
