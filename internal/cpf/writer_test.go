package cpf

import (
	"context"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cutflow/internal/cutlist"
	"cutflow/internal/logger"
)

func newTestWriter() Writer {
	return New(logger.New("error"))
}

func writeProject(t *testing.T, intervals []cutlist.Interval, videoPath, audioPath string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.cpf")
	registry := cutlist.NewRegistry(videoPath, audioPath)

	if err := newTestWriter().Write(context.Background(), path, registry, intervals); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestWriteDocument(t *testing.T) {
	intervals := []cutlist.Interval{
		{Start: 100, End: 149},
		{Start: 300, End: 309},
	}

	got := writeProject(t, intervals, "media/movie.m2v", "media/movie.mp2")

	want := `<?xml version="1.0" standalone="yes"?>
<StateData xmlns="http://cuttermaran.kickme.to/StateData.xsd">
  <usedVideoFiles FileID="0" FileName="media/movie.m2v" />
  <usedAudioFiles FileID="1" FileName="media/movie.mp2" StartDelay="0" />
  <!-- Segment 1 -->
  <CutElements refVideoFile="0" StartPosition="100" EndPosition="149">
    <cutAudioFiles refAudioFile="1" />
  </CutElements>
  <!-- Segment 2 -->
  <CutElements refVideoFile="0" StartPosition="300" EndPosition="309">
    <cutAudioFiles refAudioFile="1" />
  </CutElements>
  <CurrentFiles refVideoFiles="0">
    <currentAudioFiles refAudioFiles="1" />
  </CurrentFiles>
</StateData>
`
	if got != want {
		t.Errorf("document mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteAttributeFidelity(t *testing.T) {
	got := writeProject(t, []cutlist.Interval{{Start: 412, End: 619}}, "v.m2v", "a.mp2")

	for _, fragment := range []string{
		`StartPosition="412"`,
		`EndPosition="619"`,
		`refVideoFile="0"`,
		`refAudioFile="1"`,
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("document missing %s:\n%s", fragment, got)
		}
	}
}

func TestWriteEmptyIntervals(t *testing.T) {
	got := writeProject(t, nil, "v.m2v", "a.mp2")

	if strings.Contains(got, "<CutElements") {
		t.Errorf("empty cut list produced cut elements:\n%s", got)
	}
	if !strings.Contains(got, "<CurrentFiles") {
		t.Errorf("document missing CurrentFiles trailer:\n%s", got)
	}
	assertWellFormed(t, got)
}

func TestWriteEscapesPaths(t *testing.T) {
	got := writeProject(t, []cutlist.Interval{{Start: 0, End: 9}},
		`clips/a&b <cut>.m2v`, `clips/say "hi".mp2`)

	if !strings.Contains(got, `FileName="clips/a&amp;b &lt;cut&gt;.m2v"`) {
		t.Errorf("video path not escaped:\n%s", got)
	}
	if !strings.Contains(got, `FileName="clips/say &quot;hi&quot;.mp2"`) {
		t.Errorf("audio path not escaped:\n%s", got)
	}
	assertWellFormed(t, got)
}

func TestWriteRefusesExistingDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.cpf")
	prior := []byte("do not touch\n")
	if err := os.WriteFile(path, prior, 0644); err != nil {
		t.Fatal(err)
	}

	registry := cutlist.NewRegistry("v.m2v", "a.mp2")
	err := newTestWriter().Write(context.Background(), path, registry, []cutlist.Interval{{Start: 1, End: 2}})

	if !errors.Is(err, ErrProjectExists) {
		t.Fatalf("Write() error = %v, want ErrProjectExists", err)
	}

	after, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if string(after) != string(prior) {
		t.Errorf("existing file modified: %q", after)
	}
}

func TestWriteUnwritableDestination(t *testing.T) {
	registry := cutlist.NewRegistry("v.m2v", "a.mp2")
	path := filepath.Join(t.TempDir(), "missing-dir", "out.cpf")

	err := newTestWriter().Write(context.Background(), path, registry, nil)
	if err == nil {
		t.Error("Write() should return error for uncreatable destination")
	}
	if errors.Is(err, ErrProjectExists) {
		t.Errorf("Write() error = %v, should not be ErrProjectExists", err)
	}
}

// assertWellFormed runs the document through the stdlib XML decoder, which
// rejects unescaped attribute values and unbalanced tags.
func assertWellFormed(t *testing.T, doc string) {
	t.Helper()

	decoder := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("document not well-formed: %v", err)
		}
	}
}
