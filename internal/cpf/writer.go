package cpf

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cutflow/internal/cutlist"
)

// stateDataNamespace is the schema namespace Cuttermaran expects on the
// StateData root element.
const stateDataNamespace = "http://cuttermaran.kickme.to/StateData.xsd"

// attrEscaper makes path values safe inside double-quoted XML attributes.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Write renders a Cuttermaran StateData document to projectPath: the track
// registrations, one CutElements block per interval in input order, and the
// CurrentFiles trailer. An existing destination is never overwritten; Write
// reports ErrProjectExists and leaves it untouched.
func (w *implWriter) Write(ctx context.Context, projectPath string, registry cutlist.Registry, intervals []cutlist.Interval) error {
	video, ok := registry.ByKind(cutlist.TrackVideo)
	if !ok {
		return fmt.Errorf("registry has no video track")
	}
	audio, ok := registry.ByKind(cutlist.TrackAudio)
	if !ok {
		return fmt.Errorf("registry has no audio track")
	}

	// O_EXCL makes the existence check and the create one atomic step, so
	// a pre-existing project can never be truncated.
	file, err := os.OpenFile(projectPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s: %w", projectPath, ErrProjectExists)
		}
		return fmt.Errorf("create project %s: %w", projectPath, err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	w.writeDocument(buf, video, audio, intervals)

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("write project %s: %w", projectPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write project %s: %w", projectPath, err)
	}

	w.logger.Debug(ctx, "Wrote %d cut element(s) to %s", len(intervals), projectPath)
	return nil
}

// writeDocument emits the fixed document layout Cuttermaran's reader
// expects, including the ordinal segment comments. Write errors surface on
// the caller's Flush.
func (w *implWriter) writeDocument(out io.Writer, video, audio cutlist.Track, intervals []cutlist.Interval) {
	fmt.Fprintln(out, `<?xml version="1.0" standalone="yes"?>`)
	fmt.Fprintf(out, "<StateData xmlns=\"%s\">\n", stateDataNamespace)

	fmt.Fprintf(out, "  <usedVideoFiles FileID=\"%d\" FileName=\"%s\" />\n", video.ID, attrEscaper.Replace(video.Path))
	fmt.Fprintf(out, "  <usedAudioFiles FileID=\"%d\" FileName=\"%s\" StartDelay=\"0\" />\n", audio.ID, attrEscaper.Replace(audio.Path))

	for i, interval := range intervals {
		fmt.Fprintf(out, "  <!-- Segment %d -->\n", i+1)
		fmt.Fprintf(out, "  <CutElements refVideoFile=\"%d\" StartPosition=\"%d\" EndPosition=\"%d\">\n", video.ID, interval.Start, interval.End)
		fmt.Fprintf(out, "    <cutAudioFiles refAudioFile=\"%d\" />\n", audio.ID)
		fmt.Fprintln(out, "  </CutElements>")
	}

	fmt.Fprintf(out, "  <CurrentFiles refVideoFiles=\"%d\">\n", video.ID)
	fmt.Fprintf(out, "    <currentAudioFiles refAudioFiles=\"%d\" />\n", audio.ID)
	fmt.Fprintln(out, "  </CurrentFiles>")
	fmt.Fprintln(out, "</StateData>")
}
