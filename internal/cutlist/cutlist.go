package cutlist

// Interval is one retained cut range. Start and End are inclusive frame
// indices; End is never below Start. Intervals keep the order they were
// extracted in, which is the order cut elements are written in.
type Interval struct {
	Start int64
	End   int64
}

// TrackKind distinguishes the media kinds a cut element can reference.
type TrackKind string

const (
	TrackVideo TrackKind = "video"
	TrackAudio TrackKind = "audio"
)

// Track is one registered media file, referenced by cut elements via ID.
type Track struct {
	ID   int
	Kind TrackKind
	Path string
}

// Registry maps file IDs to media tracks. Cuttermaran projects use a fixed
// two-slot layout: one video track (ID 0) and one audio track (ID 1).
type Registry struct {
	tracks []Track
}

// NewRegistry builds the fixed video/audio registry for a project.
func NewRegistry(videoPath, audioPath string) Registry {
	return Registry{
		tracks: []Track{
			{ID: 0, Kind: TrackVideo, Path: videoPath},
			{ID: 1, Kind: TrackAudio, Path: audioPath},
		},
	}
}

// Tracks returns the registered tracks in ID order.
func (r Registry) Tracks() []Track {
	return r.tracks
}

// ByKind returns the first track of the given kind.
func (r Registry) ByKind(kind TrackKind) (Track, bool) {
	for _, t := range r.tracks {
		if t.Kind == kind {
			return t, true
		}
	}
	return Track{}, false
}
