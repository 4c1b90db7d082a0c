package library

// Metadata holds the tag fields read from one audio file. Numeric fields use
// zero for "absent"; a stored tag value of zero is normalized to absent at the
// codec boundary. String fields use the empty string for "absent", except the
// album name whose presence is tracked separately so an empty album tag stays
// distinguishable from a missing one.
type Metadata struct {
	Track       int
	TotalTracks int
	Disc        int
	TotalDiscs  int
	Artist      string
	AlbumArtist string
	Album       string
	HasAlbum    bool
	Title       string
}

// Song is one indexed file. Songs are owned by MusicIndex.Songs and referenced
// elsewhere only by position.
type Song struct {
	Track       int
	TotalTracks int
	Disc        int
	TotalDiscs  int
	Artist      string
	AlbumArtist string
	Title       string
	CurrentFile string
}

// Album groups songs under an artist. Named is false only when the album tag
// was absent from the file; an empty Name with Named set records an
// explicitly empty album tag.
type Album struct {
	Name  string
	Named bool
	Songs []int
}

// Artist is a named group of albums in first-seen order.
type Artist struct {
	Name   string
	Albums []Album
}

// MusicIndex is the root aggregate of a library scan.
type MusicIndex struct {
	SourceDir string
	Songs     []Song
	Artists   []Artist
	Unknown   []int

	artistPos map[string]int
	albumPos  map[albumKey]int
}

type albumKey struct {
	artist int
	named  bool
	name   string
}

// NewIndex creates an empty index rooted at the given source directory.
func NewIndex(sourceDir string) *MusicIndex {
	return &MusicIndex{
		SourceDir: sourceDir,
		artistPos: make(map[string]int),
		albumPos:  make(map[albumKey]int),
	}
}

// Add appends a song derived from the metadata of the file at path and groups
// it into the artist hierarchy. The grouping artist is the album artist when
// present, otherwise the artist; songs with neither go to the unknown bucket.
// Returns the index of the new song in Songs.
func (ix *MusicIndex) Add(m Metadata, path string) int {
	songIndex := len(ix.Songs)
	ix.Songs = append(ix.Songs, Song{
		Track:       m.Track,
		TotalTracks: m.TotalTracks,
		Disc:        m.Disc,
		TotalDiscs:  m.TotalDiscs,
		Artist:      m.Artist,
		AlbumArtist: m.AlbumArtist,
		Title:       m.Title,
		CurrentFile: path,
	})

	artistName := m.AlbumArtist
	if artistName == "" {
		artistName = m.Artist
	}
	if artistName == "" {
		ix.Unknown = append(ix.Unknown, songIndex)
		return songIndex
	}

	if ix.artistPos == nil {
		ix.artistPos = make(map[string]int)
	}
	if ix.albumPos == nil {
		ix.albumPos = make(map[albumKey]int)
	}

	ai, ok := ix.artistPos[artistName]
	if !ok {
		ai = len(ix.Artists)
		ix.Artists = append(ix.Artists, Artist{Name: artistName})
		ix.artistPos[artistName] = ai
	}

	key := albumKey{artist: ai, named: m.HasAlbum, name: m.Album}
	bi, ok := ix.albumPos[key]
	if !ok {
		bi = len(ix.Artists[ai].Albums)
		ix.Artists[ai].Albums = append(ix.Artists[ai].Albums, Album{Name: m.Album, Named: m.HasAlbum})
		ix.albumPos[key] = bi
	}
	ix.Artists[ai].Albums[bi].Songs = append(ix.Artists[ai].Albums[bi].Songs, songIndex)
	return songIndex
}
