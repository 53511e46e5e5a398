package types

// MediaType represents different types of input files
type MediaType string

const (
	DocumentMediaType MediaType = "document"
	MarkupMediaType   MediaType = "markup"
	ImageMediaType    MediaType = "image"
	UnknownMediaType  MediaType = "unknown"
)

// OutputFormat represents the serialisation of a ContactInfo
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// FileInfo contains basic information about a file
type FileInfo struct {
	Path      string    `json:"path"`
	MD5Hash   string    `json:"md5_hash"`
	Extension string    `json:"extension"`
	MimeType  string    `json:"mime_type"`
	Size      int64     `json:"size"`
	MediaType MediaType `json:"media_type"`
}

// TaggedToken is a token and the named-entity category assigned to it
type TaggedToken struct {
	Text   string
	Entity string
}

// TaggedSentence is an ordered sequence of tagged tokens
type TaggedSentence []TaggedToken
