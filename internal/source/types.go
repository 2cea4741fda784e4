package source

// File captures the raw content of a single catalog file. Content
// stays in the original encoding; decoding happens per string once the
// header charset is known. LineIdx holds the offset of every '\n' so
// physical lines can be recovered for diagnostics.
type File struct {
	Path    string
	Content []byte
	LineIdx []uint32
}
