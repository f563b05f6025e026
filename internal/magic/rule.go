package magic

// Rule associates one or more magic-number signatures with a MIME type.
// A rule matches when any of its signatures is a prefix of the content
// under inspection.
type Rule struct {
	MIME       string   // media type reported on match, e.g. "image/png"
	Ext        string   // canonical file extension, without dot
	Signatures [][]byte // leading-byte patterns, at least one
}
