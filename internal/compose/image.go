// Where: internal/compose/image.go
// What: Container image reference parsing.
// Why: Expose image identity on running-service snapshots without the full
// distribution grammar.
package compose

import "strings"

// ImageReference identifies a container image by registry domain, name, tag,
// and digest. Absent parts are empty strings.
type ImageReference struct {
	Domain string
	Name   string
	Tag    string
	Digest string
}

// ParseImageReference splits an image reference such as
// docker.io/library/redis:7.2@sha256:abc into its parts.
func ParseImageReference(reference string) ImageReference {
	var ref ImageReference
	remainder := reference

	if at := strings.Index(remainder, "@"); at != -1 {
		ref.Digest = remainder[at+1:]
		remainder = remainder[:at]
	}

	// A colon after the last slash separates the tag; earlier colons belong
	// to a registry port.
	lastSlash := strings.LastIndex(remainder, "/")
	if colon := strings.LastIndex(remainder, ":"); colon > lastSlash {
		ref.Tag = remainder[colon+1:]
		remainder = remainder[:colon]
	}

	if slash := strings.Index(remainder, "/"); slash != -1 {
		first := remainder[:slash]
		if first == "localhost" || strings.ContainsAny(first, ".:") {
			ref.Domain = first
			remainder = remainder[slash+1:]
		}
	}

	ref.Name = remainder
	return ref
}

func (r ImageReference) String() string {
	var b strings.Builder
	if r.Domain != "" {
		b.WriteString(r.Domain)
		b.WriteString("/")
	}
	b.WriteString(r.Name)
	if r.Tag != "" {
		b.WriteString(":")
		b.WriteString(r.Tag)
	}
	if r.Digest != "" {
		b.WriteString("@")
		b.WriteString(r.Digest)
	}
	return b.String()
}
