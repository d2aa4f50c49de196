package document

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-article/pkg/interfaces"
)

const frontmatterDelimiter = "---"

// MarshalFrontMatter serializes the metadata block back into a YAML
// frontmatter header followed by the body. Re-parsing the output yields an
// equal record, which is what authoring tools rely on when rewriting files.
func MarshalFrontMatter(meta interfaces.Metadata, body []byte) ([]byte, error) {
	// Raw mirrors the decoded header; emitting it would duplicate every key.
	meta.Raw = nil

	header, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("document: marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontmatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(header)
	buf.WriteString(frontmatterDelimiter)
	buf.WriteByte('\n')

	if len(body) > 0 {
		buf.WriteByte('\n')
		buf.Write(bytes.TrimLeft(body, "\n"))
	}

	return buf.Bytes(), nil
}
