package codec

import (
	"context"

	"github.com/google/uuid"

	kvshape "github.com/reoring/kvshape"
)

// UUID returns a shape for RFC 4122 identifiers. Braced, URN and hyphenless
// forms are accepted; formatting is the canonical lowercase hyphenated form.
func UUID() kvshape.Shape[uuid.UUID] { return uuidShape{} }

type uuidShape struct{}

func (uuidShape) Name() string { return "uuid" }

func (uuidShape) ParseText(ctx context.Context, text string) (uuid.UUID, error) {
	id, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, kvshape.Issues{kvshape.IssueFor(kvshape.CodeInvalidFormat, "uuid", text, err)}
	}
	return id, nil
}

func (uuidShape) FormatText(id uuid.UUID) string { return id.String() }
