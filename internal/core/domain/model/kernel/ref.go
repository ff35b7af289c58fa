package kernel

import (
	"encoding/json"
	"fmt"
	"strings"

	"gestion/internal/pkg/errs"

	"github.com/google/uuid"
)

// ParseRef normalizes an identifier argument that may arrive in several shapes:
//   - a bare string "X" (also braced or urn forms)
//   - a JSON object text `{"id":"X"}` or a decoded map with an "id" key
//   - a UUID, uuid.UUID, or pointers to them
//   - any value exposing ID() or GetID()
//
// A missing or malformed identifier yields an errs.ValueIsInvalidError.
func ParseRef(v any) (UUID, error) {
	switch ref := v.(type) {
	case nil:
		return UUID{}, errs.NewValueIsRequiredError("id")
	case UUID:
		return ref, ref.Validate()
	case *UUID:
		if ref == nil {
			return UUID{}, errs.NewValueIsRequiredError("id")
		}
		return *ref, ref.Validate()
	case uuid.UUID:
		return UUIDFromBytes(ref[:])
	case *uuid.UUID:
		if ref == nil {
			return UUID{}, errs.NewValueIsRequiredError("id")
		}
		return UUIDFromBytes(ref[:])
	case string:
		return parseRefString(ref)
	case []byte:
		return parseRefString(string(ref))
	case json.RawMessage:
		return parseRefString(string(ref))
	case map[string]any:
		return ParseRef(ref["id"])
	case map[string]string:
		id, ok := ref["id"]
		if !ok {
			return UUID{}, errs.NewValueIsRequiredError("id")
		}
		return parseRefString(id)
	case interface{ ID() UUID }:
		return ParseRef(ref.ID())
	case interface{ GetID() string }:
		return parseRefString(ref.GetID())
	case fmt.Stringer:
		return parseRefString(ref.String())
	default:
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("unsupported identifier type %T", v))
	}
}

func parseRefString(s string) (UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return UUID{}, errs.NewValueIsRequiredError("id")
	}

	// A braced UUID is not JSON, so only valid JSON objects take this path.
	if strings.HasPrefix(s, "{") && json.Valid([]byte(s)) {
		var wrapper struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal([]byte(s), &wrapper); err != nil {
			return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
		if len(wrapper.ID) == 0 {
			return UUID{}, errs.NewValueIsRequiredError("id")
		}
		var inner string
		if err := json.Unmarshal(wrapper.ID, &inner); err != nil {
			return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
		return parseRefString(inner)
	}

	return UUIDFromString(s)
}
