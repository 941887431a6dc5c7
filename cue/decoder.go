package cue

import (
	"context"

	"cuelang.org/go/cue"

	"github.com/xaviervia/fast/tree"
)

// DecodeTree decodes a CUE struct into a tree literal. Structs become
// nodes and strings or bytes become leaves. Regular fields are decoded;
// definitions, hidden and optional fields are skipped.
//
// Returns CodeCUEDecodeFailed if:
// - the value is not a struct
// - the value is not concrete
// - a field holds anything other than a struct, string or bytes
func DecodeTree(ctx context.Context, value cue.Value) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapDecodeErrorWithContext(err, "context cancelled before decoding", nil)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, wrapDecodeErrorWithContext(
			err,
			"CUE value is not concrete",
			makeContext("error", err.Error()),
		)
	}
	if value.Kind() != cue.StructKind {
		return nil, decodeError("", "tree literal must be a struct, got %s", value.Kind())
	}

	return decodeStruct(value, "")
}

func decodeStruct(value cue.Value, prefix string) (tree.Node, error) {
	iter, err := value.Fields()
	if err != nil {
		return nil, wrapDecodeErrorWithContext(err, "failed to iterate CUE struct", makeContext("field", formatFieldPath(prefix)))
	}

	node := tree.Node{}
	for iter.Next() {
		name := iter.Selector().Unquoted()
		field := name
		if prefix != "" {
			field = prefix + "." + name
		}

		literal, err := decodeValue(iter.Value(), field)
		if err != nil {
			return nil, err
		}
		node[name] = literal
	}
	return node, nil
}

func decodeValue(value cue.Value, field string) (tree.Literal, error) {
	switch value.Kind() {
	case cue.StructKind:
		return decodeStruct(value, field)
	case cue.StringKind:
		s, err := value.String()
		if err != nil {
			return nil, wrapDecodeErrorWithContext(err, "failed to decode string", makeContext("field", field))
		}
		return tree.Leaf(s), nil
	case cue.BytesKind:
		b, err := value.Bytes()
		if err != nil {
			return nil, wrapDecodeErrorWithContext(err, "failed to decode bytes", makeContext("field", field))
		}
		return tree.Leaf(b), nil
	default:
		return nil, decodeError(field, "unsupported %s value, want struct, string or bytes", value.Kind())
	}
}
