// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

func consumeTag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, errors.Wrap(protowire.ParseError(n), "error reading field tag")
	}
	return num, typ, n, nil
}

func consumeBytes(b []byte, num protowire.Number) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, errors.Wrapf(protowire.ParseError(n), "error reading bytes for field %d", num)
	}
	return v, n, nil
}

func consumeVarint(b []byte, num protowire.Number) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, errors.Wrapf(protowire.ParseError(n), "error reading varint for field %d", num)
	}
	return v, n, nil
}

func skipField(b []byte, num protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, errors.Wrapf(protowire.ParseError(n), "error skipping field %d", num)
	}
	return n, nil
}

// consumeUint32s reads a repeated uint32 field, accepting both the packed
// and the unpacked encoding.
func consumeUint32s(b []byte, num protowire.Number, typ protowire.Type, values []uint32) ([]uint32, int, error) {
	if typ == protowire.VarintType {
		v, n, err := consumeVarint(b, num)
		if err != nil {
			return values, 0, err
		}
		return append(values, uint32(v)), n, nil
	}
	if typ != protowire.BytesType {
		return values, 0, errors.Errorf("unexpected wire type %d for field %d", typ, num)
	}
	packed, n, err := consumeBytes(b, num)
	if err != nil {
		return values, 0, err
	}
	for len(packed) > 0 {
		v, m, err := consumeVarint(packed, num)
		if err != nil {
			return values, 0, err
		}
		values = append(values, uint32(v))
		packed = packed[m:]
	}
	return values, n, nil
}
