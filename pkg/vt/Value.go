// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package vt

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// parseValue decodes a layer value message into a string, float64, int64, uint64, or bool.
// A value message without a recognized field decodes to nil.
func parseValue(b []byte) (interface{}, error) {
	var value interface{}
	for len(b) > 0 {
		num, typ, n, err := consumeTag(b)
		if err != nil {
			return nil, err
		}
		b = b[n:]
		switch {
		case num == valueStringField && typ == protowire.BytesType:
			v, n, err := consumeBytes(b, num)
			if err != nil {
				return nil, err
			}
			value = string(v)
			b = b[n:]
		case num == valueFloatField && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			value = float64(math.Float32frombits(v))
			b = b[n:]
		case num == valueDoubleField && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			value = math.Float64frombits(v)
			b = b[n:]
		case num == valueIntField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			value = int64(v)
			b = b[n:]
		case num == valueUintField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			value = v
			b = b[n:]
		case num == valueSintField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			value = protowire.DecodeZigZag(v)
			b = b[n:]
		case num == valueBoolField && typ == protowire.VarintType:
			v, n, err := consumeVarint(b, num)
			if err != nil {
				return nil, err
			}
			value = protowire.DecodeBool(v)
			b = b[n:]
		default:
			n, err := skipField(b, num, typ)
			if err != nil {
				return nil, err
			}
			b = b[n:]
		}
	}
	return value, nil
}
