// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package matrix

import (
	"github.com/danjacques/gopixelmatrix/pixel"

	"github.com/golang/protobuf/jsonpb"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/pkg/errors"
)

// State is a read-only snapshot of a Controller.
type State struct {
	Width         int
	Height        int
	Color         pixel.P
	MaxBrightness uint8
}

// Snapshot captures c's current State.
func (c *Controller) Snapshot() *State {
	return &State{
		Width:         c.Width(),
		Height:        c.Height(),
		Color:         c.color,
		MaxBrightness: c.maxBrightness,
	}
}

// Struct renders s as a protobuf Struct.
func (s *State) Struct() *structpb.Struct {
	number := func(v int) *structpb.Value {
		return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: float64(v)}}
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"width":  number(s.Width),
			"height": number(s.Height),
			"color": {Kind: &structpb.Value_ListValue{
				ListValue: &structpb.ListValue{
					Values: []*structpb.Value{
						number(int(s.Color.Red)),
						number(int(s.Color.Green)),
						number(int(s.Color.Blue)),
					},
				},
			}},
			"maxBrightness": number(int(s.MaxBrightness)),
		},
	}
}

// JSON renders s as a JSON object:
//
//	{"width": W, "height": H, "color": [R, G, B], "maxBrightness": B}
func (s *State) JSON() (string, error) {
	var m jsonpb.Marshaler
	v, err := m.MarshalToString(s.Struct())
	if err != nil {
		return "", errors.Wrap(err, "could not marshal matrix state")
	}
	return v, nil
}
