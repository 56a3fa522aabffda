package service

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Codec is the Connect codec for BillingService. Plain Go messages are
// encoded with encoding/json, protobuf messages (emptypb.Empty) with protojson.
// It registers under the "json" name, replacing Connect's protojson-only codec.
type Codec struct{}

// Name returns "json" so the codec serves application/json requests.
func (Codec) Name() string { return "json" }

// Marshal encodes msg, using protojson when msg is a protobuf message.
func (Codec) Marshal(msg any) ([]byte, error) {
	if m, ok := msg.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(msg)
}

// Unmarshal decodes data into msg, using protojson when msg is a protobuf message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if m, ok := msg.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, msg)
}
