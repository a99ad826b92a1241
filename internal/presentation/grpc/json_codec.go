package grpc

import (
	"encoding/json"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}

// jsonCallOption forces the JSON codec on client calls.
func jsonCallOption() grpclib.CallOption {
	return grpclib.ForceCodecCallOption{Codec: jsonCodec{}}
}
