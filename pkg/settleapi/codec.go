package settleapi

import (
	"encoding/json"
	"errors"
)

var errEmptyPayload = errors.New("zero-length payload is not a valid JSON message")

// JSONCodec is a connect.Codec that marshals plain Go structs with
// encoding/json. It registers under the name "json", replacing Connect's
// protobuf JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	return json.Unmarshal(data, msg)
}
